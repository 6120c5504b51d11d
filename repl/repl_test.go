/*
File    : lea/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/lea-lang/lea/eval"
	"github.com/stretchr/testify/require"
)

func TestEvalLinePrintsResult(t *testing.T) {
	var buf bytes.Buffer
	r := New("lea", "test", "lea> ")
	e := eval.New()
	e.SetWriter(&buf)

	r.evalLine(&buf, "1 + 2", e)
	require.Contains(t, buf.String(), "3")
}

func TestEvalLinePersistsScopeAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	r := New("lea", "test", "lea> ")
	e := eval.New()
	e.SetWriter(&buf)

	r.evalLine(&buf, "var x = 41;", e)
	buf.Reset()
	r.evalLine(&buf, "x + 1", e)
	require.Contains(t, buf.String(), "42")
}

func TestEvalLineSuppressesVarOutput(t *testing.T) {
	var buf bytes.Buffer
	r := New("lea", "test", "lea> ")
	e := eval.New()
	e.SetWriter(&buf)

	r.evalLine(&buf, "var x = 41;", e)
	require.Empty(t, buf.String())
}

func TestEvalLineReportsParseError(t *testing.T) {
	var buf bytes.Buffer
	r := New("lea", "test", "lea> ")
	e := eval.New()
	e.SetWriter(&buf)

	r.evalLine(&buf, "var x 5;", e)
	require.Contains(t, buf.String(), "parse error")
}

func TestEvalLineReportsRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	r := New("lea", "test", "lea> ")
	e := eval.New()
	e.SetWriter(&buf)

	r.evalLine(&buf, "missingIdent", e)
	require.Contains(t, buf.String(), "identifier not found")
}
