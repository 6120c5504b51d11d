/*
File    : lea/function/function.go
*/

// Package function holds the Function object type. It lives outside
// objects because a Function needs to reference parser.Identifier and
// parser.BlockStatement (its parameter list and body) as well as
// scope.Scope (its captured environment) — embedding that in objects
// would create an import cycle (scope already imports objects).
package function

import (
	"bytes"
	"strings"

	"github.com/lea-lang/lea/objects"
	"github.com/lea-lang/lea/parser"
	"github.com/lea-lang/lea/scope"
)

// Function is a user-defined closure: its parameter names and body come
// straight from the AST node that produced it, and Env is the scope that
// was live at the point of definition, captured by reference so that
// later mutations to outer bindings are visible inside the closure.
type Function struct {
	Parameters []*parser.Identifier
	Body       *parser.BlockStatement
	Env        *scope.Scope
}

func (f *Function) Type() objects.ObjectType { return objects.FunctionObj }

func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fun(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}
