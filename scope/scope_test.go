/*
File    : lea/scope/scope_test.go
*/
package scope

import (
	"testing"

	"github.com/lea-lang/lea/objects"
	"github.com/stretchr/testify/require"
)

func TestGetSetLocal(t *testing.T) {
	s := New()
	s.Set("x", &objects.Integer{Value: 5})

	val, ok := s.Get("x")
	require.True(t, ok)
	require.Equal(t, int64(5), val.(*objects.Integer).Value)
}

func TestGetMissing(t *testing.T) {
	s := New()
	_, ok := s.Get("missing")
	require.False(t, ok)
}

func TestEnclosedScopeSeesOuterBindings(t *testing.T) {
	outer := New()
	outer.Set("x", &objects.Integer{Value: 1})

	inner := NewEnclosed(outer)
	val, ok := inner.Get("x")
	require.True(t, ok)
	require.Equal(t, int64(1), val.(*objects.Integer).Value)
}

func TestInnerBindingShadowsOuter(t *testing.T) {
	outer := New()
	outer.Set("x", &objects.Integer{Value: 1})

	inner := NewEnclosed(outer)
	inner.Set("x", &objects.Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	require.Equal(t, int64(2), innerVal.(*objects.Integer).Value)
	require.Equal(t, int64(1), outerVal.(*objects.Integer).Value)
}
