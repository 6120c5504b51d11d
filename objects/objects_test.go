/*
File    : lea/objects/objects_test.go
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringHashKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	require.Equal(t, hello1.HashKey(), hello2.HashKey())
	require.Equal(t, diff1.HashKey(), diff2.HashKey())
	require.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestIntegerHashKey(t *testing.T) {
	one1 := &Integer{Value: 1}
	one2 := &Integer{Value: 1}
	two := &Integer{Value: 2}

	require.Equal(t, one1.HashKey(), one2.HashKey())
	require.NotEqual(t, one1.HashKey(), two.HashKey())
}

func TestBooleanHashKey(t *testing.T) {
	require.Equal(t, TRUE.HashKey(), (&Boolean{Value: true}).HashKey())
	require.NotEqual(t, TRUE.HashKey(), FALSE.HashKey())
}

func TestNativeBoolReturnsSingletons(t *testing.T) {
	require.Same(t, TRUE, NativeBool(true))
	require.Same(t, FALSE, NativeBool(false))
}

func TestArrayInspectKeepsTrailingSeparator(t *testing.T) {
	arr := &Array{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}
	require.Equal(t, "[1, 2, ]", arr.Inspect())
}

func TestArrayInspectEmpty(t *testing.T) {
	arr := &Array{Elements: []Object{}}
	require.Equal(t, "[]", arr.Inspect())
}

func TestMapInspectUsesSquareBrackets(t *testing.T) {
	key := &String{Value: "a"}
	m := &Map{Pairs: map[HashKey]MapPair{
		key.HashKey(): {Key: key, Value: &Integer{Value: 1}},
	}}
	require.Equal(t, "[a: 1, ]", m.Inspect())
}
