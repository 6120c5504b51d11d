/*
File    : lea/eval/builtins.go
*/
package eval

import (
	"fmt"

	"github.com/lea-lang/lea/objects"
)

// Builtins returns the fixed set of functions every lea program gets for
// free, looked up by name only after a lookup in the scope chain misses
// (they are not bound in the global scope). This set never grows at
// runtime — lea has no module system or FFI for adding more.
func Builtins(e *Evaluator) map[string]*objects.Builtin {
	return map[string]*objects.Builtin{
		"str_len":   {Fn: builtinStrLen},
		"len":       {Fn: builtinLen},
		"push":      {Fn: builtinPush},
		"puts":      {Fn: e.builtinPuts},
		"to_string": {Fn: builtinToString},
	}
}

func builtinStrLen(args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments: str_len expects 1, got %d", len(args))
	}

	str, ok := args[0].(*objects.String)
	if !ok {
		return newError("argument to str_len not supported, got %s", args[0].Type())
	}
	return &objects.Integer{Value: int64(len(str.Value))}
}

// builtinLen reports the element count of an array. str_len covers
// strings; len does not accept one.
func builtinLen(args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments: len expects 1, got %d", len(args))
	}

	arr, ok := args[0].(*objects.Array)
	if !ok {
		return newError("argument to len not supported, got %s", args[0].Type())
	}
	return &objects.Integer{Value: int64(len(arr.Elements))}
}

// builtinPush returns a new array with value inserted at position,
// leaving the original array untouched. With no position it appends to
// the end, unchecked. An explicit position outside [0, len-1] yields null
// rather than an error, matching how out-of-range reads behave elsewhere
// in the language.
func builtinPush(args ...objects.Object) objects.Object {
	if len(args) != 2 && len(args) != 3 {
		return newError("wrong number of arguments: push expects 2 or 3, got %d", len(args))
	}

	arr, ok := args[0].(*objects.Array)
	if !ok {
		return newError("argument to push must be array, got %s", args[0].Type())
	}

	position := int64(len(arr.Elements))
	if len(args) == 3 {
		posArg, ok := args[2].(*objects.Integer)
		if !ok {
			return newError("third argument to push must be integer, got %s", args[2].Type())
		}
		position = posArg.Value

		if position < 0 || position > int64(len(arr.Elements))-1 {
			return objects.NULL
		}
	}

	newElements := make([]objects.Object, 0, len(arr.Elements)+1)
	newElements = append(newElements, arr.Elements[:position]...)
	newElements = append(newElements, args[1])
	newElements = append(newElements, arr.Elements[position:]...)

	return &objects.Array{Elements: newElements}
}

// builtinPuts writes its single string argument to the evaluator's
// configured writer followed by a newline.
func (e *Evaluator) builtinPuts(args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments: puts expects 1, got %d", len(args))
	}

	str, ok := args[0].(*objects.String)
	if !ok {
		return newError("argument to puts not supported, got %s", args[0].Type())
	}

	fmt.Fprintln(e.Writer, str.Value)
	return objects.NULL
}

func builtinToString(args ...objects.Object) objects.Object {
	if len(args) != 1 {
		return newError("wrong number of arguments: to_string expects 1, got %d", len(args))
	}
	return &objects.String{Value: args[0].Inspect()}
}
