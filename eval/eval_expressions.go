/*
File    : lea/eval/eval_expressions.go
*/
package eval

import (
	"github.com/lea-lang/lea/function"
	"github.com/lea-lang/lea/objects"
	"github.com/lea-lang/lea/parser"
	"github.com/lea-lang/lea/scope"
)

func (e *Evaluator) evalIdentifier(node *parser.Identifier) objects.Object {
	if val, ok := e.Scope.Get(node.Value); ok {
		return val
	}
	if builtin, ok := e.Builtins[node.Value]; ok {
		return builtin
	}
	return newError("identifier not found: %s", node.Value)
}

func (e *Evaluator) evalPrefixExpression(operator string, right objects.Object) objects.Object {
	switch operator {
	case "!":
		return objects.NativeBool(!isTruthy(right))
	case "-":
		i, ok := right.(*objects.Integer)
		if !ok {
			return newError("unknown operator: -%s", right.Type())
		}
		return &objects.Integer{Value: -i.Value}
	default:
		return newError("unknown operator: %s%s", operator, right.Type())
	}
}

func (e *Evaluator) evalInfixExpression(operator string, left, right objects.Object) objects.Object {
	switch {
	case left.Type() == objects.IntegerObj && right.Type() == objects.IntegerObj:
		return evalIntegerInfixExpression(operator, left.(*objects.Integer), right.(*objects.Integer))
	case left.Type() == objects.BooleanObj && right.Type() == objects.BooleanObj:
		return evalBooleanInfixExpression(operator, left.(*objects.Boolean), right.(*objects.Boolean))
	case left.Type() == objects.StringObj && right.Type() == objects.StringObj:
		return evalStringInfixExpression(operator, left.(*objects.String), right.(*objects.String))
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), operator, right.Type())
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalBooleanInfixExpression supports only equality and inequality on
// booleans; any other operator is an unknown-operator error.
func evalBooleanInfixExpression(operator string, left, right *objects.Boolean) objects.Object {
	switch operator {
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalIntegerInfixExpression covers every binary operator lea defines over
// two integers. Division by zero is a runtime Error, not a panic or an
// infinity value.
func evalIntegerInfixExpression(operator string, left, right *objects.Integer) objects.Object {
	switch operator {
	case "+":
		return &objects.Integer{Value: left.Value + right.Value}
	case "-":
		return &objects.Integer{Value: left.Value - right.Value}
	case "*":
		return &objects.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return newError("division by zero")
		}
		return &objects.Integer{Value: left.Value / right.Value}
	case "<":
		return objects.NativeBool(left.Value < right.Value)
	case ">":
		return objects.NativeBool(left.Value > right.Value)
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// evalStringInfixExpression supports `+` (concatenation) and the equality
// operators; every other arithmetic or comparison operator on strings is
// an unknown-operator error.
func evalStringInfixExpression(operator string, left, right *objects.String) objects.Object {
	switch operator {
	case "+":
		return &objects.String{Value: left.Value + right.Value}
	case "==":
		return objects.NativeBool(left.Value == right.Value)
	case "!=":
		return objects.NativeBool(left.Value != right.Value)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

// isTruthy implements lea's truthiness rule: null is false, a boolean is
// itself, an integer is truthy unless it is zero, and every other object
// (string, array, map, function...) is always truthy.
func isTruthy(obj objects.Object) bool {
	switch obj := obj.(type) {
	case *objects.Null:
		return false
	case *objects.Boolean:
		return obj.Value
	case *objects.Integer:
		return obj.Value != 0
	default:
		return true
	}
}

func (e *Evaluator) evalIfExpression(ie *parser.IfExpression) objects.Object {
	condition := e.Eval(ie.Condition)
	if isError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return e.Eval(ie.Consequence)
	} else if ie.Alternative != nil {
		return e.Eval(ie.Alternative)
	}
	return objects.NULL
}

// evalExpressions evaluates each expression in order, stopping at (and
// returning a single-element slice containing) the first Error.
func (e *Evaluator) evalExpressions(exps []parser.Expression) []objects.Object {
	var result []objects.Object

	for _, exp := range exps {
		evaluated := e.Eval(exp)
		if isError(evaluated) {
			return []objects.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

func (e *Evaluator) evalMapLiteral(node *parser.MapLiteral) objects.Object {
	pairs := make(map[objects.HashKey]objects.MapPair)

	for _, pair := range node.Pairs {
		key := e.Eval(pair.Key)
		if isError(key) {
			return key
		}

		hashable, ok := key.(objects.Hashable)
		if !ok {
			return newError("unusable as map key: %s", key.Type())
		}

		value := e.Eval(pair.Value)
		if isError(value) {
			return value
		}

		pairs[hashable.HashKey()] = objects.MapPair{Key: key, Value: value}
	}

	return &objects.Map{Pairs: pairs}
}

func (e *Evaluator) evalIndexExpression(left, index objects.Object) objects.Object {
	switch {
	case left.Type() == objects.ArrayObj && index.Type() == objects.IntegerObj:
		return evalArrayIndexExpression(left.(*objects.Array), index.(*objects.Integer))
	case left.Type() == objects.MapObj:
		return e.evalMapIndexExpression(left.(*objects.Map), index)
	default:
		return newError("index operator not supported: %s", left.Type())
	}
}

// evalArrayIndexExpression returns null for any out-of-range index,
// negative or past the end, rather than an error.
func evalArrayIndexExpression(array *objects.Array, index *objects.Integer) objects.Object {
	idx := index.Value
	max := int64(len(array.Elements) - 1)

	if idx < 0 || idx > max {
		return objects.NULL
	}
	return array.Elements[idx]
}

func (e *Evaluator) evalMapIndexExpression(m *objects.Map, index objects.Object) objects.Object {
	key, ok := index.(objects.Hashable)
	if !ok {
		return newError("unusable as map key: %s", index.Type())
	}

	pair, ok := m.Pairs[key.HashKey()]
	if !ok {
		return objects.NULL
	}
	return pair.Value
}

// applyFunction invokes fn — either a user-defined closure or a builtin —
// with args already evaluated. A builtin runs directly; a Function gets a
// new scope enclosing the one it closed over, with its parameters bound
// to args, and its body evaluated in that scope. Argument count mismatch
// is lenient: missing parameters are left unbound (looking them up later
// is an identifier-not-found error) rather than rejected up front.
func (e *Evaluator) applyFunction(fn objects.Object, args []objects.Object) objects.Object {
	switch fn := fn.(type) {
	case *function.Function:
		extendedScope := extendFunctionScope(fn, args)
		outer := e.Scope
		e.Scope = extendedScope
		evaluated := e.Eval(fn.Body)
		e.Scope = outer
		return unwrapReturnValue(evaluated)

	case *objects.Builtin:
		return fn.Fn(args...)

	default:
		return newError("not a function: %s", fn.Type())
	}
}

func extendFunctionScope(fn *function.Function, args []objects.Object) *scope.Scope {
	env := scope.NewEnclosed(fn.Env)

	for i, param := range fn.Parameters {
		if i < len(args) {
			env.Set(param.Value, args[i])
		}
	}

	return env
}

// unwrapReturnValue is the single place a ReturnValue wrapper is removed:
// exactly once, at the function-call boundary, regardless of how many
// nested blocks the `ret` statement escaped through.
func unwrapReturnValue(obj objects.Object) objects.Object {
	if rv, ok := obj.(*objects.ReturnValue); ok {
		return rv.Value
	}
	return obj
}
