/*
File    : lea/eval/evaluator.go
*/

// Package eval is the tree-walking evaluator for lea: it walks the AST
// produced by package parser and produces objects.Object values, using
// package scope for variable bindings and package function for closures.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/lea-lang/lea/function"
	"github.com/lea-lang/lea/objects"
	"github.com/lea-lang/lea/parser"
	"github.com/lea-lang/lea/scope"
)

// DefaultMaxDepth bounds recursive Eval calls so that a runaway lea
// recursion (accidental or adversarial) fails with an Error instead of
// exhausting the Go goroutine stack. It is generous enough not to bother
// any reasonably structured program.
const DefaultMaxDepth = 7000

// Evaluator walks a parsed lea program, holding the scope chain and
// output destination that the program's builtins read and write through.
type Evaluator struct {
	Scope    *scope.Scope
	Builtins map[string]*objects.Builtin
	Writer   io.Writer

	MaxDepth int
	depth    int
}

// New creates an Evaluator with a fresh global scope, the five lea
// builtins registered, and output directed to os.Stdout.
func New() *Evaluator {
	e := &Evaluator{
		Scope:    scope.New(),
		Builtins: make(map[string]*objects.Builtin),
		Writer:   os.Stdout,
		MaxDepth: DefaultMaxDepth,
	}
	for name, builtin := range Builtins(e) {
		e.Builtins[name] = builtin
	}
	return e
}

// SetWriter redirects the output used by puts and any future I/O
// builtins — tests point this at a bytes.Buffer to capture program output.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Eval dispatches on the concrete type of node and recursively evaluates
// it to an objects.Object. Every evaluation site that calls Eval on a
// sub-node checks isError immediately afterward and bails out: a single
// runtime error anywhere in the tree aborts the whole evaluation.
func (e *Evaluator) Eval(node parser.Node) objects.Object {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.MaxDepth {
		return newError("maximum recursion depth exceeded (%d)", e.MaxDepth)
	}

	switch node := node.(type) {
	case *parser.Program:
		return e.evalProgram(node)

	case *parser.ExpressionStatement:
		return e.Eval(node.Expression)

	case *parser.BlockStatement:
		return e.evalBlockStatement(node)

	case *parser.VarStatement:
		val := e.Eval(node.Value)
		if isError(val) {
			return val
		}
		e.Scope.Set(node.Name.Value, val)
		return objects.VOID

	case *parser.ReturnStatement:
		if node.ReturnValue == nil {
			return &objects.ReturnValue{Value: objects.NULL}
		}
		val := e.Eval(node.ReturnValue)
		if isError(val) {
			return val
		}
		return &objects.ReturnValue{Value: val}

	case *parser.IntegerLiteral:
		return &objects.Integer{Value: node.Value}

	case *parser.StringLiteral:
		return &objects.String{Value: node.Value}

	case *parser.Boolean:
		return objects.NativeBool(node.Value)

	case *parser.Identifier:
		return e.evalIdentifier(node)

	case *parser.PrefixExpression:
		right := e.Eval(node.Right)
		if isError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *parser.InfixExpression:
		left := e.Eval(node.Left)
		if isError(left) {
			return left
		}
		right := e.Eval(node.Right)
		if isError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *parser.IfExpression:
		return e.evalIfExpression(node)

	case *parser.FunctionLiteral:
		return &function.Function{Parameters: node.Parameters, Body: node.Body, Env: e.Scope}

	case *parser.CallExpression:
		fn := e.Eval(node.Function)
		if isError(fn) {
			return fn
		}
		args := e.evalExpressions(node.Arguments)
		if len(args) == 1 && isError(args[0]) {
			return args[0]
		}
		return e.applyFunction(fn, args)

	case *parser.ArrayLiteral:
		elements := e.evalExpressions(node.Elements)
		if len(elements) == 1 && isError(elements[0]) {
			return elements[0]
		}
		return &objects.Array{Elements: elements}

	case *parser.MapLiteral:
		return e.evalMapLiteral(node)

	case *parser.IndexExpression:
		left := e.Eval(node.Left)
		if isError(left) {
			return left
		}
		index := e.Eval(node.Index)
		if isError(index) {
			return index
		}
		return e.evalIndexExpression(left, index)
	}

	return newError("unsupported node: %T", node)
}

func newError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}

func isError(obj objects.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == objects.ErrorObj
}
