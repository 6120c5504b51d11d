/*
File    : lea/eval/eval_statements.go
*/
package eval

import (
	"github.com/lea-lang/lea/objects"
	"github.com/lea-lang/lea/parser"
)

// evalProgram evaluates every top-level statement in order. Unlike
// evalBlockStatement, it unwraps a ReturnValue the moment one surfaces —
// a top-level `ret` simply ends the program with that value, there is no
// further function-call boundary above it to unwrap at.
func (e *Evaluator) evalProgram(program *parser.Program) objects.Object {
	var result objects.Object = objects.NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt)

		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates the statements of a function body, if-arm,
// or any other brace-delimited block. It deliberately does NOT unwrap a
// ReturnValue — that happens exactly once, at the call site in
// applyFunction, so a `ret` inside a nested block still escapes every
// enclosing block on its way out of the function.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatement) objects.Object {
	var result objects.Object = objects.NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt)

		if result != nil {
			rt := result.Type()
			if rt == objects.ReturnValueObj || rt == objects.ErrorObj {
				return result
			}
		}
	}

	return result
}
