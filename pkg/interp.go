package soorj

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Interpreter walks a parsed AST. The root scope persists across Run and
// Eval calls so a prompt session accumulates state.
type Interpreter struct {
	globals *Env
}

// NewInterpreter builds a fresh root scope with the builtins bound to out.
func NewInterpreter(out io.Writer) *Interpreter {
	globals := NewEnv(nil)
	defineBuiltins(globals, out)

	return &Interpreter{
		globals: globals,
	}
}

// control reports how a statement sequence finished: ran to completion, or
// was cut short by a return carrying a value.
type control struct {
	returned bool
	value    Value
}

var completed = control{}

func returned(v Value) control {
	return control{returned: true, value: v}
}

// RunFile lexes, parses and executes the named source file.
func (i *Interpreter) RunFile(filename string) error {
	lexer, err := NewLexer(filename)
	if err != nil {
		return err
	}

	ast, err := NewParser(lexer).Run()
	if err != nil {
		return err
	}

	return i.Run(ast)
}

// EvalSource evaluates one source fragment against the persistent root
// scope. The returned flag reports whether the fragment was a single bare
// expression whose value is worth echoing at a prompt.
func (i *Interpreter) EvalSource(src string) (Value, bool, error) {
	ast, err := NewParser(NewLexerFromReader(strings.NewReader(src))).Run()
	if err != nil {
		return Null, false, err
	}

	return i.Eval(ast)
}

// Run executes every top-level statement. A return reaching the top level
// stops execution without being an error.
func (i *Interpreter) Run(ast *AST) error {
	for _, stmt := range ast.Statements {
		ctl, err := i.exec(stmt, i.globals)
		if err != nil {
			return err
		}

		if ctl.returned {
			return nil
		}
	}

	return nil
}

func (i *Interpreter) Eval(ast *AST) (Value, bool, error) {
	if len(ast.Statements) == 1 && isExpressionStmt(ast.Statements[0]) {
		v, err := i.eval(ast.Statements[0], i.globals)
		if err != nil {
			return Null, false, err
		}

		return v, true, nil
	}

	if err := i.Run(ast); err != nil {
		return Null, false, err
	}

	return Null, false, nil
}

func isExpressionStmt(node Expr) bool {
	switch node.(type) {
	case *Assignment, *Block, *IfStmt, *WhileStmt, *FuncDecl, *ReturnStmt:
		return false
	}

	return true
}

func (i *Interpreter) exec(node Expr, env *Env) (control, error) {
	switch n := node.(type) {
	case *Block:
		return i.execBlock(n, NewEnv(env))
	case *IfStmt:
		cond, err := i.eval(n.Condition, env)
		if err != nil {
			return completed, err
		}

		if cond.Truthy() {
			return i.execBlock(n.Then, NewEnv(env))
		}

		if n.Else != nil {
			return i.execBlock(n.Else, NewEnv(env))
		}

		return completed, nil
	case *WhileStmt:
		for {
			cond, err := i.eval(n.Condition, env)
			if err != nil {
				return completed, err
			}

			if !cond.Truthy() {
				return completed, nil
			}

			// Each iteration gets a fresh frame
			ctl, err := i.execBlock(n.Body, NewEnv(env))
			if err != nil {
				return completed, err
			}

			if ctl.returned {
				return ctl, nil
			}
		}
	case *FuncDecl:
		env.Define(n.Name, FunVal(&Function{
			Name:   n.Name,
			Params: n.Params,
			Body:   n.Body,
			Env:    env,
		}))

		return completed, nil
	case *ReturnStmt:
		v := Null
		if n.Value != nil {
			var err error
			v, err = i.eval(n.Value, env)
			if err != nil {
				return completed, err
			}
		}

		return returned(v), nil
	case *Assignment:
		v, err := i.eval(n.Value, env)
		if err != nil {
			return completed, err
		}

		if !env.Assign(n.Name, v) {
			env.Define(n.Name, v)
		}

		return completed, nil
	default:
		_, err := i.eval(node, env)
		return completed, err
	}
}

func (i *Interpreter) execBlock(b *Block, env *Env) (control, error) {
	for _, stmt := range b.Statements {
		ctl, err := i.exec(stmt, env)
		if err != nil {
			return completed, err
		}

		if ctl.returned {
			return ctl, nil
		}
	}

	return completed, nil
}

func (i *Interpreter) eval(node Expr, env *Env) (Value, error) {
	switch n := node.(type) {
	case *LiteralExpr:
		switch n.Typ {
		case LiteralNumber:
			return Num(n.Num), nil
		case LiteralString:
			return Str(n.Value), nil
		case LiteralBool:
			return Bool(n.Bool), nil
		default:
			return Null, nil
		}
	case *Identifier:
		v, ok := env.Get(n.Name)
		if !ok {
			return Null, &NameError{Name: n.Name}
		}

		return v, nil
	case *UnaryExpr:
		return i.evalUnary(n, env)
	case *BinaryExpr:
		return i.evalBinary(n, env)
	case *LogicalExpr:
		return i.evalLogical(n, env)
	case *CallExpr:
		return i.evalCall(n, env)
	default:
		return Null, &TypeError{Msg: fmt.Sprintf("cannot evaluate %T as an expression", node)}
	}
}

func (i *Interpreter) evalUnary(n *UnaryExpr, env *Env) (Value, error) {
	operand, err := i.eval(n.Operand, env)
	if err != nil {
		return Null, err
	}

	switch n.Operation {
	case UnaryNegative:
		if operand.Tag != NumberValue {
			return Null, &TypeError{Msg: fmt.Sprintf("cannot negate %s", operand)}
		}

		return Num(-operand.Data.(float64)), nil
	case UnaryNot:
		return Bool(!operand.Truthy()), nil
	}

	return Null, &TypeError{Msg: fmt.Sprintf("unknown unary operator '%s'", n.Operation)}
}

func (i *Interpreter) evalBinary(n *BinaryExpr, env *Env) (Value, error) {
	left, err := i.eval(n.Op1, env)
	if err != nil {
		return Null, err
	}

	right, err := i.eval(n.Op2, env)
	if err != nil {
		return Null, err
	}

	switch n.Operation {
	case BinaryEquals:
		return Bool(left.Equals(right)), nil
	case BinaryNotEquals:
		return Bool(!left.Equals(right)), nil
	case BinaryLess, BinaryGreater, BinaryLessEqual, BinaryGreaterEqual:
		return compare(n.Operation, left, right)
	}

	if left.Tag != NumberValue || right.Tag != NumberValue {
		return Null, &TypeError{Msg: fmt.Sprintf("operator '%s' needs two numbers, got %s and %s",
			n.Operation, left, right)}
	}

	a := left.Data.(float64)
	b := right.Data.(float64)

	switch n.Operation {
	case BinaryAddition:
		return Num(a + b), nil
	case BinarySubtraction:
		return Num(a - b), nil
	case BinaryMultiplication:
		return Num(a * b), nil
	case BinaryDivision:
		if b == 0 {
			return Null, &ArithmeticError{Msg: "division by zero"}
		}

		return Num(a / b), nil
	case BinaryModulo:
		if b == 0 {
			return Null, &ArithmeticError{Msg: "modulo by zero"}
		}

		return Num(math.Mod(a, b)), nil
	}

	return Null, &TypeError{Msg: fmt.Sprintf("unknown binary operator '%s'", n.Operation)}
}

// compare orders two numbers, or two strings lexicographically by code
// point. Every other pairing is a type error.
func compare(op BinaryOp, left Value, right Value) (Value, error) {
	var less, equal bool
	switch {
	case left.Tag == NumberValue && right.Tag == NumberValue:
		a := left.Data.(float64)
		b := right.Data.(float64)
		less, equal = a < b, a == b
	case left.Tag == StringValue && right.Tag == StringValue:
		a := left.Data.(string)
		b := right.Data.(string)
		less, equal = a < b, a == b
	default:
		return Null, &TypeError{Msg: fmt.Sprintf("cannot order %s and %s", left, right)}
	}

	switch op {
	case BinaryLess:
		return Bool(less), nil
	case BinaryGreater:
		return Bool(!less && !equal), nil
	case BinaryLessEqual:
		return Bool(less || equal), nil
	default:
		return Bool(!less), nil
	}
}

// evalLogical short-circuits and yields the deciding operand itself, not a
// coerced boolean.
func (i *Interpreter) evalLogical(n *LogicalExpr, env *Env) (Value, error) {
	left, err := i.eval(n.Op1, env)
	if err != nil {
		return Null, err
	}

	if n.Operation == LogicalAnd {
		if !left.Truthy() {
			return left, nil
		}

		return i.eval(n.Op2, env)
	}

	if left.Truthy() {
		return left, nil
	}

	return i.eval(n.Op2, env)
}

func (i *Interpreter) evalCall(n *CallExpr, env *Env) (Value, error) {
	callee, err := i.eval(n.Callee, env)
	if err != nil {
		return Null, err
	}

	if callee.Tag != FunctionValue {
		return Null, &TypeError{Msg: fmt.Sprintf("'%s' is not callable", callee)}
	}

	args := make([]Value, 0, len(n.Args))
	for _, arg := range n.Args {
		v, err := i.eval(arg, env)
		if err != nil {
			return Null, err
		}

		args = append(args, v)
	}

	fn := callee.Data.(*Function)
	if fn.Native != nil {
		return fn.Native(args)
	}

	if len(args) != len(fn.Params) {
		return Null, &ArityError{Name: fn.Name, Want: len(fn.Params), Got: len(args)}
	}

	// The call frame chains to the scope captured at declaration, not the
	// caller's scope
	frame := NewEnv(fn.Env)
	for idx, param := range fn.Params {
		frame.Define(param, args[idx])
	}

	ctl, err := i.execBlock(fn.Body, frame)
	if err != nil {
		return Null, err
	}

	if ctl.returned {
		return ctl.value, nil
	}

	return Null, nil
}
