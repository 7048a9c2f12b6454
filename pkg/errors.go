package soorj

import "fmt"

// LexError reports source text the lexer could not turn into a token.
type LexError struct {
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d: %s", e.Line, e.Msg)
}

// ParseError reports a token sequence that matches no production.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
}

// NameError reports a read of a variable with no visible binding.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}

// TypeError reports an operand or callee of the wrong kind.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: %s", e.Msg)
}

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("function '%s' expects %d arguments, got %d", e.Name, e.Want, e.Got)
}

// ArithmeticError reports division or modulo by zero.
type ArithmeticError struct {
	Msg string
}

func (e *ArithmeticError) Error() string {
	return e.Msg
}

// ValueError reports a conversion whose argument has the right type but an
// unusable value.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("value error: %s", e.Msg)
}
