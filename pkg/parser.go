package soorj

import (
	"fmt"
	"strconv"
)

type Tokenizer interface {
	Do()
	Get() Token
	GetFilename() string
}

type Parser struct {
	filename  string
	tokenizer Tokenizer
	buf       *Token
}

func NewParser(tokenizer Tokenizer) *Parser {
	return &Parser{
		tokenizer: tokenizer,
		filename:  tokenizer.GetFilename(),
	}
}

func (p *Parser) GetFilename() string {
	return p.filename
}

// Run drives the tokenizer and parses the whole input into an AST. The first
// lexical or syntactic problem aborts the parse.
func (p *Parser) Run() (*AST, error) {
	go p.tokenizer.Do()

	ast, err := p.program()
	if err != nil {
		go p.drain()
		return nil, err
	}

	return ast, nil
}

// drain unblocks the tokenizer goroutine after an aborted parse.
func (p *Parser) drain() {
	for tok := p.tokenizer.Get(); tok.isValid(); tok = p.tokenizer.Get() {
	}
}

func (p *Parser) peek() Token {
	if p.buf == nil {
		temp := p.next()
		p.buf = &temp
	}

	return *p.buf
}

func (p *Parser) next() Token {
	if p.buf != nil {
		if !p.buf.isValid() {
			// If an invalid token is buffered, don't try to get more tokens
			return *p.buf
		}

		temp := p.buf
		p.buf = nil

		return *temp
	}

	tok := p.tokenizer.Get()
	if !tok.isValid() {
		// If a token is invalid (such as Error or EOF) keep it buffered since no more valid tokens are expected
		p.buf = &tok
	}

	if tok.isComment() {
		return p.next()
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) expect(typ TokenType, format string, args ...interface{}) (Token, error) {
	tok := p.next()
	if tok.Typ != typ {
		return Token{}, p.fail(tok, format, args...)
	}

	return tok, nil
}

// fail builds the error for an unexpected token, passing lexer errors
// through unchanged.
func (p *Parser) fail(tok Token, format string, args ...interface{}) error {
	if tok.Typ == TokenError {
		return &LexError{Line: tok.Line, Msg: tok.Value}
	}

	return &ParseError{Line: tok.Line, Msg: fmt.Sprintf(format, args...)}
}

// skipSeparators discards semicolons and newlines between statements.
func (p *Parser) skipSeparators() {
	for p.check(TokenSemicolon) || p.check(TokenNewline) {
		p.next()
	}
}

// skipNewlines allows a line break before a block opener or an else branch
// without letting one end the surrounding statement.
func (p *Parser) skipNewlines() {
	for p.check(TokenNewline) {
		p.next()
	}
}

func (p *Parser) program() (*AST, error) {
	ast := &AST{Filename: p.filename}

	for {
		p.skipSeparators()

		tok := p.peek()
		if tok.Typ == TokenEOF {
			return ast, nil
		}

		if tok.Typ == TokenError {
			return nil, p.fail(tok, "")
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		ast.Statements = append(ast.Statements, stmt)
	}
}

func (p *Parser) statement() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenIf:
		return p.ifStmt()
	case TokenWhile:
		return p.whileStmt()
	case TokenFunc:
		return p.funcDecl()
	case TokenReturn:
		return p.returnStmt()
	case TokenOpenCurly:
		return p.blockStmt()
	default:
		return p.simpleStmt()
	}
}

func (p *Parser) ifStmt() (Expr, error) {
	p.next() // Skip եթե

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()

	then, err := p.blockStmt()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()

	var els *Block
	if p.check(TokenElse) {
		p.next()
		p.skipNewlines()

		els, err = p.blockStmt()
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{Condition: cond, Then: then, Else: els}, nil
}

func (p *Parser) whileStmt() (Expr, error) {
	p.next() // Skip մինչև

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{Condition: cond, Body: body}, nil
}

func (p *Parser) funcDecl() (Expr, error) {
	p.next() // Skip գործ

	name, err := p.expect(TokenIdentifier, "expected function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenOpenParentheses, "expected '(' after function name"); err != nil {
		return nil, err
	}

	var params []string
	if !p.check(TokenCloseParentheses) {
		for {
			param, err := p.expect(TokenIdentifier, "expected parameter name")
			if err != nil {
				return nil, err
			}

			params = append(params, param.Value)

			if !p.check(TokenComma) {
				break
			}

			p.next() // Skip the comma
		}
	}

	if _, err := p.expect(TokenCloseParentheses, "expected ')' after parameters"); err != nil {
		return nil, err
	}

	p.skipNewlines()

	body, err := p.blockStmt()
	if err != nil {
		return nil, err
	}

	return &FuncDecl{Name: name.Value, Params: params, Body: body}, nil
}

func (p *Parser) returnStmt() (Expr, error) {
	p.next() // Skip տուր

	var value Expr
	if startsExpression(p.peek().Typ) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}

		value = v
	}

	return &ReturnStmt{Value: value}, nil
}

func startsExpression(typ TokenType) bool {
	switch typ {
	case TokenNumber, TokenString, TokenTrue, TokenFalse, TokenNull,
		TokenIdentifier, TokenOpenParentheses, TokenMinus, TokenNot:
		return true
	}

	return false
}

func (p *Parser) blockStmt() (*Block, error) {
	if _, err := p.expect(TokenOpenCurly, "expected '{'"); err != nil {
		return nil, err
	}

	block := &Block{}
	for {
		p.skipSeparators()

		tok := p.peek()
		if tok.Typ == TokenCloseCurly {
			p.next()
			return block, nil
		}

		if tok.Typ == TokenEOF {
			return nil, p.fail(tok, "unclosed block")
		}

		if tok.Typ == TokenError {
			return nil, p.fail(tok, "")
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		block.Statements = append(block.Statements, stmt)
	}
}

// simpleStmt parses an expression statement, promoting it to an assignment
// when an identifier is followed by '='. The target must be a bare
// identifier, so a statement opening with '(' is never promoted even when
// the parentheses unwrap to one.
func (p *Parser) simpleStmt() (Expr, error) {
	leadParen := p.check(TokenOpenParentheses)

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if id, ok := expr.(*Identifier); ok && !leadParen && p.check(TokenAssign) {
		p.next() // Skip =

		value, err := p.expression()
		if err != nil {
			return nil, err
		}

		return &Assignment{Name: id.Name, Value: value}, nil
	}

	return expr, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.logicalOrExpr()
}

func (p *Parser) logicalOrExpr() (Expr, error) {
	lhs, err := p.logicalAndExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenOr) {
		p.next()

		rhs, err := p.logicalAndExpr()
		if err != nil {
			return nil, err
		}

		lhs = &LogicalExpr{
			Operation: LogicalOr,
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) logicalAndExpr() (Expr, error) {
	lhs, err := p.equalityExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenAnd) {
		p.next()

		rhs, err := p.equalityExpr()
		if err != nil {
			return nil, err
		}

		lhs = &LogicalExpr{
			Operation: LogicalAnd,
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) equalityExpr() (Expr, error) {
	lhs, err := p.relationalExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenEquals) || p.check(TokenNotEquals) {
		op := p.next()

		rhs, err := p.relationalExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(op.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) relationalExpr() (Expr, error) {
	lhs, err := p.additiveExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenLess) || p.check(TokenGreater) ||
		p.check(TokenLessEqual) || p.check(TokenGreaterEqual) {
		op := p.next()

		rhs, err := p.additiveExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(op.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) additiveExpr() (Expr, error) {
	lhs, err := p.multiplicativeExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := p.next()

		rhs, err := p.multiplicativeExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(op.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) multiplicativeExpr() (Expr, error) {
	lhs, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenStar) || p.check(TokenSlash) || p.check(TokenPercent) {
		op := p.next()

		rhs, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(op.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) unaryExpr() (Expr, error) {
	if p.check(TokenMinus) || p.check(TokenNot) {
		op := p.next()

		operand, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operation: UnaryOp(op.Value),
			Operand:   operand,
		}, nil
	}

	return p.callExpr()
}

func (p *Parser) callExpr() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for p.check(TokenOpenParentheses) {
		p.next()

		var args []Expr
		if !p.check(TokenCloseParentheses) {
			for {
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}

				args = append(args, arg)

				if !p.check(TokenComma) {
					break
				}

				p.next() // Skip the comma
			}
		}

		if _, err := p.expect(TokenCloseParentheses, "expected ')' after arguments"); err != nil {
			return nil, err
		}

		expr = &CallExpr{Callee: expr, Args: args}
	}

	return expr, nil
}

func (p *Parser) primary() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenNumber:
		t := p.next()

		num, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, p.fail(t, "malformed number '%s'", t.Value)
		}

		return &LiteralExpr{Typ: LiteralNumber, Value: t.Value, Num: num}, nil
	case TokenString:
		return &LiteralExpr{Typ: LiteralString, Value: p.next().Value}, nil
	case TokenTrue:
		return &LiteralExpr{Typ: LiteralBool, Value: p.next().Value, Bool: true}, nil
	case TokenFalse:
		return &LiteralExpr{Typ: LiteralBool, Value: p.next().Value}, nil
	case TokenNull:
		return &LiteralExpr{Typ: LiteralNull, Value: p.next().Value}, nil
	case TokenIdentifier:
		return &Identifier{Name: p.next().Value}, nil
	case TokenOpenParentheses:
		p.next()

		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(TokenCloseParentheses, "expected ')' after expression"); err != nil {
			return nil, err
		}

		return expr, nil
	case TokenEOF:
		return nil, p.fail(tok, "unexpected end of input")
	default:
		return nil, p.fail(tok, "unexpected token '%s'", tok.Value)
	}
}
