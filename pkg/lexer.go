package soorj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

//go:generate stringer -type=TokenType -trimprefix=Token
const (
	EOF rune = 0

	TokenError TokenType = iota
	TokenEOF
	TokenNumber
	TokenString

	TokenIdentifier
	TokenIf
	TokenElse
	TokenWhile
	TokenFunc
	TokenReturn
	TokenTrue
	TokenFalse
	TokenNull
	TokenAnd
	TokenOr
	TokenNot

	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenAssign
	TokenEquals
	TokenNotEquals
	TokenLess
	TokenGreater
	TokenLessEqual
	TokenGreaterEqual
	TokenLineComment
	TokenNewline
	TokenOpenParentheses
	TokenCloseParentheses
	TokenOpenCurly
	TokenCloseCurly
	TokenComma
	TokenSemicolon
)

var keywordTable = map[string]TokenType{
	"եթե":   TokenIf,
	"հպ":    TokenElse,
	"մինչև": TokenWhile,
	"գործ":  TokenFunc,
	"տուր":  TokenReturn,
	"այո":   TokenTrue,
	"ոչ":    TokenFalse,
	"հեչ":   TokenNull,
	"և":     TokenAnd,
	"կամ":   TokenOr,
	"չի":    TokenNot,
}

var operatorTable = map[string]TokenType{
	"+":  TokenPlus,
	"-":  TokenMinus,
	"*":  TokenStar,
	"/":  TokenSlash,
	"%":  TokenPercent,
	"=":  TokenAssign,
	"==": TokenEquals,
	"!=": TokenNotEquals,
	"<":  TokenLess,
	">":  TokenGreater,
	"<=": TokenLessEqual,
	">=": TokenGreaterEqual,
	"(":  TokenOpenParentheses,
	")":  TokenCloseParentheses,
	"{":  TokenOpenCurly,
	"}":  TokenCloseCurly,
	",":  TokenComma,
	";":  TokenSemicolon,
}

type Token struct {
	Typ   TokenType
	Value string
	Line  int
}

func (t Token) isValid() bool {
	return t.Typ != TokenEOF && t.Typ != TokenError
}

func (t Token) isComment() bool {
	return t.Typ == TokenLineComment
}

type Lexer struct {
	filename string
	reader   *bufio.Reader
	done     chan Token
	line     int
}

// NewLexer lexes the named source file, read in full up front.
func NewLexer(filename string) (*Lexer, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	l := NewLexerFromReader(bytes.NewReader(src))
	l.filename = filename

	return l, nil
}

// NewLexerFromReader lexes source from an arbitrary reader.
func NewLexerFromReader(reader io.Reader) *Lexer {
	return &Lexer{
		filename: "<input>",
		reader:   bufio.NewReader(reader),
		done:     make(chan Token),
		line:     1,
	}
}

func (l *Lexer) GetFilename() string {
	return l.filename
}

func (l *Lexer) Chan() chan Token {
	return l.done
}

// Do runs the state machine until the source is exhausted or an error token
// is emitted, then closes the token channel.
func (l *Lexer) Do() {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	close(l.done)
}

func (l *Lexer) Get() Token {
	return <-l.done
}

func (l *Lexer) RunBlocking() ([]Token, error) {
	go l.Do()

	var tokens []Token
	for {
		select {
		case t := <-l.Chan():
			if t.Typ == TokenEOF {
				return tokens, nil
			}

			if t.Typ == TokenError {
				return nil, &LexError{Line: t.Line, Msg: t.Value}
			}

			tokens = append(tokens, t)
		}
	}
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			l.emmitValue(TokenEOF, "")
			return nil
		case r == '\n':
			// Newlines separate statements, so they come out as tokens
			line := l.line
			l.next()
			l.done <- Token{Typ: TokenNewline, Value: "\n", Line: line}
			continue
		case unicode.IsSpace(r):
			l.next()
			continue
		case r == '#':
			return lineCommentState
		case '0' <= r && r <= '9':
			return numberState
		case r == '"' || r == '\'':
			return stringState
		case unicode.IsLetter(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	var num strings.Builder
	sawDot := false
	for {
		r := l.peek()
		if '0' <= r && r <= '9' || r == '.' && !sawDot {
			if r == '.' {
				sawDot = true
			}

			num.WriteRune(l.next())
			continue
		}

		break
	}

	return l.emmitValue(TokenNumber, num.String())
}

func stringState(l *Lexer) stateFunc {
	quote := l.next()

	var str strings.Builder
	for r := l.next(); r != quote; r = l.next() {
		if r == EOF {
			return l.errorf("unclosed string: %s", str.String())
		}

		if r == '\\' {
			esc := l.next()
			switch esc {
			case EOF:
				return l.errorf("unclosed string: %s", str.String())
			case 'n':
				str.WriteRune('\n')
			case 't':
				str.WriteRune('\t')
			case 'r':
				str.WriteRune('\r')
			default:
				// Unknown escapes keep the escaped rune, which also
				// covers \", \' and \\.
				str.WriteRune(esc)
			}

			continue
		}

		str.WriteRune(r)
	}

	return l.emmitValue(TokenString, str.String())
}

func identifierState(l *Lexer) stateFunc {
	var id strings.Builder
	for r := l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	if t, ok := keywordTable[id.String()]; ok {
		return l.emmitValue(t, id.String())
	}

	return l.emmitValue(TokenIdentifier, id.String())
}

func operatorState(l *Lexer) stateFunc {
	r := l.next()
	if r == '=' || r == '!' || r == '<' || r == '>' { // Some operators can be two runes
		op := string(r) + string(l.peek())
		if tok, ok := operatorTable[op]; ok {
			l.next() // Skip

			return l.emmitValue(tok, op)
		}
	}

	if tok, ok := operatorTable[string(r)]; ok {
		return l.emmitValue(tok, string(r))
	}

	return l.errorf("invalid symbol '%c'", r)
}

func lineCommentState(l *Lexer) stateFunc {
	l.next() // Skip the leading hash

	var id strings.Builder
	for r := l.peek(); r != '\n' && r != EOF; r = l.peek() {
		id.WriteRune(l.next())
	}

	return l.emmitValue(TokenLineComment, id.String())
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFunc {
	l.done <- Token{
		Typ:   TokenError,
		Value: fmt.Sprintf(format, args...),
		Line:  l.line,
	}

	return nil
}

func (l *Lexer) emmitValue(t TokenType, val string) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: val,
		Line:  l.line,
	}

	return defaultState
}

func (l *Lexer) peek() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	if r == '\n' {
		l.line++
	}

	return r
}
