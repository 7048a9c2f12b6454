package soorj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.soorj.dev/internal/test"

	"github.com/stretchr/testify/assert"
)

func TestLexer(t *testing.T) {
	cases := []struct {
		data   string
		fail   bool
		expect []Token
	}{
		{
			"գործ ողջունել(անուն) {}",
			false,
			[]Token{
				{TokenFunc, "գործ", 1},
				{TokenIdentifier, "ողջունել", 1},
				{TokenOpenParentheses, "(", 1},
				{TokenIdentifier, "անուն", 1},
				{TokenCloseParentheses, ")", 1},
				{TokenOpenCurly, "{", 1},
				{TokenCloseCurly, "}", 1},
			},
		},
		{
			"ա = 10",
			false,
			[]Token{
				{TokenIdentifier, "ա", 1},
				{TokenAssign, "=", 1},
				{TokenNumber, "10", 1},
			},
		},
		{
			"3.14 + 2",
			false,
			[]Token{
				{TokenNumber, "3.14", 1},
				{TokenPlus, "+", 1},
				{TokenNumber, "2", 1},
			},
		},
		{
			"եթե ա >= 10 { տուր այո } հպ { տուր ոչ }",
			false,
			[]Token{
				{TokenIf, "եթե", 1},
				{TokenIdentifier, "ա", 1},
				{TokenGreaterEqual, ">=", 1},
				{TokenNumber, "10", 1},
				{TokenOpenCurly, "{", 1},
				{TokenReturn, "տուր", 1},
				{TokenTrue, "այո", 1},
				{TokenCloseCurly, "}", 1},
				{TokenElse, "հպ", 1},
				{TokenOpenCurly, "{", 1},
				{TokenReturn, "տուր", 1},
				{TokenFalse, "ոչ", 1},
				{TokenCloseCurly, "}", 1},
			},
		},
		{
			"ա և բ կամ չի գ",
			false,
			[]Token{
				{TokenIdentifier, "ա", 1},
				{TokenAnd, "և", 1},
				{TokenIdentifier, "բ", 1},
				{TokenOr, "կամ", 1},
				{TokenNot, "չի", 1},
				{TokenIdentifier, "գ", 1},
			},
		},
		{
			"մինչև ի != հեչ { ի = ի % 2 }",
			false,
			[]Token{
				{TokenWhile, "մինչև", 1},
				{TokenIdentifier, "ի", 1},
				{TokenNotEquals, "!=", 1},
				{TokenNull, "հեչ", 1},
				{TokenOpenCurly, "{", 1},
				{TokenIdentifier, "ի", 1},
				{TokenAssign, "=", 1},
				{TokenIdentifier, "ի", 1},
				{TokenPercent, "%", 1},
				{TokenNumber, "2", 1},
				{TokenCloseCurly, "}", 1},
			},
		},
		{
			"# this is a comment\n",
			false,
			[]Token{
				{TokenLineComment, " this is a comment", 1},
				{TokenNewline, "\n", 1},
			},
		},
		{
			"ա = 1\n# comment\nբ = 2",
			false,
			[]Token{
				{TokenIdentifier, "ա", 1},
				{TokenAssign, "=", 1},
				{TokenNumber, "1", 1},
				{TokenNewline, "\n", 1},
				{TokenLineComment, " comment", 2},
				{TokenNewline, "\n", 2},
				{TokenIdentifier, "բ", 3},
				{TokenAssign, "=", 3},
				{TokenNumber, "2", 3},
			},
		},
		{
			`"երկու բառ"`,
			false,
			[]Token{
				{TokenString, "երկու բառ", 1},
			},
		},
		{
			"'single quotes'",
			false,
			[]Token{
				{TokenString, "single quotes", 1},
			},
		},
		{
			`"a\n\t\\\"b"`,
			false,
			[]Token{
				{TokenString, "a\n\t\\\"b", 1},
			},
		},
		{
			`"a 'quoted' word"`,
			false,
			[]Token{
				{TokenString, "a 'quoted' word", 1},
			},
		},
		{
			`""`,
			false,
			[]Token{
				{TokenString, "", 1},
			},
		},
		{
			"թիվ1 = 5; թիվ2 = 6",
			false,
			[]Token{
				{TokenIdentifier, "թիվ1", 1},
				{TokenAssign, "=", 1},
				{TokenNumber, "5", 1},
				{TokenSemicolon, ";", 1},
				{TokenIdentifier, "թիվ2", 1},
				{TokenAssign, "=", 1},
				{TokenNumber, "6", 1},
			},
		},
		{
			"\"unclosed string",
			true,
			nil,
		},
		{
			"@",
			true,
			nil,
		},
		{
			"ա ! բ",
			true,
			nil,
		},
	}

	for _, c := range cases {
		r := strings.NewReader(c.data)
		l := NewLexerFromReader(r)

		toks, err := l.RunBlocking()
		if c.fail {
			assert.Error(t, err)
		}

		assert.Equal(t, c.expect, toks)
	}
}

func TestLexerFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.srj")
	err := os.WriteFile(path, []byte("ա = 1"), 0o644)
	assert.NoError(t, err)

	l, err := NewLexer(path)
	assert.NoError(t, err)
	assert.Equal(t, path, l.GetFilename())

	toks, err := l.RunBlocking()
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		{TokenIdentifier, "ա", 1},
		{TokenAssign, "=", 1},
		{TokenNumber, "1", 1},
	}, toks)
}

func TestLexerErrorLine(t *testing.T) {
	l := NewLexerFromReader(strings.NewReader("ա = 1\nբ = @"))

	_, err := l.RunBlocking()
	assert.Error(t, err)

	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Line)
}

// Use a package-level variable to avoid compiler optimisation
var benchResult []Token

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		data := test.GetRandomTokens(size)
		r := strings.NewReader(data)
		l := NewLexerFromReader(r)

		var err error
		b.StartTimer()

		benchResult, err = l.RunBlocking()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer100(b *testing.B) {
	benchmarkLexer(100, b)
}

func BenchmarkLexer1000(b *testing.B) {
	benchmarkLexer(1000, b)
}

func BenchmarkLexer10000(b *testing.B) {
	benchmarkLexer(10000, b)
}

func BenchmarkLexer100000(b *testing.B) {
	benchmarkLexer(100000, b)
}

func BenchmarkLexer1000000(b *testing.B) {
	benchmarkLexer(1000000, b)
}
