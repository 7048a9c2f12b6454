package soorj

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinPrint(t *testing.T) {
	cases := []struct {
		args   []Value
		expect string
	}{
		{nil, "\n"},
		{[]Value{Str("բարեւ")}, "բարեւ\n"},
		{[]Value{Str("ա"), Num(8), Bool(true), Null}, "ա 8.0 այո հեչ\n"},
	}

	for _, c := range cases {
		var out bytes.Buffer

		v, err := builtinPrint(&out)(c.args)
		assert.NoError(t, err)
		assert.Equal(t, Null, v)
		assert.Equal(t, c.expect, out.String())
	}
}

func TestBuiltinToNumber(t *testing.T) {
	cases := []struct {
		arg    Value
		fail   bool
		expect Value
	}{
		{Num(5), false, Num(5)},
		{Str("42"), false, Num(42)},
		{Str("3.14"), false, Num(3.14)},
		{Str("  42  "), false, Num(42)},
		{Str("-2.5"), false, Num(-2.5)},
		{Str("բառ"), true, Null},
		{Str(""), true, Null},
		{Bool(true), true, Null},
		{Null, true, Null},
	}

	for _, c := range cases {
		v, err := builtinToNumber([]Value{c.arg})
		if c.fail {
			assert.Error(t, err)

			var valErr *ValueError
			assert.ErrorAs(t, err, &valErr)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, c.expect, v)
	}
}

func TestBuiltinToString(t *testing.T) {
	cases := []struct {
		arg    Value
		expect string
	}{
		{Num(8), "8.0"},
		{Num(2.5), "2.5"},
		{Bool(true), "այո"},
		{Bool(false), "ոչ"},
		{Null, "հեչ"},
		{Str("նույնը"), "նույնը"},
	}

	for _, c := range cases {
		v, err := builtinToString([]Value{c.arg})
		assert.NoError(t, err)
		assert.Equal(t, Str(c.expect), v)
	}
}

func TestConversionArity(t *testing.T) {
	for _, impl := range []func([]Value) (Value, error){builtinToNumber, builtinToString} {
		_, err := impl(nil)

		var arityErr *ArityError
		assert.ErrorAs(t, err, &arityErr)

		_, err = impl([]Value{Num(1), Num(2)})
		assert.ErrorAs(t, err, &arityErr)
	}
}
