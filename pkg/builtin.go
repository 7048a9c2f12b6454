package soorj

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// defineBuiltins installs the host functions in the root scope.
func defineBuiltins(env *Env, out io.Writer) {
	defineBuiltinFunc(env, "գրէ", builtinPrint(out))
	defineBuiltinFunc(env, "թիվ", builtinToNumber)
	defineBuiltinFunc(env, "բառ", builtinToString)
}

func defineBuiltinFunc(env *Env, name string, impl func([]Value) (Value, error)) {
	env.Define(name, FunVal(&Function{
		Name:   name,
		Native: impl,
	}))
}

// գրէ writes its arguments joined by single spaces as one line.
func builtinPrint(out io.Writer) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.String()
		}

		fmt.Fprintln(out, strings.Join(parts, " "))
		return Null, nil
	}
}

// թիվ converts a number or a numeric string to a number.
func builtinToNumber(args []Value) (Value, error) {
	if len(args) != 1 {
		return Null, &ArityError{Name: "թիվ", Want: 1, Got: len(args)}
	}

	switch arg := args[0]; arg.Tag {
	case NumberValue:
		return arg, nil
	case StringValue:
		s := arg.Data.(string)
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Null, &ValueError{Msg: fmt.Sprintf("cannot convert %q to a number", s)}
		}

		return Num(f), nil
	default:
		return Null, &ValueError{Msg: fmt.Sprintf("cannot convert %s to a number", arg)}
	}
}

// բառ renders any value as its canonical string form.
func builtinToString(args []Value) (Value, error) {
	if len(args) != 1 {
		return Null, &ArityError{Name: "բառ", Want: 1, Got: len(args)}
	}

	return Str(args[0].String()), nil
}
