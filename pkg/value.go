package soorj

import (
	"fmt"
	"strconv"
)

type ValueTag int

const (
	NullValue ValueTag = iota
	BoolValue
	NumberValue
	StringValue
	FunctionValue
)

// Value is a tagged runtime value. Data holds bool, float64, string or
// *Function depending on the tag, and nil for null.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

var Null = Value{Tag: NullValue}

func Bool(b bool) Value {
	return Value{Tag: BoolValue, Data: b}
}

func Num(f float64) Value {
	return Value{Tag: NumberValue, Data: f}
}

func Str(s string) Value {
	return Value{Tag: StringValue, Data: s}
}

func FunVal(f *Function) Value {
	return Value{Tag: FunctionValue, Data: f}
}

// Truthy reports the value's boolean interpretation. Only null and false are
// falsy; zero and the empty string count as true.
func (v Value) Truthy() bool {
	switch v.Tag {
	case NullValue:
		return false
	case BoolValue:
		return v.Data.(bool)
	default:
		return true
	}
}

// Equals compares by tag first: values of different tags are never equal.
// Functions compare by identity.
func (v Value) Equals(w Value) bool {
	if v.Tag != w.Tag {
		return false
	}

	switch v.Tag {
	case NullValue:
		return true
	case BoolValue:
		return v.Data.(bool) == w.Data.(bool)
	case NumberValue:
		return v.Data.(float64) == w.Data.(float64)
	case StringValue:
		return v.Data.(string) == w.Data.(string)
	case FunctionValue:
		return v.Data.(*Function) == w.Data.(*Function)
	}

	return false
}

func (v Value) String() string {
	switch v.Tag {
	case NullValue:
		return "հեչ"
	case BoolValue:
		if v.Data.(bool) {
			return "այո"
		}

		return "ոչ"
	case NumberValue:
		return formatNumber(v.Data.(float64))
	case StringValue:
		return v.Data.(string)
	case FunctionValue:
		return v.Data.(*Function).String()
	}

	return "<?>"
}

// formatNumber renders a number in the shortest form that round-trips,
// marking whole numbers with a trailing ".0" so 8 prints as "8.0".
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, r := range s {
		if r != '-' && (r < '0' || r > '9') {
			return s
		}
	}

	return s + ".0"
}

// Function is a callable value. User functions carry a body and the scope
// captured at declaration; builtins carry a native implementation instead.
type Function struct {
	Name   string
	Params []string
	Body   *Block
	Env    *Env
	Native func(args []Value) (Value, error)
}

func (f *Function) String() string {
	if f.Native != nil {
		return fmt.Sprintf("<ներդրված գործ %s>", f.Name)
	}

	return fmt.Sprintf("<գործ %s>", f.Name)
}
