package fdon

import (
	"bytes"
	"fmt"
	"math"
)

// Kind represents the type of an FDON value.
type Kind uint8

const (
	Unknown Kind = iota
	Null
	Bool
	Number
	Timestamp
	String
	StringEsc
	Date
	Time
	Array
	Object
)

var kinds = []string{
	Unknown:   "unknown",
	Null:      "null",
	Bool:      "bool",
	Number:    "number",
	Timestamp: "timestamp",
	String:    "string",
	StringEsc: "escaped-string",
	Date:      "date",
	Time:      "time",
	Array:     "array",
	Object:    "object",
}

func (k Kind) String() string {
	return kinds[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k == Unknown {
		return nil, fmt.Errorf("cannot marshal 'unknown' value kind")
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(data []byte) error {
	s := string(data)
	for i, kstr := range kinds {
		if i > 0 && kstr == s {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown Value kind %q", s)
}

// Value holds one FDON value.
//
// String, Date and Time payloads are sub-slices of the minified buffer
// the value was parsed from; StringEsc payloads and array storage are
// owned by the parse arena. A parsed Value is read-only and must not
// outlive either the buffer or the arena.
type Value struct {
	kind Kind

	// float reports whether number holds float64 bits rather than an
	// int64. Meaningful only for Number and Timestamp.
	float bool

	// number holds the bool, int64 or float64 payload.
	number uint64

	// bytes holds the payload for the four textual kinds.
	bytes []byte

	arr []Value
	obj map[string]Value
}

func (v Value) Kind() Kind {
	return v.kind
}

// NullValue returns the null value.
func NullValue() Value {
	return Value{kind: Null}
}

// BoolValue returns a Value containing b.
func BoolValue(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{kind: Bool, number: n}
}

// IntValue returns a Number value holding the integer n.
func IntValue(n int64) Value {
	return Value{kind: Number, number: uint64(n)}
}

// FloatValue returns a Number value holding the float f.
func FloatValue(f float64) Value {
	return Value{kind: Number, float: true, number: math.Float64bits(f)}
}

// TimestampValue returns a Timestamp value holding the integer n.
func TimestampValue(n int64) Value {
	return Value{kind: Timestamp, number: uint64(n)}
}

// TimestampFloatValue returns a Timestamp value holding the float f.
func TimestampFloatValue(f float64) Value {
	return Value{kind: Timestamp, float: true, number: math.Float64bits(f)}
}

// StringValue returns a raw String value. It makes a copy of s, so the
// result does not reference any parse buffer.
func StringValue(s string) Value {
	return Value{kind: String, bytes: []byte(s)}
}

// EscapedStringValue returns a StringEsc value with its escape
// sequences already expanded.
func EscapedStringValue(s string) Value {
	return Value{kind: StringEsc, bytes: []byte(s)}
}

// DateValue returns a Date value.
func DateValue(s string) Value {
	return Value{kind: Date, bytes: []byte(s)}
}

// TimeValue returns a Time value.
func TimeValue(s string) Value {
	return Value{kind: Time, bytes: []byte(s)}
}

// ArrayValue returns an Array value holding elems. The slice is used
// directly, not copied.
func ArrayValue(elems ...Value) Value {
	return Value{kind: Array, arr: elems}
}

// ObjectValue returns an Object value holding entries. The map is used
// directly, not copied; a nil map yields an empty object.
func ObjectValue(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{kind: Object, obj: entries}
}

// IsFloat reports whether a Number or Timestamp value holds a float.
// It panics for other kinds.
func (v Value) IsFloat() bool {
	v.mustBeNumeric()
	return v.float
}

// IntV returns the integer payload of a Number or Timestamp value. It
// panics if the value is of another kind or holds a float.
func (v Value) IntV() int64 {
	v.mustBeNumeric()
	if v.float {
		panic(fmt.Errorf("value holds a float, not an integer"))
	}
	return int64(v.number)
}

// FloatV returns the float payload of a Number or Timestamp value. It
// panics if the value is of another kind or holds an integer.
func (v Value) FloatV() float64 {
	v.mustBeNumeric()
	if !v.float {
		panic(fmt.Errorf("value holds an integer, not a float"))
	}
	return math.Float64frombits(v.number)
}

// BoolV returns the value as a bool. It panics if v.Kind is not Bool.
func (v Value) BoolV() bool {
	v.mustBe(Bool)
	return v.number != 0
}

// StringV returns the payload of any of the four textual kinds as a
// string. It panics for non-textual kinds.
func (v Value) StringV() string {
	v.mustBeTextual()
	return string(v.bytes)
}

// BytesV returns the payload of any of the four textual kinds. The
// returned slice references the parse buffer (or arena storage);
// modifying it mutates the value.
func (v Value) BytesV() []byte {
	v.mustBeTextual()
	return v.bytes
}

// ArrayV returns the elements of an Array value. It panics if v.Kind
// is not Array.
func (v Value) ArrayV() []Value {
	v.mustBe(Array)
	return v.arr
}

// ObjectV returns the entries of an Object value. It panics if v.Kind
// is not Object.
func (v Value) ObjectV() map[string]Value {
	v.mustBe(Object)
	return v.obj
}

// Interface returns the value as an interface. Scalars map to nil,
// bool, int64, float64 and string; containers map to []interface{}
// and map[string]interface{}.
func (v Value) Interface() interface{} {
	switch v.kind {
	case Unknown, Null:
		return nil
	case Bool:
		return v.number != 0
	case Number, Timestamp:
		if v.float {
			return math.Float64frombits(v.number)
		}
		return int64(v.number)
	case String, StringEsc, Date, Time:
		return string(v.bytes)
	case Array:
		a := make([]interface{}, len(v.arr))
		for i, e := range v.arr {
			a[i] = e.Interface()
		}
		return a
	case Object:
		m := make(map[string]interface{}, len(v.obj))
		for k, e := range v.obj {
			m[k] = e.Interface()
		}
		return m
	}
	panic("unknown value kind")
}

// Equal reports whether v1 and v2 hold the same value. Numbers compare
// by kind and representation: an integer 1 and a float 1.0 are not
// equal.
func (v1 Value) Equal(v2 Value) bool {
	if v1.kind != v2.kind {
		return false
	}
	switch v1.kind {
	case Bool:
		return v1.number == v2.number
	case Number, Timestamp:
		return v1.float == v2.float && v1.number == v2.number
	case String, StringEsc, Date, Time:
		return bytes.Equal(v1.bytes, v2.bytes)
	case Array:
		if len(v1.arr) != len(v2.arr) {
			return false
		}
		for i := range v1.arr {
			if !v1.arr[i].Equal(v2.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v1.obj) != len(v2.obj) {
			return false
		}
		for k, e1 := range v1.obj {
			e2, ok := v2.obj[k]
			if !ok || !e1.Equal(e2) {
				return false
			}
		}
		return true
	}
	return true
}

// String returns a debug rendering of the value.
func (v Value) String() string {
	switch v.kind {
	case Unknown, Null:
		return "null"
	case Bool:
		if v.number != 0 {
			return "true"
		}
		return "false"
	case Number, Timestamp:
		if v.float {
			return fmt.Sprint(math.Float64frombits(v.number))
		}
		return fmt.Sprint(int64(v.number))
	case String, StringEsc, Date, Time:
		return fmt.Sprintf("%q", v.bytes)
	case Array:
		return fmt.Sprintf("array[%d]", len(v.arr))
	case Object:
		return fmt.Sprintf("object[%d]", len(v.obj))
	}
	panic("unknown value kind")
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Errorf("value has unexpected kind; got %v want %v", v.kind, k))
	}
}

func (v Value) mustBeNumeric() {
	if v.kind != Number && v.kind != Timestamp {
		panic(fmt.Errorf("value has unexpected kind; got %v want number or timestamp", v.kind))
	}
}

func (v Value) mustBeTextual() {
	switch v.kind {
	case String, StringEsc, Date, Time:
	default:
		panic(fmt.Errorf("value has unexpected kind; got %v want a textual kind", v.kind))
	}
}
