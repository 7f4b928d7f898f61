package merklize

import (
	"math/big"
	"strconv"
	"time"
)

//go:generate go tool stringer -type=ValueKind -trimprefix=Value

// ValueKind is the closed set of leaf value kinds.
type ValueKind int

const (
	ValueInvalid ValueKind = iota
	ValueBool
	ValueInt
	ValueString
	ValueTime
)

// Value is a typed leaf value. The zero Value is invalid.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	s    string
	t    time.Time
}

func BoolValue(b bool) Value        { return Value{kind: ValueBool, b: b} }
func IntValue(i int64) Value        { return Value{kind: ValueInt, i: i} }
func StringValue(s string) Value    { return Value{kind: ValueString, s: s} }
func TimeValue(t time.Time) Value   { return Value{kind: ValueTime, t: t.UTC()} }
func (v Value) Kind() ValueKind     { return v.kind }
func (v Value) IsValid() bool       { return v.kind > ValueInvalid && v.kind <= ValueTime }
func (v Value) Bool() (bool, bool)  { return v.b, v.kind == ValueBool }
func (v Value) Int() (int64, bool)  { return v.i, v.kind == ValueInt }
func (v Value) Str() (string, bool) { return v.s, v.kind == ValueString }

func (v Value) Time() (time.Time, bool) { return v.t, v.kind == ValueTime }

// Equal reports whether two values have the same kind and the same content.
// Instants compare by time.Time.Equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueBool:
		return v.b == o.b
	case ValueInt:
		return v.i == o.i
	case ValueString:
		return v.s == o.s
	case ValueTime:
		return v.t.Equal(o.t)
	default:
		return true
	}
}

// String renders the value's canonical lexical form. Instants are RFC 3339 in UTC.
func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		return strconv.FormatBool(v.b)
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueString:
		return v.s
	case ValueTime:
		return v.t.UTC().Format(time.RFC3339Nano)
	default:
		return ""
	}
}

// Hash reduces the value to a field element:
// booleans to 0/1, integers to themselves (negatives wrap modulo the prime),
// strings to HashBytes of their UTF-8 bytes, instants to Unix nanoseconds.
func (v Value) Hash(h Hasher) (*big.Int, error) {
	switch v.kind {
	case ValueBool:
		if v.b {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case ValueInt:
		return fieldInt(h, v.i), nil
	case ValueString:
		return h.HashBytes([]byte(v.s))
	case ValueTime:
		return fieldBig(h, unixNano(v.t)), nil
	default:
		return nil, newError(KindInvalidArgument, ruleValueKind, "unsupported value kind "+v.kind.String())
	}
}

func fieldInt(h Hasher, i int64) *big.Int {
	return fieldBig(h, big.NewInt(i))
}

func fieldBig(h Hasher, n *big.Int) *big.Int {
	if n.Sign() >= 0 {
		return n
	}
	return n.Add(n, h.Prime())
}

var nanosPerSecond = big.NewInt(int64(time.Second))

// unixNano is t.UnixNano without the int64 range limit (years 1678 to 2262).
func unixNano(t time.Time) *big.Int {
	n := new(big.Int).Mul(big.NewInt(t.Unix()), nanosPerSecond)
	return n.Add(n, big.NewInt(int64(t.Nanosecond())))
}
