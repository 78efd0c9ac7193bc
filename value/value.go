// Package value implements the covenant predicate language's primitive
// value model: the sum type shared by the data table, the compiler and
// the interpreter, plus its wire encoding.
package value

import "fmt"

// Kind tags the concrete shape of a Value.
type Kind uint8

const (
	KindStringLike Kind = 0
	KindNumeric    Kind = 1
	KindList       Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindStringLike:
		return "StringLike"
	case KindNumeric:
		return "Numeric"
	case KindList:
		return "List"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is the closed sum type of everything that can sit in the data
// table or flow through the input table: Numeric, StringLike and List.
type Value interface {
	Kind() Kind
	fmt.Stringer
}

// Numeric is an unsigned 64-bit integer.
type Numeric uint64

func (Numeric) Kind() Kind { return KindNumeric }
func (n Numeric) String() string {
	return fmt.Sprintf("%d", uint64(n))
}

// StringLike is an opaque byte string no longer than 255 bytes. It is a
// named string (not []byte) so that it marshals to plain JSON text
// rather than base64.
type StringLike string

func (StringLike) Kind() Kind { return KindStringLike }
func (s StringLike) String() string {
	return fmt.Sprintf("%q", string(s))
}

// MaxStringLikeLen is the largest StringLike payload the wire format can
// address with a single length byte.
const MaxStringLikeLen = 255

// List is an ordered sequence of primitive values. Elements must be
// Numeric or StringLike; a List may not contain another List.
type List []Value

func (List) Kind() Kind { return KindList }
func (l List) String() string {
	out := "["
	for i, v := range l {
		if i > 0 {
			out += ", "
		}
		out += v.String()
	}
	return out + "]"
}

// Equal reports whether a and b are the same kind and carry the same
// payload. Lists compare element-wise in order.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Numeric:
		return av == b.(Numeric)
	case StringLike:
		return av == b.(StringLike)
	case List:
		bv := b.(List)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Contains reports whether needle appears in list under value equality.
func Contains(list List, needle Value) bool {
	for _, elem := range list {
		if Equal(elem, needle) {
			return true
		}
	}
	return false
}

// IsPrimitive reports whether v may be a List element or a comparator
// operand other than the right-hand side of membership: Numeric or
// StringLike, never List.
func IsPrimitive(v Value) bool {
	switch v.(type) {
	case Numeric, StringLike:
		return true
	default:
		return false
	}
}
