package value

import "fmt"

// ReverseByte flips a byte end-for-end: bit 7 becomes bit 0, bit 6
// becomes bit 1, and so on. Every type-id and length byte, and every
// byte of a Numeric payload, passes through this before it is written,
// and again after it is read, to interoperate with the bit-reversed
// transport dialect this format was built against. StringLike payload
// bytes are written and read as-is.
func ReverseByte(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// DecodeError reports a malformed value encoding. The Reason string is
// bubbled up by callers (the data table and contract decoders) as part
// of a MalformedDataTable error.
type DecodeError struct {
	Reason string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("malformed value encoding: %s", e.Reason)
}

// Encode appends the wire encoding of v to buf and returns the
// extended slice. It panics if v violates an encoding invariant a
// well-formed compiler or decoder should never produce (a StringLike
// longer than 255 bytes, or a List containing a non-primitive
// element) — these are internal-consistency guards, not a normal
// error path.
func Encode(v Value, buf []byte) []byte {
	switch tv := v.(type) {
	case Numeric:
		buf = append(buf, ReverseByte(byte(KindNumeric)), ReverseByte(8))
		n := uint64(tv)
		for i := 0; i < 8; i++ {
			buf = append(buf, ReverseByte(byte(n>>(8*i))))
		}
		return buf
	case StringLike:
		if len(tv) > MaxStringLikeLen {
			panic(fmt.Sprintf("value: StringLike of %d bytes exceeds wire limit of %d", len(tv), MaxStringLikeLen))
		}
		buf = append(buf, ReverseByte(byte(KindStringLike)), ReverseByte(byte(len(tv))))
		buf = append(buf, tv...)
		return buf
	case List:
		payload := make([]byte, 0, len(tv)*2)
		for _, elem := range tv {
			if !IsPrimitive(elem) {
				panic("value: List element must be Numeric or StringLike")
			}
			payload = Encode(elem, payload)
		}
		if len(payload) > 255 {
			panic(fmt.Sprintf("value: List payload of %d bytes exceeds wire limit of 255", len(payload)))
		}
		buf = append(buf, ReverseByte(byte(KindList)), ReverseByte(byte(len(payload))))
		buf = append(buf, payload...)
		return buf
	default:
		panic(fmt.Sprintf("value: unknown Value implementation %T", v))
	}
}

// Decode reads a single value from the front of data and returns it
// along with the number of bytes consumed.
func Decode(data []byte) (Value, int, error) {
	if len(data) < 1 {
		return nil, 0, DecodeError{Reason: "missing type id byte"}
	}
	kind := Kind(ReverseByte(data[0]))
	if len(data) < 2 {
		return nil, 0, DecodeError{Reason: "missing length byte"}
	}
	length := int(ReverseByte(data[1]))

	switch kind {
	case KindNumeric:
		if length != 8 {
			return nil, 0, DecodeError{Reason: fmt.Sprintf("numeric length %d != 8", length)}
		}
		if len(data) < 2+8 {
			return nil, 0, DecodeError{Reason: "length exceeds remaining buffer"}
		}
		var n uint64
		for i := 0; i < 8; i++ {
			n |= uint64(ReverseByte(data[2+i])) << (8 * i)
		}
		return Numeric(n), 2 + 8, nil

	case KindStringLike:
		if len(data) < 2+length {
			return nil, 0, DecodeError{Reason: "length exceeds remaining buffer"}
		}
		return StringLike(data[2 : 2+length]), 2 + length, nil

	case KindList:
		if len(data) < 2+length {
			return nil, 0, DecodeError{Reason: "length exceeds remaining buffer"}
		}
		payload := data[2 : 2+length]
		var elems List
		consumed := 0
		for consumed < length {
			elem, n, err := Decode(payload[consumed:])
			if err != nil {
				return nil, 0, err
			}
			if !IsPrimitive(elem) {
				return nil, 0, DecodeError{Reason: "list length accounting overflow"}
			}
			elems = append(elems, elem)
			consumed += n
		}
		if consumed != length {
			return nil, 0, DecodeError{Reason: "list length accounting overflow"}
		}
		return elems, 2 + length, nil

	default:
		return nil, 0, DecodeError{Reason: fmt.Sprintf("unsupported type id %d", byte(kind))}
	}
}
