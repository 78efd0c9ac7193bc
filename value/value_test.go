package value

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"numeric equal", Numeric(5), Numeric(5), true},
		{"numeric different", Numeric(5), Numeric(6), false},
		{"string equal", StringLike("hi"), StringLike("hi"), true},
		{"kind mismatch", Numeric(5), StringLike("5"), false},
		{"list equal", List{Numeric(1), StringLike("a")}, List{Numeric(1), StringLike("a")}, true},
		{"list different length", List{Numeric(1)}, List{Numeric(1), Numeric(2)}, false},
		{"list different order", List{Numeric(1), Numeric(2)}, List{Numeric(2), Numeric(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	trusted := List{StringLike("Rick Astley"), StringLike("bob")}
	if !Contains(trusted, StringLike("Rick Astley")) {
		t.Errorf("expected trusted to contain Rick Astley")
	}
	if Contains(trusted, StringLike("mallory")) {
		t.Errorf("expected trusted to not contain mallory")
	}
}

func TestReverseByte(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{0x00, 0x00},
		{0xFF, 0xFF},
		{0x01, 0x80},
		{0x80, 0x01},
		{0b00000001, 0b10000000},
		{0b00000010, 0b01000000},
	}
	for _, tt := range tests {
		if got := ReverseByte(tt.in); got != tt.want {
			t.Errorf("ReverseByte(%08b) = %08b, want %08b", tt.in, got, tt.want)
		}
	}
}

func TestEncodeNumeric(t *testing.T) {
	buf := Encode(Numeric(123), nil)
	want := []byte{1, 8, 123, 0, 0, 0, 0, 0, 0, 0}
	for i := range want {
		want[i] = ReverseByte(want[i])
	}
	if len(buf) != len(want) {
		t.Fatalf("Encode(123) length = %d, want %d", len(buf), len(want))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("Encode(123)[%d] = %08b, want %08b", i, buf[i], want[i])
		}
	}
}

func TestEncodeStringLikePayloadUnreversed(t *testing.T) {
	buf := Encode(StringLike("hi"), nil)
	if buf[0] != ReverseByte(0) {
		t.Errorf("type id byte = %08b, want reversed StringLike tag", buf[0])
	}
	if buf[1] != ReverseByte(2) {
		t.Errorf("length byte = %08b, want reversed 2", buf[1])
	}
	if string(buf[2:4]) != "hi" {
		t.Errorf("payload = %q, want raw unreversed %q", buf[2:4], "hi")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []Value{
		Numeric(0),
		Numeric(18446744073709551615),
		StringLike(""),
		StringLike("hello world"),
		List{Numeric(1), Numeric(2), Numeric(3)},
		List{StringLike("a"), StringLike("b")},
	}
	for _, v := range values {
		buf := Encode(v, nil)
		got, n, err := Decode(buf)
		if err != nil {
			t.Fatalf("Decode(%v) error: %v", v, err)
		}
		if n != len(buf) {
			t.Errorf("Decode(%v) consumed %d, want %d", v, n, len(buf))
		}
		if !Equal(got, v) {
			t.Errorf("round trip %v got %v", v, got)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"missing length byte", []byte{ReverseByte(1)}},
		{"numeric too short", []byte{ReverseByte(1), ReverseByte(8), 1, 2, 3}},
		{"string too short", []byte{ReverseByte(0), ReverseByte(5), 'h', 'i'}},
		{"unsupported type id", []byte{ReverseByte(99), ReverseByte(0)}},
		{"bad numeric length", []byte{ReverseByte(1), ReverseByte(4), 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decode(tt.data); err == nil {
				t.Errorf("Decode(%v) expected error, got none", tt.data)
			}
		})
	}
}
