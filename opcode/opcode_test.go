package opcode

import "testing"

func TestComparatorRoundTrip(t *testing.T) {
	for _, load := range []LoadMode{LoadInputVsUser, LoadInputVsInput} {
		for _, cmp := range []ComparatorOp{OpEqual, OpGreaterThan, OpGreaterThanOrEqual, OpIn} {
			for _, invert := range []bool{false, true} {
				op := Comparator(load, cmp, invert)
				got, err := Decode(op.Encode())
				if err != nil {
					t.Fatalf("Decode(%08b) error: %v", op.Encode(), err)
				}
				if got != op {
					t.Errorf("round trip %+v got %+v", op, got)
				}
			}
		}
	}
}

func TestConjunctionRoundTrip(t *testing.T) {
	for _, conj := range []ConjunctionOp{OpAnd, OpOr, OpXor} {
		for _, invert := range []bool{false, true} {
			op := Conjunction(conj, invert)
			got, err := Decode(op.Encode())
			if err != nil {
				t.Fatalf("Decode(%08b) error: %v", op.Encode(), err)
			}
			if got != op {
				t.Errorf("round trip %+v got %+v", op, got)
			}
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	// comparator bits 2-0 = 4..7 are unassigned
	if _, err := Decode(0b00000100); err == nil {
		t.Errorf("expected error decoding unassigned comparator op")
	}
	// conjunction bits 3-0 = 3..15 are unassigned
	if _, err := Decode(0b00100011); err == nil {
		t.Errorf("expected error decoding unassigned conjunction op")
	}
}

func TestIndicesRoundTrip(t *testing.T) {
	for lhs := uint8(0); lhs < 16; lhs++ {
		for rhs := uint8(0); rhs < 16; rhs++ {
			idx := Indices{LHS: lhs, RHS: rhs}
			got := DecodeIndices(idx.Encode())
			if got != idx {
				t.Errorf("Indices round trip %+v got %+v", idx, got)
			}
		}
	}
}
