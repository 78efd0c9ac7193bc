package contract

import (
	"fmt"

	"covenant/opcode"
)

// disassembleBytecode walks the instruction stream without
// interpreting it, formatting each opcode and its operand byte (if
// any) for human inspection. It tolerates a stream that would fail at
// runtime (e.g. missing index byte) by reporting where it stopped
// rather than returning a runtime error type — disassembly is a
// best-effort debugging view, not an evaluation.
func disassembleBytecode(bytecode []byte) (string, error) {
	out := ""
	offset := 0
	for offset < len(bytecode) {
		op, err := opcode.Decode(bytecode[offset])
		if err != nil {
			return out, fmt.Errorf("at offset %d: %w", offset, err)
		}
		switch op.Kind {
		case opcode.KindComparator:
			if offset+1 >= len(bytecode) {
				return out, fmt.Errorf("at offset %d: comparator missing index byte", offset)
			}
			idx := opcode.DecodeIndices(bytecode[offset+1])
			out += fmt.Sprintf("  %04d  CMP  %-4s load=%-14s invert=%-5t lhs=%d rhs=%d\n",
				offset, op.Cmp, op.Load, op.Invert, idx.LHS, idx.RHS)
			offset += 2
		case opcode.KindConjunction:
			out += fmt.Sprintf("  %04d  CONJ %-4s invert=%-5t\n", offset, op.Conj, op.Invert)
			offset++
		}
	}
	return out, nil
}
