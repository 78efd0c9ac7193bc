// Package interpreter executes a compiled contract's bytecode against
// a concrete set of input values: a small Mealy state machine with no
// working memory beyond the current state and, while inside a
// conjunction, the truth value it is about to combine with.
package interpreter

import (
	"covenant/codec"
	"covenant/opcode"
	"covenant/value"
)

type stateKind int

const (
	stateInitial stateKind = iota
	stateAssertionTrue
	stateAssertionFalse
	stateConjunctive
	stateFailed
)

type machineState struct {
	kind       stateKind
	last       bool // meaningful only in stateConjunctive
	conjOp     opcode.ConjunctionOp
	conjInvert bool
}

func boolState(b bool) machineState {
	if b {
		return machineState{kind: stateAssertionTrue}
	}
	return machineState{kind: stateAssertionFalse}
}

// Interpret runs a contract's bytecode to completion against a set of
// runtime input values and the contract's own data table, returning
// the clause's final truth value.
func Interpret(inputs []value.Value, dataTable codec.DataTable, bytecode []byte) (bool, error) {
	st := machineState{kind: stateInitial}
	pos := 0

	for pos < len(bytecode) {
		op, err := opcode.Decode(bytecode[pos])
		if err != nil {
			return false, InvalidOpCodeError{Byte: bytecode[pos]}
		}

		switch op.Kind {
		case opcode.KindComparator:
			if pos+1 >= len(bytecode) {
				return false, UnexpectedEOIError{Reason: "comparator missing its index byte"}
			}
			idx := opcode.DecodeIndices(bytecode[pos+1])
			pos += 2

			switch st.kind {
			case stateAssertionFalse:
				// The next assertion has no joiner to reach it with:
				// the clause has already failed. This is Refused —
				// stop consuming the stream right here, however the
				// remaining bytes are shaped.
				st = machineState{kind: stateFailed}

			case stateInitial, stateAssertionTrue:
				result, err := evaluateComparator(op, idx, inputs, dataTable)
				if err != nil {
					return false, err
				}
				st = boolState(result)

			case stateConjunctive:
				rhsResult, err := evaluateComparator(op, idx, inputs, dataTable)
				if err != nil {
					return false, err
				}
				combined := combine(st.last, st.conjOp, rhsResult)
				if st.conjInvert {
					combined = !combined
				}
				st = boolState(combined)
			}

		case opcode.KindConjunction:
			instrPos := pos
			pos++
			switch st.kind {
			case stateAssertionTrue:
				st = machineState{kind: stateConjunctive, last: true, conjOp: op.Conj, conjInvert: op.Invert}
			case stateAssertionFalse:
				st = machineState{kind: stateConjunctive, last: false, conjOp: op.Conj, conjInvert: op.Invert}
			default:
				return false, UnexpectedOpCodeError{Byte: bytecode[instrPos]}
			}
		}

		if st.kind == stateFailed {
			// Refused: the driver breaks the loop right away and
			// applies the same terminal check below, never decoding
			// (let alone validating) another byte of the stream.
			break
		}
	}

	switch st.kind {
	case stateAssertionTrue:
		return true, nil
	case stateAssertionFalse, stateFailed:
		return false, nil
	default:
		return false, UnexpectedEOIError{Reason: "incomplete operation"}
	}
}

func combine(last bool, conj opcode.ConjunctionOp, rhs bool) bool {
	switch conj {
	case opcode.OpOr:
		return last || rhs
	case opcode.OpXor:
		return last != rhs
	default:
		return last && rhs
	}
}

func evaluateComparator(op opcode.Op, idx opcode.Indices, inputs []value.Value, dataTable codec.DataTable) (bool, error) {
	if int(idx.LHS) >= len(inputs) {
		return false, MissingIndexError{Index: idx.LHS}
	}
	lhs := inputs[idx.LHS]

	var rhs value.Value
	if op.Load == opcode.LoadInputVsInput {
		if int(idx.RHS) >= len(inputs) {
			return false, MissingIndexError{Index: idx.RHS}
		}
		rhs = inputs[idx.RHS]
	} else {
		if int(idx.RHS) >= len(dataTable) {
			return false, MissingIndexError{Index: idx.RHS}
		}
		rhs = dataTable[idx.RHS]
	}

	result, err := applyComparator(op.Cmp, lhs, rhs)
	if err != nil {
		return false, err
	}
	if op.Invert {
		result = !result
	}
	return result, nil
}

// applyComparator implements the type compatibility matrix: a List
// operand is only ever valid as the RHS of IN membership, and
// Numeric/StringLike never compare across kinds.
func applyComparator(op opcode.ComparatorOp, lhs, rhs value.Value) (bool, error) {
	switch l := lhs.(type) {
	case value.Numeric:
		switch r := rhs.(type) {
		case value.Numeric:
			switch op {
			case opcode.OpEqual:
				return l == r, nil
			case opcode.OpGreaterThan:
				return l > r, nil
			case opcode.OpGreaterThanOrEqual:
				return l >= r, nil
			default:
				return false, BadTypeOperationError{Op: op}
			}
		case value.StringLike:
			return false, TypeMismatchError{LHSKind: value.KindNumeric, RHSKind: value.KindStringLike}
		case value.List:
			if op != opcode.OpIn {
				return false, BadTypeOperationError{Op: op}
			}
			return value.Contains(r, l), nil
		}

	case value.StringLike:
		switch r := rhs.(type) {
		case value.Numeric:
			return false, TypeMismatchError{LHSKind: value.KindStringLike, RHSKind: value.KindNumeric}
		case value.StringLike:
			if op != opcode.OpEqual {
				return false, BadTypeOperationError{Op: op}
			}
			return l == r, nil
		case value.List:
			if op != opcode.OpIn {
				return false, BadTypeOperationError{Op: op}
			}
			return value.Contains(r, l), nil
		}

	case value.List:
		return false, BadTypeOperationError{Op: op}
	}

	return false, BadTypeOperationError{Op: op}
}
