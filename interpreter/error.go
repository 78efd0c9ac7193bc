package interpreter

import "fmt"

// TypeMismatchError is raised when a comparator's two operands are
// different, incompatible value kinds (Numeric vs StringLike).
type TypeMismatchError struct {
	LHSKind fmt.Stringer
	RHSKind fmt.Stringer
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("💥 type mismatch: cannot compare %s against %s", e.LHSKind, e.RHSKind)
}

// BadTypeOperationError is raised when both operands share a kind, or
// a kind/list pairing is otherwise valid, but the requested comparator
// makes no sense for it (e.g. StringLike GreaterThan StringLike).
type BadTypeOperationError struct {
	Op fmt.Stringer
}

func (e BadTypeOperationError) Error() string {
	return fmt.Sprintf("💥 bad type operation: %s is not defined for these operand kinds", e.Op)
}

// UnexpectedEOIError is raised when the bytecode stream ends in a state
// that cannot be a well-formed program's end (an incomplete operation).
type UnexpectedEOIError struct {
	Reason string
}

func (e UnexpectedEOIError) Error() string {
	return fmt.Sprintf("💥 unexpected end of instructions: %s", e.Reason)
}

// UnexpectedOpCodeError is raised when the current state forbids the
// instruction kind found next (e.g. two conjunctions in a row).
type UnexpectedOpCodeError struct {
	Byte byte
}

func (e UnexpectedOpCodeError) Error() string {
	return fmt.Sprintf("💥 unexpected op code %08b for the current state", e.Byte)
}

// InvalidOpCodeError is raised when an instruction byte does not decode
// to any known opcode.
type InvalidOpCodeError struct {
	Byte byte
}

func (e InvalidOpCodeError) Error() string {
	return fmt.Sprintf("💥 invalid op code %08b", e.Byte)
}

// MissingIndexError is raised when a comparator instruction addresses
// an input or data-table slot that doesn't exist.
type MissingIndexError struct {
	Index uint8
}

func (e MissingIndexError) Error() string {
	return fmt.Sprintf("💥 missing index: no value at slot %d", e.Index)
}
