// Package contract ties the binary codec, the opcode model and the
// bytecode format together into the single artifact that travels
// between a compiler and an interpreter: a data table plus a bytecode
// stream, in a versioned wire format.
package contract

import (
	"errors"
	"fmt"

	"covenant/codec"
	"covenant/value"
)

// Version is the only wire format this package understands.
const Version = 0

// ErrTooShort is returned when a buffer is too small to hold even the
// version and data-table-count bytes.
var ErrTooShort = errors.New("contract: buffer too short")

// ErrUnsupportedVersion is returned when the version byte is nonzero.
var ErrUnsupportedVersion = errors.New("contract: unsupported version")

// Contract is the compiled, wire-transportable result of compiling a
// source program: its embedded constants and its bytecode.
type Contract struct {
	DataTable codec.DataTable
	Bytecode  []byte
}

// Encode serializes c to its wire form. It never fails: a Contract
// produced by the compiler (or by a prior successful Decode) always
// satisfies the data-table size invariant that codec.DataTable.Encode
// depends on.
func (c Contract) Encode() []byte {
	buf := make([]byte, 0, 2+len(c.Bytecode)+len(c.DataTable)*4)
	buf = append(buf, value.ReverseByte(Version))
	buf = c.DataTable.Encode(buf)
	buf = append(buf, c.Bytecode...)
	return buf
}

// Decode parses the wire form produced by Encode.
func Decode(data []byte) (Contract, error) {
	if len(data) < 2 {
		return Contract{}, ErrTooShort
	}
	if value.ReverseByte(data[0]) != Version {
		return Contract{}, ErrUnsupportedVersion
	}

	table, n, err := codec.DecodeDataTable(data[1:])
	if err != nil {
		return Contract{}, err
	}

	return Contract{
		DataTable: table,
		Bytecode:  append([]byte(nil), data[1+n:]...),
	}, nil
}

// Disassemble produces a human-readable listing of the contract: one
// line per data-table entry, then one line per decoded instruction.
// It is a debugging aid, not part of the compile/encode/decode/
// interpret surface.
func (c Contract) Disassemble() (string, error) {
	out := "data table:\n"
	for i, v := range c.DataTable {
		out += fmt.Sprintf("  [%d] %s %s\n", i, v.Kind(), v)
	}
	out += "bytecode:\n"

	dis, err := disassembleBytecode(c.Bytecode)
	if err != nil {
		return out, err
	}
	out += dis
	return out, nil
}
