// Package compiler lowers a parsed AST into a Contract: bit-packed
// bytecode plus a data table, enforcing the language's semantic rules
// and performing the opcode-level rewrites (imperative negation
// folding, operand flipping) needed to keep the runtime comparator
// set normalized to EQ/GT/GTE/IN.
package compiler

import (
	"covenant/ast"
	"covenant/codec"
	"covenant/contract"
	"covenant/opcode"
	"covenant/value"
)

type loadSource int

const (
	sourceInput loadSource = iota
	sourceDataTable
)

type subjectSource struct {
	source loadSource
	index  uint8
}

// Compiler performs a single pass over a parsed program, maintaining
// the two identifier → index mappings (inputs and user constants)
// that every subject resolves through, both populated in source
// order.
type Compiler struct {
	dataTable  codec.DataTable
	bytecode   []byte
	inputIndex map[string]uint8
	userIndex  map[string]uint8
}

// New creates an empty Compiler.
func New() *Compiler {
	return &Compiler{
		inputIndex: make(map[string]uint8),
		userIndex:  make(map[string]uint8),
	}
}

// Compile lowers a complete parsed program into a Contract.
func Compile(nodes []ast.Node) (contract.Contract, error) {
	c := New()
	for _, node := range nodes {
		if err := c.compileNode(node); err != nil {
			return contract.Contract{}, err
		}
	}
	return contract.Contract{DataTable: c.dataTable, Bytecode: c.bytecode}, nil
}

func (c *Compiler) compileNode(node ast.Node) error {
	switch n := node.(type) {
	case ast.InputDeclaration:
		return c.compileInputDeclaration(n)
	case ast.Definition:
		return c.compileDefinition(n)
	case ast.Clause:
		return c.compileAssertion(n.Assertion)
	default:
		return nil
	}
}

func (c *Compiler) compileInputDeclaration(decl ast.InputDeclaration) error {
	if len(c.inputIndex)+len(decl.Names) > codec.MaxDataTableEntries {
		return ErrTooManyInputs
	}
	for _, name := range decl.Names {
		c.inputIndex[name] = uint8(len(c.inputIndex))
	}
	return nil
}

func (c *Compiler) compileDefinition(def ast.Definition) error {
	if _, collides := c.inputIndex[def.Name]; collides {
		return RedeclaredError{Name: def.Name}
	}
	if _, collides := c.userIndex[def.Name]; collides {
		return RedeclaredError{Name: def.Name}
	}
	if list, ok := def.Value.(value.List); ok {
		for _, elem := range list {
			if !value.IsPrimitive(elem) {
				return ErrInvalidListElement
			}
		}
	}
	if len(c.dataTable) >= codec.MaxDataTableEntries {
		return ErrDataTableFull
	}
	c.dataTable = append(c.dataTable, def.Value)
	c.userIndex[def.Name] = uint8(len(c.dataTable) - 1)
	return nil
}

// compileSubject resolves a subject to its runtime source: an input
// table index, or a data-table index. A literal subject is always
// appended to the table as a new entry, even when an equal value is
// already there.
func (c *Compiler) compileSubject(s ast.Subject) (subjectSource, error) {
	if s.IsIdentifier {
		if idx, ok := c.inputIndex[s.Identifier]; ok {
			return subjectSource{source: sourceInput, index: idx}, nil
		}
		if idx, ok := c.userIndex[s.Identifier]; ok {
			return subjectSource{source: sourceDataTable, index: idx}, nil
		}
		return subjectSource{}, UndeclaredVarError{Name: s.Identifier}
	}

	if _, isList := s.Literal.(value.List); isList {
		// The grammar's own subject production never admits a bare
		// list literal (see parser.subject), but a hand-assembled AST
		// could still carry one.
		return subjectSource{}, ErrInvalidListElement
	}

	if len(c.dataTable) >= codec.MaxDataTableEntries {
		return subjectSource{}, ErrDataTableFull
	}
	c.dataTable = append(c.dataTable, s.Literal)
	return subjectSource{source: sourceDataTable, index: uint8(len(c.dataTable) - 1)}, nil
}

// compileComparator maps an AST comparator and imperative to the
// runtime (op, invert) pair. LT and LTE are compile-time sugar for an
// inverted GTE/GT; MustNotBe toggles invert on top of that.
func compileComparator(cmp ast.Comparator, imperative ast.Imperative) (opcode.ComparatorOp, bool) {
	var op opcode.ComparatorOp
	var invert bool

	switch cmp {
	case ast.Equal:
		op, invert = opcode.OpEqual, false
	case ast.GreaterThan:
		op, invert = opcode.OpGreaterThan, false
	case ast.GreaterThanOrEqual:
		op, invert = opcode.OpGreaterThanOrEqual, false
	case ast.LessThan:
		op, invert = opcode.OpGreaterThanOrEqual, true
	case ast.LessThanOrEqual:
		op, invert = opcode.OpGreaterThan, true
	case ast.OneOf:
		op, invert = opcode.OpIn, false
	}

	if imperative == ast.MustNotBe {
		invert = !invert
	}
	return op, invert
}

// flipComparator remaps a comparator for swapped operand order: EQ
// and IN are symmetric and pass through unchanged, while GT and GTE
// swap with their invert flag toggled.
func flipComparator(op opcode.ComparatorOp, invert bool) (opcode.ComparatorOp, bool) {
	switch op {
	case opcode.OpGreaterThan:
		return opcode.OpGreaterThanOrEqual, !invert
	case opcode.OpGreaterThanOrEqual:
		return opcode.OpGreaterThan, !invert
	default:
		return op, invert
	}
}

func conjunctionOp(conj ast.Conjunctive) opcode.ConjunctionOp {
	if conj == ast.Or {
		return opcode.OpOr
	}
	return opcode.OpAnd
}

func (c *Compiler) compileAssertion(a ast.Assertion) error {
	lhs, err := c.compileSubject(a.LHS)
	if err != nil {
		return err
	}
	rhs, err := c.compileSubject(a.RHS)
	if err != nil {
		return err
	}
	if lhs.source == sourceDataTable && rhs.source == sourceDataTable {
		return ErrInvalidCompare
	}

	op, invert := compileComparator(a.Comparator, a.Imperative)

	var load opcode.LoadMode
	lhsIdx, rhsIdx := lhs.index, rhs.index

	switch {
	case lhs.source == sourceInput && rhs.source == sourceInput:
		load = opcode.LoadInputVsInput
	case lhs.source == sourceInput && rhs.source == sourceDataTable:
		load = opcode.LoadInputVsUser
	case lhs.source == sourceDataTable && rhs.source == sourceInput:
		load = opcode.LoadInputVsUser
		lhsIdx, rhsIdx = rhs.index, lhs.index
		op, invert = flipComparator(op, invert)
	}

	instr := opcode.Comparator(load, op, invert)
	idx := opcode.Indices{LHS: lhsIdx, RHS: rhsIdx}
	c.bytecode = append(c.bytecode, instr.Encode(), idx.Encode())

	if a.Conjoined != nil {
		conj := opcode.Conjunction(conjunctionOp(a.Conjoined.Conjunctive), false)
		c.bytecode = append(c.bytecode, conj.Encode())
		return c.compileAssertion(*a.Conjoined.Next)
	}

	return nil
}
