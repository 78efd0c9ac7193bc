package ast

import "covenant/value"

// InputDeclaration is the "given parameters $a, $b, ..." line: the
// ordered sequence of runtime parameter names a contract accepts.
type InputDeclaration struct {
	Names []string
}

func (InputDeclaration) node() {}

// Definition is a "define $name as <literal>" line: a named constant
// folded into the data table. Value may be a List.
type Definition struct {
	Name  string
	Value value.Value
}

func (Definition) node() {}

// Clause wraps a top-level assertion (possibly a chain of them joined
// by and/or).
type Clause struct {
	Assertion Assertion
}

func (Clause) node() {}
