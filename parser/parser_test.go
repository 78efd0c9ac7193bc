package parser

import (
	"testing"

	"covenant/ast"
	"covenant/value"
)

func TestParseInputDeclaration(t *testing.T) {
	nodes, err := ParseSource("given parameters $a, $b")
	if err != nil {
		t.Fatalf("ParseSource error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	decl, ok := nodes[0].(ast.InputDeclaration)
	if !ok {
		t.Fatalf("expected InputDeclaration, got %T", nodes[0])
	}
	if len(decl.Names) != 2 || decl.Names[0] != "a" || decl.Names[1] != "b" {
		t.Errorf("names = %v, want [a b]", decl.Names)
	}
}

func TestParseDefinitionWithList(t *testing.T) {
	nodes, err := ParseSource(`define $trusted as ["Rick Astley", "bob"]`)
	if err != nil {
		t.Fatalf("ParseSource error: %v", err)
	}
	def, ok := nodes[0].(ast.Definition)
	if !ok {
		t.Fatalf("expected Definition, got %T", nodes[0])
	}
	if def.Name != "trusted" {
		t.Errorf("name = %q, want trusted", def.Name)
	}
	list, ok := def.Value.(value.List)
	if !ok || len(list) != 2 {
		t.Fatalf("value = %v, want a 2-element list", def.Value)
	}
}

func TestParseHappyPathClause(t *testing.T) {
	nodes, err := ParseSource(`
given parameters $a,$b
$a must be less than or equal to 123 and $b must be equal to "hello world"
`)
	if err != nil {
		t.Fatalf("ParseSource error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	clause, ok := nodes[1].(ast.Clause)
	if !ok {
		t.Fatalf("expected Clause, got %T", nodes[1])
	}
	a := clause.Assertion
	if a.Comparator != ast.LessThanOrEqual {
		t.Errorf("comparator = %v, want LessThanOrEqual", a.Comparator)
	}
	if a.Conjoined == nil || a.Conjoined.Conjunctive != ast.And {
		t.Fatalf("expected an And-joined next assertion")
	}
	if a.Conjoined.Next.Comparator != ast.Equal {
		t.Errorf("joined comparator = %v, want Equal", a.Conjoined.Next.Comparator)
	}
}

func TestParseFlippedSubjects(t *testing.T) {
	nodes, err := ParseSource(`given parameters $a,$b
$a must be less than or equal to 123 and "hello world" must not be equal to $b`)
	if err != nil {
		t.Fatalf("ParseSource error: %v", err)
	}
	clause := nodes[1].(ast.Clause)
	next := clause.Assertion.Conjoined.Next
	if next.Imperative != ast.MustNotBe {
		t.Errorf("imperative = %v, want MustNotBe", next.Imperative)
	}
	if next.LHS.IsIdentifier {
		t.Errorf("expected a literal LHS on the flipped clause")
	}
}

func TestParseRejectsLiteralListSubject(t *testing.T) {
	_, err := ParseSource(`$user must be one of ["a", "b"]`)
	if err == nil {
		t.Errorf("expected a syntax error for an inline list subject")
	}
}

func TestParseRejectsHeterogeneousList(t *testing.T) {
	_, err := ParseSource(`define $mixed as [1, "two"]`)
	if err == nil {
		t.Errorf("expected a syntax error for a heterogeneous list")
	}
}

func TestParseMustNotBeOneOf(t *testing.T) {
	nodes, err := ParseSource(`given parameters $user
define $trusted as ["Rick Astley", "bob"]
$user must not be one of $trusted`)
	if err != nil {
		t.Fatalf("ParseSource error: %v", err)
	}
	clause := nodes[2].(ast.Clause)
	if clause.Assertion.Imperative != ast.MustNotBe {
		t.Errorf("imperative = %v, want MustNotBe", clause.Assertion.Imperative)
	}
	if clause.Assertion.Comparator != ast.OneOf {
		t.Errorf("comparator = %v, want OneOf", clause.Assertion.Comparator)
	}
	if !clause.Assertion.RHS.IsIdentifier || clause.Assertion.RHS.Identifier != "trusted" {
		t.Errorf("rhs = %+v, want identifier trusted", clause.Assertion.RHS)
	}
}

func TestParseSyntaxErrorReportsPosition(t *testing.T) {
	_, err := ParseSource(`given parameters`)
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
	if _, ok := err.(SyntaxError); !ok {
		t.Errorf("expected a SyntaxError, got %T (%v)", err, err)
	}
}
