package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"covenant/ast"
)

const (
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// nodeToJSON converts a single AST node into a JSON-friendly value. A
// plain type switch replaces the teacher's Visitor dispatch: this
// grammar's node set is closed and small enough that compilation
// already gets by with a type switch (see compiler.Compile), and the
// printer follows the same shape.
func nodeToJSON(node ast.Node) any {
	switch n := node.(type) {
	case ast.InputDeclaration:
		return map[string]any{
			"type":  "InputDeclaration",
			"names": n.Names,
		}
	case ast.Definition:
		return map[string]any{
			"type":  "Definition",
			"name":  n.Name,
			"value": valueToJSON(n.Value),
		}
	case ast.Clause:
		return map[string]any{
			"type":      "Clause",
			"assertion": assertionToJSON(n.Assertion),
		}
	default:
		return map[string]any{"type": fmt.Sprintf("%T", node)}
	}
}

func assertionToJSON(a ast.Assertion) any {
	out := map[string]any{
		"lhs":        subjectToJSON(a.LHS),
		"imperative": a.Imperative.String(),
		"comparator": a.Comparator.String(),
		"rhs":        subjectToJSON(a.RHS),
	}
	if a.Conjoined != nil {
		out["conjunctive"] = a.Conjoined.Conjunctive.String()
		out["next"] = assertionToJSON(*a.Conjoined.Next)
	}
	return out
}

func subjectToJSON(s ast.Subject) any {
	if s.IsIdentifier {
		return map[string]any{"identifier": s.Identifier}
	}
	return map[string]any{"literal": valueToJSON(s.Literal)}
}

func valueToJSON(v any) any {
	// value.Value's String() is not used here, since it renders
	// StringLike with Go quoting; json.Marshal of the underlying
	// primitive types handles Numeric/StringLike/List directly since
	// they are named uint64/string/slice types.
	return v
}

// PrintAST converts the parsed nodes into a prettified JSON string.
func PrintAST(nodes []ast.Node) (string, error) {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeToJSON(n))
	}
	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}

	jsonStr := string(bytes)
	fmt.Println(colorYellow + "----- AST JSON -----")
	fmt.Println(colorYellow + jsonStr)
	fmt.Println(colorYellow + "-----" + colorReset)
	fmt.Println("")
	return jsonStr, nil
}

// WriteASTJSONToFile writes the prettified AST JSON to the given file path.
func WriteASTJSONToFile(nodes []ast.Node, path string) error {
	s, err := PrintAST(nodes)
	if err != nil {
		return err
	}
	fDescriptor, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating AST file: %s", err.Error())
	}
	defer fDescriptor.Close()

	if _, err := fDescriptor.Write([]byte(s)); err != nil {
		return fmt.Errorf("error writing AST to file: %s", err.Error())
	}
	return nil
}
