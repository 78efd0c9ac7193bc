package parser

import (
	"covenant/ast"
	"covenant/token"
)

// inputDeclaration parses "given parameters $a, $b, ...".
func (p *Parser) inputDeclaration() (ast.Node, error) {
	if _, err := p.consume(token.GIVEN, "expected 'given'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.PARAMETERS, "expected 'parameters' after 'given'"); err != nil {
		return nil, err
	}

	first, err := p.consume(token.IDENT, "expected a parameter name after 'parameters'")
	if err != nil {
		return nil, err
	}
	names := []string{first.Literal.(string)}

	for p.isMatch(token.COMMA) {
		name, err := p.consume(token.IDENT, "expected a parameter name after ','")
		if err != nil {
			return nil, err
		}
		names = append(names, name.Literal.(string))
	}

	return ast.InputDeclaration{Names: names}, nil
}

// definition parses "define $name as <literal>".
func (p *Parser) definition() (ast.Node, error) {
	if _, err := p.consume(token.DEFINE, "expected 'define'"); err != nil {
		return nil, err
	}
	name, err := p.consume(token.IDENT, "expected a parameter name after 'define'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.AS, "expected 'as' after definition name"); err != nil {
		return nil, err
	}
	val, err := p.literal()
	if err != nil {
		return nil, err
	}
	return ast.Definition{Name: name.Literal.(string), Value: val}, nil
}
