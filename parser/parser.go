// Recursive descent parser
// https://en.wikipedia.org/wiki/Recursive_descent_parser

// Package parser turns a contract's token stream into its AST: an
// input declaration, zero or more definitions, and one or more
// assertion clauses.
package parser

import (
	"errors"
	"fmt"

	"covenant/ast"
	"covenant/lexer"
	"covenant/token"
)

// ParseSource lexes and parses a complete contract source text,
// composing the lexer and the parser the way every caller (the CLI,
// the compiler's tests) needs to. It is the "parse" public operation:
// the AST on success, or every accumulated syntax error joined into
// one on failure.
func ParseSource(text string) ([]ast.Node, error) {
	lex := lexer.New(text)
	tokens, err := lex.Scan()
	if err != nil {
		return nil, err
	}
	nodes, errs := Make(tokens).Parse()
	switch len(errs) {
	case 0:
		return nodes, nil
	case 1:
		return nil, errs[0]
	default:
		return nil, errors.Join(errs...)
	}
}

// Parser is a recursive-descent reader over a fixed token slice.
type Parser struct {
	tokens   []token.Token
	position int
}

// Make constructs a Parser over the given token stream.
func Make(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.position]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.position-1]
}

func (p *Parser) isFinished() bool {
	return p.peek().TokenType == token.EOF
}

func (p *Parser) checkType(t token.TokenType) bool {
	if p.isFinished() {
		return t == token.EOF
	}
	return p.peek().TokenType == t
}

func (p *Parser) advance() token.Token {
	if !p.isFinished() {
		p.position++
	}
	return p.previous()
}

func (p *Parser) isMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.checkType(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t token.TokenType, message string) (token.Token, error) {
	if p.checkType(t) {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, CreateSyntaxError(tok.Line, tok.Column, message)
}

// Parse reads the full token stream and returns every top-level node
// it could recover, plus every syntax error encountered along the
// way. Parsing does not stop at the first error: it resynchronises at
// the next recognisable top-level keyword so a single source file can
// be checked for every mistake it carries in one pass.
func (p *Parser) Parse() ([]ast.Node, []error) {
	var nodes []ast.Node
	var errs []error

	for !p.isFinished() {
		node, err := p.topLevel()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		nodes = append(nodes, node)
	}

	return nodes, errs
}

// synchronize discards tokens until the start of what looks like the
// next top-level statement, so one malformed clause does not prevent
// the rest of the file from being checked.
func (p *Parser) synchronize() {
	for !p.isFinished() {
		switch p.peek().TokenType {
		case token.GIVEN, token.DEFINE, token.IDENT, token.STRING, token.INT:
			return
		}
		p.advance()
	}
}

func (p *Parser) topLevel() (ast.Node, error) {
	switch {
	case p.checkType(token.GIVEN):
		return p.inputDeclaration()
	case p.checkType(token.DEFINE):
		return p.definition()
	default:
		return p.clause()
	}
}

func (p *Parser) clause() (ast.Node, error) {
	assertion, err := p.assertion()
	if err != nil {
		return nil, err
	}
	return ast.Clause{Assertion: assertion}, nil
}

func fmtErr(tok token.Token, format string, args ...any) error {
	return CreateSyntaxError(tok.Line, tok.Column, fmt.Sprintf(format, args...))
}
