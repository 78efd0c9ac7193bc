package parser

import (
	"covenant/ast"
	"covenant/token"
	"covenant/value"
)

// literal parses an INT, a STRING, or a bracketed list of either —
// the only place a List value may be written out: §4.4's grammar, a
// subject may never be an inline list (see subject below).
func (p *Parser) literal() (value.Value, error) {
	switch {
	case p.checkType(token.INT):
		tok := p.advance()
		return value.Numeric(tok.Literal.(uint64)), nil
	case p.checkType(token.STRING):
		tok := p.advance()
		return value.StringLike(tok.Literal.(string)), nil
	case p.checkType(token.LBRACKET):
		return p.list()
	default:
		tok := p.peek()
		return nil, fmtErr(tok, "expected an integer, a string, or a list, got %q", tok.Lexeme)
	}
}

// list parses "[" (INT | STRING) ("," (INT | STRING))* "]". Elements
// must be homogeneous (all integers or all strings); a mixed list is
// reported as a syntax error.
func (p *Parser) list() (value.Value, error) {
	open, err := p.consume(token.LBRACKET, "expected '['")
	if err != nil {
		return nil, err
	}

	var elems value.List
	if !p.checkType(token.RBRACKET) {
		for {
			elemTok := p.peek()
			switch elemTok.TokenType {
			case token.INT:
				p.advance()
				elems = append(elems, value.Numeric(elemTok.Literal.(uint64)))
			case token.STRING:
				p.advance()
				elems = append(elems, value.StringLike(elemTok.Literal.(string)))
			default:
				return nil, fmtErr(elemTok, "expected an integer or a string list element, got %q", elemTok.Lexeme)
			}
			if !p.isMatch(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(token.RBRACKET, "expected ']' to close list"); err != nil {
		return nil, err
	}

	if len(elems) > 0 {
		firstKind := elems[0].Kind()
		for _, e := range elems[1:] {
			if e.Kind() != firstKind {
				return nil, fmtErr(open, "list elements must all be the same type")
			}
		}
	}

	return elems, nil
}

// subject parses a single comparator operand: an identifier reference
// or a scalar literal. A literal list is deliberately not accepted
// here — only "define $name as [...]" may introduce a list, and it
// must then be referenced by name.
func (p *Parser) subject() (ast.Subject, error) {
	switch {
	case p.checkType(token.IDENT):
		tok := p.advance()
		return ast.Subject{IsIdentifier: true, Identifier: tok.Literal.(string)}, nil
	case p.checkType(token.INT):
		tok := p.advance()
		return ast.Subject{Literal: value.Numeric(tok.Literal.(uint64))}, nil
	case p.checkType(token.STRING):
		tok := p.advance()
		return ast.Subject{Literal: value.StringLike(tok.Literal.(string))}, nil
	default:
		tok := p.peek()
		return ast.Subject{}, fmtErr(tok, "expected a parameter reference, an integer, or a string, got %q", tok.Lexeme)
	}
}

// imperative parses "must" ["not"] "be".
func (p *Parser) imperative() (ast.Imperative, error) {
	if _, err := p.consume(token.MUST, "expected 'must'"); err != nil {
		return 0, err
	}
	imperative := ast.MustBe
	if p.isMatch(token.NOT) {
		imperative = ast.MustNotBe
	}
	if _, err := p.consume(token.BE, "expected 'be'"); err != nil {
		return 0, err
	}
	return imperative, nil
}

// comparatorPhrase parses one of: "equal to", "greater than",
// "greater than or equal to", "less than", "less than or equal to",
// "one of".
func (p *Parser) comparatorPhrase() (ast.Comparator, error) {
	switch {
	case p.isMatch(token.EQUAL):
		if _, err := p.consume(token.TO, "expected 'to' after 'equal'"); err != nil {
			return 0, err
		}
		return ast.Equal, nil

	case p.isMatch(token.GREATER):
		if _, err := p.consume(token.THAN, "expected 'than' after 'greater'"); err != nil {
			return 0, err
		}
		if p.isMatch(token.OR) {
			if _, err := p.consume(token.EQUAL, "expected 'equal' after 'or'"); err != nil {
				return 0, err
			}
			if _, err := p.consume(token.TO, "expected 'to' after 'equal'"); err != nil {
				return 0, err
			}
			return ast.GreaterThanOrEqual, nil
		}
		return ast.GreaterThan, nil

	case p.isMatch(token.LESS):
		if _, err := p.consume(token.THAN, "expected 'than' after 'less'"); err != nil {
			return 0, err
		}
		if p.isMatch(token.OR) {
			if _, err := p.consume(token.EQUAL, "expected 'equal' after 'or'"); err != nil {
				return 0, err
			}
			if _, err := p.consume(token.TO, "expected 'to' after 'equal'"); err != nil {
				return 0, err
			}
			return ast.LessThanOrEqual, nil
		}
		return ast.LessThan, nil

	case p.isMatch(token.ONE):
		if _, err := p.consume(token.OF, "expected 'of' after 'one'"); err != nil {
			return 0, err
		}
		return ast.OneOf, nil

	default:
		tok := p.peek()
		return 0, fmtErr(tok, "expected a comparator phrase, got %q", tok.Lexeme)
	}
}

// assertion parses "<subject> must [not] be <comparator-phrase>
// <subject> [(and|or) <assertion>]".
func (p *Parser) assertion() (ast.Assertion, error) {
	lhs, err := p.subject()
	if err != nil {
		return ast.Assertion{}, err
	}
	imperative, err := p.imperative()
	if err != nil {
		return ast.Assertion{}, err
	}
	comparator, err := p.comparatorPhrase()
	if err != nil {
		return ast.Assertion{}, err
	}
	rhs, err := p.subject()
	if err != nil {
		return ast.Assertion{}, err
	}

	result := ast.Assertion{
		LHS:        lhs,
		Imperative: imperative,
		Comparator: comparator,
		RHS:        rhs,
	}

	if p.isMatch(token.AND, token.OR) {
		conj := ast.And
		if p.previous().TokenType == token.OR {
			conj = ast.Or
		}
		next, err := p.assertion()
		if err != nil {
			return ast.Assertion{}, err
		}
		result.Conjoined = &ast.Conjoined{Conjunctive: conj, Next: &next}
	}

	return result, nil
}
