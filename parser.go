// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonvet

// A Parser checks a token sequence against the JSON object grammar using
// one token of lookahead. It holds the sequence and a cursor that only ever
// advances; a parser is consumed by a single call to ParseObject and
// discarded afterward.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser constructs a parser over the given token sequence.
func NewParser(tokens []Token) *Parser { return &Parser{tokens: tokens} }

// ParseObject validates one object from the front of the token sequence.
// The top-level construct must be an object, not an arbitrary value.
func (p *Parser) ParseObject() error {
	return p.parseSeq(LBrace, RBrace, ErrExpectedObject, ErrExpectedObjectSep, p.parseMember)
}

func (p *Parser) parseArray() error {
	return p.parseSeq(LSquare, RSquare, ErrExpectedArray, ErrExpectedArraySep, p.parseValue)
}

// parseSeq is the delimiter automaton shared by objects and arrays,
// parameterized by the delimiter kinds and the element rule. The checks
// inside the loop are ordered: closing delimiter, then comma, then the
// missing-separator error; otherwise the element rule runs in the same
// iteration. Both callers share this order so that trailing commas and
// missing separators are diagnosed identically.
func (p *Parser) parseSeq(opener, closer Kind, missingOpen, missingSep error, element func() error) error {
	if tok, ok := p.peek(); !ok || tok.Kind != opener {
		return missingOpen
	}
	p.advance()

	first := true
	for {
		tok, ok := p.peek()
		if !ok {
			return ErrUnexpectedEnd
		}
		switch {
		case tok.Kind == closer:
			// An immediate closer means an empty sequence, which is valid.
			p.advance()
			return nil

		case tok.Kind == Comma && !first:
			p.advance()
			if next, ok := p.peek(); ok && next.Kind == closer {
				return ErrTrailingComma
			}

		case !first:
			return missingSep
		}

		if err := element(); err != nil {
			return err
		}
		first = false
	}
}

// parseMember consumes one "key": value member of an object.
func (p *Parser) parseMember() error {
	if tok, ok := p.peek(); !ok || tok.Kind != String {
		return ErrExpectedKey
	}
	p.advance()
	if tok, ok := p.peek(); !ok || tok.Kind != Colon {
		return ErrExpectedColon
	}
	p.advance()
	return p.parseValue()
}

// parseValue consumes a single value of any type. Objects and arrays recurse
// without a depth bound; leaf tokens are consumed directly.
func (p *Parser) parseValue() error {
	tok, ok := p.peek()
	if !ok {
		return ErrExpectedValue
	}
	switch tok.Kind {
	case LBrace:
		return p.ParseObject()
	case LSquare:
		return p.parseArray()
	case String, Number, Bool, Null:
		p.advance()
		return nil
	}
	return ErrExpectedValue
}

func (p *Parser) peek() (Token, bool) {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos], true
	}
	return Token{}, false
}

func (p *Parser) advance() { p.pos++ }
