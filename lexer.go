// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonvet

import (
	"strconv"
	"strings"
	"unicode"

	"go4.org/mem"
)

// A Lexer converts input text into a sequence of tokens. It holds the
// complete input and a cursor that only ever advances; a lexer is consumed
// by a single call to Lex and discarded afterward.
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer constructs a lexer over the complete input text.
func NewLexer(text string) *Lexer { return &Lexer{input: []rune(text)} }

// Lex consumes the input and returns the full token sequence, or the first
// lexical error encountered. Every input character is either consumed into a
// token, skipped as whitespace, or reported as an error, so the pass always
// makes progress.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token
	for {
		ch, ok := l.peek()
		if !ok {
			return tokens, nil
		}

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			l.advance()
			tokens = append(tokens, Token{Kind: k})
			continue
		}

		switch {
		case unicode.IsSpace(ch):
			l.advance()

		case ch == '"':
			text, err := l.lexString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: String, Str: text})

		case isNumStart(ch):
			num, err := l.lexNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: Number, Num: num})

		case isAlpha(ch):
			tok, err := l.lexIdentifier()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		default:
			return nil, ErrInvalidCharacter
		}
	}
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos < len(l.input) {
		return l.input[l.pos], true
	}
	return 0, false
}

func (l *Lexer) advance() { l.pos++ }

// readWhile consumes the maximal run of characters matching f and returns
// the run as a string.
func (l *Lexer) readWhile(f func(rune) bool) string {
	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok || !f(ch) {
			break
		}
		l.advance()
	}
	return string(l.input[start:l.pos])
}

// lexString consumes a string literal, returning its contents without the
// surrounding quotes. The contents are taken verbatim: an escape sequence or
// a raw newline before the closing quote is an error.
// Precondition: the cursor is on the opening quote.
func (l *Lexer) lexString() (string, error) {
	l.advance() // opening quote
	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok {
			return "", ErrUnterminatedString
		}
		switch ch {
		case '"':
			text := string(l.input[start:l.pos])
			l.advance()
			return text, nil
		case '\\':
			return "", ErrEscapeUnsupported
		case '\n':
			return "", ErrUnterminatedString
		default:
			l.advance()
		}
	}
}

// lexNumber consumes the maximal run over the number alphabet and parses it
// as a 64-bit float. The scan itself does not enforce the JSON number
// grammar; a run the float parser rejects (two decimal points, a bare sign)
// is reported as an invalid number.
func (l *Lexer) lexNumber() (float64, error) {
	run := l.readWhile(isNumRune)
	num, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return num, nil
}

// lexIdentifier consumes a maximal run of ASCII letters and matches it
// case-sensitively against the constants true, false, and null. Any other
// identifier is an error; this is also how unquoted keys and malformed
// keywords like True are rejected.
func (l *Lexer) lexIdentifier() (Token, error) {
	word := mem.S(l.readWhile(isAlpha))
	switch {
	case word.Equal(idTrue):
		return Token{Kind: Bool, Bool: true}, nil
	case word.Equal(idFalse):
		return Token{Kind: Bool, Bool: false}, nil
	case word.Equal(idNull):
		return Token{Kind: Null}, nil
	}
	return Token{}, ErrInvalidIdentifier
}

var (
	idTrue  = mem.S("true")
	idFalse = mem.S("false")
	idNull  = mem.S("null")
)

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isNumRune(ch rune) bool {
	return isDigit(ch) || ch == '-' || ch == '.' || ch == 'e' || ch == 'E' || ch == '+'
}

func isAlpha(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
