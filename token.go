// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonvet

// A Kind is the lexical class of a token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
	Number              // number (IEEE 754 double)
	Bool                // constant: true or false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	Bool:    "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical unit of the input. Tokens are immutable once
// produced. A token carries no source position; diagnostics report the
// message only.
type Token struct {
	Kind Kind
	Str  string  // for String: the literal text between the quotes
	Num  float64 // for Number: the parsed value
	Bool bool    // for Bool: the constant's value
}
