// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonvet

// Validate reports whether text is a syntactically valid JSON object.
// It returns nil on success. On failure it returns the first lexical or
// syntactic diagnostic encountered, unchanged: one of the Err* sentinels
// defined in this package.
func Validate(text string) error {
	tokens, err := NewLexer(text).Lex()
	if err != nil {
		return err
	}
	return NewParser(tokens).ParseObject()
}

// MustValidate is like Validate, but panics if text is not a valid JSON
// object. It is intended for static documents compiled into a program.
func MustValidate(text string) {
	if err := Validate(text); err != nil {
		panic("jsonvet: " + err.Error())
	}
}
