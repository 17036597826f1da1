// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonvet implements a syntax validator for JSON objects.
//
// The validator answers a single question: is the input a syntactically
// valid JSON object? It never materializes a value tree; the result of a
// successful validation is nil, and the result of a failed validation is
// the first diagnostic encountered:
//
//	if err := jsonvet.Validate(text); err != nil {
//	   log.Fatalf("Validation failed: %v", err)
//	}
//
// # Lexing
//
// The Lexer type converts input text into an ordered sequence of tokens in
// a single left-to-right pass, or stops at the first lexical error.
// Construct a lexer from the complete input text and call Lex:
//
//	tokens, err := jsonvet.NewLexer(text).Lex()
//
// The lexer recognizes a deliberately narrow dialect: strings may not
// contain escape sequences or raw newlines, numbers are whatever greedy run
// over the number alphabet parses as a 64-bit float, and the only bare
// identifiers are the constants true, false, and null.
//
// # Parsing
//
// The Parser type consumes a token sequence with one token of lookahead and
// recognizes the JSON grammar, requiring an object at the top level:
//
//	err := jsonvet.NewParser(tokens).ParseObject()
//
// Objects and arrays are parsed by one shared automaton, so both report the
// same diagnostics for trailing commas and missing separators. Values nest
// recursively without an explicit depth bound; input nested deeply enough to
// exhaust the stack is an accepted failure mode, not a reported error.
//
// # Diagnostics
//
// All diagnostics are drawn from a fixed vocabulary of sentinel errors (see
// errors.go) and are surfaced to the caller unchanged, with no wrapping and
// no source position. Re-validating the same text always yields the same
// result and, on failure, the identical diagnostic.
package jsonvet
