// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonvet

import "errors"

// The diagnostic vocabulary is fixed: every failure from Validate is exactly
// one of these sentinels, propagated unchanged from the point of failure.
// The messages are part of the output contract of the jsonvet command, which
// prints them verbatim.

// Lexical diagnostics, reported while converting text to tokens.
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrEscapeUnsupported  = errors.New("escape sequences unsupported")
	ErrInvalidNumber      = errors.New("invalid number format")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrInvalidCharacter   = errors.New("invalid character in JSON")
)

// Syntactic diagnostics, reported while checking the token sequence against
// the grammar.
var (
	ErrExpectedObject    = errors.New("expected '{'")
	ErrExpectedArray     = errors.New("expected '['")
	ErrExpectedKey       = errors.New("expected string key")
	ErrExpectedColon     = errors.New("expected ':'")
	ErrExpectedValue     = errors.New("expected value")
	ErrExpectedObjectSep = errors.New("expected ',' or '}'")
	ErrExpectedArraySep  = errors.New("expected ',' or ']'")
	ErrTrailingComma     = errors.New("trailing comma not allowed")
	ErrUnexpectedEnd     = errors.New("unexpected end of input")
)
