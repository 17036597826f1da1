// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonvet_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jsonvet"
)

func TestValidateHuJSON(t *testing.T) {
	t.Run("Accepts", func(t *testing.T) {
		tests := []string{
			`{}`,
			`{"a": 1}`,

			// Comments and trailing commas are the dialect's extensions.
			`{
			   // enabled in staging only
			   "verbose": true,
			   "retries": 3, // including the first attempt
			}`,
			`{
			   /* block comment */
			   "hosts": ["alpha", "beta",],
			}`,
		}
		for _, input := range tests {
			if err := jsonvet.ValidateHuJSON(input); err != nil {
				t.Errorf("ValidateHuJSON(%#q): unexpected error: %v", input, err)
			}
		}
	})

	t.Run("Rejects", func(t *testing.T) {
		// Standardizing removes comments and trailing commas, but the strict
		// validator's other restrictions still apply afterward.
		tests := []struct {
			input string
			want  error
		}{
			{`{"k": "a\tb"} // escape still unsupported`, jsonvet.ErrEscapeUnsupported},
			{`[1, 2] // top level must be an object`, jsonvet.ErrExpectedObject},
		}
		for _, test := range tests {
			err := jsonvet.ValidateHuJSON(test.input)
			if !errors.Is(err, test.want) {
				t.Errorf("ValidateHuJSON(%#q): got error %v, want %v", test.input, err, test.want)
			}
		}

		// Input hujson itself cannot standardize reports hujson's own error.
		if err := jsonvet.ValidateHuJSON(`{"k": }`); err == nil {
			t.Error("ValidateHuJSON: got nil, want error")
		}
	})
}
