// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package conformance exercises the validator as a black box against a
// corpus of inputs with pinned verdicts. The corpus lives in testdata as
// txtar archives: each case is a pair of files, "<name>" holding the input
// text and "<name>.want" holding either "valid" or the exact diagnostic.
package conformance_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jsonvet"
	"golang.org/x/tools/txtar"
)

func TestCorpus(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("Globbing testdata: %v", err)
	}
	if len(archives) == 0 {
		t.Fatal("No corpus archives found in testdata")
	}

	for _, path := range archives {
		ar, err := txtar.ParseFile(path)
		if err != nil {
			t.Fatalf("Parsing %s: %v", path, err)
		}
		if len(ar.Files)%2 != 0 {
			t.Fatalf("Archive %s: odd number of files, want input/verdict pairs", path)
		}

		base := strings.TrimSuffix(filepath.Base(path), ".txtar")
		for i := 0; i+1 < len(ar.Files); i += 2 {
			in, verdict := ar.Files[i], ar.Files[i+1]
			if verdict.Name != in.Name+".want" {
				t.Fatalf("Archive %s: file %q not followed by %q", path, in.Name, in.Name+".want")
			}
			t.Run(base+"/"+in.Name, func(t *testing.T) {
				input := strings.TrimSuffix(string(in.Data), "\n")
				got := "valid"
				if err := jsonvet.Validate(input); err != nil {
					got = err.Error()
				}
				want := strings.TrimSpace(string(verdict.Data))
				if got != want {
					t.Errorf("Validate(%#q): got %q, want %q", input, got, want)
				}
			})
		}
	}
}
