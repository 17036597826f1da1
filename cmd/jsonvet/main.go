// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Command jsonvet reports whether its inputs are syntactically valid JSON
// objects.
//
// Usage:
//
//	jsonvet [-hujson] [file ...]
//
// With no files (or with "-"), jsonvet reads from standard input. For each
// input it prints "Valid JSON", or "Invalid JSON: " followed by the first
// diagnostic encountered. The exit code is 0 if every input is valid, and 1
// otherwise. With multiple files, each report line is prefixed with the file
// name, and the files are validated concurrently.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/creachadair/jsonvet"
	"golang.org/x/sync/errgroup"
)

var useHuJSON = flag.Bool("hujson", false,
	"Standardize HuJSON (comments, trailing commas) before validating")

func main() {
	flag.Parse()
	os.Exit(run(flag.Args(), *useHuJSON, os.Stdin, os.Stdout, os.Stderr))
}

func run(paths []string, hujson bool, stdin io.Reader, stdout, stderr io.Writer) int {
	validate := jsonvet.Validate
	if hujson {
		validate = jsonvet.ValidateHuJSON
	}

	if len(paths) == 0 || len(paths) == 1 && paths[0] == "-" {
		text, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "jsonvet: reading stdin: %v\n", err)
			return 1
		}
		return report(stdout, "", validate(string(text)))
	}

	type outcome struct {
		verdict error // validation result, nil if valid
		readErr error // I/O failure, reported to stderr
	}
	results := make([]outcome, len(paths))

	// Each validation is an independent synchronous pass over its own
	// buffer, so files can be checked concurrently. Output order follows
	// the argument order regardless of completion order.
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		if path == "-" {
			results[i].readErr = fmt.Errorf(`cannot mix "-" with named files`)
			continue
		}
		g.Go(func() error {
			text, err := os.ReadFile(path)
			if err != nil {
				results[i].readErr = err
				return nil
			}
			results[i].verdict = validate(string(text))
			return nil
		})
	}
	g.Wait()

	code := 0
	for i, path := range paths {
		if err := results[i].readErr; err != nil {
			fmt.Fprintf(stderr, "jsonvet: %v\n", err)
			code = 1
			continue
		}
		prefix := ""
		if len(paths) > 1 {
			prefix = path + ": "
		}
		if report(stdout, prefix, results[i].verdict) != 0 {
			code = 1
		}
	}
	return code
}

// report prints the verdict for one input and returns its exit code
// contribution. The diagnostic message is printed verbatim.
func report(w io.Writer, prefix string, verdict error) int {
	if verdict != nil {
		fmt.Fprintf(w, "%sInvalid JSON: %v\n", prefix, verdict)
		return 1
	}
	fmt.Fprintf(w, "%sValid JSON\n", prefix)
	return 0
}
