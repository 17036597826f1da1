// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsonvet

import "github.com/tailscale/hujson"

// ValidateHuJSON validates text written in the HuJSON dialect, which extends
// JSON with comments and trailing commas. The input is standardized to plain
// JSON and then checked with Validate, so the comment and trailing-comma
// extensions are accepted but every other restriction of the validator still
// applies; in particular, escape sequences in strings remain unsupported.
func ValidateHuJSON(text string) error {
	std, err := hujson.Standardize([]byte(text))
	if err != nil {
		return err
	}
	return Validate(string(std))
}
