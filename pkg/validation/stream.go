// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for names that arrive from
// the command line or over HTTP before they reach storage.
//
// Stream names become journal key prefixes and URL path segments, so they are
// restricted to a small character set.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxStreamNameLength is the longest accepted stream name.
const MaxStreamNameLength = 128

// streamPattern allows letters, digits, dots, underscores and hyphens,
// starting with a letter or digit.
var streamPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-]*$`)

// ValidateStreamName validates a journal or sync stream name.
//
// Valid names:
//   - 1-128 characters
//   - Letters, digits, dots, underscores and hyphens
//   - A letter or digit first
//
// Example:
//
//	if err := validation.ValidateStreamName(name); err != nil {
//	    return fmt.Errorf("invalid stream: %w", err)
//	}
func ValidateStreamName(name string) error {
	if name == "" {
		return fmt.Errorf("stream name cannot be empty")
	}
	if len(name) > MaxStreamNameLength {
		return fmt.Errorf("stream name too long: %d bytes (max %d)", len(name), MaxStreamNameLength)
	}
	if !streamPattern.MatchString(name) {
		return fmt.Errorf("invalid stream name format: %q (letters, digits, '.', '_' or '-', starting with a letter or digit)", name)
	}
	return nil
}

// SanitizeStreamName trims surrounding whitespace and validates the result.
func SanitizeStreamName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := ValidateStreamName(name); err != nil {
		return "", err
	}
	return name, nil
}
