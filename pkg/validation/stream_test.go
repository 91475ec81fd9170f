// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validation

import (
	"strings"
	"testing"
)

func TestValidateStreamName(t *testing.T) {
	tests := []struct {
		name    string
		stream  string
		wantErr bool
	}{
		{"simple", "nightly", false},
		{"uuid", "3f2b9c1e-7d4a-4b8e-9a61-0c5d2e7f8a90", false},
		{"dots and underscores", "build_42.main", false},
		{"mixed case", "Dev", false},
		{"single char", "a", false},
		{"max length", strings.Repeat("a", MaxStreamNameLength), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxStreamNameLength+1), true},
		{"leading dot", ".hidden", true},
		{"leading hyphen", "-x", true},
		{"slash", "a/b", true},
		{"space", "a b", true},
		{"nul byte", "a\x00b", true},
		{"query chars", "a?b=c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStreamName(tt.stream)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStreamName(%q) error = %v, wantErr %v", tt.stream, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeStreamName(t *testing.T) {
	tests := []struct {
		name    string
		stream  string
		want    string
		wantErr bool
	}{
		{"passthrough", "dev", "dev", false},
		{"trimmed", "  dev\n", "dev", false},
		{"invalid rejected", "a/b", "", true},
		{"blank rejected", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeStreamName(tt.stream)
			if (err != nil) != tt.wantErr {
				t.Errorf("SanitizeStreamName(%q) error = %v, wantErr %v", tt.stream, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("SanitizeStreamName(%q) = %q, want %q", tt.stream, got, tt.want)
			}
		})
	}
}
