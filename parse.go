// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePatterns compiles newline-separated patterns from reader.
//
// Semantics:
// - every line is trimmed
// - blank lines and "#" comments are skipped
// - leading "!" markers set Negate on the compiled pattern
//
// The first invalid line aborts parsing; the error carries its 1-based number.
func ParsePatterns(r io.Reader, opts Options) ([]*Pattern, error) {
	s := bufio.NewScanner(r)
	patterns := make([]*Pattern, 0, 16)

	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := NewWithOptions(text, opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		patterns = append(patterns, p)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return patterns, nil
}

// ParsePatternsString compiles patterns from string input.
func ParsePatternsString(src string, opts Options) ([]*Pattern, error) {
	return ParsePatterns(strings.NewReader(src), opts)
}
