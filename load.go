// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"os"
)

// LoadPatternsFile compiles every pattern listed in the file at path.
//
// Relative patterns in the file are rooted at opts.WorkingDir (or the process
// working directory), not at the directory holding the file. Errors name the
// file and, for invalid patterns, the offending line.
func LoadPatternsFile(path string, opts Options) ([]*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParsePatterns(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parse patterns file %s: %w", path, err)
	}

	return patterns, nil
}

// LoadPatternsFiles compiles the pattern files in argument order and returns
// one flat list, so a walker can evaluate them as a single sequence.
// The first file that fails stops loading.
func LoadPatternsFiles(opts Options, paths ...string) ([]*Pattern, error) {
	var out []*Pattern
	for _, path := range paths {
		patterns, err := LoadPatternsFile(path, opts)
		if err != nil {
			return nil, err
		}

		out = append(out, patterns...)
	}

	return out, nil
}
