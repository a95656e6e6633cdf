// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"os"
	"strings"
)

// stripNegation trims the pattern and removes leading "!" markers.
// Every marker toggles negation.
func stripNegation(raw string) (string, bool) {
	pattern := strings.TrimSpace(raw)

	negate := false
	for strings.HasPrefix(pattern, "!") {
		negate = !negate
		pattern = strings.TrimSpace(pattern[1:])
	}

	return pattern, negate
}

// validatePattern rejects structurally invalid patterns. Segments are
// reduced from the pattern as written, before any rooting.
func validatePattern(pattern string, p Platform) error {
	if pattern == "" {
		return ErrEmptyPattern
	}

	literals := p.literalSegments(p.segments(pattern), false)
	if len(literals) == 0 {
		return ErrEmptyPattern
	}

	if p.DriveLetters && isBareDrive(literals[0]) {
		return fmt.Errorf("%w: %q", ErrDriveRelativeRoot, pattern)
	}

	for i, literal := range literals {
		if literal == ".." || (literal == "." && i > 0) {
			return fmt.Errorf("%w: %q", ErrRelativePathing, pattern)
		}
	}

	if p.hasRoot(pattern) && literals[0] == "" {
		return fmt.Errorf("%w: %q", ErrGlobInRoot, pattern)
	}

	return nil
}

// rootPattern validates pattern and roots it against the working directory
// (or the home directory for "~" when enabled). The returned text is
// separator-normalized and absolute for the platform.
func rootPattern(pattern string, opts Options) (string, error) {
	p := opts.Platform
	if err := validatePattern(pattern, p); err != nil {
		return "", err
	}

	pattern = p.normalizeSeparators(pattern)
	sep := p.sep()

	switch {
	case pattern == "." || strings.HasPrefix(pattern, "."+sep):
		cwd, err := opts.workingDir()
		if err != nil {
			return "", err
		}

		pattern = p.globEscape(cwd) + pattern[1:]

	case opts.ExpandHome && (pattern == "~" || strings.HasPrefix(pattern, "~"+sep)):
		home, err := opts.homeDir()
		if err != nil {
			return "", err
		}

		pattern = p.globEscape(home) + pattern[1:]

	case !p.hasAbsoluteRoot(pattern):
		cwd, err := opts.workingDir()
		if err != nil {
			return "", err
		}

		pattern = p.ensureAbsoluteRoot(p.globEscape(cwd), pattern)
	}

	return p.normalizeSeparators(pattern), nil
}

// workingDir returns the configured or process working directory.
func (opts *Options) workingDir() (string, error) {
	dir := opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidWorkingDir, err)
		}

		dir = wd
	}

	return opts.absoluteDir(dir, "working directory")
}

// homeDir returns the configured or current user home directory.
func (opts *Options) homeDir() (string, error) {
	dir := opts.HomeDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: home directory: %v", ErrInvalidWorkingDir, err)
		}

		dir = home
	}

	return opts.absoluteDir(dir, "home directory")
}

// absoluteDir normalizes dir and requires it to be fully rooted.
func (opts *Options) absoluteDir(dir string, what string) (string, error) {
	p := opts.Platform
	dir = p.safeTrimTrailingSeparator(dir)
	if !p.hasAbsoluteRoot(dir) {
		return "", fmt.Errorf("%w: %s %q is not absolute", ErrInvalidWorkingDir, what, dir)
	}

	return dir, nil
}
