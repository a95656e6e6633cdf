// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Platform is the set of path conventions a pattern is compiled for.
//
// All platform divergence (separator, escape character, case folding and
// drive-letter roots) is read from this value, so a Windows profile can be
// evaluated on any host.
type Platform struct {
	// Name is a short profile name ("posix", "windows").
	Name string
	// Separator is the canonical path separator.
	Separator byte
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive bool
	// Escape reports whether backslash escapes the next pattern character.
	Escape bool
	// DriveLetters reports whether "X:" drive roots exist.
	DriveLetters bool
}

var (
	// PlatformPOSIX is the profile for slash-separated case-sensitive filesystems.
	PlatformPOSIX = Platform{
		Name:      "posix",
		Separator: '/',
		Escape:    true,
	}
	// PlatformWindows is the profile for backslash-separated case-insensitive filesystems.
	PlatformWindows = Platform{
		Name:            "windows",
		Separator:       '\\',
		CaseInsensitive: true,
		DriveLetters:    true,
	}
)

// DefaultPlatform returns the profile of the running operating system.
func DefaultPlatform() Platform {
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}

	return PlatformPOSIX
}

// ParsePlatform resolves a profile by name. "auto" and "" mean DefaultPlatform.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return DefaultPlatform(), nil
	case "posix", "unix", "linux", "darwin":
		return PlatformPOSIX, nil
	case "windows", "win":
		return PlatformWindows, nil
	default:
		return Platform{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
}

// String returns the profile name.
func (p Platform) String() string {
	return p.Name
}

// MarshalText encodes the profile by name.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.Name), nil
}

// UnmarshalText decodes the profile from its name.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// sep returns the separator as a string.
func (p Platform) sep() string {
	return string(p.Separator)
}

// fold applies platform case folding to pattern and candidate text.
// Bytes that are not valid UTF-8 are kept as is.
func (p Platform) fold(s string) string {
	if !p.CaseInsensitive {
		return s
	}

	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}

	return b.String()
}

// equal compares two strings under platform case rules.
func (p Platform) equal(a, b string) bool {
	if p.CaseInsensitive {
		return strings.EqualFold(a, b)
	}

	return a == b
}
