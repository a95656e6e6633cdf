// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "fmt"

// MatchKind is the outcome of a full pattern match.
type MatchKind uint8

const (
	// MatchNone means the path does not match.
	MatchNone MatchKind = iota
	// MatchDirectoryOnly means the path matches only when it denotes a directory.
	MatchDirectoryOnly
	// MatchFull means the path matches as a file or a directory.
	MatchFull
)

// Options controls pattern construction.
type Options struct {
	// Platform selects separator, escape and case rules. Zero value means DefaultPlatform.
	Platform Platform `json:"platform" yaml:"platform"`
	// WorkingDir roots relative patterns. Empty value reads the process working directory.
	WorkingDir string `json:"working_dir,omitempty" yaml:"working_dir,omitempty"`
	// HomeDir replaces a leading "~" when ExpandHome is set. Empty value reads the user home.
	HomeDir string `json:"home_dir,omitempty" yaml:"home_dir,omitempty"`
	// ExpandHome enables "~" and "~/..." expansion.
	ExpandHome bool `json:"expand_home,omitempty" yaml:"expand_home,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.Platform.Separator == 0 {
		opts.Platform = DefaultPlatform()
	}
}

// Matches reports whether the kind accepts an entry of the given type.
func (k MatchKind) Matches(isDir bool) bool {
	switch k {
	case MatchFull:
		return true
	case MatchDirectoryOnly:
		return isDir
	default:
		return false
	}
}

// String returns the lower-case kind name.
func (k MatchKind) String() string {
	switch k {
	case MatchNone:
		return "none"
	case MatchDirectoryOnly:
		return "directory"
	case MatchFull:
		return "full"
	default:
		return fmt.Sprintf("MatchKind(%d)", uint8(k))
	}
}

// MarshalText encodes the kind by name for json and yaml output.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
