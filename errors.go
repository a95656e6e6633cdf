// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "errors"

// Sentinel errors for pattern construction.
var (
	// ErrEmptyPattern indicates pattern text is empty after negation stripping.
	ErrEmptyPattern = errors.New("pattern cannot be empty")
	// ErrDriveRelativeRoot indicates a bare drive root ("C:") on a drive-letter platform.
	ErrDriveRelativeRoot = errors.New("drive-relative root is not supported, use a fully rooted path")
	// ErrRelativePathing indicates a ".." segment or a "." segment past the first position.
	ErrRelativePathing = errors.New("relative pathing '.' and '..' is only allowed at the beginning of the pattern")
	// ErrGlobInRoot indicates a rooted pattern whose root segment contains globs.
	ErrGlobInRoot = errors.New("root segment must not contain globs")
	// ErrInvalidPattern indicates a wildcard segment with an out-of-order class
	// range ("[z-a]") or one the engine cannot compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidWorkingDir indicates the working directory is not absolute for the platform.
	ErrInvalidWorkingDir = errors.New("invalid working directory")
	// ErrUnknownPlatform indicates an unsupported platform profile name.
	ErrUnknownPlatform = errors.New("unknown platform")
)
