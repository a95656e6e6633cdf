// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"strings"
)

// Pattern is one compiled glob pattern rooted at an absolute location.
//
// A Pattern is immutable after construction; Match and PartialMatch may be
// called from many goroutines without locking.
type Pattern struct {
	// engine is the compiled segment automaton.
	engine *engine
	// source is the raw pattern text.
	source string
	// rooted is the separator-normalized absolute pattern text.
	rooted string
	// searchPath is the longest literal directory prefix.
	searchPath string
	// root is the first literal segment, empty when there is none.
	root string
	// platform is the profile the pattern was compiled for.
	platform Platform
	// negate reports an odd count of leading "!" markers.
	negate bool
	// trailingSeparator restricts matches to directories.
	trailingSeparator bool
}

// New compiles pattern for the running platform and process working directory.
func New(pattern string) (*Pattern, error) {
	return NewWithOptions(pattern, Options{})
}

// NewWithOptions compiles pattern with explicit platform and directories.
func NewWithOptions(pattern string, opts Options) (*Pattern, error) {
	opts.applyDefaults()
	p := opts.Platform

	text, negate := stripNegation(pattern)

	rooted, err := rootPattern(text, opts)
	if err != nil {
		return nil, err
	}

	searchSegments := p.literalSegments(p.segments(rooted), true)

	eng, err := compile(rooted, p)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}

	out := &Pattern{
		engine:            eng,
		source:            pattern,
		rooted:            rooted,
		searchPath:        p.joinSegments(searchSegments),
		platform:          p,
		negate:            negate,
		trailingSeparator: strings.HasSuffix(rooted, p.sep()),
	}

	if len(searchSegments) > 0 {
		out.root = searchSegments[0]
	}

	return out, nil
}

// MustNew is like New but panics on error. Intended for static patterns.
func MustNew(pattern string) *Pattern {
	p, err := New(pattern)
	if err != nil {
		panic(err)
	}

	return p
}

// Negate reports whether the pattern excludes matching paths.
func (p *Pattern) Negate() bool {
	return p.negate
}

// SearchPath returns the longest literal directory prefix of the pattern.
// A directory walk for this pattern can start there.
func (p *Pattern) SearchPath() string {
	return p.searchPath
}

// TrailingSeparator reports whether the pattern only matches directories.
func (p *Pattern) TrailingSeparator() bool {
	return p.trailingSeparator
}

// Source returns the raw pattern text given to the constructor.
func (p *Pattern) Source() string {
	return p.source
}

// Platform returns the profile the pattern was compiled for.
func (p *Pattern) Platform() Platform {
	return p.platform
}

// String returns the rooted, separator-normalized pattern.
func (p *Pattern) String() string {
	return p.rooted
}

// Match tests an absolute path against the pattern.
//
// MatchDirectoryOnly is returned for patterns with a trailing separator; the
// caller decides whether path is a directory.
func (p *Pattern) Match(path string) MatchKind {
	path = p.platform.safeTrimTrailingSeparator(path)
	if p.platform.Separator != '/' {
		path = strings.ReplaceAll(path, p.platform.sep(), "/")
	}

	if !p.engine.match(splitRuns(path, '/')) {
		return MatchNone
	}

	if p.trailingSeparator {
		return MatchDirectoryOnly
	}

	return MatchFull
}

// PartialMatch reports whether path is equal to or an ancestor of some path
// the pattern could match. Walkers use it to prune directories.
// An empty path is not a location and never matches.
func (p *Pattern) PartialMatch(path string) bool {
	if path == "" {
		return false
	}

	path = p.platform.safeTrimTrailingSeparator(path)

	// The segment automaton has no notion of a bare root, compare it literally.
	if p.platform.isRoot(path) {
		return p.root != "" && p.platform.equal(path, p.root)
	}

	return p.engine.partialMatch(splitRuns(path, p.platform.Separator))
}
