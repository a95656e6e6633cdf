// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// segmentKind selects how one compiled segment is matched.
type segmentKind uint8

const (
	// segmentLiteral compares text for equality.
	segmentLiteral segmentKind = iota
	// segmentWildcard matches one path component with doublestar.
	segmentWildcard
	// segmentGlobstar ("**") matches zero or more whole components.
	segmentGlobstar
)

// compiledSegment is one precompiled pattern component.
type compiledSegment struct {
	// text is the literal (case-folded) or the doublestar pattern.
	text string
	kind segmentKind
}

// engine is the compiled segment automaton of one rooted pattern.
// It is read-only after compile and safe for concurrent use.
type engine struct {
	segments []compiledSegment
	platform Platform
}

// compile builds the automaton from a rooted, separator-normalized pattern.
// The pattern is split on runs of "/" after converting platform separators.
func compile(rooted string, p Platform) (*engine, error) {
	text := p.safeTrimTrailingSeparator(rooted)
	if p.Separator != '/' {
		text = strings.ReplaceAll(text, p.sep(), "/")
	}

	parts := splitRuns(text, '/')
	segments := make([]compiledSegment, 0, len(parts))
	for _, part := range parts {
		if part == "**" {
			// Collapse "**/**" into one globstar, both match the same paths.
			if n := len(segments); n > 0 && segments[n-1].kind == segmentGlobstar {
				continue
			}

			segments = append(segments, compiledSegment{kind: segmentGlobstar})
			continue
		}

		if literal, ok := p.reduceLiteral(part); ok {
			segments = append(segments, compiledSegment{
				kind: segmentLiteral,
				text: p.fold(literal),
			})
			continue
		}

		glob, err := p.translateSegment(part)
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", part, err)
		}

		glob = p.fold(glob)
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("%w: segment %q: %w", ErrInvalidPattern, part, doublestar.ErrBadPattern)
		}

		segments = append(segments, compiledSegment{
			kind: segmentWildcard,
			text: glob,
		})
	}

	return &engine{
		segments: segments,
		platform: p,
	}, nil
}

// match reports whether candidate components fully match the pattern.
func (e *engine) match(file []string) bool {
	return e.matchFrom(e.foldAll(file), 0, 0, false)
}

// partialMatch reports whether candidate components are a viable prefix of
// some fully matching path.
func (e *engine) partialMatch(file []string) bool {
	return e.matchFrom(e.foldAll(file), 0, 0, true)
}

// matchFrom matches file[fi:] against segments[pi:].
//
// In partial mode running out of file components is success, and so is
// running out of pattern components once all of them matched.
func (e *engine) matchFrom(file []string, fi int, pi int, partial bool) bool {
	for ; fi < len(file) && pi < len(e.segments); fi, pi = fi+1, pi+1 {
		seg := e.segments[pi]
		if seg.kind != segmentGlobstar {
			if !seg.matches(file[fi]) {
				return false
			}

			continue
		}

		if pi == len(e.segments)-1 {
			// Trailing globstar swallows the rest of the path.
			for ; fi < len(file); fi++ {
				if isDotDir(file[fi]) {
					return false
				}
			}

			return true
		}

		for fr := fi; fr < len(file); fr++ {
			if e.matchFrom(file, fr, pi+1, partial) {
				return true
			}

			// Globstar never swallows "." or "..".
			if isDotDir(file[fr]) {
				return false
			}
		}

		return partial
	}

	switch {
	case pi == len(e.segments):
		return fi == len(file) || partial
	default:
		// Out of file components: remaining globstars may match nothing.
		return partial || e.onlyGlobstarsFrom(pi)
	}
}

// onlyGlobstarsFrom reports whether every segment from pi on is a globstar.
func (e *engine) onlyGlobstarsFrom(pi int) bool {
	for ; pi < len(e.segments); pi++ {
		if e.segments[pi].kind != segmentGlobstar {
			return false
		}
	}

	return true
}

// foldAll applies platform case folding to candidate components.
func (e *engine) foldAll(file []string) []string {
	if !e.platform.CaseInsensitive {
		return file
	}

	out := make([]string, len(file))
	for i, name := range file {
		out[i] = e.platform.fold(name)
	}

	return out
}

// matches tests one candidate component against a non-globstar segment.
func (s compiledSegment) matches(name string) bool {
	if s.kind == segmentLiteral {
		return name == s.text
	}

	if name == "" || isDotDir(name) {
		return false
	}

	return doublestar.MatchUnvalidated(s.text, name)
}

// translateSegment rewrites one wildcard segment into doublestar syntax.
//
// Escapes follow the platform, braces and stray brackets become literal,
// "[!...]" becomes "[^...]", and an unclosed or empty set is literal text.
// Bytes that are not valid UTF-8 are copied through unchanged.
func (p Platform) translateSegment(segment string) (string, error) {
	var b strings.Builder
	b.Grow(len(segment) + 4)

	for i := 0; i < len(segment); {
		c := segment[i]
		switch {
		case c == '\\' && p.Escape:
			if i+1 < len(segment) {
				ch := charAt(segment, i+1)
				writeGlobLiteral(&b, ch)
				i += 1 + len(ch)
			} else {
				writeGlobLiteral(&b, `\`)
				i++
			}
		case c == '*' || c == '?':
			b.WriteByte(c)
			i++
		case c == '[':
			class, next, ok, err := p.translateClass(segment, i)
			if err != nil {
				return "", err
			}

			if !ok {
				writeGlobLiteral(&b, "[")
				i++
				continue
			}

			b.WriteString(class)
			i = next
		default:
			ch := charAt(segment, i)
			writeGlobLiteral(&b, ch)
			i += len(ch)
		}
	}

	return b.String(), nil
}

// translateClass converts the set starting at segment[start] ("[") and
// returns the doublestar class with the index just past its closing "]".
// A range whose low end sorts after its high end is rejected.
func (p Platform) translateClass(segment string, start int) (string, int, bool, error) {
	var body strings.Builder

	var (
		negate   bool
		items    int
		prev     string
		low      string
		inRange  bool
		rangeEnd bool
	)

	for i := start + 1; i < len(segment); {
		c := segment[i]

		var ch string
		switch {
		case c == '\\' && p.Escape && i+1 < len(segment):
			ch = charAt(segment, i+1)
			i += 1 + len(ch)
		case c == ']':
			if items == 0 {
				return "", 0, false, nil
			}

			prefix := "["
			if negate {
				prefix = "[^"
			}

			return prefix + body.String() + "]", i + 1, true, nil
		case (c == '!' || c == '^') && i == start+1:
			negate = true
			i++
			continue
		case c == '-' && items > 0 && !inRange && !rangeEnd && i+1 < len(segment) && segment[i+1] != ']':
			body.WriteByte('-')
			inRange = true
			low = prev
			i++
			continue
		default:
			ch = charAt(segment, i)
			i += len(ch)
		}

		rangeEnd = false
		if inRange {
			lo, _ := utf8.DecodeRuneInString(low)
			hi, _ := utf8.DecodeRuneInString(ch)
			if lo > hi {
				return "", 0, false, fmt.Errorf("%w: range %q out of order", ErrInvalidPattern, low+"-"+ch)
			}

			inRange = false
			rangeEnd = true
		}

		writeGlobLiteral(&body, ch)
		prev = ch
		items++
	}

	return "", 0, false, nil
}

// writeGlobLiteral writes ch so that doublestar reads it literally.
func writeGlobLiteral(b *strings.Builder, ch string) {
	if len(ch) == 1 {
		switch ch[0] {
		case '*', '?', '[', ']', '{', '}', ',', '\\', '^', '!', '-':
			b.WriteByte('\\')
		}
	}

	b.WriteString(ch)
}

// isDotDir reports whether name is "." or "..".
func isDotDir(name string) bool {
	return name == "." || name == ".."
}
