// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"strings"
	"unicode/utf8"
)

// literalState is the scanner state of reduceLiteral.
type literalState uint8

const (
	// statePlain scans ordinary segment text.
	statePlain literalState = iota
	// stateCharacterSet accumulates a "[...]" set body.
	stateCharacterSet
)

// reduceLiteral reduces one pattern segment to the exact text it matches.
//
// It returns false when the segment contains an unescaped "*" or "?", or a
// closed character set that is not a single character. A one-character set
// ("[b]") reduces to that character, except "[!]" which reads as negation.
// An unclosed "[" and an empty "[]" are literal text. Bytes that are not
// valid UTF-8 are copied through unchanged.
func (p Platform) reduceLiteral(segment string) (string, bool) {
	var (
		literal  strings.Builder
		set      []string
		setStart int
	)

	state := statePlain
	for i := 0; ; {
		if i >= len(segment) {
			if state != stateCharacterSet {
				break
			}

			// Unclosed set: "[" is literal and scanning resumes right after it.
			literal.WriteByte('[')
			state = statePlain
			i = setStart + 1
			continue
		}

		c := segment[i]
		escaped := c == '\\' && p.Escape && i+1 < len(segment)

		switch state {
		case statePlain:
			switch {
			case escaped:
				ch := charAt(segment, i+1)
				literal.WriteString(ch)
				i += 1 + len(ch)
			case c == '*' || c == '?':
				return "", false
			case c == '[' && i+1 < len(segment):
				state = stateCharacterSet
				setStart = i
				set = set[:0]
				i++
			default:
				literal.WriteByte(c)
				i++
			}

		case stateCharacterSet:
			switch {
			case escaped:
				ch := charAt(segment, i+1)
				set = append(set, ch)
				i += 1 + len(ch)
			case c == ']':
				state = statePlain
				switch {
				case len(set) == 0:
					literal.WriteByte('[')
					i = setStart + 1
				case len(set) > 1 || set[0] == "!":
					return "", false
				default:
					literal.WriteString(set[0])
					i++
				}
			default:
				ch := charAt(segment, i)
				set = append(set, ch)
				i += len(ch)
			}
		}
	}

	return literal.String(), true
}

// charAt returns the encoded character starting at s[i]. An invalid UTF-8
// byte counts as one character.
func charAt(s string, i int) string {
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[i : i+size]
}

// literalSegments maps segments through reduceLiteral. Non-literal segments
// become "". With stopWhenEmpty the result is truncated before the first
// non-literal segment, which yields the literal path prefix.
func (p Platform) literalSegments(segments []string, stopWhenEmpty bool) []string {
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		literal, ok := p.reduceLiteral(seg)
		if !ok {
			if stopWhenEmpty {
				break
			}

			literal = ""
		}

		out = append(out, literal)
	}

	return out
}
