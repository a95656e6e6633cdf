// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "strings"

// normalizeSeparators converts separators to canonical form and collapses repeats.
// A leading UNC double separator survives on backslash platforms.
func (p Platform) normalizeSeparators(s string) string {
	if p.Separator != '/' {
		s = strings.ReplaceAll(s, "/", p.sep())
		unc := p.isUNC(s)
		s = collapseRuns(s, p.Separator)
		if unc {
			s = p.sep() + s
		}

		return s
	}

	return collapseRuns(s, '/')
}

// safeTrimTrailingSeparator normalizes separators and drops one trailing
// separator unless the path is a root ("/", "\", "C:\").
func (p Platform) safeTrimTrailingSeparator(s string) string {
	if s == "" {
		return ""
	}

	s = p.normalizeSeparators(s)
	if !strings.HasSuffix(s, p.sep()) || s == p.sep() {
		return s
	}

	if p.DriveLetters && len(s) == 3 && hasDrivePrefix(s) {
		return s
	}

	return s[:len(s)-1]
}

// hasRoot reports whether path has any root, including drive-relative
// ("C:foo") and drive-less ("\foo") forms.
func (p Platform) hasRoot(s string) bool {
	s = p.normalizeSeparators(s)
	if strings.HasPrefix(s, p.sep()) {
		return true
	}

	return p.DriveLetters && hasDrivePrefix(s)
}

// hasAbsoluteRoot reports whether path is fully rooted.
func (p Platform) hasAbsoluteRoot(s string) bool {
	s = p.normalizeSeparators(s)
	if !p.DriveLetters {
		return strings.HasPrefix(s, p.sep())
	}

	if strings.HasPrefix(s, p.sep()+p.sep()) {
		return true
	}

	return len(s) >= 3 && hasDrivePrefix(s) && s[2] == p.Separator
}

// splitRoot splits a normalized path into its root and the remainder.
// Relative paths return an empty root.
func (p Platform) splitRoot(s string) (string, string) {
	sep := p.Separator
	if !p.DriveLetters {
		if len(s) > 0 && s[0] == sep {
			return s[:1], s[1:]
		}

		return "", s
	}

	switch {
	case len(s) >= 2 && s[0] == sep && s[1] == sep:
		// UNC root is "\\host\share" without trailing separator.
		host := strings.IndexByte(s[2:], sep)
		if host < 0 {
			return s, ""
		}

		share := strings.IndexByte(s[2+host+1:], sep)
		if share < 0 {
			return s, ""
		}

		end := 2 + host + 1 + share
		return s[:end], s[end+1:]
	case hasDrivePrefix(s):
		if len(s) >= 3 && s[2] == sep {
			return s[:3], s[3:]
		}

		return s[:2], s[2:]
	case len(s) > 0 && s[0] == sep:
		return s[:1], s[1:]
	default:
		return "", s
	}
}

// isRoot reports whether path is its own parent directory.
func (p Platform) isRoot(s string) bool {
	root, rest := p.splitRoot(p.safeTrimTrailingSeparator(s))
	return root != "" && rest == ""
}

// segments splits path into root (when present) followed by its components.
func (p Platform) segments(s string) []string {
	s = p.safeTrimTrailingSeparator(s)
	root, rest := p.splitRoot(s)

	out := make([]string, 0, strings.Count(rest, p.sep())+2)
	if root != "" {
		out = append(out, root)
	}

	if rest != "" {
		out = append(out, strings.Split(rest, p.sep())...)
	}

	return out
}

// joinSegments is the inverse of segments.
func (p Platform) joinSegments(segs []string) string {
	if len(segs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(segs[0])

	skipSep := strings.HasSuffix(segs[0], p.sep()) || (p.DriveLetters && isBareDrive(segs[0]))
	for _, seg := range segs[1:] {
		if skipSep {
			skipSep = false
		} else {
			b.WriteByte(p.Separator)
		}

		b.WriteString(seg)
	}

	return b.String()
}

// ensureAbsoluteRoot roots path against root unless it is already absolute.
// Drive-less rooted paths ("\foo") take the drive or share of root.
func (p Platform) ensureAbsoluteRoot(root string, s string) string {
	if p.hasAbsoluteRoot(s) {
		return s
	}

	if p.DriveLetters && strings.HasPrefix(s, p.sep()) {
		base, _ := p.splitRoot(p.normalizeSeparators(root))
		if !strings.HasSuffix(base, p.sep()) {
			base += p.sep()
		}

		return base + s[1:]
	}

	if !strings.HasSuffix(root, p.sep()) {
		root += p.sep()
	}

	return root + s
}

// globEscape makes path text match itself literally.
//
// Metacharacters are wrapped into one-character sets ("[*]", "[?]", "[[]"),
// which keeps the escaped form valid on platforms without an escape character.
func (p Platform) globEscape(s string) string {
	if p.Escape {
		s = strings.ReplaceAll(s, `\`, `\\`)
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '*':
			b.WriteString("[*]")
		case '?':
			b.WriteString("[?]")
		case '[':
			if p.closesInSegment(s[i+1:]) {
				b.WriteString("[[]")
				continue
			}

			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// closesInSegment reports whether a "]" follows at least one character
// before the next separator.
func (p Platform) closesInSegment(rest string) bool {
	for j := 0; j < len(rest); j++ {
		if rest[j] == p.Separator || rest[j] == '/' {
			return false
		}

		if j >= 1 && rest[j] == ']' {
			return true
		}
	}

	return false
}

// isUNC reports whether path starts with two or more separators followed by a name.
func (p Platform) isUNC(s string) bool {
	n := 0
	for n < len(s) && s[n] == p.Separator {
		n++
	}

	return n >= 2 && n < len(s)
}

// hasDrivePrefix reports whether s starts with "X:".
func hasDrivePrefix(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}

	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isBareDrive reports whether s is exactly "X:".
func isBareDrive(s string) bool {
	return len(s) == 2 && hasDrivePrefix(s)
}

// collapseRuns replaces every run of sep with a single sep.
func collapseRuns(s string, sep byte) string {
	if !strings.Contains(s, string([]byte{sep, sep})) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	prevSep := false
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			if !prevSep {
				b.WriteByte(sep)
			}

			prevSep = true
			continue
		}

		b.WriteByte(s[i])
		prevSep = false
	}

	return b.String()
}

// splitRuns splits s on runs of sep. Leading and trailing separators yield
// empty first and last fields.
func splitRuns(s string, sep byte) []string {
	out := make([]string, 0, strings.Count(s, string(sep))+1)

	start := 0
	for i := 0; i < len(s); {
		if s[i] != sep {
			i++
			continue
		}

		out = append(out, s[start:i])
		for i < len(s) && s[i] == sep {
			i++
		}

		start = i
	}

	return append(out, s[start:])
}
