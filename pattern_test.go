// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	posixOpts = Options{
		Platform:   PlatformPOSIX,
		WorkingDir: "/work",
	}
	windowsOpts = Options{
		Platform:   PlatformWindows,
		WorkingDir: `C:\work`,
	}
)

func mustPattern(t testing.TB, raw string, opts Options) *Pattern {
	t.Helper()

	p, err := NewWithOptions(raw, opts)
	if err != nil {
		t.Fatalf("NewWithOptions(%q): %v", raw, err)
	}

	return p
}

func TestPatternNegation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		negate bool
		search string
	}{
		{"foo", false, "/work/foo"},
		{"!foo", true, "/work/foo"},
		{"!!foo", false, "/work/foo"},
		{"!!!foo", true, "/work/foo"},
		{" ! foo ", true, "/work/foo"},
	}

	for _, tt := range tests {
		p := mustPattern(t, tt.raw, posixOpts)
		if p.Negate() != tt.negate {
			t.Fatalf("%q Negate()=%v, want %v", tt.raw, p.Negate(), tt.negate)
		}

		if p.SearchPath() != tt.search {
			t.Fatalf("%q SearchPath()=%q, want %q", tt.raw, p.SearchPath(), tt.search)
		}
	}
}

func TestPatternTrailingSeparator(t *testing.T) {
	t.Parallel()

	p := mustPattern(t, "/a/b/", posixOpts)
	if !p.TrailingSeparator() {
		t.Fatalf("/a/b/ must have trailing separator")
	}

	for _, path := range []string{"/a/b", "/a/b/", "/a//b"} {
		if got := p.Match(path); got != MatchDirectoryOnly {
			t.Fatalf("Match(%q)=%v, want %v", path, got, MatchDirectoryOnly)
		}
	}

	if got := p.Match("/a/b/c"); got != MatchNone {
		t.Fatalf("Match(/a/b/c)=%v, want none", got)
	}

	if mustPattern(t, "/a/b", posixOpts).TrailingSeparator() {
		t.Fatalf("/a/b must not have trailing separator")
	}
}

func TestPatternSearchPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		search string
		rooted string
	}{
		{"/a/b*/c", "/a", "/a/b*/c"},
		{"/a/[b]/c", "/a/b/c", "/a/[b]/c"},
		{"/a/b/c", "/a/b/c", "/a/b/c"},
		{"/*", "/", "/*"},
		{"/a/**", "/a", "/a/**"},
		{"foo/*.txt", "/work/foo", "/work/foo/*.txt"},
		{"./src/*", "/work/src", "/work/src/*"},
		{".", "/work", "/work"},
		{"./", "/work", "/work/"},
		{"//a///b", "/a/b", "/a/b"},
		{`/a/\*/b`, "/a/*/b", `/a/\*/b`},
		{"~/x", "/work/~/x", "/work/~/x"},
	}

	for _, tt := range tests {
		p := mustPattern(t, tt.raw, posixOpts)
		if p.SearchPath() != tt.search {
			t.Fatalf("%q SearchPath()=%q, want %q", tt.raw, p.SearchPath(), tt.search)
		}

		if p.String() != tt.rooted {
			t.Fatalf("%q String()=%q, want %q", tt.raw, p.String(), tt.rooted)
		}
	}
}

func TestPatternCharacterSetEqualsLiteral(t *testing.T) {
	t.Parallel()

	set := mustPattern(t, "/a/[b]/c", posixOpts)
	lit := mustPattern(t, "/a/b/c", posixOpts)

	if set.SearchPath() != lit.SearchPath() {
		t.Fatalf("search paths differ: %q vs %q", set.SearchPath(), lit.SearchPath())
	}

	for _, path := range []string{"/a/b/c", "/a/c/c", "/a/b", "/a/[b]/c"} {
		if set.Match(path) != lit.Match(path) {
			t.Fatalf("Match(%q) differs: %v vs %v", path, set.Match(path), lit.Match(path))
		}

		if set.PartialMatch(path) != lit.PartialMatch(path) {
			t.Fatalf("PartialMatch(%q) differs", path)
		}
	}
}

func TestPatternWorkingDirIsEscaped(t *testing.T) {
	t.Parallel()

	p := mustPattern(t, "x", Options{
		Platform:   PlatformPOSIX,
		WorkingDir: "/w[1]/a*b",
	})

	if want := "/w[[]1]/a[*]b/x"; p.String() != want {
		t.Fatalf("String()=%q, want %q", p.String(), want)
	}

	if want := "/w[1]/a*b/x"; p.SearchPath() != want {
		t.Fatalf("SearchPath()=%q, want %q", p.SearchPath(), want)
	}

	if got := p.Match("/w[1]/a*b/x"); got != MatchFull {
		t.Fatalf("Match(literal cwd)=%v, want full", got)
	}

	if got := p.Match("/w1/aZb/x"); got != MatchNone {
		t.Fatalf("Match(/w1/aZb/x)=%v, want none", got)
	}
}

func TestPatternExpandHome(t *testing.T) {
	t.Parallel()

	opts := posixOpts
	opts.ExpandHome = true
	opts.HomeDir = "/home/u"

	p := mustPattern(t, "~/src/*", opts)
	if p.SearchPath() != "/home/u/src" {
		t.Fatalf("SearchPath()=%q, want /home/u/src", p.SearchPath())
	}

	if got := p.Match("/home/u/src/a.go"); got != MatchFull {
		t.Fatalf("Match=%v, want full", got)
	}

	if got := mustPattern(t, "~", opts).SearchPath(); got != "/home/u" {
		t.Fatalf("~ SearchPath()=%q, want /home/u", got)
	}
}

func TestPatternDotUsesProcessWorkingDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("process working directory layout differs on windows")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}

	p, err := New(".")
	if err != nil {
		t.Fatalf("New(.): %v", err)
	}

	if want := filepath.Clean(wd); p.SearchPath() != want {
		t.Fatalf("SearchPath()=%q, want %q", p.SearchPath(), want)
	}

	if got := p.Match(wd); got != MatchFull {
		t.Fatalf("Match(%q)=%v, want full", wd, got)
	}
}

func TestPatternConstructionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		opts Options
		want error
	}{
		{"", posixOpts, ErrEmptyPattern},
		{"   ", posixOpts, ErrEmptyPattern},
		{"!", posixOpts, ErrEmptyPattern},
		{"!!", posixOpts, ErrEmptyPattern},
		{"/a/../b", posixOpts, ErrRelativePathing},
		{"..", posixOpts, ErrRelativePathing},
		{"../a", posixOpts, ErrRelativePathing},
		{"a/./b", posixOpts, ErrRelativePathing},
		{"a/[.][.]/b", posixOpts, ErrRelativePathing},
		{"C:", windowsOpts, ErrDriveRelativeRoot},
		{"c:foo", windowsOpts, ErrDriveRelativeRoot},
		{`\\*\share\a`, windowsOpts, ErrGlobInRoot},
		{`C:\a\..\b`, windowsOpts, ErrRelativePathing},
		{"a", Options{Platform: PlatformPOSIX, WorkingDir: "relative"}, ErrInvalidWorkingDir},
		{"a", Options{Platform: PlatformWindows, WorkingDir: "/work"}, ErrInvalidWorkingDir},
		{"/a/[z-a]", posixOpts, ErrInvalidPattern},
		{"src/x[b-a]*.go", posixOpts, ErrInvalidPattern},
		{`C:\a\[z-a]`, windowsOpts, ErrInvalidPattern},
	}

	for _, tt := range tests {
		_, err := NewWithOptions(tt.raw, tt.opts)
		if !errors.Is(err, tt.want) {
			t.Fatalf("NewWithOptions(%q) err=%v, want %v", tt.raw, err, tt.want)
		}
	}
}

func TestPatternDriveLetterIsPlainNameOnPOSIX(t *testing.T) {
	t.Parallel()

	p := mustPattern(t, "C:", posixOpts)
	if p.SearchPath() != "/work/C:" {
		t.Fatalf("SearchPath()=%q, want /work/C:", p.SearchPath())
	}
}

func TestPatternMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		want    MatchKind
	}{
		{"/a/b", "/a/b", MatchFull},
		{"/a/b", "/a/b/", MatchFull},
		{"/a/b", "/a//b", MatchFull},
		{"/a/b", "/a/b/c", MatchNone},
		{"/a/b", "/a", MatchNone},
		{"/A/b", "/a/b", MatchNone},
		{"/a/*", "/a/b", MatchFull},
		{"/a/*", "/a/.hidden", MatchFull},
		{"/a/*", "/a", MatchNone},
		{"/a/*", "/a/b/c", MatchNone},
		{"/a/?", "/a/b", MatchFull},
		{"/a/?", "/a/bc", MatchNone},
		{"/a/*.txt", "/a/x.txt", MatchFull},
		{"/a/*.txt", "/a/x.go", MatchNone},
		{"/a/[a-c]x", "/a/bx", MatchFull},
		{"/a/[a-c]x", "/a/dx", MatchNone},
		{"/a/[!b]", "/a/c", MatchFull},
		{"/a/[!b]", "/a/b", MatchNone},
		{"/a/[^b]", "/a/c", MatchFull},
		{"/a/**", "/a", MatchFull},
		{"/a/**", "/a/b", MatchFull},
		{"/a/**", "/a/b/c/d", MatchFull},
		{"/a/**", "/b", MatchNone},
		{"/a/**/c", "/a/c", MatchFull},
		{"/a/**/c", "/a/x/y/c", MatchFull},
		{"/a/**/c", "/a/x/y/d", MatchNone},
		{"/a/**/**/c", "/a/c", MatchFull},
		{"/**", "/", MatchFull},
		{"/**/*.go", "/x/y/z.go", MatchFull},
		{"/a/{b,c}", "/a/{b,c}", MatchFull},
		{"/a/{b,c}", "/a/b", MatchNone},
		{"/a/{b,c}*", "/a/{b,c}x", MatchFull},
		{"/a/{b,c}*", "/a/bx", MatchNone},
		{"/a/#b", "/a/#b", MatchFull},
		{"/a/+(b)", "/a/+(b)", MatchFull},
		{"/a/+(b)", "/a/b", MatchNone},
		{`/a/\*`, "/a/*", MatchFull},
		{`/a/\*`, "/a/b", MatchNone},
		{`/a/x\*y*`, "/a/x*yz", MatchFull},
		{`/a/x\*y*`, "/a/xzyz", MatchNone},
		{"/a/b*", "/a/b", MatchFull},
		{"/a/*", "/a/..", MatchNone},
		{"/a/**", "/a/../b", MatchNone},
		{"/a/b/", "/a/b", MatchDirectoryOnly},
		{"/", "/", MatchDirectoryOnly},
		{"/a/b", "a/b", MatchNone},
	}

	for _, tt := range tests {
		p := mustPattern(t, tt.pattern, posixOpts)
		if got := p.Match(tt.path); got != tt.want {
			t.Fatalf("%q Match(%q)=%v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestPatternPartialMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/a/b/*.txt", "/", true},
		{"/a/b/*.txt", "/a", true},
		{"/a/b/*.txt", "/a/", true},
		{"/a/b/*.txt", "/a/b", true},
		{"/a/b/*.txt", "/a/c", false},
		{"/a/b/*.txt", "/b", false},
		{"/a/b/*.txt", "/a/b/c.txt", true},
		{"/a/b/*.txt", "/a/b/c.go", false},
		{"/a/b/*.txt", "/a/b/c.txt/d", true},
		{"/a/b", "/a/b/c/d", true},
		{"/a/**/z", "/a/x/y", true},
		{"/a/**/z", "/b/x", false},
		{"/a/**", "/a/x/y", true},
		{"/a/*/c", "/a/b", true},
		{"/a/*/c", "/a/b/d", false},
		{"/A/b", "/a", false},
		{"/a/b/*.txt", "", false},
		{"/**", "", false},
	}

	for _, tt := range tests {
		p := mustPattern(t, tt.pattern, posixOpts)
		if got := p.PartialMatch(tt.path); got != tt.want {
			t.Fatalf("%q PartialMatch(%q)=%v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestPatternNonUTF8(t *testing.T) {
	t.Parallel()

	p := mustPattern(t, "/a/\xff", posixOpts)
	if p.SearchPath() != "/a/\xff" {
		t.Fatalf("SearchPath()=%q, want %q", p.SearchPath(), "/a/\xff")
	}

	if got := p.Match("/a/\xff"); got != MatchFull {
		t.Fatalf("Match(/a/\\xff)=%v, want full", got)
	}

	if got := p.Match("/a/\xfe"); got != MatchNone {
		t.Fatalf("Match(/a/\\xfe)=%v, want none", got)
	}

	opts := Options{Platform: PlatformPOSIX, WorkingDir: "/w\xfe"}
	rel := mustPattern(t, "x/*", opts)
	if rel.SearchPath() != "/w\xfe/x" {
		t.Fatalf("SearchPath()=%q, want %q", rel.SearchPath(), "/w\xfe/x")
	}

	if got := rel.Match("/w\xfe/x/y"); got != MatchFull {
		t.Fatalf("Match(/w\\xfe/x/y)=%v, want full", got)
	}

	if !rel.PartialMatch("/w\xfe") {
		t.Fatalf("PartialMatch(/w\\xfe)=false, want true")
	}

	wild := mustPattern(t, "/a/\xff*", posixOpts)
	if got := wild.Match("/a/\xffz"); got != MatchFull {
		t.Fatalf("Match(/a/\\xffz)=%v, want full", got)
	}

	win := mustPattern(t, "C:\\D\xff\\*", windowsOpts)
	if win.SearchPath() != "C:\\D\xff" {
		t.Fatalf("SearchPath()=%q, want %q", win.SearchPath(), "C:\\D\xff")
	}

	if got := win.Match("c:\\d\xff\\file"); got != MatchFull {
		t.Fatalf("Match(c:\\d\\xff\\file)=%v, want full", got)
	}
}

func TestPatternWindows(t *testing.T) {
	t.Parallel()

	p := mustPattern(t, `C:\Foo\*.TXT`, windowsOpts)
	if p.SearchPath() != `C:\Foo` {
		t.Fatalf("SearchPath()=%q, want C:\\Foo", p.SearchPath())
	}

	matches := []struct {
		path string
		want MatchKind
	}{
		{`C:\Foo\bar.txt`, MatchFull},
		{`c:\foo\BAR.TXT`, MatchFull},
		{`C:/foo/bar.txt`, MatchFull},
		{`C:\Foo\bar.go`, MatchNone},
		{`D:\Foo\bar.txt`, MatchNone},
	}

	for _, tt := range matches {
		if got := p.Match(tt.path); got != tt.want {
			t.Fatalf("Match(%q)=%v, want %v", tt.path, got, tt.want)
		}
	}

	partials := []struct {
		path string
		want bool
	}{
		{`C:\`, true},
		{`c:\`, true},
		{`D:\`, false},
		{`C:\foo`, true},
		{`C:\bar`, false},
	}

	for _, tt := range partials {
		if got := p.PartialMatch(tt.path); got != tt.want {
			t.Fatalf("PartialMatch(%q)=%v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPatternWindowsRooting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		rooted string
		search string
	}{
		{`src/*.go`, `C:\work\src\*.go`, `C:\work\src`},
		{`.\src\*`, `C:\work\src\*`, `C:\work\src`},
		{`\foo\*`, `C:\foo\*`, `C:\foo`},
		{`D:\x\[y]\*`, `D:\x\[y]\*`, `D:\x\y`},
		{`\\host\share\dir\*`, `\\host\share\dir\*`, `\\host\share\dir`},
		{`C:\dir\`, `C:\dir\`, `C:\dir`},
	}

	for _, tt := range tests {
		p := mustPattern(t, tt.raw, windowsOpts)
		if p.String() != tt.rooted {
			t.Fatalf("%q String()=%q, want %q", tt.raw, p.String(), tt.rooted)
		}

		if p.SearchPath() != tt.search {
			t.Fatalf("%q SearchPath()=%q, want %q", tt.raw, p.SearchPath(), tt.search)
		}
	}
}

func TestPatternWindowsUNC(t *testing.T) {
	t.Parallel()

	p := mustPattern(t, `\\host\share\dir\*`, windowsOpts)

	if got := p.Match(`\\HOST\share\dir\a.txt`); got != MatchFull {
		t.Fatalf("Match(UNC)=%v, want full", got)
	}

	if !p.PartialMatch(`\\host\share`) {
		t.Fatalf("UNC root must partially match")
	}

	if !p.PartialMatch(`\\host\share\DIR`) {
		t.Fatalf("UNC dir must partially match")
	}

	if p.PartialMatch(`\\other\share`) {
		t.Fatalf("foreign UNC root must not partially match")
	}
}

func TestPatternSearchPathIsMatchPrefix(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"/a/b*/c", "/a/bx/c"},
		{"/a/**/c", "/a/c"},
		{"/a/**/c", "/a/x/y/c"},
		{"/a/[b]/c", "/a/b/c"},
		{"/a/b/", "/a/b"},
		{"/*", "/x"},
		{"/a/?/**", "/a/b"},
	}

	for _, pair := range pairs {
		p := mustPattern(t, pair[0], posixOpts)
		if p.Match(pair[1]) == MatchNone {
			t.Fatalf("%q must match %q", pair[0], pair[1])
		}

		search := p.SearchPath()
		if !strings.HasPrefix(pair[1], search) {
			t.Fatalf("%q: path %q does not start with search path %q", pair[0], pair[1], search)
		}

		rest := pair[1][len(search):]
		if rest != "" && !strings.HasSuffix(search, "/") && !strings.HasPrefix(rest, "/") {
			t.Fatalf("%q: search path %q is not a segment prefix of %q", pair[0], search, pair[1])
		}
	}
}

func TestPatternPartialMatchMonotonic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		opts    Options
		pattern string
		path    string
	}{
		{posixOpts, "/a/b*/c", "/a/bx/c"},
		{posixOpts, "/a/**/c", "/a/x/y/c"},
		{posixOpts, "/a/*/*.go", "/a/pkg/main.go"},
		{posixOpts, "/a/b/", "/a/b"},
		{posixOpts, "rel/**", "/work/rel/x/y"},
		{windowsOpts, `C:\a\*\c`, `C:\a\B\c`},
		{windowsOpts, `\\host\share\**\x`, `\\host\share\y\x`},
	}

	for _, tt := range cases {
		p := mustPattern(t, tt.pattern, tt.opts)
		if p.Match(tt.path) == MatchNone {
			t.Fatalf("%q must match %q", tt.pattern, tt.path)
		}

		segs := tt.opts.Platform.segments(tt.path)
		for i := 1; i <= len(segs); i++ {
			ancestor := tt.opts.Platform.joinSegments(segs[:i])
			if !p.PartialMatch(ancestor) {
				t.Fatalf("%q PartialMatch(%q)=false for ancestor of %q", tt.pattern, ancestor, tt.path)
			}
		}
	}
}

func TestPatternRoundTrip(t *testing.T) {
	t.Parallel()

	paths := []string{"/", "/a", "/a/b", "/a/b/c.txt", "/a/bb/c", "/work/x"}
	for _, raw := range []string{"/a/b*/c", "!/a/**", "x/", "/a/[b]/c.txt"} {
		p1 := mustPattern(t, raw, posixOpts)
		p2 := mustPattern(t, raw, posixOpts)

		if p1.Negate() != p2.Negate() ||
			p1.SearchPath() != p2.SearchPath() ||
			p1.TrailingSeparator() != p2.TrailingSeparator() ||
			p1.String() != p2.String() {
			t.Fatalf("%q compiled differently", raw)
		}

		for _, path := range paths {
			if p1.Match(path) != p2.Match(path) || p1.PartialMatch(path) != p2.PartialMatch(path) {
				t.Fatalf("%q results differ for %q", raw, path)
			}
		}
	}
}

func TestPatternConcurrentUse(t *testing.T) {
	t.Parallel()

	p := mustPattern(t, `C:\src\**\*.GO`, windowsOpts)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if p.Match(`c:\SRC\pkg\main.go`) != MatchFull {
					t.Errorf("concurrent Match failed")
					return
				}

				if !p.PartialMatch(`C:\src\pkg`) {
					t.Errorf("concurrent PartialMatch failed")
					return
				}
			}
		}()
	}

	wg.Wait()
}

func TestMatchKind(t *testing.T) {
	t.Parallel()

	if !MatchFull.Matches(false) || !MatchFull.Matches(true) {
		t.Fatalf("full must match files and directories")
	}

	if MatchDirectoryOnly.Matches(false) || !MatchDirectoryOnly.Matches(true) {
		t.Fatalf("directory-only must match directories only")
	}

	if MatchNone.Matches(true) {
		t.Fatalf("none must not match")
	}

	if MatchDirectoryOnly.String() != "directory" || MatchKind(9).String() != "MatchKind(9)" {
		t.Fatalf("unexpected names: %s %s", MatchDirectoryOnly, MatchKind(9))
	}
}

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	p, err := ParsePlatform("Windows")
	if err != nil || p != PlatformWindows {
		t.Fatalf("ParsePlatform(Windows)=%v, %v", p, err)
	}

	if _, err := ParsePlatform("plan9"); !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("ParsePlatform(plan9) err=%v, want ErrUnknownPlatform", err)
	}

	var decoded Platform
	if err := decoded.UnmarshalText([]byte("posix")); err != nil || decoded != PlatformPOSIX {
		t.Fatalf("UnmarshalText(posix)=%v, %v", decoded, err)
	}
}
