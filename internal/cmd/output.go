// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pathglob"
	"github.com/woozymasta/pathglob/internal/config"
)

// patternReport describes one compiled pattern.
type patternReport struct {
	Source            string `json:"source" yaml:"source"`
	Rooted            string `json:"rooted" yaml:"rooted"`
	SearchPath        string `json:"search_path" yaml:"search_path"`
	Platform          string `json:"platform" yaml:"platform"`
	Negate            bool   `json:"negate" yaml:"negate"`
	TrailingSeparator bool   `json:"trailing_separator" yaml:"trailing_separator"`
}

// matchReport is the full match outcome for one candidate path.
type matchReport struct {
	Path    string             `json:"path" yaml:"path"`
	Kind    pathglob.MatchKind `json:"kind" yaml:"kind"`
	Matched bool               `json:"matched" yaml:"matched"`
}

// partialReport is the partial match outcome for one candidate path.
type partialReport struct {
	Path    string `json:"path" yaml:"path"`
	Partial bool   `json:"partial" yaml:"partial"`
}

// evaluation groups a pattern with the results computed against it.
type evaluation struct {
	Pattern patternReport   `json:"pattern" yaml:"pattern"`
	Matches []matchReport   `json:"matches,omitempty" yaml:"matches,omitempty"`
	Partial []partialReport `json:"partial,omitempty" yaml:"partial,omitempty"`
}

// fileReport is the validation outcome of one pattern file.
type fileReport struct {
	File     string          `json:"file" yaml:"file"`
	Error    string          `json:"error,omitempty" yaml:"error,omitempty"`
	Patterns []patternReport `json:"patterns,omitempty" yaml:"patterns,omitempty"`
}

func newPatternReport(p *pathglob.Pattern) patternReport {
	return patternReport{
		Source:            p.Source(),
		Rooted:            p.String(),
		SearchPath:        p.SearchPath(),
		Platform:          p.Platform().Name,
		Negate:            p.Negate(),
		TrailingSeparator: p.TrailingSeparator(),
	}
}

// printer renders reports in the configured format.
type printer struct {
	w      io.Writer
	format string

	label *color.Color
	good  *color.Color
	weak  *color.Color
	bad   *color.Color
}

func newPrinter(w io.Writer, cfg config.OutputConfig) *printer {
	enabled := useColor(w, cfg.Color)

	paint := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}

	return &printer{
		w:      w,
		format: cfg.Format,
		label:  paint(color.FgCyan, color.Bold),
		good:   paint(color.FgGreen),
		weak:   paint(color.FgYellow),
		bad:    paint(color.FgRed),
	}
}

// useColor resolves the color mode against the output writer.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// structured writes v as JSON or YAML. It reports false for text format.
func (p *printer) structured(v any) (bool, error) {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)

	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}

	return false, nil
}

func (p *printer) printPatterns(reports []patternReport) error {
	if done, err := p.structured(reports); done {
		return err
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.writePattern(r)
	}

	return nil
}

func (p *printer) printEvaluation(ev evaluation) error {
	if done, err := p.structured(ev); done {
		return err
	}

	p.writePattern(ev.Pattern)

	for _, m := range ev.Matches {
		c := p.bad
		switch {
		case m.Matched:
			c = p.good
		case m.Kind != pathglob.MatchNone:
			c = p.weak
		}
		fmt.Fprintf(p.w, "%s %s\n", c.Sprintf("%-9s", m.Kind), m.Path)
	}

	for _, r := range ev.Partial {
		c, word := p.bad, "no"
		if r.Partial {
			c, word = p.good, "yes"
		}
		fmt.Fprintf(p.w, "%s %s\n", c.Sprintf("%-3s", word), r.Path)
	}

	return nil
}

func (p *printer) printFiles(reports []fileReport) error {
	if done, err := p.structured(reports); done {
		return err
	}

	for _, r := range reports {
		if r.Error != "" {
			fmt.Fprintf(p.w, "%s %s: %s\n", p.bad.Sprint("FAIL"), r.File, r.Error)
			continue
		}

		fmt.Fprintf(p.w, "%s %s (%d patterns)\n", p.good.Sprint("OK"), r.File, len(r.Patterns))
		for _, pr := range r.Patterns {
			mark := " "
			if pr.Negate {
				mark = "!"
			}
			fmt.Fprintf(p.w, "  %s %s -> %s\n", mark, pr.Rooted, pr.SearchPath)
		}
	}

	return nil
}

func (p *printer) writePattern(r patternReport) {
	row := func(name string, value any) {
		fmt.Fprintf(p.w, "%s %v\n", p.label.Sprintf("%-19s", name+":"), value)
	}

	row("pattern", r.Source)
	row("rooted", r.Rooted)
	row("search path", r.SearchPath)
	row("platform", r.Platform)
	row("negate", r.Negate)
	row("trailing separator", r.TrailingSeparator)
}
