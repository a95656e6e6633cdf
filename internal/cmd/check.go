// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pathglob"
)

// errCheckFailed is returned when at least one pattern file is invalid.
var errCheckFailed = errors.New("pattern check failed")

// NewCheckCommand creates the check subcommand.
func NewCheckCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate pattern files",
		Long: `Validate pattern files.

Each file holds one pattern per line. Blank lines and lines starting with
"#" are skipped. Every file is reported, and the command fails when any
file contains an invalid pattern.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			reports := make([]fileReport, 0, len(args))
			failed := 0
			for _, file := range args {
				report := fileReport{File: file}

				patterns, err := pathglob.LoadPatternsFile(file, s.opts)
				if err != nil {
					failed++
					report.Error = err.Error()
					s.logger.Warn("pattern file rejected", slog.String("file", file), slog.Any("error", err))
				} else {
					for _, p := range patterns {
						report.Patterns = append(report.Patterns, newPatternReport(p))
					}
					s.logger.Info("pattern file loaded", slog.String("file", file), slog.Int("patterns", len(patterns)))
				}

				reports = append(reports, report)
			}

			if err := s.out.printFiles(reports); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files invalid", errCheckFailed, failed, len(args))
			}

			return nil
		},
	}
}
