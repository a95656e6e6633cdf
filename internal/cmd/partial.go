// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewPartialCommand creates the partial subcommand.
func NewPartialCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "partial <pattern> <path>...",
		Short: "Report which directories a walker must descend into",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			p, err := s.compile(args[0])
			if err != nil {
				return err
			}

			ev := evaluation{Pattern: newPatternReport(p)}
			for _, path := range args[1:] {
				ok := p.PartialMatch(path)
				s.logger.Debug("partial match evaluated", slog.String("path", path), slog.Bool("partial", ok))
				ev.Partial = append(ev.Partial, partialReport{Path: path, Partial: ok})
			}

			return s.out.printEvaluation(ev)
		},
	}
}
