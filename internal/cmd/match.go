// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewMatchCommand creates the match subcommand.
func NewMatchCommand(flags *globalFlags) *cobra.Command {
	var isDir bool

	cmd := &cobra.Command{
		Use:   "match <pattern> <path>...",
		Short: "Evaluate full matches of paths against a pattern",
		Long: `Evaluate full matches of paths against a pattern.

Each path is reported with its match kind: "full", "directory" when the
pattern ends with a separator and so only selects directories, or "none".
The matched column applies --dir to decide whether the path is selected.`,
		Args: cobra.MinimumNArgs(2),
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
				kind := p.Match(path)
				s.logger.Debug("match evaluated", slog.String("path", path), slog.String("kind", kind.String()))
				ev.Matches = append(ev.Matches, matchReport{
					Path:    path,
					Kind:    kind,
					Matched: kind.Matches(isDir),
				})
			}

			return s.out.printEvaluation(ev)
		},
	}

	cmd.Flags().BoolVarP(&isDir, "dir", "d", false, "treat candidate paths as directories")

	return cmd
}
