// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package cmd

import (
	"github.com/spf13/cobra"
)

// NewInspectCommand creates the inspect subcommand.
func NewInspectCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <pattern>...",
		Short: "Show how patterns are rooted and where a walk would start",
		Example: `  pathglob inspect 'src/**/*.go'
  pathglob inspect --platform windows --cwd 'C:\work' '!build\'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			reports := make([]patternReport, 0, len(args))
			for _, raw := range args {
				p, err := s.compile(raw)
				if err != nil {
					return err
				}
				reports = append(reports, newPatternReport(p))
			}

			return s.out.printPatterns(reports)
		},
	}
}
