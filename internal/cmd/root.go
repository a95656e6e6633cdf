// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

// Package cmd implements the pathglob command line.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pathglob"
	"github.com/woozymasta/pathglob/internal/config"
	"github.com/woozymasta/pathglob/internal/logging"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// globalFlags holds persistent flag values shared by all subcommands.
type globalFlags struct {
	configPath string
	platform   string
	workingDir string
	homeDir    string
	format     string
	color      string
	logLevel   string
	expandHome bool
}

// session is the resolved configuration of one command invocation.
type session struct {
	logger *slog.Logger
	out    *printer
	opts   pathglob.Options
}

// NewRootCommand creates and returns the root cobra command for pathglob
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "pathglob",
		Short: "Inspect and evaluate rooted glob path patterns",
		Long: `pathglob compiles glob path patterns the way a directory walker sees them.

Relative patterns are rooted at the working directory, the longest literal
prefix becomes the search path, and every candidate path is answered with a
full match kind or a partial (ancestor) match.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file")
	pf.StringVar(&flags.platform, "platform", "", "path conventions: auto, posix or windows")
	pf.StringVar(&flags.workingDir, "cwd", "", "working directory used to root relative patterns")
	pf.StringVar(&flags.homeDir, "home", "", "home directory used for ~ expansion")
	pf.BoolVar(&flags.expandHome, "expand-home", false, "expand a leading ~ to the home directory")
	pf.StringVarP(&flags.format, "format", "o", "", "output format: text, json or yaml")
	pf.StringVar(&flags.color, "color", "", "colorize text output: auto, always or never")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(NewInspectCommand(flags))
	cmd.AddCommand(NewMatchCommand(flags))
	cmd.AddCommand(NewPartialCommand(flags))
	cmd.AddCommand(NewCheckCommand(flags))

	return cmd
}

// newSession loads the config file and applies flag overrides on top of it.
func newSession(cmd *cobra.Command, flags *globalFlags) (*session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("platform") {
		cfg.Platform = strings.ToLower(flags.platform)
	}
	if changed("cwd") {
		cfg.WorkingDir = flags.workingDir
	}
	if changed("home") {
		cfg.HomeDir = flags.homeDir
	}
	if changed("expand-home") {
		cfg.ExpandHome = flags.expandHome
	}
	if changed("format") {
		cfg.Output.Format = strings.ToLower(flags.format)
	}
	if changed("color") {
		cfg.Output.Color = strings.ToLower(flags.color)
	}
	if changed("log-level") {
		cfg.Log.Level = strings.ToLower(flags.logLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	opts, err := cfg.PatternOptions()
	if err != nil {
		return nil, err
	}

	return &session{
		logger: logger,
		out:    newPrinter(cmd.OutOrStdout(), cfg.Output),
		opts:   opts,
	}, nil
}

// compile builds one pattern and logs the result at debug level.
func (s *session) compile(raw string) (*pathglob.Pattern, error) {
	p, err := pathglob.NewWithOptions(raw, s.opts)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", raw, err)
	}

	s.logger.Debug("pattern compiled",
		slog.String("source", raw),
		slog.String("rooted", p.String()),
		slog.String("search_path", p.SearchPath()),
		slog.Bool("negate", p.Negate()),
		slog.String("platform", p.Platform().Name),
	)

	return p, nil
}
