// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// voter-lookup is a terminal UI for searching the ward's electoral
// roll. It fetches the whole roll once at startup, then filters it
// locally as you type: suggestions appear under the search box,
// matches are listed as a table (wide terminals) or cards, and any
// record opens in a detail panel.
//
// With --query it runs one search without the UI and prints the
// matches to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/voterlookup/lib/cli"
	"github.com/bureau-foundation/voterlookup/lib/config"
	"github.com/bureau-foundation/voterlookup/lib/lookupui"
	"github.com/bureau-foundation/voterlookup/lib/version"
	"github.com/bureau-foundation/voterlookup/lib/voter"
	"github.com/bureau-foundation/voterlookup/lib/voterstore"
)

// defaultReportWidth is the card width for one-shot output when
// stdout is not a terminal.
const defaultReportWidth = 80

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !cli.Silent(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath  string
		endpoint    string
		timeout     string
		filePath    string
		query       string
		logOutput   string
		showVersion bool
	)

	flagSet := pflag.NewFlagSet("voter-lookup", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "YAML config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&endpoint, "url", voterstore.DefaultEndpoint, "voter API endpoint")
	flagSet.StringVar(&timeout, "timeout", voterstore.DefaultTimeout.String(), "request timeout")
	flagSet.StringVar(&filePath, "file", "", "load the roll from a local JSON file instead of the endpoint")
	flagSet.StringVar(&query, "query", "", "search once and print the matches instead of starting the UI")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&showVersion, "version", false, "print version information")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stderr)
			return nil
		}
		return cli.Validation("%w", err).WithHint("Run 'voter-lookup --help' for usage.")
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, stderr)
		return nil
	}
	if showVersion {
		fmt.Fprintln(stdout, version.Binary("voter-lookup"))
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return cli.Validation("unexpected argument: %s", rest[0]).
			WithHint("Use --query to search without the interactive UI.")
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cli.NotFound("%w", err)
		}
		return cli.Validation("%w", err)
	}
	if flagSet.Changed("url") {
		cfg.Endpoint = endpoint
	}
	if flagSet.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flagSet.Changed("file") {
		cfg.File = filePath
	}
	if flagSet.Changed("log-output") {
		cfg.LogOutput = logOutput
	}
	if err := cfg.Validate(); err != nil {
		return cli.Validation("invalid configuration: %w", err)
	}

	if flagSet.Changed("query") {
		return runQuery(cfg, query, stdout)
	}
	return runInteractive(cfg)
}

func printHelp(flagSet *pflag.FlagSet, writer io.Writer) {
	fmt.Fprintf(writer, `voter-lookup — search the ward electoral roll from the terminal.

Fetches the full roll once at startup and filters it locally by name,
voter ID card number, or mobile number. Type to search; Enter or a
click opens a record's full details.

Usage:
  voter-lookup [flags]

Examples:
  # Open the search UI against the ward endpoint
  voter-lookup

  # Search once and print the matches
  voter-lookup --query patil

  # Work offline from a saved copy of the roll
  voter-lookup --file voters.json

Flags:
`)
	flagSet.SetOutput(writer)
	flagSet.PrintDefaults()
}

// newLoader picks the dataset source: the local file when one is
// configured, otherwise the HTTP endpoint.
func newLoader(cfg *config.Config) voterstore.Loader {
	if cfg.File != "" {
		return voterstore.NewFileLoader(cfg.File)
	}
	return voterstore.NewHTTPLoader(cfg.Endpoint, cfg.RequestTimeout())
}

// runInteractive runs the search UI. Log records at warn and above
// go to the status bar through a TUILogHandler, since writing to
// stderr would corrupt the alt-screen display. --log-output adds a
// JSON file capturing everything at debug.
func runInteractive(cfg *config.Config) error {
	tuiHandler := lookupui.NewTUILogHandler(slog.LevelWarn)

	var handler slog.Handler = tuiHandler
	if cfg.LogOutput != "" {
		fileHandler, fileCloser, err := openFileLogHandler(cfg.LogOutput)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", cfg.LogOutput, err)
		}
		defer fileCloser()
		handler = fanoutHandler{tuiHandler, fileHandler}
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	store := voterstore.NewStore(newLoader(cfg), logger)
	model := lookupui.NewModel(store)
	model.SetLogger(logger)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	tuiHandler.SetProgram(program)

	_, err := program.Run()
	return err
}

// runQuery loads the roll, prints the report for query, and returns
// an ExitError with code 1 when a non-empty query matches nothing.
func runQuery(cfg *config.Config, query string, stdout io.Writer) error {
	logger := cli.NewCommandLogger(cli.ParseLevel(cfg.LogLevel))
	if cfg.LogOutput != "" {
		fileHandler, fileCloser, err := openFileLogHandler(cfg.LogOutput)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", cfg.LogOutput, err)
		}
		defer fileCloser()
		logger = slog.New(fanoutHandler{logger.Handler(), fileHandler})
	}

	width := defaultReportWidth
	if file, ok := stdout.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if columns, _, err := term.GetSize(int(file.Fd())); err == nil && columns > 0 {
			width = columns
		}
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	store := voterstore.NewStore(newLoader(cfg), logger)
	result, err := store.Load(context.Background())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cli.NotFound("%w", err).WithHint("Check the --file path.")
		}
		hint := "Check the network connection, or pass --file with a saved copy of the roll."
		if cfg.File != "" {
			hint = "Check that the file contains the roll as JSON."
		}
		return cli.Transient("%w", err).WithHint(hint)
	}

	if err := lookupui.WriteReport(stdout, result.Records, query, width); err != nil {
		return cli.Internal("writing results: %w", err)
	}

	if strings.TrimSpace(query) != "" && len(voter.Derive(result.Records, query).Results) == 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
