// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/valuelog/src/config"
	"github.com/H0llyW00dzZ/valuelog/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/valuelog/src/logger"
	"github.com/H0llyW00dzZ/valuelog/src/record"
	"github.com/H0llyW00dzZ/valuelog/src/sink"
	"github.com/spf13/cobra"
)

var (
	// ErrNoValues is returned when the command is run without values to log.
	ErrNoValues = errors.New("at least one VALUE is required")
	// ErrInvalidRepeat is returned for a --repeat count below one.
	ErrInvalidRepeat = errors.New("repeat count must be at least 1")
)

type options struct {
	level        string
	configPath   string
	noColor      bool
	noTimestamp  bool
	timezone     bool
	historyLimit int
	file         string
	repeat       int
	table        bool
	stats        bool
	raw          bool
}

// Execute runs the root command with the process arguments, writing to
// os.Stdout and os.Stderr.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the valuelog command.
func NewRootCommand(version string, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	exe := posix.GetExecutableName()

	cmd := &cobra.Command{
		Use:   exe + " [flags] VALUE...",
		Short: "Pretty-print values as console log records",
		Long: `Decodes every VALUE as YAML and prints them together as one log record.
Mappings keep their key order, anchors and aliases may form cycles, and
integers too large for 64 bits are kept exactly.`,
		Example: fmt.Sprintf(`  %[1]s '{foo: 1, bar: 2}' '[1, 2]'
  %[1]s --level warn --timezone 'disk almost full' '{used: 97.5}'
  %[1]s --repeat 3 --history-limit 2 --table tick`, exe),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.level, "level", "l", "info", "record severity: info, warn or error")
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (.json, .yaml, .yml); defaults to $"+config.EnvConfigFile)
	flags.BoolVar(&opts.noColor, "no-color", false, "print without styling codes")
	flags.BoolVar(&opts.noTimestamp, "no-timestamp", false, "omit the timestamp prefix")
	flags.BoolVar(&opts.timezone, "timezone", false, "include the zone offset in timestamps")
	flags.IntVar(&opts.historyLimit, "history-limit", record.DefaultHistoryLimit, "number of records retained for --table and --stats")
	flags.StringVarP(&opts.file, "file", "f", "", "also append plain messages to this rotating log file")
	flags.IntVarP(&opts.repeat, "repeat", "r", 1, "log the values this many times")
	flags.BoolVar(&opts.table, "table", false, "print the retained history as a markdown table")
	flags.BoolVar(&opts.stats, "stats", false, "print history statistics")
	flags.BoolVar(&opts.raw, "raw", false, "log arguments as plain strings without YAML decoding")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if len(args) == 0 {
		return ErrNoValues
	}
	if opts.repeat < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidRepeat, opts.repeat)
	}

	severity, err := record.ParseSeverity(opts.level)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)

	values, err := decodeArgs(args, opts.raw)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	diag := NewDiagnosticLogger(stderr)

	var out sink.Sink = sink.NewConsole(stdout, stderr)
	if file := cfg.FileSink(); file != nil {
		defer func() {
			if err := file.Close(); err != nil {
				diag.Printf("close %s: %v", file.Path(), err)
			}
		}()
		out = sink.Multi(out, file)
	}

	console := logger.New(append(cfg.Options(),
		logger.WithUseColors(cfg.UseColors && sink.ColorSupported(stdout)),
		logger.WithSink(out),
		logger.WithErrorHandler(func(err error) { diag.Printf("%v", err) }),
	)...)

	ctx := cmd.Context()
	for range opts.repeat {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		console.Print(severity, values...)
	}

	if opts.table {
		table, err := RenderHistory(console.History(), nil)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, table); err != nil {
			return err
		}
	}
	if opts.stats {
		if _, err := fmt.Fprintln(stdout, console.HistoryStats()); err != nil {
			return err
		}
	}
	return nil
}

// applyFlags lets explicitly set flags override file and environment settings.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if opts.noColor {
		cfg.UseColors = false
	}
	if opts.noTimestamp {
		cfg.ShowTimestamp = false
	}
	if opts.timezone {
		cfg.ShowTimezone = true
	}
	if flags.Changed("history-limit") && opts.historyLimit >= 0 {
		cfg.HistoryLimit = opts.historyLimit
	}
	if opts.file != "" {
		cfg.File.Path = opts.file
	}
	// The command always prints and keeps records for --table and --stats.
	cfg.PrintMessage = true
}

func decodeArgs(args []string, raw bool) ([]any, error) {
	values := make([]any, 0, len(args))
	for _, arg := range args {
		if raw {
			values = append(values, arg)
			continue
		}
		v, err := DecodeValue(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// NewDiagnosticLogger returns the logger used for the command's own error reports.
func NewDiagnosticLogger(w io.Writer) logger.Logger {
	diag := logger.New(
		logger.WithHistoryLimit(0),
		logger.WithShowTimestamp(false),
		logger.WithUseColors(sink.ColorSupported(w)),
		logger.WithEmitRecord(false),
	)
	diag.SetOutput(w)
	return diag
}
