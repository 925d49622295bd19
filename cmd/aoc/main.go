package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aledsdavies/advent/internal/calendar"
	"github.com/aledsdavies/advent/internal/config"
	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/input"
	"github.com/aledsdavies/advent/internal/logging"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/watch"
)

// app carries the state shared by every subcommand.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	registry       *puzzle.Registry

	configPath string
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		registry: calendar.Registry(),
	}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		FormatError(a.stderr, err, a.useColor(a.stderr))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Solve Advent of Code 2022 puzzles",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "Path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newRunCmd(a), newListCmd(a), newWatchCmd(a))
	return root
}

// setup loads the config and builds the logger unless a test already did.
func (a *app) setup() error {
	if a.cfg == nil {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logger == nil {
		lvl, err := a.cfg.Level()
		if err != nil {
			return adverrors.NewConfigError("invalid log level", err)
		}
		logger, err := logging.New(lvl, a.verbose)
		if err != nil {
			return err
		}
		a.logger = logger
	}
	return nil
}

func newRunCmd(a *app) *cobra.Command {
	var (
		all       bool
		inputPath string
	)
	cmd := &cobra.Command{
		Use:   "run <day>...",
		Short: "Solve one or more days",
		Long: `Solve one or more days and print both answers.

A day can be given by number (13), short name (day13) or part of its title
(distress). Input is read from the configured input directory unless --input
is given; --input - reads standard input.`,
		Example: "  aoc run 13\n  aoc run rope --input day09.txt\n  aoc run --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return fmt.Errorf("--all cannot be combined with day arguments")
			}
			if !all && len(args) == 0 {
				return fmt.Errorf("name at least one day, or pass --all")
			}
			if inputPath != "" && (all || len(args) != 1) {
				return fmt.Errorf("--input needs exactly one day")
			}

			days, err := a.resolve(args, all)
			if err != nil {
				return err
			}
			for i, d := range days {
				if i > 0 {
					_, _ = fmt.Fprintln(a.stdout)
				}
				if err := a.runDay(d, inputPath, len(days) > 1); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Solve every day")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file for the day (- for stdin)")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			color := a.useColor(a.stdout)
			for _, d := range a.registry.Days() {
				num := fmt.Sprintf("%2d", d.Number)
				if _, err := fmt.Fprintf(a.stdout, "%s  %s\n", Colorize(num, ColorCyan, color), d.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "watch <day>",
		Short: "Solve a day again every time its input changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == input.Stdin {
				return fmt.Errorf("watch needs a file, not standard input")
			}
			d, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			path := inputPath
			if path == "" {
				if path, err = input.Locate(a.cfg, d.Number); err != nil {
					return err
				}
			}

			rerun := func() {
				if err := a.runDay(d, path, false); err != nil {
					FormatError(a.stderr, err, a.useColor(a.stderr))
				}
			}
			rerun()
			return watch.New(path, rerun, a.logger).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file to watch")
	return cmd
}

// resolve turns the command line into days, in the order given.
func (a *app) resolve(args []string, all bool) ([]puzzle.Day, error) {
	if all {
		return a.registry.Days(), nil
	}
	days := make([]puzzle.Day, 0, len(args))
	for _, arg := range args {
		d, err := a.registry.Lookup(arg)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// runDay reads the day's input, solves it and prints the answers.
func (a *app) runDay(d puzzle.Day, path string, header bool) error {
	if path == "" {
		var err error
		if path, err = input.Locate(a.cfg, d.Number); err != nil {
			return err
		}
	}
	src, err := input.Read(path, a.stdin)
	if err != nil {
		return err
	}
	a.logger.Debug("input loaded",
		zap.String("day", d.Name()),
		zap.String("path", src.Path),
		zap.Int("bytes", src.Size()),
		zap.String("blake2b", src.Digest))

	res, err := puzzle.Solve(d, src.Text, a.logger)
	if err != nil {
		return err
	}
	return res.Write(a.stdout, header)
}
