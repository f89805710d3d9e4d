package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bamsammich/fsprobe/internal/config"
	"github.com/bamsammich/fsprobe/internal/probe"
	"github.com/bamsammich/fsprobe/internal/stats"
	"github.com/bamsammich/fsprobe/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// exitError carries a process exit code out of a cobra RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// exitFor maps a run's tally to an exit code: 0 when everything succeeded,
// 1 on partial failure, 2 when nothing succeeded.
func exitFor(s stats.Snapshot) error {
	switch {
	case s.Failed == 0:
		return nil
	case s.Succeeded() > 0:
		return &exitError{code: 1}
	default:
		return &exitError{code: 2}
	}
}

// globalOpts holds the persistent flags shared by every subcommand.
type globalOpts struct {
	closeLog   func()
	logFile    string
	configFile string
	verbose    bool
	quiet      bool
}

// probeOpts holds the flags of the root probe command.
type probeOpts struct {
	hash        string
	human       bool
	times       bool
	jsonOut     bool
	noFollow    bool
	summary     bool
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := &globalOpts{}
	rootCmd := newRootCmd(opts, stdout, stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if opts.closeLog != nil {
		opts.closeLog()
	}
	if err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

func newRootCmd(opts *globalOpts, stdout, stderr io.Writer) *cobra.Command {
	var po probeOpts

	rootCmd := &cobra.Command{
		Use:   "fsprobe [flags] <path>...",
		Short: "Report file sizes and filesystem metadata",
		Long: `fsprobe runs stat(2) on each path and prints one line per path:

  File Size: <N> bytes
  Failed to get file stat.

Symlinks are followed unless --no-follow is given. The exit status is 0 when
every path could be stat'ed, 1 when some failed and 2 when all failed.

A path named like a subcommand (df, scan) runs that subcommand; use
"fsprobe -- <path>..." to probe it instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if po.showVersion {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setupLogging(opts, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if po.showVersion {
				fmt.Fprintf(stdout, "fsprobe %s\n", version)
				return nil
			}

			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			applyConfigDefaults(cmd, cfg.Defaults, &po)
			if po.hash != "" {
				if err := validateAlgo(po.hash); err != nil {
					return err
				}
			}

			collector := stats.NewCollector()
			printer := ui.NewPrinter(ui.PrinterConfig{
				Writer: stdout,
				Algo:   po.hash,
				Human:  po.human,
				Times:  po.times,
				JSON:   po.jsonOut,
			})

			for _, path := range args {
				res := probePath(path, po.noFollow, po.hash)
				collector.Record(res.Info.Size, res.Err)
				if err := printer.Print(res); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			snap := collector.Snapshot()
			slog.Debug("probe complete", "stats", snap.String())
			if po.summary {
				fmt.Fprintln(stderr, ui.FormatSummary(snap))
			}
			return exitFor(snap)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&opts.quiet, "quiet", "q", false, "suppress log output except errors")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")
	rootCmd.PersistentFlags().
		StringVar(&opts.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/fsprobe/config.toml)")

	rootCmd.Flags().BoolVar(&po.showVersion, "version", false, "print version and exit")
	rootCmd.Flags().BoolVarP(&po.human, "human", "H", false, "append a human-readable size")
	rootCmd.Flags().BoolVarP(&po.times, "times", "t", false, "print modification, access, change and birth times")
	rootCmd.Flags().BoolVar(&po.jsonOut, "json", false, "emit one JSON object per path")
	rootCmd.Flags().BoolVarP(&po.noFollow, "no-follow", "P", false, "do not follow symlinks (lstat)")
	rootCmd.Flags().BoolVar(&po.summary, "summary", false, "print a summary to stderr")
	rootCmd.Flags().
		Var(&hashFlag{algo: &po.hash}, "hash", "print a content digest (blake3 or xxhash)")

	rootCmd.AddCommand(newScanCmd(opts, stdout, stderr))
	rootCmd.AddCommand(newDfCmd(opts, stdout, stderr))
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// probePath stats path and, when algo is set and the path is a regular
// file, hashes its contents.
func probePath(path string, noFollow bool, algo string) ui.Result {
	var (
		info probe.Info
		err  error
	)
	if noFollow {
		info, err = probe.Lstat(path)
	} else {
		info, err = probe.Stat(path)
	}
	res := ui.Result{Path: path, Info: info, Err: err}
	if err != nil {
		slog.Debug("stat failed", "path", path, "error", err)
		return res
	}
	slog.Debug("stat", "info", info.String())

	if algo != "" {
		if !info.Mode.IsRegular() {
			res.HashErr = fmt.Errorf("hash %s: not a regular file", path)
		} else {
			res.Digest, res.HashErr = probe.Hash(path, algo)
		}
		if res.HashErr != nil {
			slog.Warn("hash failed", "path", path, "error", res.HashErr)
		}
	}
	return res
}

// setupLogging configures the default slog logger from the persistent flags.
func setupLogging(opts *globalOpts, stderr io.Writer) error {
	logLevel := slog.LevelWarn
	if opts.verbose {
		logLevel = slog.LevelDebug
	} else if opts.quiet {
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	var logHandler slog.Handler = textHandler
	if opts.logFile != "" {
		lf, err := os.Create(opts.logFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		opts.closeLog = func() { _ = lf.Close() }
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}
	slog.SetDefault(slog.New(logHandler))
	return nil
}

// loadConfig reads the config file named by --config, or the optional XDG
// config. A broken XDG config is logged and ignored; a broken explicit one
// is an error.
func loadConfig(path string) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg, err = config.Load()
		if err != nil {
			slog.Warn("failed to load config", "path", config.Path(), "error", err)
			cfg = config.Config{}
		}
	}
	ui.ApplyTheme(cfg.Theme)
	return cfg, nil
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig, po *probeOpts) {
	if !cmd.Flags().Changed("human") && defaults.Human != nil {
		po.human = *defaults.Human
	}
	if !cmd.Flags().Changed("no-follow") && defaults.Follow != nil {
		po.noFollow = !*defaults.Follow
	}
	if !cmd.Flags().Changed("json") && defaults.JSON != nil {
		po.jsonOut = *defaults.JSON
	}
	if !cmd.Flags().Changed("hash") && defaults.Hash != nil {
		po.hash = normalizeAlgo(*defaults.Hash)
	}
}
