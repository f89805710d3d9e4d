package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bamsammich/fsprobe/internal/filter"
	"github.com/bamsammich/fsprobe/internal/probe"
	"github.com/bamsammich/fsprobe/internal/stats"
	"github.com/bamsammich/fsprobe/internal/ui"
)

func newScanCmd(opts *globalOpts, stdout, stderr io.Writer) *cobra.Command {
	var (
		sizes    filter.Range
		human    bool
		jsonOut  bool
		noFollow bool
		summary  bool
	)

	cmd := &cobra.Command{
		Use:   "scan [flags] <path>...",
		Short: "Recursively report the size of every file under each path",
		Long: `Walk each path and print "<path>: File Size: <N> bytes" for every file.
Entries that cannot be stat'ed print "<path>: Failed to get file stat." and the
walk continues. --min-size and --max-size accept sizes such as 100K or 1.5G.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sizes.Validate(); err != nil {
				return err
			}
			cfg, err := loadConfig(opts.configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("human") && cfg.Defaults.Human != nil {
				human = *cfg.Defaults.Human
			}
			if !cmd.Flags().Changed("no-follow") && cfg.Defaults.Follow != nil {
				noFollow = !*cfg.Defaults.Follow
			}
			if !cmd.Flags().Changed("json") && cfg.Defaults.JSON != nil {
				jsonOut = *cfg.Defaults.JSON
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			collector := stats.NewCollector()
			printer := ui.NewPrinter(ui.PrinterConfig{
				Writer:   stdout,
				ShowPath: true,
				Human:    human,
				JSON:     jsonOut,
			})
			scanOpts := probe.ScanOpts{
				Range:    sizes,
				NoFollow: noFollow,
				OnSkip: func(path string, info probe.Info) {
					collector.AddSkipped(1)
					slog.Debug("skipped", "path", path, "size", info.Size)
				},
			}

			for _, root := range args {
				err := probe.Scan(ctx, root, scanOpts, func(path string, info probe.Info, err error) error {
					collector.Record(info.Size, err)
					if err != nil {
						slog.Debug("stat failed", "path", path, "error", err)
					}
					if werr := printer.Print(ui.Result{Path: path, Info: info, Err: err}); werr != nil {
						return fmt.Errorf("write output: %w", werr)
					}
					return nil
				})
				if errors.Is(err, context.Canceled) {
					slog.Warn("scan interrupted", "root", root)
					return &exitError{code: 130}
				}
				if err != nil {
					return fmt.Errorf("scan %s: %w", root, err)
				}
			}

			snap := collector.Snapshot()
			slog.Debug("scan complete", "stats", snap.String())
			if summary {
				fmt.Fprintln(stderr, ui.FormatSummary(snap))
			}
			return exitFor(snap)
		},
	}

	cmd.Flags().Var(&sizeFlag{n: &sizes.Min}, "min-size", "skip files smaller than SIZE (e.g. 1M, 100K)")
	cmd.Flags().Var(&sizeFlag{n: &sizes.Max}, "max-size", "skip files larger than SIZE (e.g. 1G, 500M)")
	cmd.Flags().BoolVarP(&human, "human", "H", false, "append a human-readable size")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit one JSON object per file")
	cmd.Flags().BoolVarP(&noFollow, "no-follow", "P", false, "report symlinks instead of their targets")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a summary to stderr")
	return cmd
}
