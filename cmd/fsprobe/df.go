package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bamsammich/fsprobe/internal/diskspace"
	"github.com/bamsammich/fsprobe/internal/stats"
	"github.com/bamsammich/fsprobe/internal/ui"
)

func newDfCmd(opts *globalOpts, stdout, stderr io.Writer) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:           "df [path]...",
		Short:         "Report capacity of the filesystems holding each path",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			if _, err := loadConfig(opts.configFile); err != nil {
				return err
			}

			collector := stats.NewCollector()
			var rows []diskspace.Usage
			for _, path := range args {
				u, err := diskspace.Query(path)
				collector.Record(0, err)
				if err != nil {
					slog.Debug("statfs failed", "path", path, "error", err)
					ui.RenderUsageError(stderr, path, err)
					continue
				}
				rows = append(rows, u)
			}

			if len(rows) > 0 {
				styled := !noColor && isTerminal(stdout)
				if err := ui.RenderUsage(stdout, rows, styled); err != nil {
					return err
				}
			}
			return exitFor(collector.Snapshot())
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsTTY(f.Fd())
}
