package probe

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bamsammich/fsprobe/internal/filter"
)

// ScanOpts controls Scan.
type ScanOpts struct {
	// OnSkip is called for entries outside Range. May be nil.
	OnSkip func(path string, info Info)
	Range  filter.Range
	// NoFollow reports symlinks themselves instead of their targets.
	NoFollow bool
}

// ScanFunc receives each scanned entry. err is non-nil when the entry could
// not be read; returning a non-nil error stops the scan.
type ScanFunc func(path string, info Info, err error) error

// Scan walks root and calls fn for every non-directory entry whose size is
// within opts.Range. Per-entry failures are passed to fn and do not abort
// the walk. Cancelling ctx stops the walk with ctx.Err().
func Scan(ctx context.Context, root string, opts ScanOpts, fn ScanFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if d != nil && d.IsDir() && path != root {
				// Unreadable directory: report it and keep going.
				if err := fn(path, Info{}, walkErr); err != nil {
					return err
				}
				return fs.SkipDir
			}
			return fn(path, Info{}, walkErr)
		}
		if d.IsDir() {
			return nil
		}

		var (
			info Info
			err  error
		)
		if opts.NoFollow {
			info, err = Lstat(path)
		} else {
			info, err = Stat(path)
		}
		if err != nil {
			return fn(path, Info{}, err)
		}
		if info.IsDir() {
			// Symlink to a directory; not descended into.
			return nil
		}
		if !opts.Range.Empty() && !opts.Range.Contains(info.Size) {
			if opts.OnSkip != nil {
				opts.OnSkip(path, info)
			}
			return nil
		}
		return fn(path, info, nil)
	})
}
