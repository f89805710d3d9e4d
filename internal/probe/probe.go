// Package probe queries filesystem metadata for a single path and reports
// the file size in a fixed, line-oriented format.
package probe

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// FailureLine is written when the file-status query does not succeed.
const FailureLine = "Failed to get file stat.\n"

// Info is the file-status record returned by Stat and Lstat.
type Info struct {
	ModTime    time.Time
	AccTime    time.Time
	ChangeTime time.Time
	BirthTime  time.Time // zero when the platform does not report it
	Path       string
	Size       int64
	Blocks     int64 // 512-byte units
	Ino        uint64
	Dev        uint64
	Nlink      uint64
	UID        uint32
	GID        uint32
	Mode       os.FileMode
}

// IsDir reports whether the record describes a directory.
func (i Info) IsDir() bool { return i.Mode.IsDir() }

func (i Info) String() string {
	return fmt.Sprintf("%s size=%d mode=%s", i.Path, i.Size, i.Mode)
}

// Stat returns metadata for path, following symlinks.
func Stat(path string) (Info, error) {
	return statPath(path, true)
}

// Lstat returns metadata for path without following a trailing symlink.
func Lstat(path string) (Info, error) {
	return statPath(path, false)
}

// Line formats the outcome of a Stat call. The cause of a failure is not
// part of the output.
func Line(info Info, err error) string {
	if err != nil {
		return FailureLine
	}
	return fmt.Sprintf("File Size: %d bytes\n", info.Size)
}

// Report stats path and writes the size line, or FailureLine, to w.
func Report(w io.Writer, path string) {
	info, err := Stat(path)
	if err != nil {
		slog.Debug("stat failed", "path", path, "error", err)
	}
	_, _ = io.WriteString(w, Line(info, err)) //nolint:errcheck // nothing is surfaced to the caller
}
