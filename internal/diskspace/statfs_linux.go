//go:build linux

package diskspace

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Query runs statfs(2) on path.
func Query(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	// Block counts are in fragment-size units; older kernels leave Frsize 0.
	bsize := uint64(st.Frsize) //nolint:gosec // G115: block size is never negative
	if bsize == 0 {
		bsize = uint64(st.Bsize) //nolint:gosec // G115: block size is never negative
	}
	return Usage{
		Path:  path,
		Total: st.Blocks * bsize,
		Free:  st.Bfree * bsize,
		Avail: st.Bavail * bsize,
	}, nil
}
