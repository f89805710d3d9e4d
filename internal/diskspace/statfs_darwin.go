//go:build darwin

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
	bsize := uint64(st.Bsize)
	return Usage{
		Path:  path,
		Total: st.Blocks * bsize,
		Free:  st.Bfree * bsize,
		Avail: st.Bavail * bsize,
	}, nil
}
