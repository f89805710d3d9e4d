//go:build !linux && !darwin

package diskspace

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned on platforms without statfs(2).
var ErrUnsupported = errors.New("disk space query not supported on this platform")

// Query is not implemented on this platform.
func Query(path string) (Usage, error) {
	return Usage{}, fmt.Errorf("statfs %s: %w", path, ErrUnsupported)
}
