//go:build !linux && !darwin

package probe

import "os"

// statPath falls back to os.Stat where x/sys/unix has no stat(2).
// Inode, device and timestamps other than mtime are not reported.
func statPath(path string, follow bool) (Info, error) {
	var (
		fi  os.FileInfo
		err error
	)
	if follow {
		fi, err = os.Stat(path)
	} else {
		fi, err = os.Lstat(path)
	}
	if err != nil {
		return Info{}, err
	}
	return Info{
		Path:    path,
		Size:    fi.Size(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime(),
	}, nil
}
