//go:build linux || darwin

package probe

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func statPath(path string, follow bool) (Info, error) {
	var st unix.Stat_t
	var err error
	if follow {
		err = unix.Stat(path, &st)
	} else {
		err = unix.Lstat(path, &st)
	}
	if err != nil {
		op := "stat"
		if !follow {
			op = "lstat"
		}
		return Info{}, &os.PathError{Op: op, Path: path, Err: err}
	}

	info := Info{
		Path:   path,
		Size:   st.Size,
		Blocks: st.Blocks,
		Ino:    st.Ino,
		Nlink:  uint64(st.Nlink),
		UID:    st.Uid,
		GID:    st.Gid,
		Mode:   fileMode(uint32(st.Mode)),
	}
	fillPlatform(&st, &info)
	if info.BirthTime.IsZero() {
		info.BirthTime = birthTime(path, follow)
	}
	return info, nil
}

// fileMode converts raw st_mode bits to an os.FileMode.
func fileMode(m uint32) os.FileMode {
	mode := os.FileMode(m & 0o777)
	switch m & unix.S_IFMT {
	case unix.S_IFDIR:
		mode |= os.ModeDir
	case unix.S_IFLNK:
		mode |= os.ModeSymlink
	case unix.S_IFIFO:
		mode |= os.ModeNamedPipe
	case unix.S_IFSOCK:
		mode |= os.ModeSocket
	case unix.S_IFBLK:
		mode |= os.ModeDevice
	case unix.S_IFCHR:
		mode |= os.ModeDevice | os.ModeCharDevice
	}
	if m&unix.S_ISUID != 0 {
		mode |= os.ModeSetuid
	}
	if m&unix.S_ISGID != 0 {
		mode |= os.ModeSetgid
	}
	if m&unix.S_ISVTX != 0 {
		mode |= os.ModeSticky
	}
	return mode
}

func timespecToTime(ts unix.Timespec) time.Time {
	return time.Unix(ts.Unix())
}
