//go:build linux

package probe

import (
	"time"

	"golang.org/x/sys/unix"
)

// fillPlatform extracts Linux-specific fields from unix.Stat_t.
func fillPlatform(st *unix.Stat_t, info *Info) {
	info.Dev = st.Dev
	info.AccTime = timespecToTime(st.Atim)
	info.ModTime = timespecToTime(st.Mtim)
	info.ChangeTime = timespecToTime(st.Ctim)
}

// birthTime asks statx(2) for the creation time. Older kernels and some
// filesystems leave STATX_BTIME unset, in which case the zero time is returned.
func birthTime(path string, follow bool) time.Time {
	flags := unix.AT_STATX_SYNC_AS_STAT
	if !follow {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, flags, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
}
