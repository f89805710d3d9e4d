//go:build darwin

package probe

import (
	"time"

	"golang.org/x/sys/unix"
)

// fillPlatform extracts Darwin-specific fields from unix.Stat_t.
func fillPlatform(st *unix.Stat_t, info *Info) {
	info.Dev = uint64(st.Dev) //nolint:gosec // G115: dev_t is int32 on darwin, always non-negative
	info.AccTime = timespecToTime(st.Atim)
	info.ModTime = timespecToTime(st.Mtim)
	info.ChangeTime = timespecToTime(st.Ctim)
	info.BirthTime = timespecToTime(st.Btim)
}

// birthTime is only consulted when st_birthtime was empty.
func birthTime(string, bool) time.Time { return time.Time{} }
