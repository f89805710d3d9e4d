package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bamsammich/fsprobe/internal/stats"
)

// FormatCount formats an integer with comma separators.
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatUBytes formats an unsigned byte count, as reported by statfs.
func FormatUBytes(b uint64) string {
	const maxInt64 = 1<<63 - 1
	if b > maxInt64 {
		b = maxInt64
	}
	return stats.FormatBytes(int64(b)) //nolint:gosec // G115: clamped above
}

// FormatTime renders a timestamp in RFC 3339 with nanoseconds, or "-" when
// the platform did not report it.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339Nano)
}

// FormatPercent renders a percentage rounded up, the way df(1) does.
func FormatPercent(p float64) string {
	whole := int(p)
	if float64(whole) < p {
		whole++
	}
	return fmt.Sprintf("%d%%", whole)
}

// FormatDuration formats elapsed time concisely.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatSummary renders the end-of-run summary line.
func FormatSummary(s stats.Snapshot) string {
	line := fmt.Sprintf("%s probed, %s failed, %s total",
		FormatCount(s.Probed), FormatCount(s.Failed), stats.FormatBytes(s.Bytes))
	if s.Skipped > 0 {
		line += fmt.Sprintf(", %s skipped", FormatCount(s.Skipped))
	}
	return line + " in " + FormatDuration(s.Elapsed)
}
