package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamsammich/fsprobe/internal/diskspace"
	"github.com/bamsammich/fsprobe/internal/probe"
)

var (
	mtime = time.Date(2024, 4, 23, 10, 0, 0, 0, time.UTC)
	okRes = Result{
		Path: "/data/a.bin",
		Info: probe.Info{Size: 1536, Mode: 0o644, ModTime: mtime, AccTime: mtime, ChangeTime: mtime},
	}
	failRes = Result{Path: "/missing", Err: errors.New("stat /missing: no such file or directory")}
)

func printText(t *testing.T, cfg PrinterConfig, r Result) string {
	t.Helper()
	var buf bytes.Buffer
	cfg.Writer = &buf
	require.NoError(t, NewPrinter(cfg).Print(r))
	return buf.String()
}

func TestPrinter_Plain(t *testing.T) {
	assert.Equal(t, "File Size: 1536 bytes\n", printText(t, PrinterConfig{}, okRes))
	assert.Equal(t, "Failed to get file stat.\n", printText(t, PrinterConfig{}, failRes))
}

func TestPrinter_Human(t *testing.T) {
	got := printText(t, PrinterConfig{Human: true}, okRes)
	assert.Equal(t, "File Size: 1536 bytes (1.5 KiB)\n", got)

	// Failure line is never decorated.
	assert.Equal(t, "Failed to get file stat.\n", printText(t, PrinterConfig{Human: true}, failRes))
}

func TestPrinter_ShowPath(t *testing.T) {
	got := printText(t, PrinterConfig{ShowPath: true}, okRes)
	assert.Equal(t, "/data/a.bin: File Size: 1536 bytes\n", got)

	got = printText(t, PrinterConfig{ShowPath: true}, failRes)
	assert.Equal(t, "/missing: Failed to get file stat.\n", got)
}

func TestPrinter_Times(t *testing.T) {
	got := printText(t, PrinterConfig{Times: true}, okRes)
	want := "File Size: 1536 bytes\n" +
		"  modified: 2024-04-23T10:00:00Z\n" +
		"  accessed: 2024-04-23T10:00:00Z\n" +
		"  changed:  2024-04-23T10:00:00Z\n" +
		"  created:  -\n"
	assert.Equal(t, want, got)

	// No timestamp lines after a failure.
	assert.Equal(t, "Failed to get file stat.\n", printText(t, PrinterConfig{Times: true}, failRes))
}

func TestPrinter_Hash(t *testing.T) {
	r := okRes
	r.Digest = "abc123"
	got := printText(t, PrinterConfig{Algo: "blake3"}, r)
	assert.Equal(t, "File Size: 1536 bytes\n  blake3: abc123\n", got)

	r.HashErr = errors.New("permission denied")
	got = printText(t, PrinterConfig{Algo: "blake3"}, r)
	assert.Equal(t, "File Size: 1536 bytes\n  blake3: unavailable\n", got)
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(PrinterConfig{Writer: &buf, JSON: true, Algo: "xxhash"})

	r := okRes
	r.Digest = "ff00"
	require.NoError(t, p.Print(r))
	require.NoError(t, p.Print(failRes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var ok map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	assert.Equal(t, "/data/a.bin", ok["path"])
	assert.EqualValues(t, 1536, ok["size"])
	assert.Equal(t, "-rw-r--r--", ok["mode"])
	assert.Equal(t, "2024-04-23T10:00:00Z", ok["mtime"])
	assert.Equal(t, "xxhash", ok["algo"])
	assert.Equal(t, "ff00", ok["digest"])
	assert.NotContains(t, ok, "btime")
	assert.NotContains(t, ok, "error")

	var fail map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &fail))
	assert.Equal(t, "/missing", fail["path"])
	assert.Contains(t, fail["error"], "no such file")
	assert.NotContains(t, fail, "size")
}

func TestPrinter_JSONZeroSize(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(PrinterConfig{Writer: &buf, JSON: true})
	require.NoError(t, p.Print(Result{Path: "/empty"}))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.EqualValues(t, 0, rec["size"])
}

func TestRenderUsage_Plain(t *testing.T) {
	rows := []diskspace.Usage{
		{Path: "/", Total: 100 << 30, Free: 40 << 30, Avail: 35 << 30},
		{Path: "/var/lib", Total: 10 << 30, Free: 10 << 30, Avail: 10 << 30},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderUsage(&buf, rows, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Path           Size      Used     Avail  Use%", lines[0])
	assert.Equal(t, "/         100.0 GiB  60.0 GiB  35.0 GiB   64%", lines[1])
	assert.Equal(t, "/var/lib   10.0 GiB       0 B  10.0 GiB    0%", lines[2])
}

func TestRenderUsageError(t *testing.T) {
	var buf bytes.Buffer
	RenderUsageError(&buf, "/nope", errors.New("statfs /nope: no such file or directory"))
	assert.Equal(t, "/nope: statfs /nope: no such file or directory\n", buf.String())
}
