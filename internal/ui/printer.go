package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bamsammich/fsprobe/internal/probe"
	"github.com/bamsammich/fsprobe/internal/stats"
)

// Result is one probed path, ready for output.
type Result struct {
	Err     error
	HashErr error
	Path    string
	Digest  string
	Info    probe.Info
}

// PrinterConfig configures a Printer.
type PrinterConfig struct {
	Writer io.Writer
	// Algo names the digest algorithm; empty when hashing is off.
	Algo string
	// ShowPath prefixes each size line with "<path>: ".
	ShowPath bool
	Human    bool
	Times    bool
	JSON     bool
}

// Printer writes probe results as text lines or JSON objects.
type Printer struct {
	enc *json.Encoder
	cfg PrinterConfig
}

// NewPrinter creates a Printer.
func NewPrinter(cfg PrinterConfig) *Printer {
	p := &Printer{cfg: cfg}
	if cfg.JSON {
		p.enc = json.NewEncoder(cfg.Writer)
	}
	return p
}

// Print writes r.
func (p *Printer) Print(r Result) error {
	if p.enc != nil {
		return p.enc.Encode(newRecord(r, p.cfg.Algo))
	}
	_, err := io.WriteString(p.cfg.Writer, p.text(r))
	return err
}

func (p *Printer) text(r Result) string {
	var b strings.Builder
	if p.cfg.ShowPath {
		b.WriteString(r.Path)
		b.WriteString(": ")
	}
	line := probe.Line(r.Info, r.Err)
	if p.cfg.Human && r.Err == nil {
		line = strings.TrimSuffix(line, "\n") + " (" + stats.FormatBytes(r.Info.Size) + ")\n"
	}
	b.WriteString(line)
	if r.Err != nil {
		return b.String()
	}

	if p.cfg.Times {
		fmt.Fprintf(&b, "  modified: %s\n", FormatTime(r.Info.ModTime))
		fmt.Fprintf(&b, "  accessed: %s\n", FormatTime(r.Info.AccTime))
		fmt.Fprintf(&b, "  changed:  %s\n", FormatTime(r.Info.ChangeTime))
		fmt.Fprintf(&b, "  created:  %s\n", FormatTime(r.Info.BirthTime))
	}
	if p.cfg.Algo != "" {
		digest := r.Digest
		if r.HashErr != nil {
			digest = "unavailable"
		}
		fmt.Fprintf(&b, "  %s: %s\n", p.cfg.Algo, digest)
	}
	return b.String()
}

type record struct {
	ModTime   *time.Time `json:"mtime,omitempty"`
	AccTime   *time.Time `json:"atime,omitempty"`
	Change    *time.Time `json:"ctime,omitempty"`
	BirthTime *time.Time `json:"btime,omitempty"`
	Size      *int64     `json:"size,omitempty"`
	Path      string     `json:"path"`
	Mode      string     `json:"mode,omitempty"`
	Error     string     `json:"error,omitempty"`
	Algo      string     `json:"algo,omitempty"`
	Digest    string     `json:"digest,omitempty"`
	HashError string     `json:"hash_error,omitempty"`
}

func newRecord(r Result, algo string) record {
	rec := record{Path: r.Path}
	if r.Err != nil {
		rec.Error = r.Err.Error()
		return rec
	}
	size := r.Info.Size
	rec.Size = &size
	rec.Mode = r.Info.Mode.String()
	rec.ModTime = timePtr(r.Info.ModTime)
	rec.AccTime = timePtr(r.Info.AccTime)
	rec.Change = timePtr(r.Info.ChangeTime)
	rec.BirthTime = timePtr(r.Info.BirthTime)
	if algo != "" {
		rec.Algo = algo
		rec.Digest = r.Digest
		if r.HashErr != nil {
			rec.HashError = r.HashErr.Error()
		}
	}
	return rec
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
