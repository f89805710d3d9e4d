package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/fsprobe/internal/diskspace"
)

// warnPercent is the usage level at which df output is highlighted.
const warnPercent = 90

var usageHeader = []string{"Path", "Size", "Used", "Avail", "Use%"}

// RenderUsage writes a df-style table. styled enables lipgloss colors and
// should only be set when w is a terminal.
func RenderUsage(w io.Writer, rows []diskspace.Usage, styled bool) error {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, usageHeader)
	for _, u := range rows {
		cells = append(cells, []string{
			u.Path,
			FormatUBytes(u.Total),
			FormatUBytes(u.Used()),
			FormatUBytes(u.Avail),
			FormatPercent(u.UsedPercent()),
		})
	}

	widths := make([]int, len(usageHeader))
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	var b strings.Builder
	for r, row := range cells {
		for i, c := range row {
			// Path is left-aligned, numbers right-aligned.
			var cell string
			if i == 0 {
				cell = c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
			} else {
				cell = strings.Repeat(" ", widths[i]-lipgloss.Width(c)) + c
			}
			if styled {
				cell = styleCell(r, i, cell, rows)
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func styleCell(row, col int, cell string, rows []diskspace.Usage) string {
	if row == 0 {
		return styleHeader.Render(cell)
	}
	u := rows[row-1]
	switch {
	case col == 0:
		return stylePath.Render(cell)
	case col == len(usageHeader)-1 && u.UsedPercent() >= warnPercent:
		return styleWarn.Render(cell)
	case col == len(usageHeader)-1:
		return cell
	default:
		return styleMuted.Render(cell)
	}
}

// RenderUsageError writes the df line for a path that could not be queried.
func RenderUsageError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s: %v\n", path, err)
}
