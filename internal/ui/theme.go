package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/fsprobe/internal/config"
)

// Palette defaults; overridden by the [theme] config section.
var (
	ColorAccent = lipgloss.Color("#89b4fa")
	ColorWarn   = lipgloss.Color("#f38ba8")
	ColorMuted  = lipgloss.Color("#5a6278")
)

var (
	styleHeader lipgloss.Style
	stylePath   lipgloss.Style
	styleWarn   lipgloss.Style
	styleMuted  lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	stylePath = lipgloss.NewStyle().Bold(true)
	styleWarn = lipgloss.NewStyle().Foreground(ColorWarn)
	styleMuted = lipgloss.NewStyle().Foreground(ColorMuted)
}

// ApplyTheme overrides colors from a config ThemeConfig and rebuilds all styles.
func ApplyTheme(tc config.ThemeConfig) {
	if tc.Accent != nil {
		ColorAccent = lipgloss.Color(*tc.Accent)
	}
	if tc.Warn != nil {
		ColorWarn = lipgloss.Color(*tc.Warn)
	}
	if tc.Muted != nil {
		ColorMuted = lipgloss.Color(*tc.Muted)
	}
	rebuildStyles()
}
