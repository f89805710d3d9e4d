package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bamsammich/fsprobe/internal/config"
)

func TestApplyTheme(t *testing.T) {
	origAccent, origWarn, origMuted := ColorAccent, ColorWarn, ColorMuted
	t.Cleanup(func() {
		ColorAccent, ColorWarn, ColorMuted = origAccent, origWarn, origMuted
		rebuildStyles()
	})

	warn := "#ff0000"
	ApplyTheme(config.ThemeConfig{Warn: &warn})

	assert.Equal(t, lipgloss.Color("#ff0000"), ColorWarn)
	assert.Equal(t, origAccent, ColorAccent, "unset colors keep their defaults")
	assert.Equal(t, lipgloss.Color("#ff0000"), styleWarn.GetForeground())
}
