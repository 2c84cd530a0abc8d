package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bio-runner/internal/core"
)

// Theme maps semantic colors to lipgloss styles.
type Theme struct {
	Name   string
	colors map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Help     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Color
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Name: "dark",
		colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:  lipgloss.NewStyle(),
			core.ColorRunner:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			core.ColorFlyer:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
			core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			core.ColorMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		},
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		Border:   lipgloss.Color("240"),
	}
}

// LightTheme returns the palette for light terminals.
func LightTheme() Theme {
	return Theme{
		Name: "light",
		colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:  lipgloss.NewStyle(),
			core.ColorRunner:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true),
			core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
			core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			core.ColorFlyer:    lipgloss.NewStyle().Foreground(lipgloss.Color("127")),
			core.ColorHUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			core.ColorMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
			core.ColorAccent:   lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
		},
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("166")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")),
		Border:   lipgloss.Color("250"),
	}
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (expected dark or light)", name)
}

// Style returns the style for a semantic color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.colors[c]; ok {
		return s
	}
	return t.colors[core.ColorDefault]
}
