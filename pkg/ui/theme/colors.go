package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Hex colors used across the UI.
const (
	ColorGreen    = "#00CC66"
	ColorCyan     = "#00BFFF"
	ColorRed      = "#FF6B6B"
	ColorOrange   = "#FFA500"
	ColorGray     = "#808080"
	ColorDarkGray = "#626262"
	ColorWhite    = "#FFFFFF"
)

// Colors provides colored output functions for terminal text.
var Colors = struct {
	Info    *color.Color
	Success *color.Color
	Warning *color.Color
	Error   *color.Color
}{
	Info:    color.New(color.FgCyan),
	Success: color.New(color.FgGreen),
	Warning: color.New(color.FgYellow),
	Error:   color.New(color.FgRed),
}

// Styles used by the table and tree renderers.
var Styles = struct {
	TableHeader lipgloss.Style
	Border      lipgloss.Style
	Location    lipgloss.Style
	NotFound    lipgloss.Style
	Error       lipgloss.Style
	Reference   lipgloss.Style
	TreeBranch  lipgloss.Style
}{
	TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorCyan)),
	Border:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	Location:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
	NotFound:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)).Bold(true),
	Error:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange)),
	Reference:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
	TreeBranch:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
}
