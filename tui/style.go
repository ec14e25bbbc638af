package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("24")).
			Bold(true)

	styleTabActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("31")).
			Bold(true).
			Padding(0, 1)

	styleTabInactive = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	stylePanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("238"))

	styleFieldName = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	styleSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	styleChoice = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleChange = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleUserInput = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleLog = lipgloss.NewStyle().
			Foreground(lipgloss.Color("139")).
			Italic(true)
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindInfo lineKind = iota
	kindChange
	kindSystem
	kindError
	kindTrace
	kindLog
)

var errorMarkers = []string{
	"is not an available",
	"is not a valid",
	"is not available",
	"is not a number",
	"cannot be changed",
	"must be between",
	"holds at most",
	"has no ",
	"Only OmniMechs",
	"No stock design",
	"Unknown ",
	"is fixed",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	}
	for _, marker := range errorMarkers {
		if strings.Contains(line, marker) {
			return kindError
		}
	}
	switch {
	case strings.Contains(line, " set to "),
		strings.Contains(line, " is now "),
		strings.HasPrefix(line, "Loaded "),
		strings.HasPrefix(line, "Chassis reset"),
		strings.HasPrefix(line, "Rules: "):
		return kindChange
	}
	return kindInfo
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindChange:
		return styleChange.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	case kindLog:
		return styleLog.Render(line)
	default:
		return styleInfo.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
