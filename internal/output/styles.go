package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these names instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names, file paths.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "exists" status.
	ColorYellow = lipgloss.Color("220")

	// colorBlue is used for the "planned" status of dry runs.
	colorBlue = lipgloss.Color("39")

	// colorBoldRed is used for the "failed" status (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (module names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Artifact status constants.
const (
	StatusCreated = "created"
	StatusExists  = "exists"
	StatusPlanned = "planned"
	StatusFailed  = "failed"
)

// statusStyle returns the lipgloss style for a given artifact status.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusExists:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusPlanned:
		return lipgloss.NewStyle().Foreground(colorBlue)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minArtifactColumnWidth is the minimum width of the "<kind> <path>" column
// so that status words line up.
const minArtifactColumnWidth = 56

// FormatArtifactLine renders an artifact line with a right-aligned,
// color-coded status suffix.
//
// Format: a:<kind>  <path>  <status>
func FormatArtifactLine(kind, path, status string) string {
	body := kind + "  " + path

	padding := minArtifactColumnWidth - len(body)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("a:")
	styledBody := kind + "  " + StyleNoun.Render(path)
	styledStatus := statusStyle(status).Render(status)

	return prefix + styledBody + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}
