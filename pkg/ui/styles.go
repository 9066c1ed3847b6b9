// Package ui renders terminal output: the banner, config lines, and
// status messages. Everything prints to stderr so report paths written
// to stdout stay machine-readable.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	// Brand colors
	Primary   = lipgloss.Color("#667EEA") // Indigo - matches the report header
	Secondary = lipgloss.Color("#764BA2") // Purple - gradient end

	// Severity colors, mirroring the report palette
	Critical = lipgloss.Color("#C0392B")
	High     = lipgloss.Color("#E74C3C")
	Medium   = lipgloss.Color("#F39C12")
	Low      = lipgloss.Color("#F1C40F")
	Info     = lipgloss.Color("#3498DB")

	// Status colors
	Success = lipgloss.Color("#27AE60")
	Warning = lipgloss.Color("#FFB800")
	Errored = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles.
var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Width(15)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	PassStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(Errored).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	InfoMarkStyle = lipgloss.NewStyle().
			Foreground(Primary)
)

// SeverityStyle returns the style for an upper-case severity name.
func SeverityStyle(severity string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch severity {
	case "CRITICAL":
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(Critical)
	case "HIGH":
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(High)
	case "MEDIUM":
		return base.Foreground(lipgloss.Color("#000000")).Background(Medium)
	case "LOW":
		return base.Foreground(lipgloss.Color("#000000")).Background(Low)
	case "INFO":
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(Info)
	default:
		return base.Foreground(Muted)
	}
}

// StatusStyle returns the style for the overall scan status name.
func StatusStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch status {
	case "CLEAN":
		return base.Foreground(Success)
	case "HIGH":
		return base.Foreground(High)
	case "CRITICAL":
		return base.Foreground(Critical)
	default:
		return base.Foreground(Muted)
	}
}
