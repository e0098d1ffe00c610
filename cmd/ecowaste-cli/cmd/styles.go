package cmd

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16a34a"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	methodStyle = lipgloss.NewStyle().Bold(true).Width(8)
)
