package cli

import "github.com/charmbracelet/lipgloss"

// lipgloss drops colors automatically when stdout is not a terminal.
var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
