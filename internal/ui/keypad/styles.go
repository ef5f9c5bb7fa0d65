package keypad

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("213")).
			Padding(0, 1)

	amountStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.ThickBorder()).
			Padding(0, 2).
			Width(24).
			Align(lipgloss.Right)

	dimStyle    = lipgloss.NewStyle().Faint(true)
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	listenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Blink(true)
)
