package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	yourTurn lipgloss.Style
	working  lipgloss.Style
	key      lipgloss.Style
	release  lipgloss.Style
	meta     lipgloss.Style
	bad      lipgloss.Style
}

func newStyles() styles {
	return styles{
		yourTurn: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		working:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		release:  lipgloss.NewStyle().Faint(true),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		bad:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
