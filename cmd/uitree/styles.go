package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/uitree"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	clipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	stateStyles = map[uitree.State]lipgloss.Style{
		uitree.StateHidden:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		uitree.StateShowing: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		uitree.StateShown:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		uitree.StateHiding:  lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	}
)

func renderState(s uitree.State) string {
	return stateStyles[s].Render(s.String())
}
