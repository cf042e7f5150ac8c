package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floatkit/internal/input"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// helpKeys adds the showcase's quit binding to the widget key map.
type helpKeys struct {
	input.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), quitKeys)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{quitKeys})
}
