package editor

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls the editor's rendering.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		LineNum:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

func (s Style) isZero() bool {
	return reflect.DeepEqual(s, Style{})
}
