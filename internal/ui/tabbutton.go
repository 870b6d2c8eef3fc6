package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Markers prefixed to tab labels so selection survives colorless terminals.
const (
	MarkerSelected   = "●"
	MarkerUnselected = "○"
)

// RenderTabButton renders one tab. isSelected and focused are derived by the
// caller; the button holds no state of its own.
func RenderTabButton(label string, isSelected, focused bool) string {
	style := Styles.Tab
	marker := MarkerUnselected
	if isSelected {
		style = Styles.TabSelected
		marker = MarkerSelected
	}
	if focused {
		style = style.BorderForeground(Styles.TabFocused.GetBorderTopForeground())
	}
	return style.Render(marker + " " + label)
}

// JoinTabs lays buttons out in a row with a one-column gap.
func JoinTabs(buttons []string) string {
	row := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			row = append(row, " ")
		}
		row = append(row, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}
