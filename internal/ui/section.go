package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderSection frames body under a titled heading with a rule the width of the
// title.
func RenderSection(title, body string) string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render(title))
	b.WriteString("\n")
	b.WriteString(Styles.SectionRule.Render(strings.Repeat("─", lipgloss.Width(title))))
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}
