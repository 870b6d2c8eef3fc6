package ui

import (
	"strings"

	"essentials/internal/content"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HeaderView renders the page title and the tagline picked at startup.
type HeaderView struct {
	Tagline string
	width   int
}

// Ensure HeaderView implements View.
var _ View = (*HeaderView)(nil)

// NewHeaderView creates a header with a fixed tagline.
func NewHeaderView(tagline string) *HeaderView {
	return &HeaderView{Tagline: tagline, width: 80}
}

// Init implements View.
func (h *HeaderView) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HeaderView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok && msg.Width > 0 {
		h.width = msg.Width
	}
	return h, nil
}

// View implements View.
func (h *HeaderView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Width(h.width).Align(lipgloss.Center).Render(content.HeaderTitle))
	b.WriteString("\n")
	b.WriteString(Styles.Tagline.Width(h.width).Align(lipgloss.Center).Render(h.Tagline))
	return b.String()
}
