package ui

import (
	"log"
	"strings"

	"essentials/internal/content"
	"essentials/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConceptsTitle is the heading of the core concepts section.
const ConceptsTitle = "Core Concepts"

// cardInnerWidth is the content width of one concept card.
const cardInnerWidth = 22

// conceptCard is a concept with its image resolved.
type conceptCard struct {
	content.ConceptRecord
	image string
}

// ConceptsView renders the static core concept list. Its output depends only on
// the registry and the terminal width, never on topic selection.
type ConceptsView struct {
	cards []conceptCard
	width int
}

// Ensure ConceptsView implements View.
var _ View = (*ConceptsView)(nil)

// NewConceptsView resolves concept images once. A missing image is logged and
// the card renders without one.
func NewConceptsView() *ConceptsView {
	concepts := content.Concepts()
	cards := make([]conceptCard, 0, len(concepts))
	for _, c := range concepts {
		img, err := content.Image(c.Image)
		if err != nil {
			log.Printf("concepts: %v", err)
		}
		cards = append(cards, conceptCard{ConceptRecord: c, image: img})
	}
	return &ConceptsView{cards: cards, width: 80}
}

// Len returns the number of concept cards.
func (c *ConceptsView) Len() int {
	return len(c.cards)
}

// Init implements View.
func (c *ConceptsView) Init() tea.Cmd { return nil }

// Update implements View.
func (c *ConceptsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok && msg.Width > 0 {
		c.width = msg.Width
	}
	return c, nil
}

// View implements View.
func (c *ConceptsView) View() string {
	rendered := make([]string, 0, len(c.cards))
	for _, card := range c.cards {
		rendered = append(rendered, renderConceptCard(card))
	}

	perRow := c.cardsPerRow()
	rows := make([]string, 0, (len(rendered)+perRow-1)/perRow)
	for start := 0; start < len(rendered); start += perRow {
		end := min(start+perRow, len(rendered))
		rows = append(rows, JoinTabs(rendered[start:end]))
	}
	return RenderSection(ConceptsTitle, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// cardsPerRow fits as many cards as the width allows, at least one.
func (c *ConceptsView) cardsPerRow() int {
	outer := cardInnerWidth + Styles.Card.GetHorizontalFrameSize() + 1 // +1 gap
	n := (c.width + 1) / outer
	return max(1, min(n, len(c.cards)))
}

func renderConceptCard(card conceptCard) string {
	var b strings.Builder
	if card.image != "" {
		lines := strings.Split(card.image, "\n")
		for i, line := range lines {
			lines[i] = textutil.PadRight(line, cardInnerWidth)
		}
		b.WriteString(Styles.CardImage.Render(strings.Join(lines, "\n")))
		b.WriteString("\n\n")
	}
	b.WriteString(Styles.CardTitle.Render(textutil.Truncate(card.Title, cardInnerWidth)))
	b.WriteString("\n")
	b.WriteString(Styles.CardSubtitle.Width(cardInnerWidth).Render(card.Description))
	return Styles.Card.Render(b.String())
}
