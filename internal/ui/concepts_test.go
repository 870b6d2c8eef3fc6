package ui

import (
	"strings"
	"testing"

	"essentials/internal/content"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConceptsView_RendersAllConceptsInOrder(t *testing.T) {
	c := NewConceptsView()
	assert.Equal(t, 4, c.Len())
	// One card per row keeps each card's lines contiguous.
	c.Update(tea.WindowSizeMsg{Width: 20, Height: 40})

	out := flatten(c.View())
	assert.Contains(t, out, flatten(ConceptsTitle))

	last := -1
	for _, concept := range content.Concepts() {
		assert.Contains(t, out, flatten(concept.Description), concept.Title)
		idx := strings.Index(out, flatten(concept.Description))
		assert.Greater(t, idx, last, "concepts render in registry order")
		last = idx
	}
}

func TestConceptsView_IncludesImages(t *testing.T) {
	c := NewConceptsView()
	c.Update(tea.WindowSizeMsg{Width: 20, Height: 40})
	out := flatten(c.View())
	art, err := content.Image("jsx-ui")
	require.NoError(t, err)
	assert.Contains(t, out, flatten(art))
}

func TestConceptsView_LayoutFollowsWidth(t *testing.T) {
	c := NewConceptsView()

	c.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, 4, c.cardsPerRow())

	c.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.Equal(t, 2, c.cardsPerRow())

	c.Update(tea.WindowSizeMsg{Width: 10, Height: 40})
	assert.Equal(t, 1, c.cardsPerRow())
}

func TestConceptsView_IndependentOfSelection(t *testing.T) {
	m := NewAppModel(Options{})
	before := m.Concepts.View()

	for _, id := range content.Topics() {
		m.Examples.Select(id)
		assert.Equal(t, before, m.Concepts.View())
	}
	assert.Len(t, content.Concepts(), 4)
}

