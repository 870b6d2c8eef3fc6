package ui

import (
	"context"
	"strings"

	"essentials/internal/content"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaceholderPrompt is shown in the panel until a topic is selected.
const PlaceholderPrompt = "Please select a topic."

// ExamplesTitle is the heading of the examples section.
const ExamplesTitle = "Examples"

// SelectTopicMsg asks the examples view to select Topic.
type SelectTopicMsg struct {
	Topic content.TopicID
}

// SelectTopic returns a command that emits SelectTopicMsg for topic.
func SelectTopic(topic content.TopicID) tea.Cmd {
	return func() tea.Msg { return SelectTopicMsg{Topic: topic} }
}

// SelectionRecorder observes selections. *trace.SelectionRecorder implements it.
type SelectionRecorder interface {
	RecordSelect(ctx context.Context, topic, previous string)
}

// ExampleLookup resolves a topic to its record. content.Example is the default.
type ExampleLookup func(content.TopicID) content.TopicRecord

// Panel is the structural content of the tab panel before styling: either the
// placeholder or a heading, paragraph, and code block.
type Panel struct {
	Placeholder string
	Heading     string
	Description string
	Code        string
}

// Empty reports whether the panel shows the placeholder.
func (p Panel) Empty() bool {
	return p.Placeholder != ""
}

// ExamplesView is the tab selector: four topic buttons and a content panel.
// It exclusively owns the Selection.
type ExamplesView struct {
	selection Selection
	focus     TabFocus
	topics    []content.TopicID
	lookup    ExampleLookup
	recorder  SelectionRecorder
	width     int
}

// Ensure ExamplesView implements View.
var _ View = (*ExamplesView)(nil)

// NewExamplesView creates an unselected view over the content registry.
func NewExamplesView() *ExamplesView {
	topics := content.Topics()
	return &ExamplesView{
		selection: Unselected(),
		focus:     NewTabFocus(topics),
		topics:    topics,
		lookup:    content.Example,
		width:     80,
	}
}

// WithLookup replaces the registry lookup. Used by tests and previews.
func (v *ExamplesView) WithLookup(lookup ExampleLookup) *ExamplesView {
	v.lookup = lookup
	return v
}

// WithRecorder attaches a selection recorder.
func (v *ExamplesView) WithRecorder(r SelectionRecorder) *ExamplesView {
	v.recorder = r
	return v
}

// Selection returns the current selection.
func (v *ExamplesView) Selection() Selection {
	return v.selection
}

// SetWidth sets the render width.
func (v *ExamplesView) SetWidth(w int) {
	if w > 0 {
		v.width = w
	}
}

// Select makes topic the selected one and moves button focus to it. There is no
// way back to Unselected.
func (v *ExamplesView) Select(topic content.TopicID) {
	previous := ""
	if prev, ok := v.selection.Topic(); ok {
		previous = prev.String()
	}
	v.selection = Selected(topic)
	v.focus.Set(topic)
	if v.recorder != nil {
		v.recorder.RecordSelect(context.Background(), topic.String(), previous)
	}
}

// Init implements View.
func (v *ExamplesView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ExamplesView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectTopicMsg:
		v.Select(msg.Topic)
	case tea.WindowSizeMsg:
		v.SetWidth(msg.Width)
	case tea.KeyMsg:
		v.handleKey(msg)
	}
	return v, nil
}

func (v *ExamplesView) handleKey(msg tea.KeyMsg) {
	switch s := msg.String(); s {
	case "left", "h", "shift+tab":
		v.focus.Prev()
	case "right", "l", "tab":
		v.focus.Next()
	case "enter":
		if topic, ok := v.focus.Current(); ok {
			v.Select(topic)
		}
	case "1", "2", "3", "4":
		if i := int(s[0] - '1'); i < len(v.topics) {
			v.Select(v.topics[i])
		}
	}
}

// Panel returns the structural panel content for the current selection.
func (v *ExamplesView) Panel() Panel {
	topic, ok := v.selection.Topic()
	if !ok {
		return Panel{Placeholder: PlaceholderPrompt}
	}
	rec := v.lookup(topic)
	return Panel{
		Heading:     rec.Title,
		Description: rec.Description,
		Code:        rec.Code,
	}
}

// View implements View.
func (v *ExamplesView) View() string {
	return RenderSection(ExamplesTitle, v.renderButtons()+"\n\n"+v.renderPanel())
}

func (v *ExamplesView) renderButtons() string {
	buttons := make([]string, 0, len(v.topics))
	for _, t := range v.topics {
		buttons = append(buttons, RenderTabButton(t.Label(), v.selection.Is(t), v.focus.Is(t)))
	}
	return JoinTabs(buttons)
}

func (v *ExamplesView) renderPanel() string {
	p := v.Panel()
	if p.Empty() {
		return Styles.Empty.Render(p.Placeholder)
	}
	var b strings.Builder
	b.WriteString(Styles.Heading.Render(p.Heading))
	b.WriteString("\n\n")
	b.WriteString(Styles.Normal.Width(v.width).Render(p.Description))
	b.WriteString("\n\n")
	b.WriteString(Styles.Code.Render(p.Code))
	return b.String()
}
