package ui

import (
	"essentials/internal/content"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model. It stacks the header, core concepts, and examples
// sections in page order and routes keys through the keybind system.
type AppModel struct {
	Header     *HeaderView
	Concepts   *ConceptsView
	Examples   *ExamplesView
	KeyHandler *KeyHandler
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Options configures NewAppModel.
type Options struct {
	Tagline  string            // header subtitle; empty picks content.Tagline of the first word
	Recorder SelectionRecorder // optional selection tracing
	Width    int               // initial render width; terminals report theirs on start
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	tagline := opts.Tagline
	if tagline == "" {
		tagline = content.Tagline(content.TaglineWords[0])
	}
	examples := NewExamplesView()
	if opts.Recorder != nil {
		examples.WithRecorder(opts.Recorder)
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for _, t := range content.Topics() {
		// SPC c / j / p / s, first letter of each topic token
		reg.BindWithDesc("SPC "+t.String()[:1], SelectTopic(t), t.Label())
	}

	m := &AppModel{
		Header:     NewHeaderView(tagline),
		Concepts:   NewConceptsView(),
		Examples:   examples,
		KeyHandler: NewKeyHandler(reg),
	}
	if opts.Width > 0 {
		m.resize(tea.WindowSizeMsg{Width: opts.Width})
	}
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func (m *AppModel) resize(msg tea.WindowSizeMsg) {
	for _, v := range m.sections() {
		v.Update(msg)
	}
}

func (m *AppModel) sections() []View {
	return []View{m.Header, m.Concepts, m.Examples}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 3)
	for _, v := range a.sections() {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg)
		return a, nil
	case SelectTopicMsg:
		_, cmd := a.Examples.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		// Only the examples section is interactive.
		_, cmd := a.Examples.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Render()
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		base += "\n" + help
	}
	return base + "\n\n" + RenderFooter()
}

// Render returns the page without transient help or footer.
func (m *AppModel) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.Header.View(),
		"",
		m.Concepts.View(),
		"",
		m.Examples.View(),
	)
}
