package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"opinions/internal/domain"
)

// Entry is one respondent as shown in the viewer. Cluster is -1 when the
// respondent was not clustered.
type Entry struct {
	Respondent domain.Respondent
	Stats      domain.DocumentStats
	Colour     domain.RGB
	Cluster    int
}

// Model is the Bubble Tea model for the figure viewer.
type Model struct {
	title    string
	entries  []Entry
	visible  []int
	figures  []domain.Figure
	input    textinput.Model
	viewport viewport.Model
	status   string
	cursor   int
	ready    bool
}

// New creates a new viewer model instance.
func New(title string, entries []Entry, figures []domain.Figure) Model {
	ti := textinput.New()
	ti.Prompt = "filter> "
	ti.Placeholder = "Type a name and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{title: title, entries: entries, figures: figures, input: ti, viewport: vp}
	m.applyFilter("")
	m.status = fmt.Sprintf("%d respondents, %d figures. Esc to close.", len(entries), len(figures))
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, dh := detailBoxStyle.GetFrameSize()
		_, fh := filterBoxStyle.GetFrameSize()
		reserved := 1 + len(m.figures) + 1 + fh + 1 // header, figures, status
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-dh)
		m.viewport.SetContent(m.renderCurrent())
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.applyFilter(m.input.Value())
			m.viewport.SetContent(m.renderCurrent())
			return m, nil
		case tea.KeyDown:
			if len(m.visible) > 0 {
				m.cursor = (m.cursor + 1) % len(m.visible)
				m.viewport.SetContent(m.renderCurrent())
			}
			return m, nil
		case tea.KeyUp:
			if len(m.visible) > 0 {
				m.cursor = (m.cursor - 1 + len(m.visible)) % len(m.visible)
				m.viewport.SetContent(m.renderCurrent())
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the figure list, the selected respondent and the filter box.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n")
	for _, f := range m.figures {
		b.WriteString(figureStyle.Render(fmt.Sprintf("%s: %s", f.Name, f.Path)))
		b.WriteString("\n")
	}
	b.WriteString(detailBoxStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(filterBoxStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	return b.String()
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (Entry, bool) {
	if len(m.visible) == 0 {
		return Entry{}, false
	}
	return m.entries[m.visible[m.cursor]], true
}

func (m *Model) applyFilter(q string) {
	q = strings.ToLower(strings.TrimSpace(q))
	m.visible = nil
	for i, e := range m.entries {
		if q == "" || strings.Contains(strings.ToLower(e.Respondent.Name), q) {
			m.visible = append(m.visible, i)
		}
	}
	m.cursor = 0
	if q != "" {
		m.status = fmt.Sprintf("%d of %d respondents match %q", len(m.visible), len(m.entries), q)
	}
}

func (m Model) renderCurrent() string {
	e, ok := m.Selected()
	if !ok {
		return "No respondents match."
	}
	r := e.Respondent
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(e.Colour))).Render("●")
	lines := []string{
		fmt.Sprintf("Respondent %d/%d  %s %s", m.cursor+1, len(m.visible), swatch, nameStyle.Render(r.Name)),
		"",
		fmt.Sprintf("Centroid:  (%.3f, %.3f)", r.Centroid.X(), r.Centroid.Y()),
		fmt.Sprintf("Points:    %d", len(r.Coordinates)),
		fmt.Sprintf("Label:     %s", r.Label),
		fmt.Sprintf("Words:     %d   \"i\" tokens: %d   sentences: %d", e.Stats.WordCount, e.Stats.ICount, e.Stats.Sentences),
	}
	if len(e.Stats.Keywords) > 0 {
		lines = append(lines, "Keywords:  "+strings.Join(e.Stats.Keywords, ", "))
	}
	if e.Cluster >= 0 {
		lines = append(lines, fmt.Sprintf("Cluster:   %d", e.Cluster))
	}
	return strings.Join(lines, "\n")
}

func hex(c domain.RGB) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	figureStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	detailBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	filterBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
