package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/compasshq/compass/internal/domain"
)

// ReloadFunc produces the current agenda rows. It is called on startup,
// on manual refresh, and whenever the watcher reports a data change.
type ReloadFunc func() []domain.TaskInstance

// DataChangedMsg is sent when the file watcher detects a change to the
// persisted collections.
type DataChangedMsg struct{}

// agendaItem adapts a task instance to the bubbles list item interface.
type agendaItem struct {
	inst domain.TaskInstance
}

func (i agendaItem) Title() string {
	title := fmt.Sprintf("%s %s", TaskStatusIcon(i.inst.Status), i.inst.Title)
	if marker := PriorityIcon(i.inst.Priority); marker != " " {
		title += " " + marker
	}
	return title
}

func (i agendaItem) Description() string {
	when := i.inst.DueDate
	if i.inst.DueTime != "" {
		when += " " + i.inst.DueTime
	}
	return when
}

func (i agendaItem) FilterValue() string {
	return i.inst.Title
}

// agendaKeys defines the key bindings for the agenda view.
type agendaKeys struct {
	Refresh key.Binding
	Quit    key.Binding
}

func newAgendaKeys() agendaKeys {
	return agendaKeys{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AgendaModel is the Bubble Tea model for the interactive agenda view.
type AgendaModel struct {
	list   list.Model
	keys   agendaKeys
	reload ReloadFunc
	title  string
}

// NewAgendaModel creates an agenda view over the given data source.
func NewAgendaModel(title string, reload ReloadFunc) AgendaModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(ColorMuted)

	l := list.New(nil, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.Styles.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	m := AgendaModel{list: l, keys: newAgendaKeys(), reload: reload, title: title}
	m.refresh()
	return m
}

func (m *AgendaModel) refresh() {
	instances := m.reload()
	items := make([]list.Item, len(instances))
	for i, inst := range instances {
		items[i] = agendaItem{inst: inst}
	}
	m.list.SetItems(items)
}

// Init implements tea.Model.
func (m AgendaModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AgendaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case DataChangedMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m AgendaModel) View() string {
	if len(m.list.Items()) == 0 {
		empty := StyleDim.Render("Nothing scheduled. Press q to quit.")
		return m.list.Styles.Title.Render(m.title) + "\n\n" + empty + "\n"
	}
	return m.list.View()
}
