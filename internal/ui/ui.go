package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ravenel/tick/internal/models"
	"github.com/ravenel/tick/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	InputView
	ConfirmDeleteView
)

// Model represents the TUI application state. All record state lives in
// the store; the model only holds presentation concerns.
type Model struct {
	ctx           context.Context
	view          ViewState
	store         *store.Store
	enable        func(context.Context) error
	filter        models.Filter
	width         int
	height        int
	recordList    list.Model
	input         textinput.Model
	pendingDelete *models.Record
	status        string
	help          help.Model
	keys          keyMap
}

// NewModel creates a new TUI model. enable is the user-triggered
// notification opt-in; nil hides the binding's effect.
func NewModel(ctx context.Context, st *store.Store, enable func(context.Context) error) *Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 200

	recordList := list.New(recordItems(st.Filtered(models.FilterAll)), list.NewDefaultDelegate(), 0, 0)
	recordList.Title = "Tasks"
	recordList.SetShowHelp(false)

	return &Model{
		ctx:        ctx,
		view:       ListView,
		store:      st,
		enable:     enable,
		filter:     models.FilterAll,
		recordList: recordList,
		input:      input,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recordList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ListView:
			return m.handleListKeys(msg)
		case InputView:
			return m.handleInputKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		}
	}

	var cmd tea.Cmd
	m.recordList, cmd = m.recordList.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ListView:
		return m.renderList()
	case InputView:
		return m.renderInput()
	case ConfirmDeleteView:
		return m.renderConfirm()
	default:
		return ""
	}
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.view = InputView
		m.input.Reset()
		return m, m.input.Focus()
	case "f":
		m.cycleFilter()
		return m, nil
	case "n":
		if m.enable != nil {
			if err := m.enable(m.ctx); err != nil {
				m.status = styles.warn.Render(fmt.Sprintf("notifications: %v", err))
			} else {
				m.status = styles.ok.Render("notifications enabled")
			}
		}
		return m, nil
	case "enter", " ":
		if r, ok := m.selected(); ok {
			m.store.Toggle(m.ctx, r.ID)
			m.refresh()
		}
		return m, nil
	case "d":
		if r, ok := m.selected(); ok {
			m.pendingDelete = &r
			m.view = ConfirmDeleteView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.recordList, cmd = m.recordList.Update(msg)
	return m, cmd
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = ListView
		m.input.Blur()
		return m, nil
	case "enter":
		m.store.Add(m.ctx, m.input.Value())
		m.input.Blur()
		m.view = ListView
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKeys is the confirmation gate: removal reaches the store
// only on an explicit yes.
func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if m.pendingDelete != nil {
			m.store.Remove(m.ctx, m.pendingDelete.ID)
			m.pendingDelete = nil
			m.refresh()
		}
		m.view = ListView
		return m, nil
	case "n", "esc", "q":
		m.pendingDelete = nil
		m.view = ListView
		return m, nil
	}
	return m, nil
}

// selected returns the record under the cursor.
func (m *Model) selected() (models.Record, bool) {
	item := m.recordList.SelectedItem()
	if item == nil {
		return models.Record{}, false
	}
	ri, ok := item.(recordItem)
	return ri.record, ok
}

// cycleFilter rotates all → pending → completed → all.
func (m *Model) cycleFilter() {
	switch m.filter {
	case models.FilterAll:
		m.filter = models.FilterPending
	case models.FilterPending:
		m.filter = models.FilterCompleted
	default:
		m.filter = models.FilterAll
	}
	m.refresh()
}

// refresh rebuilds the visible list from a fresh store snapshot.
func (m *Model) refresh() {
	m.recordList.SetItems(recordItems(m.store.Filtered(m.filter)))
	m.recordList.Title = listTitle(m.filter)
}

func listTitle(f models.Filter) string {
	switch f {
	case models.FilterPending:
		return "Tasks · pending"
	case models.FilterCompleted:
		return "Tasks · completed"
	default:
		return "Tasks"
	}
}

func (m *Model) renderList() string {
	view := m.recordList.View()
	if m.status != "" {
		view += "\n" + m.status
	}
	return view + "\n" + m.help.View(m.keys)
}

func (m *Model) renderInput() string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		styles.title.Render("Add a task"),
		m.input.View(),
		styles.help.Render("enter to save • esc to cancel"),
	)
}

func (m *Model) renderConfirm() string {
	text := ""
	if m.pendingDelete != nil {
		text = m.pendingDelete.Text
	}
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		styles.title.Render("Delete task?"),
		styles.warn.Render(fmt.Sprintf("  %q", text)),
		styles.help.Render("y to delete • n to keep"),
	)
}
