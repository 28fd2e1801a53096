package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
	"github.com/sandeepkv93/taskgrid/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handleMsg(msg)
	m.syncBubbleData()
	return m, cmd
}

func (m *Model) handleMsg(msg tea.Msg) tea.Cmd {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.width, m.height = typed.Width, typed.Height
		return nil
	}
	return nil
}

// handleKey routes a key to the innermost active context: alert, creation
// popup, palette, cell editor, then the table.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return tea.Quit
	}

	if m.Alert != "" {
		switch keyStr {
		case "enter", "esc", " ", "space":
			m.dismissAlert()
		}
		return nil
	}
	if m.form.IsOpen() {
		return m.handlePopupKey(msg)
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if !m.editor.Session().IsIdle() {
		return m.handleEditKey(msg)
	}

	switch keyStr {
	case m.Keys.Quit:
		m.Quitting = true
		return tea.Quit
	case "/":
		m.openPalette()
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
	case "D":
		m.cycleDensity()
	case m.Keys.All:
		m.setFilter(domainmodel.FilterAll)
	case m.Keys.Active:
		m.setFilter(domainmodel.FilterActive)
	case m.Keys.Completed:
		m.setFilter(domainmodel.FilterCompleted)
	case m.Keys.Cycle:
		m.setFilter(m.Filter.Next())
	case m.Keys.New:
		m.openPopup()
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "enter", "e":
		m.activateCell()
	case "x", "delete":
		m.deleteSelected()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.detailsView, cmd = m.detailsView.Update(msg)
		return cmd
	}
	return nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	left := joinNonEmpty(m.renderFilterBar(), m.renderTable(), m.renderEditor(), m.renderCommandPalette())
	right := joinNonEmpty(m.renderDetailsPane(), m.renderHelpIfVisible())

	modal := ""
	switch {
	case m.Alert != "":
		modal = views.RenderAlert(m.Alert)
	case m.form.IsOpen():
		modal = m.renderPopup()
	}

	selected := "-"
	if task, ok := m.selectedTask(); ok {
		selected = task.Title
	}
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("taskgrid | filter: %s | tasks: %d/%d | selected: %s", m.Filter, len(m.visibleTasks()), len(m.Tasks), selected),
		LeftPane:     left,
		RightPane:    right,
		Modal:        modal,
		StatusLine:   status,
		IsError:      m.Status.IsError,
		Notification: strings.TrimSpace(m.renderNotificationsView()),
		Footer:       fmt.Sprintf("keys: %s/%s/%s filter | %s new | enter edit | x delete | / cmd | %s help | %s quit", m.Keys.All, m.Keys.Active, m.Keys.Completed, m.Keys.New, m.Keys.Help, m.Keys.Quit),
		Width:        m.width,
		Height:       m.height,
	})
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
