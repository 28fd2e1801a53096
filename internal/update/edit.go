package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskgrid/internal/editor"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
	"github.com/sandeepkv93/taskgrid/internal/storage"
)

// beginEdit opens the widget for field of task and seeds it with the stored value.
func (m *Model) beginEdit(task domainmodel.Task, field domainmodel.Field) {
	if fresh, err := m.store.Get(m.ctx, task.ID); err == nil {
		task = fresh
	}
	if prev, abandoned := m.editor.Begin(task.ID, field); abandoned {
		m.logger.Debug("edit abandoned", "id", prev.TaskID, "field", prev.Field)
	}
	m.focusField(field)

	kind := editor.KindFor(field)
	value := task.Value(field)
	m.cellInput.Blur()
	m.cellArea.Blur()
	switch kind {
	case editor.KindMultiline:
		m.cellArea.SetValue(value)
		m.cellArea.Focus()
	case editor.KindChoice:
		m.statusChoice = statusIndex(task.Status)
	default:
		m.cellInput.Placeholder = kind.Placeholder()
		m.cellInput.SetValue(value)
		m.cellInput.CursorEnd()
		m.cellInput.Focus()
	}
	m.Status = StatusBar{Text: fmt.Sprintf("editing %s", field)}
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	cell, ok := m.editor.Session().Cell()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	switch editor.KindFor(cell.Field) {
	case editor.KindChoice:
		statuses := domainmodel.Statuses()
		switch msg.String() {
		case "left", "h":
			m.statusChoice = (m.statusChoice + len(statuses) - 1) % len(statuses)
		case "right", "l":
			m.statusChoice = (m.statusChoice + 1) % len(statuses)
		case "enter":
			m.selectStatus(statuses[m.statusChoice])
		case "esc", "tab":
			m.cancelEdit()
		}
	case editor.KindMultiline:
		switch msg.String() {
		case "tab", "ctrl+s":
			m.commitEdit(m.cellArea.Value())
		case "esc":
			m.cancelEdit()
		default:
			m.cellArea, cmd = m.cellArea.Update(msg)
		}
	default:
		switch msg.String() {
		case "enter", "tab":
			m.commitEdit(m.cellInput.Value())
		case "esc":
			m.cancelEdit()
		default:
			m.cellInput, cmd = m.cellInput.Update(msg)
		}
	}
	return cmd
}

func (m *Model) commitEdit(raw string) {
	cell, _ := m.editor.Session().Cell()
	err := m.editor.Commit(m.ctx, raw)
	m.blurCellWidgets()
	m.afterEdit(cell, err)
}

func (m *Model) selectStatus(status domainmodel.Status) {
	cell, _ := m.editor.Session().Cell()
	err := m.editor.SelectStatus(m.ctx, status)
	m.afterEdit(cell, err)
}

func (m *Model) afterEdit(cell editor.Cell, err error) {
	switch {
	case err == nil:
		m.logger.Info("task updated", "id", cell.TaskID, "field", cell.Field)
		m.Status = StatusBar{Text: fmt.Sprintf("%s saved", cell.Field)}
	case errors.Is(err, storage.ErrNotFound):
		m.LastError = err
		m.Status = StatusBar{Text: "task no longer exists"}
		m.logger.Warn("edit target vanished", "id", cell.TaskID, "err", err)
	default:
		m.LastError = err
		m.showAlert(editAlert(err))
	}
	m.reloadTasks()
}

func (m *Model) cancelEdit() {
	m.editor.Cancel()
	m.blurCellWidgets()
	m.Status = StatusBar{Text: "edit cancelled"}
}

func (m *Model) blurCellWidgets() {
	m.cellInput.Blur()
	m.cellArea.Blur()
}

func statusIndex(s domainmodel.Status) int {
	for i, candidate := range domainmodel.Statuses() {
		if candidate == s {
			return i
		}
	}
	return 0
}
