package update

import (
	"fmt"

	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
)

// actionsCol is the column holding the delete action, right after the fields.
var actionsCol = len(domainmodel.Fields())

func (m Model) visibleTasks() []domainmodel.Task {
	return domainmodel.ApplyFilter(m.Tasks, m.Filter)
}

func (m Model) selectedTask() (domainmodel.Task, bool) {
	visible := m.visibleTasks()
	if m.Cursor.Row < 0 || m.Cursor.Row >= len(visible) {
		return domainmodel.Task{}, false
	}
	return visible[m.Cursor.Row], true
}

// selectedField is the task field under the cursor, false on the actions column.
func (m Model) selectedField() (domainmodel.Field, bool) {
	fields := domainmodel.Fields()
	if m.Cursor.Col < 0 || m.Cursor.Col >= len(fields) {
		return "", false
	}
	return fields[m.Cursor.Col], true
}

func (m *Model) clampCursor() {
	rows := len(m.visibleTasks())
	if m.Cursor.Row >= rows {
		m.Cursor.Row = rows - 1
	}
	if m.Cursor.Row < 0 {
		m.Cursor.Row = 0
	}
	if m.Cursor.Col > actionsCol {
		m.Cursor.Col = actionsCol
	}
	if m.Cursor.Col < 0 {
		m.Cursor.Col = 0
	}
}

func (m *Model) moveCursor(dRow, dCol int) {
	m.Cursor.Row += dRow
	m.Cursor.Col += dCol
	m.clampCursor()
}

func (m *Model) setFilter(mode domainmodel.FilterMode) {
	if !mode.IsValid() {
		mode = domainmodel.FilterAll
	}
	m.Filter = mode
	m.Cursor.Row = 0
	m.clampCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", mode)}
}

// activateCell edits the cell under the cursor, or deletes the row on the
// actions column.
func (m *Model) activateCell() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	field, ok := m.selectedField()
	if !ok {
		m.deleteTask(task.ID)
		return
	}
	m.beginEdit(task, field)
}

func (m *Model) deleteSelected() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	m.deleteTask(task.ID)
}

func (m *Model) deleteTask(id string) {
	if cell, ok := m.editor.Session().Cell(); ok && cell.TaskID == id {
		m.cancelEdit()
	}
	if err := m.store.Remove(m.ctx, id); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Error("remove task", "id", id, "err", err)
		return
	}
	m.logger.Info("task removed", "id", id)
	m.reloadTasks()
	m.Status = StatusBar{Text: "task removed"}
}

// focusField moves the cursor onto field of the selected row.
func (m *Model) focusField(field domainmodel.Field) {
	for i, f := range domainmodel.Fields() {
		if f == field {
			m.Cursor.Col = i
			return
		}
	}
}

// completionRatio is the share of tasks that are completed or cancelled.
func (m Model) completionRatio() float64 {
	if len(m.Tasks) == 0 {
		return 0
	}
	done := len(domainmodel.ApplyFilter(m.Tasks, domainmodel.FilterCompleted))
	return float64(done) / float64(len(m.Tasks))
}
