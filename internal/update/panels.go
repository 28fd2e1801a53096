package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/taskgrid/internal/editor"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
	"github.com/sandeepkv93/taskgrid/internal/views"
)

func (m Model) renderFilterBar() string {
	keys := map[domainmodel.FilterMode]string{
		domainmodel.FilterAll:       m.Keys.All,
		domainmodel.FilterActive:    m.Keys.Active,
		domainmodel.FilterCompleted: m.Keys.Completed,
	}
	tabs := make([]views.FilterTab, 0, len(keys))
	for _, mode := range domainmodel.FilterModes() {
		tabs = append(tabs, views.FilterTab{
			Key:    keys[mode],
			Label:  filterLabel(mode),
			Count:  len(domainmodel.ApplyFilter(m.Tasks, mode)),
			Active: mode == m.Filter,
		})
	}
	return views.RenderFilterBar(tabs)
}

func (m Model) renderTable() string {
	visible := m.visibleTasks()
	rows := make([]views.TaskRow, 0, len(visible))
	for _, task := range visible {
		cells := make([]string, 0, actionsCol)
		for _, f := range domainmodel.Fields() {
			v := task.Value(f)
			if f == domainmodel.FieldDeadline {
				v = domainmodel.FormatDeadline(v, m.dateLayout)
			}
			cells = append(cells, v)
		}
		rows = append(rows, views.TaskRow{Cells: cells, StatusSlug: task.Status.Slug()})
	}

	editingRow, editingCol := -1, -1
	if cell, ok := m.editor.Session().Cell(); ok {
		for i, task := range visible {
			if task.ID == cell.TaskID {
				editingRow = i
				break
			}
		}
		for i, f := range domainmodel.Fields() {
			if f == cell.Field {
				editingCol = i
			}
		}
	}

	return views.RenderTaskTable(views.TableData{
		Rows:       rows,
		CursorRow:  m.Cursor.Row,
		CursorCol:  m.Cursor.Col,
		EditingRow: editingRow,
		EditingCol: editingCol,
		Height:     densityDimensions(m.uiDensity).tableRows,
	})
}

// renderEditor shows the widget of the cell being edited.
func (m Model) renderEditor() string {
	cell, ok := m.editor.Session().Cell()
	if !ok {
		return ""
	}
	title := cell.TaskID
	for _, task := range m.Tasks {
		if task.ID == cell.TaskID {
			title = task.Title
			break
		}
	}
	kind := editor.KindFor(cell.Field)
	var widget string
	switch kind {
	case editor.KindMultiline:
		widget = m.cellArea.View()
	case editor.KindChoice:
		widget = views.RenderChoice(statusLabels(), m.statusChoice, true)
	default:
		widget = m.cellInput.View()
	}
	return views.RenderEditorPanel(views.EditorPanelData{
		TaskTitle:  title,
		FieldLabel: views.FieldLabel(string(cell.Field)),
		Kind:       kind.String(),
		WidgetView: widget,
	})
}

func (m Model) renderPopup() string {
	if !m.form.IsOpen() {
		return ""
	}
	p := m.popup
	fields := []views.PopupField{
		{Label: views.FieldLabel(string(domainmodel.FieldTitle)), View: p.title.View(), Required: true, Focused: p.focus == popupTitle},
		{Label: views.FieldLabel(string(domainmodel.FieldDescription)), View: p.description.View(), Required: true, Focused: p.focus == popupDescription},
		{Label: views.FieldLabel(string(domainmodel.FieldExecutor)), View: p.executor.View(), Required: true, Focused: p.focus == popupExecutor},
		{Label: views.FieldLabel(string(domainmodel.FieldDeadline)), View: p.deadline.View(), Required: true, Focused: p.focus == popupDeadline},
		{Label: views.FieldLabel(string(domainmodel.FieldStatus)), View: views.RenderChoice(statusLabels(), p.status, p.focus == popupStatus), Focused: p.focus == popupStatus},
	}
	return views.RenderCreatePopup(views.PopupData{
		Fields:        fields,
		CreateFocused: p.focus == popupCreate,
		CancelFocused: p.focus == popupCancel,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderDetailsPane() string {
	done := len(domainmodel.ApplyFilter(m.Tasks, domainmodel.FilterCompleted))
	return views.RenderDetailsPane(views.DetailsData{
		ProgressView: m.completion.ViewAs(m.completionRatio()),
		Done:         done,
		Total:        len(m.Tasks),
		DetailsView:  m.detailsView.View(),
		HasSelection: m.detailsSource != "",
	})
}

// detailsMarkdown describes the selected task for the details pane.
func (m Model) detailsMarkdown() string {
	task, ok := m.selectedTask()
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", task.Title)
	fmt.Fprintf(&b, "- **%s:** %s\n", views.FieldLabel(string(domainmodel.FieldExecutor)), task.Executor)
	fmt.Fprintf(&b, "- **%s:** %s\n", views.FieldLabel(string(domainmodel.FieldDeadline)), domainmodel.FormatDeadline(task.Deadline, m.dateLayout))
	fmt.Fprintf(&b, "- **%s:** %s\n\n", views.FieldLabel(string(domainmodel.FieldStatus)), task.Status)
	b.WriteString(task.Description)
	b.WriteString("\n")
	return b.String()
}

func renderDetails(md string) string {
	if md == "" {
		return ""
	}
	return views.RenderMarkdown(md)
}

// showAlert raises a blocking alert; only dismiss keys are handled until it
// is cleared.
func (m *Model) showAlert(text string) {
	m.Alert = text
	m.logger.Warn("alert", "message", text)
	m.notify("taskgrid", text, "error")
}

func (m *Model) dismissAlert() {
	m.Alert = ""
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			m.logger.Debug("desktop notification failed", "err", err)
		}
	}
}

func statusLabels() []string {
	statuses := domainmodel.Statuses()
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func filterLabel(mode domainmodel.FilterMode) string {
	switch mode {
	case domainmodel.FilterActive:
		return "Активные"
	case domainmodel.FilterCompleted:
		return "Завершённые"
	default:
		return "Все"
	}
}
