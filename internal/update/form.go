package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskgrid/internal/editor"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
)

// Popup focus stops, in tab order.
const (
	popupTitle = iota
	popupDescription
	popupExecutor
	popupDeadline
	popupStatus
	popupCreate
	popupCancel
	popupStops
)

type popupState struct {
	focus       int
	title       textinput.Model
	executor    textinput.Model
	deadline    textinput.Model
	description textarea.Model
	status      int
}

func newPopupState() popupState {
	p := popupState{
		title:       newPopupInput(editor.KindText),
		executor:    newPopupInput(editor.KindText),
		deadline:    newPopupInput(editor.KindDate),
		description: textarea.New(),
	}
	p.description.SetWidth(48)
	p.description.ShowLineNumbers = false
	p.description.Placeholder = editor.KindMultiline.Placeholder()
	p.setFocus(popupTitle)
	return p
}

func newPopupInput(kind editor.Kind) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 256
	in.Width = 40
	in.Placeholder = kind.Placeholder()
	return in
}

func (p *popupState) setFocus(stop int) {
	p.focus = (stop + popupStops) % popupStops
	p.title.Blur()
	p.executor.Blur()
	p.deadline.Blur()
	p.description.Blur()
	switch p.focus {
	case popupTitle:
		p.title.Focus()
	case popupDescription:
		p.description.Focus()
	case popupExecutor:
		p.executor.Focus()
	case popupDeadline:
		p.deadline.Focus()
	}
}

func (p *popupState) focusField(f domainmodel.Field) {
	switch f {
	case domainmodel.FieldTitle:
		p.setFocus(popupTitle)
	case domainmodel.FieldDescription:
		p.setFocus(popupDescription)
	case domainmodel.FieldExecutor:
		p.setFocus(popupExecutor)
	case domainmodel.FieldDeadline:
		p.setFocus(popupDeadline)
	case domainmodel.FieldStatus:
		p.setFocus(popupStatus)
	}
}

func (p popupState) value(f domainmodel.Field) string {
	switch f {
	case domainmodel.FieldTitle:
		return p.title.Value()
	case domainmodel.FieldDescription:
		return p.description.Value()
	case domainmodel.FieldExecutor:
		return p.executor.Value()
	case domainmodel.FieldDeadline:
		return p.deadline.Value()
	case domainmodel.FieldStatus:
		return string(domainmodel.Statuses()[p.status])
	default:
		return ""
	}
}

func (m *Model) openPopup() {
	m.form.Open()
	m.popup = newPopupState()
	m.Status = StatusBar{Text: "new task"}
}

func (m *Model) closePopup() {
	m.form.Cancel()
	m.popup = newPopupState()
	m.Status = StatusBar{Text: "creation cancelled"}
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	p := &m.popup
	switch msg.String() {
	case "esc":
		m.closePopup()
		return nil
	case "ctrl+s":
		m.submitPopup()
		return nil
	case "tab":
		p.setFocus(p.focus + 1)
		return nil
	case "shift+tab":
		p.setFocus(p.focus - 1)
		return nil
	}

	var cmd tea.Cmd
	switch p.focus {
	case popupTitle, popupExecutor, popupDeadline:
		if msg.String() == "enter" {
			p.setFocus(p.focus + 1)
			return nil
		}
		switch p.focus {
		case popupTitle:
			p.title, cmd = p.title.Update(msg)
		case popupExecutor:
			p.executor, cmd = p.executor.Update(msg)
		default:
			p.deadline, cmd = p.deadline.Update(msg)
		}
	case popupDescription:
		p.description, cmd = p.description.Update(msg)
	case popupStatus:
		n := len(domainmodel.Statuses())
		switch msg.String() {
		case "left", "h":
			p.status = (p.status + n - 1) % n
		case "right", "l":
			p.status = (p.status + 1) % n
		case "enter":
			p.setFocus(popupCreate)
		}
	case popupCreate:
		if msg.String() == "enter" || msg.String() == " " {
			m.submitPopup()
		}
	case popupCancel:
		if msg.String() == "enter" || msg.String() == " " {
			m.closePopup()
		}
	}
	return cmd
}

// submitPopup stages the popup values into the form and creates the task.
// A validation failure keeps the popup open on the offending field.
func (m *Model) submitPopup() {
	for _, f := range domainmodel.Fields() {
		if err := m.form.Set(f, m.popup.value(f)); err != nil {
			m.showAlert(creationAlert(err))
			return
		}
	}
	title := m.form.Draft().Title
	id, err := m.form.Commit(m.ctx, m.store)
	if err != nil {
		m.LastError = err
		if ve, ok := domainmodel.AsValidationError(err); ok {
			m.popup.focusField(ve.Field)
		}
		m.showAlert(creationAlert(err))
		return
	}
	m.popup = newPopupState()
	m.logger.Info("task created", "id", id)
	m.reloadTasks()
	m.selectTask(id)
	m.Status = StatusBar{Text: "task created"}
	m.notify("Task", fmt.Sprintf("created %q", strings.TrimSpace(title)), "info")
}

// selectTask moves the row cursor onto id when it is visible.
func (m *Model) selectTask(id string) {
	for i, task := range m.visibleTasks() {
		if task.ID == id {
			m.Cursor.Row = i
			return
		}
	}
}
