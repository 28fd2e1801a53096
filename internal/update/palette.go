package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskgrid/internal/commands"
	"github.com/sandeepkv93/taskgrid/internal/editor"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
)

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m.executePaletteCommand()
		return nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return cmd
}

func (m *Model) executePaletteCommand() {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("command rejected", "input", raw, "err", err)
		return
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			form := editor.NewForm()
			form.Open()
			values := map[domainmodel.Field]string{
				domainmodel.FieldTitle:       a.Title,
				domainmodel.FieldDescription: a.Description,
				domainmodel.FieldExecutor:    a.Executor,
				domainmodel.FieldDeadline:    a.Deadline,
			}
			if a.Status != "" {
				values[domainmodel.FieldStatus] = a.Status
			}
			for _, f := range domainmodel.Fields() {
				v, ok := values[f]
				if !ok {
					continue
				}
				if err := form.Set(f, v); err != nil {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
				}
			}
			id, err := form.Commit(m.ctx, m.store)
			if err != nil {
				m.showAlert(creationAlert(err))
				return commands.Result{}, err
			}
			m.reloadTasks()
			m.selectTask(id)
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Title)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			mode, err := domainmodel.ParseFilterMode(f.Mode)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.setFilter(mode)
			return commands.Result{Message: fmt.Sprintf("filter: %s", mode)}, nil
		},
		Delete: func() (commands.Result, error) {
			task, ok := m.selectedTask()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
			}
			m.deleteTask(task.ID)
			return commands.Result{Message: fmt.Sprintf("deleted task: %s", task.Title)}, nil
		},
		Status: func(s commands.StatusArgs) (commands.Result, error) {
			task, ok := m.selectedTask()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
			}
			status, err := domainmodel.ParseStatus(s.Status)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.beginEdit(task, domainmodel.FieldStatus)
			m.selectStatus(status)
			if m.Alert != "" {
				return commands.Result{}, m.LastError
			}
			return commands.Result{Message: fmt.Sprintf("status: %s", status)}, nil
		},
		Edit: func(e commands.EditArgs) (commands.Result, error) {
			task, ok := m.selectedTask()
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task selected"}
			}
			field, err := domainmodel.ParseField(e.Field)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.beginEdit(task, field)
			return commands.Result{Message: fmt.Sprintf("editing %s", field)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		m.logger.Warn("command failed", "input", raw, "err", err)
		return
	}
	m.Status = StatusBar{Text: res.Message}
	m.notify("Command", res.Message, "info")
	m.logger.Info("command", "input", raw, "result", res.Message)
}
