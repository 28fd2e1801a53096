package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/taskgrid/internal/editor"
	"github.com/sandeepkv93/taskgrid/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.modeBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Mode:     m.mode(),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

// mode names the input context that currently receives keys.
func (m Model) mode() string {
	switch {
	case m.Alert != "":
		return "alert"
	case m.form.IsOpen():
		return "create"
	case m.Palette.Active:
		return "palette"
	case !m.editor.Session().IsIdle():
		return "edit"
	default:
		return "table"
	}
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.All, Action: "show all tasks"},
		{Key: m.Keys.Active, Action: "show active tasks"},
		{Key: m.Keys.Completed, Action: "show completed tasks"},
		{Key: m.Keys.Cycle, Action: "cycle filter"},
		{Key: m.Keys.New, Action: "new task"},
		{Key: "/", Action: "open command palette"},
		{Key: "D", Action: "cycle density"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) modeBindings() []KeyBinding {
	switch m.mode() {
	case "alert":
		return []KeyBinding{{Key: "enter/esc/space", Action: "dismiss"}}
	case "create":
		return []KeyBinding{
			{Key: "tab/shift+tab", Action: "next/previous field"},
			{Key: "←/→", Action: "change status"},
			{Key: "ctrl+s", Action: "create task"},
			{Key: "esc", Action: "cancel"},
		}
	case "palette":
		return []KeyBinding{
			{Key: "enter", Action: "run command"},
			{Key: "esc", Action: "close palette"},
		}
	case "edit":
		cell, _ := m.editor.Session().Cell()
		switch editor.KindFor(cell.Field) {
		case editor.KindChoice:
			return []KeyBinding{
				{Key: "←/→", Action: "choose status"},
				{Key: "enter", Action: "apply status"},
				{Key: "esc/tab", Action: "leave unchanged"},
			}
		case editor.KindMultiline:
			return []KeyBinding{
				{Key: "enter", Action: "new line"},
				{Key: "tab/ctrl+s", Action: "save"},
				{Key: "esc", Action: "discard"},
			}
		default:
			return []KeyBinding{
				{Key: "enter/tab", Action: "save"},
				{Key: "esc", Action: "discard"},
			}
		}
	default:
		return []KeyBinding{
			{Key: "h/j/k/l", Action: "move cell cursor"},
			{Key: "enter/e", Action: "edit cell or run action"},
			{Key: "x/delete", Action: "delete task"},
			{Key: "pgup/pgdown", Action: "scroll details"},
		}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.modeBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.modeBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
