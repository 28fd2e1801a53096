package update

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
	"github.com/sandeepkv93/taskgrid/internal/storage"
	"github.com/sandeepkv93/taskgrid/internal/store"
)

func newTestStore() *store.Store {
	n := 0
	return store.New(storage.NewMemoryRepository(), store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}))
}

// seededModel builds a model over a store holding one valid task per title.
func seededModel(t *testing.T, titles ...string) (Model, *store.Store) {
	t.Helper()
	s := newTestStore()
	for _, title := range titles {
		_, err := s.Add(context.Background(), domainmodel.Draft{Title: title, Description: "d", Executor: "e", Deadline: "2024-01-01"})
		if err != nil {
			t.Fatalf("seed %q: %v", title, err)
		}
	}
	return NewModel(s), s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press feeds keys through Update one at a time. Multi-rune strings arrive as
// a single typed chunk.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func mustTask(t *testing.T, s *store.Store, id string) domainmodel.Task {
	t.Helper()
	task, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return task
}

type recordingNotifier struct {
	sent []Notification
}

func (r *recordingNotifier) Send(n Notification) error {
	r.sent = append(r.sent, n)
	return nil
}
