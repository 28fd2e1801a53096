package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
)

// runCommand types line into the palette one rune at a time, as a terminal
// delivers it, then submits.
func runCommand(m Model, line string) Model {
	m = press(m, "/")
	for _, r := range line {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return press(m, "enter")
}

func TestPaletteFilterCommand(t *testing.T) {
	m, _ := seededModel(t, "A")
	m = runCommand(m, "filter completed")
	if m.Filter != domainmodel.FilterCompleted {
		t.Fatalf("expected completed filter, got %s", m.Filter)
	}
	if m.Palette.Active {
		t.Fatal("expected palette closed after command")
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m := NewModel(newTestStore())
	m = runCommand(m, "add Report | Quarterly | Anna | 2024-05-01 | done")
	if len(m.Tasks) != 1 {
		t.Fatalf("expected task added, status=%+v", m.Status)
	}
	if m.Tasks[0].Status != domainmodel.StatusCompleted || m.Tasks[0].Executor != "Anna" {
		t.Fatalf("unexpected task %+v", m.Tasks[0])
	}

	m = runCommand(m, "add B |  | e | 2024-05-01")
	if m.Alert != "Введите описание задачи" || len(m.Tasks) != 1 {
		t.Fatalf("expected description alert, got %q with %d tasks", m.Alert, len(m.Tasks))
	}
}

func TestPaletteStatusEditAndDelete(t *testing.T) {
	m, s := seededModel(t, "A", "B")
	m = press(m, "j")
	m = runCommand(m, "status cancelled")
	if got := mustTask(t, s, "task-2").Status; got != domainmodel.StatusCancelled {
		t.Fatalf("expected cancelled via palette, got %q", got)
	}
	if !m.Editor().Session().IsIdle() {
		t.Fatal("expected status command to end the session")
	}

	m = runCommand(m, "edit deadline")
	if !m.Editor().IsEditing("task-2", domainmodel.FieldDeadline) {
		t.Fatalf("expected deadline edit, got %s", m.Editor().Session())
	}
	m = press(m, "esc")

	m = runCommand(m, "delete")
	if len(m.Tasks) != 1 || m.Tasks[0].ID != "task-1" {
		t.Fatalf("expected task-2 deleted, got %+v", m.Tasks)
	}
	if m.Status.IsError || m.Status.Text != "deleted task: B" {
		t.Fatalf("unexpected status after delete: %+v", m.Status)
	}
}

func TestPaletteErrorsSetErrorStatus(t *testing.T) {
	m, _ := seededModel(t, "A")
	for _, line := range []string{"unknown", "filter archived", "status paused", "edit id"} {
		m = runCommand(m, line)
		if !m.Status.IsError {
			t.Fatalf("%q: expected error status, got %+v", line, m.Status)
		}
	}
	if m.Filter != domainmodel.FilterAll || len(m.Tasks) != 1 {
		t.Fatalf("expected failed commands to leave state alone, filter=%s tasks=%d", m.Filter, len(m.Tasks))
	}

	empty := runCommand(NewModel(newTestStore()), "delete")
	if !empty.Status.IsError {
		t.Fatalf("expected delete without selection to fail, got %+v", empty.Status)
	}
}

func TestPaletteEscCloses(t *testing.T) {
	m := NewModel(newTestStore())
	m = press(m, "/", "filter", "esc")
	if m.Palette.Active || m.Palette.Input != "" {
		t.Fatalf("expected palette closed and cleared, got %+v", m.Palette)
	}
}
