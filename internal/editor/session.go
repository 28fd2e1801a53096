package editor

import "github.com/sandeepkv93/taskgrid/internal/model"

// Cell addresses one editable field of one task.
type Cell struct {
	TaskID string
	Field  model.Field
}

// Session is either idle or editing exactly one cell.
type Session struct {
	cell *Cell
}

func Idle() Session { return Session{} }

func Editing(taskID string, field model.Field) Session {
	return Session{cell: &Cell{TaskID: taskID, Field: field}}
}

// Cell returns the edited cell, or false when idle.
func (s Session) Cell() (Cell, bool) {
	if s.cell == nil {
		return Cell{}, false
	}
	return *s.cell, true
}

func (s Session) IsIdle() bool { return s.cell == nil }

func (s Session) Is(taskID string, field model.Field) bool {
	return s.cell != nil && s.cell.TaskID == taskID && s.cell.Field == field
}

func (s Session) String() string {
	if s.cell == nil {
		return "idle"
	}
	return "editing " + s.cell.TaskID + "/" + string(s.cell.Field)
}
