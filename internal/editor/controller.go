// Package editor holds the inline edit-session state machine and the
// creation form staging area.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/taskgrid/internal/model"
)

var (
	ErrNoSession      = errors.New("editor: no cell is being edited")
	ErrNotStatusField = errors.New("editor: status selection outside a status cell")
)

// Updater applies a committed single-field edit.
type Updater interface {
	Update(ctx context.Context, id string, field model.Field, value string) error
}

// Controller moves between Idle and Editing(taskID, field) and forwards
// committed values to the Updater.
type Controller struct {
	store   Updater
	session Session
}

func NewController(store Updater) Controller {
	return Controller{store: store, session: Idle()}
}

func (c Controller) Session() Session { return c.session }

func (c Controller) IsEditing(taskID string, field model.Field) bool {
	return c.session.Is(taskID, field)
}

// Begin starts editing a cell. A previous uncommitted edit is dropped without
// saving and returned.
func (c *Controller) Begin(taskID string, field model.Field) (Cell, bool) {
	prev, had := c.session.Cell()
	c.session = Editing(taskID, field)
	if had && prev.TaskID == taskID && prev.Field == field {
		return Cell{}, false
	}
	return prev, had
}

// Commit normalizes raw through the field's widget kind and updates the store.
// The session returns to idle whether or not the value was accepted.
func (c *Controller) Commit(ctx context.Context, raw string) error {
	cell, ok := c.session.Cell()
	if !ok {
		return ErrNoSession
	}
	c.session = Idle()

	value, err := KindFor(cell.Field).Normalize(cell.Field, raw)
	if err != nil {
		return err
	}
	if err := c.store.Update(ctx, cell.TaskID, cell.Field, value); err != nil {
		return fmt.Errorf("commit %s: %w", cell.Field, err)
	}
	return nil
}

// SelectStatus commits a status choice immediately, without a separate blur.
func (c *Controller) SelectStatus(ctx context.Context, status model.Status) error {
	cell, ok := c.session.Cell()
	if !ok {
		return ErrNoSession
	}
	if cell.Field != model.FieldStatus {
		return ErrNotStatusField
	}
	return c.Commit(ctx, string(status))
}

// Cancel leaves edit mode without committing.
func (c *Controller) Cancel() {
	c.session = Idle()
}
