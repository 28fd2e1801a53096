// Package store implements the task list contract on top of a storage
// repository: validated creation, single-field edits, idempotent removal and
// an insertion-ordered listing.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"
	"github.com/sandeepkv93/taskgrid/internal/model"
	"github.com/sandeepkv93/taskgrid/internal/storage"
)

type Store struct {
	repo   storage.Repository
	newID  func() string
	logger *log.Logger
}

type Option func(*Store)

// WithIDGenerator replaces the default ULID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(repo storage.Repository, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		newID:  NewULID,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewULID returns a lexically sortable id that is monotonic within the process.
func NewULID() string {
	return ulid.Make().String()
}

// Add validates d, assigns a fresh id and appends the task.
func (s *Store) Add(ctx context.Context, d model.Draft) (string, error) {
	if err := d.Validate(); err != nil {
		s.logger.Warn("task rejected", "err", err)
		return "", err
	}
	n := d.Normalized()
	task := model.Task{
		ID:          s.newID(),
		Title:       n.Title,
		Description: n.Description,
		Executor:    n.Executor,
		Deadline:    n.Deadline,
		Status:      n.Status,
	}
	if err := task.Validate(); err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}
	s.logger.Debug("task added", "id", task.ID, "title", task.Title)
	return task.ID, nil
}

// Update replaces a single field. Blank values, invalid dates and statuses
// outside the closed set are rejected before the task is looked up.
func (s *Store) Update(ctx context.Context, id string, field model.Field, value string) error {
	normalized, err := normalizeValue(field, value)
	if err != nil {
		s.logger.Warn("update rejected", "id", id, "field", field, "err", err)
		return err
	}
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}
	updated := task.With(field, normalized)
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}
	if err := s.repo.UpdateTask(ctx, updated); err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}
	s.logger.Debug("task updated", "id", id, "field", field)
	return nil
}

// Remove deletes the task. A missing id is not an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	err := s.repo.DeleteTask(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove task %s: %w", id, err)
	}
	s.logger.Debug("task removed", "id", id)
	return nil
}

func (s *Store) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.ListTasks(ctx)
}

func (s *Store) Get(ctx context.Context, id string) (model.Task, error) {
	return s.repo.GetTask(ctx, id)
}

func normalizeValue(field model.Field, value string) (string, error) {
	if !field.IsValid() {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownField, field)
	}
	if strings.TrimSpace(value) == "" {
		return "", &model.ValidationError{Field: field, Reason: model.ReasonRequired}
	}
	switch field {
	case model.FieldDeadline:
		d, err := model.ParseDeadline(value)
		if err != nil {
			return "", &model.ValidationError{Field: field, Reason: model.ReasonInvalid}
		}
		return d.Format(model.DeadlineLayout), nil
	case model.FieldStatus:
		st, err := model.ParseStatus(value)
		if err != nil {
			return "", &model.ValidationError{Field: field, Reason: model.ReasonInvalid}
		}
		return string(st), nil
	default:
		return strings.TrimSpace(value), nil
	}
}
