package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/taskgrid/internal/model"
)

var (
	ErrNotFound    = errors.New("storage: not found")
	ErrDuplicateID = errors.New("storage: duplicate id")
)

// Repository keeps tasks in insertion order for the lifetime of the session.
type Repository interface {
	CreateTask(ctx context.Context, in model.Task) error
	GetTask(ctx context.Context, id string) (model.Task, error)
	UpdateTask(ctx context.Context, in model.Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context) ([]model.Task, error)
	Close() error
}
