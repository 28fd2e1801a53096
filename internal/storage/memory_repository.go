package storage

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/taskgrid/internal/model"
)

// MemoryRepository is an ordered slice of tasks. It is not safe for
// concurrent use; the UI drives it from a single event loop.
type MemoryRepository struct {
	tasks []model.Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Close() error { return nil }

func (r *MemoryRepository) CreateTask(_ context.Context, in model.Task) error {
	if r.indexOf(in.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, in.ID)
	}
	r.tasks = append(r.tasks, in)
	return nil
}

func (r *MemoryRepository) GetTask(_ context.Context, id string) (model.Task, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}
	return r.tasks[idx], nil
}

func (r *MemoryRepository) UpdateTask(_ context.Context, in model.Task) error {
	idx := r.indexOf(in.ID)
	if idx < 0 {
		return ErrNotFound
	}
	r.tasks[idx] = in
	return nil
}

func (r *MemoryRepository) DeleteTask(_ context.Context, id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	return nil
}

func (r *MemoryRepository) ListTasks(_ context.Context) ([]model.Task, error) {
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *MemoryRepository) indexOf(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
