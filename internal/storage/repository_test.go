package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sandeepkv93/taskgrid/internal/model"
)

func newTask(n int) model.Task {
	return model.Task{
		ID:          fmt.Sprintf("task-%d", n),
		Title:       fmt.Sprintf("Task %d", n),
		Description: "Design storage layout",
		Executor:    "alice",
		Deadline:    "2026-02-09",
		Status:      model.StatusActive,
	}
}

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	sqliteRepo, err := OpenMemorySQLite()
	if err != nil {
		t.Fatalf("open memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqliteRepo.Close() })
	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"sqlite": sqliteRepo,
	}
}

func TestTaskCRUDAndList(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			task := newTask(1)
			if err := repo.CreateTask(ctx, task); err != nil {
				t.Fatalf("create task: %v", err)
			}

			got, err := repo.GetTask(ctx, task.ID)
			if err != nil {
				t.Fatalf("get task: %v", err)
			}
			if got != task {
				t.Fatalf("unexpected task get result: %#v", got)
			}

			task.Title = "Write schema v2"
			task.Status = model.StatusCompleted
			if err := repo.UpdateTask(ctx, task); err != nil {
				t.Fatalf("update task: %v", err)
			}
			got, err = repo.GetTask(ctx, task.ID)
			if err != nil {
				t.Fatalf("get updated task: %v", err)
			}
			if got.Title != "Write schema v2" || got.Status != model.StatusCompleted {
				t.Fatalf("unexpected updated task: %#v", got)
			}

			if err := repo.DeleteTask(ctx, task.ID); err != nil {
				t.Fatalf("delete task: %v", err)
			}
			if _, err := repo.GetTask(ctx, task.ID); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got: %v", err)
			}
		})
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, n := range []int{3, 1, 2} {
				if err := repo.CreateTask(ctx, newTask(n)); err != nil {
					t.Fatalf("create task %d: %v", n, err)
				}
			}
			if err := repo.DeleteTask(ctx, "task-1"); err != nil {
				t.Fatalf("delete middle task: %v", err)
			}
			if err := repo.CreateTask(ctx, newTask(4)); err != nil {
				t.Fatalf("create task 4: %v", err)
			}

			list, err := repo.ListTasks(ctx)
			if err != nil {
				t.Fatalf("list tasks: %v", err)
			}
			want := []string{"task-3", "task-2", "task-4"}
			if len(list) != len(want) {
				t.Fatalf("expected %d tasks, got %d", len(want), len(list))
			}
			for i := range want {
				if list[i].ID != want[i] {
					t.Fatalf("list[%d] = %s, want %s", i, list[i].ID, want[i])
				}
			}
		})
	}
}

func TestMissingTaskErrors(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := repo.UpdateTask(ctx, newTask(9)); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on update, got %v", err)
			}
			if err := repo.DeleteTask(ctx, "task-9"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on delete, got %v", err)
			}
		})
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := repo.CreateTask(ctx, newTask(1)); err != nil {
				t.Fatalf("create task: %v", err)
			}
			if err := repo.CreateTask(ctx, newTask(1)); !errors.Is(err, ErrDuplicateID) {
				t.Fatalf("expected ErrDuplicateID, got %v", err)
			}
		})
	}
}

func TestMemoryListReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	if err := repo.CreateTask(ctx, newTask(1)); err != nil {
		t.Fatalf("create task: %v", err)
	}
	list, _ := repo.ListTasks(ctx)
	list[0].Title = "mutated"
	got, _ := repo.GetTask(ctx, "task-1")
	if got.Title == "mutated" {
		t.Fatal("expected list to return a copy")
	}
}
