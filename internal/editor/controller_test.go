package editor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sandeepkv93/taskgrid/internal/model"
	"github.com/sandeepkv93/taskgrid/internal/storage"
	"github.com/sandeepkv93/taskgrid/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	n := 0
	return store.New(storage.NewMemoryRepository(), store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}))
}

func seed(t *testing.T, s *store.Store) string {
	t.Helper()
	id, err := s.Add(context.Background(), model.Draft{Title: "A", Description: "d", Executor: "e", Deadline: "2024-01-01"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return id
}

func mustGet(t *testing.T, s *store.Store, id string) model.Task {
	t.Helper()
	task, err := s.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return task
}

type recordingUpdater struct {
	calls int
}

func (r *recordingUpdater) Update(context.Context, string, model.Field, string) error {
	r.calls++
	return nil
}

func TestControllerStartsIdle(t *testing.T) {
	c := NewController(&recordingUpdater{})
	if !c.Session().IsIdle() {
		t.Fatalf("expected idle session, got %s", c.Session())
	}
}

func TestCommitTitleUpdatesStoreAndReturnsToIdle(t *testing.T) {
	s := newStore(t)
	id := seed(t, s)
	c := NewController(s)

	c.Begin(id, model.FieldTitle)
	if !c.IsEditing(id, model.FieldTitle) {
		t.Fatal("expected title cell in edit mode")
	}
	if err := c.Commit(context.Background(), "B"); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if !c.Session().IsIdle() {
		t.Fatal("expected idle after commit")
	}
	if got := mustGet(t, s, id).Title; got != "B" {
		t.Fatalf("expected title B, got %q", got)
	}
}

func TestCommitBlankValueRejectedAndSessionEnds(t *testing.T) {
	s := newStore(t)
	id := seed(t, s)
	c := NewController(s)

	c.Begin(id, model.FieldExecutor)
	err := c.Commit(context.Background(), "   ")
	ve, ok := model.AsValidationError(err)
	if !ok || ve.Reason != model.ReasonRequired || ve.Field != model.FieldExecutor {
		t.Fatalf("expected required validation error, got %v", err)
	}
	if !c.Session().IsIdle() {
		t.Fatal("expected idle after rejected commit")
	}
	if got := mustGet(t, s, id).Executor; got != "e" {
		t.Fatalf("expected executor unchanged, got %q", got)
	}
}

func TestCommitDeadlineNormalizesAndRejectsInvalidDate(t *testing.T) {
	s := newStore(t)
	id := seed(t, s)
	c := NewController(s)

	c.Begin(id, model.FieldDeadline)
	if err := c.Commit(context.Background(), " 2025-03-09 "); err != nil {
		t.Fatalf("commit deadline: %v", err)
	}
	if got := mustGet(t, s, id).Deadline; got != "2025-03-09" {
		t.Fatalf("unexpected deadline %q", got)
	}

	c.Begin(id, model.FieldDeadline)
	ve, ok := model.AsValidationError(c.Commit(context.Background(), "2025-02-30"))
	if !ok || ve.Reason != model.ReasonInvalid {
		t.Fatalf("expected invalid date, got %v", ve)
	}
	if got := mustGet(t, s, id).Deadline; got != "2025-03-09" {
		t.Fatalf("expected deadline unchanged, got %q", got)
	}
}

func TestCommitWithoutSession(t *testing.T) {
	c := NewController(&recordingUpdater{})
	if err := c.Commit(context.Background(), "x"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if err := c.SelectStatus(context.Background(), model.StatusCompleted); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestBeginAnotherCellAbandonsPreviousEdit(t *testing.T) {
	rec := &recordingUpdater{}
	c := NewController(rec)

	if _, had := c.Begin("t1", model.FieldTitle); had {
		t.Fatal("expected no previous cell from idle")
	}
	prev, had := c.Begin("t2", model.FieldExecutor)
	if !had || prev.TaskID != "t1" || prev.Field != model.FieldTitle {
		t.Fatalf("expected abandoned t1/title, got %+v had=%v", prev, had)
	}
	if c.IsEditing("t1", model.FieldTitle) || !c.IsEditing("t2", model.FieldExecutor) {
		t.Fatalf("expected only t2/executor editing, got %s", c.Session())
	}
	if rec.calls != 0 {
		t.Fatalf("expected abandoned edit not committed, got %d updates", rec.calls)
	}
	if _, had := c.Begin("t2", model.FieldExecutor); had {
		t.Fatal("re-entering the same cell should not report an abandoned edit")
	}
}

func TestSelectStatusCommitsImmediately(t *testing.T) {
	s := newStore(t)
	id := seed(t, s)
	c := NewController(s)

	c.Begin(id, model.FieldStatus)
	if err := c.SelectStatus(context.Background(), model.StatusCompleted); err != nil {
		t.Fatalf("select status: %v", err)
	}
	if !c.Session().IsIdle() {
		t.Fatal("expected idle after status select")
	}
	tasks, _ := s.List(context.Background())
	if len(model.ApplyFilter(tasks, model.FilterCompleted)) != 1 || len(model.ApplyFilter(tasks, model.FilterActive)) != 0 {
		t.Fatal("expected task moved to completed bucket")
	}
}

func TestSelectStatusOutsideStatusCell(t *testing.T) {
	rec := &recordingUpdater{}
	c := NewController(rec)
	c.Begin("t1", model.FieldTitle)
	if err := c.SelectStatus(context.Background(), model.StatusCompleted); !errors.Is(err, ErrNotStatusField) {
		t.Fatalf("expected ErrNotStatusField, got %v", err)
	}
	if !c.IsEditing("t1", model.FieldTitle) {
		t.Fatal("expected title edit to stay open")
	}
}

func TestCancelDoesNotCommit(t *testing.T) {
	rec := &recordingUpdater{}
	c := NewController(rec)
	c.Begin("t1", model.FieldDescription)
	c.Cancel()
	if !c.Session().IsIdle() || rec.calls != 0 {
		t.Fatalf("expected idle without updates, got %s calls=%d", c.Session(), rec.calls)
	}
}

func TestCommitRemovedTaskReportsNotFound(t *testing.T) {
	s := newStore(t)
	id := seed(t, s)
	c := NewController(s)
	c.Begin(id, model.FieldTitle)
	if err := s.Remove(context.Background(), id); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := c.Commit(context.Background(), "B"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !c.Session().IsIdle() {
		t.Fatal("expected idle after failed commit")
	}
}
