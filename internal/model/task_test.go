package model

import (
	"errors"
	"testing"
)

func validDraft() Draft {
	return Draft{
		Title:       "A",
		Description: "d",
		Executor:    "e",
		Deadline:    "2024-01-01",
		Status:      StatusActive,
	}
}

func TestDraftValidateSuccess(t *testing.T) {
	if err := validDraft().Validate(); err != nil {
		t.Fatalf("expected valid draft, got error: %v", err)
	}
}

func TestDraftValidateReportsFirstMissingFieldInOrder(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		want  Field
	}{
		{"all empty", NewDraft(), FieldTitle},
		{"title blank", Draft{Title: "  ", Description: "d", Executor: "e", Deadline: "2024-01-01"}, FieldTitle},
		{"description missing", Draft{Title: "A", Executor: "e"}, FieldDescription},
		{"executor whitespace", Draft{Title: "A", Description: "d", Executor: "\t", Deadline: "2024-01-01"}, FieldExecutor},
		{"deadline missing", Draft{Title: "A", Description: "d", Executor: "e"}, FieldDeadline},
	}
	for _, tc := range cases {
		err := tc.draft.Validate()
		ve, ok := AsValidationError(err)
		if !ok {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if ve.Field != tc.want || ve.Reason != ReasonRequired {
			t.Fatalf("%s: got field=%s reason=%s, want field=%s required", tc.name, ve.Field, ve.Reason, tc.want)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected errors.Is ErrValidation", tc.name)
		}
	}
}

func TestDraftValidateRejectsImpossibleDate(t *testing.T) {
	d := validDraft()
	d.Deadline = "2024-02-30"
	ve, ok := AsValidationError(d.Validate())
	if !ok || ve.Field != FieldDeadline || ve.Reason != ReasonInvalid {
		t.Fatalf("expected invalid deadline error, got %v", d.Validate())
	}
}

func TestDraftValidateRejectsUnknownStatus(t *testing.T) {
	d := validDraft()
	d.Status = Status("Paused")
	ve, ok := AsValidationError(d.Validate())
	if !ok || ve.Field != FieldStatus {
		t.Fatalf("expected status validation error, got %v", d.Validate())
	}
}

func TestDraftNormalizedDefaultsStatusAndTrims(t *testing.T) {
	d := Draft{Title: "  A ", Description: "d\n", Executor: " e", Deadline: " 2024-01-01 "}
	got := d.Normalized()
	if got.Title != "A" || got.Description != "d" || got.Executor != "e" || got.Deadline != "2024-01-01" {
		t.Fatalf("unexpected normalized draft: %+v", got)
	}
	if got.Status != StatusActive {
		t.Fatalf("expected default status %q, got %q", StatusActive, got.Status)
	}
}

func TestTaskWithReplacesOnlyNamedField(t *testing.T) {
	task := Task{ID: "t1", Title: "A", Description: "d", Executor: "e", Deadline: "2024-01-01", Status: StatusActive}
	next := task.With(FieldExecutor, "bob")
	if next.Executor != "bob" {
		t.Fatalf("expected executor bob, got %q", next.Executor)
	}
	if next.Title != "A" || next.Description != "d" || next.Deadline != "2024-01-01" || next.Status != StatusActive || next.ID != "t1" {
		t.Fatalf("unexpected side effects: %+v", next)
	}
	if task.Executor != "e" {
		t.Fatal("expected original task untouched")
	}
	if got := next.With(FieldStatus, string(StatusCancelled)).Value(FieldStatus); got != string(StatusCancelled) {
		t.Fatalf("unexpected status value: %q", got)
	}
}

func TestTaskValidateRequiresID(t *testing.T) {
	task := Task{Title: "A", Description: "d", Executor: "e", Deadline: "2024-01-01", Status: StatusActive}
	if err := task.Validate(); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	task.ID = "t1"
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}
}

func TestStatusSlug(t *testing.T) {
	cases := map[Status]string{
		StatusActive:              "status-активная-задача",
		StatusCompleted:           "status-задача-выполнена",
		StatusCancelled:           "status-задача-отменена",
		Status("In   Review Now"): "status-in-review-now",
	}
	for status, want := range cases {
		if got := status.Slug(); got != want {
			t.Fatalf("slug(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"Задача отменена": StatusCancelled,
		" active ":        StatusActive,
		"Completed":       StatusCompleted,
		"canceled":        StatusCancelled,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseStatus("paused"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Deadline ")
	if err != nil || f != FieldDeadline {
		t.Fatalf("expected deadline field, got %q err=%v", f, err)
	}
	if _, err := ParseField("id"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestFormatDeadline(t *testing.T) {
	if got := FormatDeadline("2024-01-31", DisplayLayout); got != "31.01.2024" {
		t.Fatalf("unexpected localized date: %q", got)
	}
	if got := FormatDeadline("2024-01-31", ""); got != "31.01.2024" {
		t.Fatalf("expected default layout, got %q", got)
	}
	if got := FormatDeadline("soon", DisplayLayout); got != "soon" {
		t.Fatalf("expected passthrough for unparsable value, got %q", got)
	}
	if _, err := ParseDeadline("2023-02-29"); !errors.Is(err, ErrInvalidDeadline) {
		t.Fatalf("expected ErrInvalidDeadline for non-leap day, got %v", err)
	}
}
