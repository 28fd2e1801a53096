package model

import (
	"fmt"
	"regexp"
	"strings"
)

type Status string

const (
	StatusActive    Status = "Активная задача"
	StatusCompleted Status = "Задача выполнена"
	StatusCancelled Status = "Задача отменена"
)

// Statuses returns the closed status set in dropdown order.
func Statuses() []Status {
	return []Status{StatusActive, StatusCompleted, StatusCancelled}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug is the class-safe badge key for the status label.
func (s Status) Slug() string {
	return "status-" + strings.ToLower(whitespaceRun.ReplaceAllString(strings.TrimSpace(string(s)), "-"))
}

var statusAliases = map[string]Status{
	"active":    StatusActive,
	"completed": StatusCompleted,
	"done":      StatusCompleted,
	"cancelled": StatusCancelled,
	"canceled":  StatusCancelled,
}

// ParseStatus accepts either a full status label or a short latin alias.
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range Statuses() {
		if strings.EqualFold(trimmed, string(s)) {
			return s, nil
		}
	}
	if s, ok := statusAliases[strings.ToLower(trimmed)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldExecutor    Field = "executor"
	FieldDeadline    Field = "deadline"
	FieldStatus      Field = "status"
)

// Fields returns the editable fields in column order.
func Fields() []Field {
	return []Field{FieldTitle, FieldDescription, FieldExecutor, FieldDeadline, FieldStatus}
}

// RequiredFields returns the fields checked on creation, in check order.
func RequiredFields() []Field {
	return []Field{FieldTitle, FieldDescription, FieldExecutor, FieldDeadline}
}

func (f Field) IsValid() bool {
	switch f {
	case FieldTitle, FieldDescription, FieldExecutor, FieldDeadline, FieldStatus:
		return true
	default:
		return false
	}
}

func ParseField(raw string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
	return f, nil
}

type Task struct {
	ID          string
	Title       string
	Description string
	Executor    string
	Deadline    string
	Status      Status
}

func (t Task) Value(f Field) string {
	switch f {
	case FieldTitle:
		return t.Title
	case FieldDescription:
		return t.Description
	case FieldExecutor:
		return t.Executor
	case FieldDeadline:
		return t.Deadline
	case FieldStatus:
		return string(t.Status)
	default:
		return ""
	}
}

// With returns a copy of t with only the named field replaced.
func (t Task) With(f Field, value string) Task {
	switch f {
	case FieldTitle:
		t.Title = value
	case FieldDescription:
		t.Description = value
	case FieldExecutor:
		t.Executor = value
	case FieldDeadline:
		t.Deadline = value
	case FieldStatus:
		t.Status = Status(value)
	}
	return t
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	return t.Draft().Validate()
}

func (t Task) Draft() Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Executor:    t.Executor,
		Deadline:    t.Deadline,
		Status:      t.Status,
	}
}

// Draft is a task that has not been committed yet.
type Draft struct {
	Title       string
	Description string
	Executor    string
	Deadline    string
	Status      Status
}

func NewDraft() Draft {
	return Draft{Status: StatusActive}
}

func (d Draft) Value(f Field) string {
	return Task{
		Title:       d.Title,
		Description: d.Description,
		Executor:    d.Executor,
		Deadline:    d.Deadline,
		Status:      d.Status,
	}.Value(f)
}

// Validate reports the first failing required field in RequiredFields order,
// then checks the deadline date and status.
func (d Draft) Validate() error {
	for _, f := range RequiredFields() {
		if strings.TrimSpace(d.Value(f)) == "" {
			return &ValidationError{Field: f, Reason: ReasonRequired}
		}
	}
	if _, err := ParseDeadline(d.Deadline); err != nil {
		return &ValidationError{Field: FieldDeadline, Reason: ReasonInvalid}
	}
	if d.Status != "" && !d.Status.IsValid() {
		return &ValidationError{Field: FieldStatus, Reason: ReasonInvalid}
	}
	return nil
}

// Normalized trims text fields and applies the default status.
func (d Draft) Normalized() Draft {
	out := Draft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Executor:    strings.TrimSpace(d.Executor),
		Deadline:    strings.TrimSpace(d.Deadline),
		Status:      d.Status,
	}
	if out.Status == "" {
		out.Status = StatusActive
	}
	return out
}
