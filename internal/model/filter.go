package model

import (
	"errors"
	"fmt"
	"strings"
)

type FilterMode string

const (
	FilterAll       FilterMode = "all"
	FilterActive    FilterMode = "active"
	FilterCompleted FilterMode = "completed"
)

var ErrInvalidFilter = errors.New("model: invalid filter mode")

func FilterModes() []FilterMode {
	return []FilterMode{FilterAll, FilterActive, FilterCompleted}
}

func (f FilterMode) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

func ParseFilterMode(raw string) (FilterMode, error) {
	f := FilterMode(strings.ToLower(strings.TrimSpace(raw)))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return f, nil
}

// Next cycles all -> active -> completed -> all.
func (f FilterMode) Next() FilterMode {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Matches reports whether t belongs to the bucket. The completed bucket holds
// both Completed and Cancelled tasks. Unknown modes match everything.
func (f FilterMode) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return t.Status == StatusActive
	case FilterCompleted:
		return t.Status == StatusCompleted || t.Status == StatusCancelled
	default:
		return true
	}
}

// ApplyFilter returns the ordered subsequence of tasks visible under mode.
func ApplyFilter(tasks []Task, mode FilterMode) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if mode.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
