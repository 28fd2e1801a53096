package model

import (
	"errors"
	"strings"
	"time"
)

// DeadlineLayout is the storage form of a deadline.
const DeadlineLayout = "2006-01-02"

// DisplayLayout matches the ru-RU short date form.
const DisplayLayout = "02.01.2006"

var ErrInvalidDeadline = errors.New("model: invalid deadline date")

// ParseDeadline accepts only real calendar dates in DeadlineLayout.
func ParseDeadline(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, ErrInvalidDeadline
	}
	d, err := time.Parse(DeadlineLayout, trimmed)
	if err != nil {
		return time.Time{}, ErrInvalidDeadline
	}
	return d, nil
}

// FormatDeadline renders a stored deadline with layout. Unparsable values are
// returned unchanged.
func FormatDeadline(iso string, layout string) string {
	d, err := ParseDeadline(iso)
	if err != nil {
		return iso
	}
	if strings.TrimSpace(layout) == "" {
		layout = DisplayLayout
	}
	return d.Format(layout)
}
