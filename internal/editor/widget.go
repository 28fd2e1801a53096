package editor

import (
	"strings"

	"github.com/sandeepkv93/taskgrid/internal/model"
)

// Kind is the editor widget used for a field.
type Kind int

const (
	KindText Kind = iota
	KindMultiline
	KindDate
	KindChoice
)

var fieldKinds = map[model.Field]Kind{
	model.FieldDescription: KindMultiline,
	model.FieldDeadline:    KindDate,
	model.FieldStatus:      KindChoice,
}

// KindFor looks up the widget kind for f; unlisted fields are single-line text.
func KindFor(f model.Field) Kind {
	if k, ok := fieldKinds[f]; ok {
		return k
	}
	return KindText
}

func (k Kind) String() string {
	switch k {
	case KindMultiline:
		return "multiline"
	case KindDate:
		return "date"
	case KindChoice:
		return "choice"
	default:
		return "text"
	}
}

// Placeholder is the hint shown in an empty widget.
func (k Kind) Placeholder() string {
	switch k {
	case KindDate:
		return "ГГГГ-ММ-ДД"
	case KindChoice:
		return ""
	default:
		return "Введите значение"
	}
}

// Normalize turns raw widget text into the value stored for field.
func (k Kind) Normalize(field model.Field, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &model.ValidationError{Field: field, Reason: model.ReasonRequired}
	}
	switch k {
	case KindDate:
		d, err := model.ParseDeadline(trimmed)
		if err != nil {
			return "", &model.ValidationError{Field: field, Reason: model.ReasonInvalid}
		}
		return d.Format(model.DeadlineLayout), nil
	case KindChoice:
		s, err := model.ParseStatus(trimmed)
		if err != nil {
			return "", &model.ValidationError{Field: field, Reason: model.ReasonInvalid}
		}
		return string(s), nil
	default:
		return trimmed, nil
	}
}
