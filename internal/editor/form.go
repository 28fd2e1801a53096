package editor

import (
	"context"

	"github.com/sandeepkv93/taskgrid/internal/model"
)

// Adder commits a draft as a new task.
type Adder interface {
	Add(ctx context.Context, d model.Draft) (string, error)
}

// Form stages a new task while the creation popup is open.
type Form struct {
	draft model.Draft
	open  bool
}

func NewForm() Form {
	return Form{draft: model.NewDraft()}
}

func (f *Form) Open() { f.open = true }

func (f Form) IsOpen() bool { return f.open }

func (f Form) Draft() model.Draft { return f.draft }

// Set stores a raw field value. Text fields are kept as typed; the store trims
// them on commit.
func (f *Form) Set(field model.Field, value string) error {
	switch field {
	case model.FieldTitle:
		f.draft.Title = value
	case model.FieldDescription:
		f.draft.Description = value
	case model.FieldExecutor:
		f.draft.Executor = value
	case model.FieldDeadline:
		f.draft.Deadline = value
	case model.FieldStatus:
		s, err := model.ParseStatus(value)
		if err != nil {
			return err
		}
		f.draft.Status = s
	default:
		return model.ErrUnknownField
	}
	return nil
}

// Commit adds the draft. On error the draft is kept and the form stays open.
func (f *Form) Commit(ctx context.Context, store Adder) (string, error) {
	id, err := store.Add(ctx, f.draft)
	if err != nil {
		return "", err
	}
	f.reset()
	return id, nil
}

// Cancel discards the draft and closes the form.
func (f *Form) Cancel() {
	f.reset()
}

func (f *Form) reset() {
	f.draft = model.NewDraft()
	f.open = false
}
