package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeFilter Type = "filter"
	TypeDelete Type = "delete"
	TypeStatus Type = "status"
	TypeEdit   Type = "edit"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries the raw creation fields; validation happens in the store.
type AddArgs struct {
	Title       string
	Description string
	Executor    string
	Deadline    string
	Status      string
}

type FilterArgs struct {
	Mode string
}

type StatusArgs struct {
	Status string
}

type EditArgs struct {
	Field string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Filter *FilterArgs
	Status *StatusArgs
	Edit   *EditArgs
}

// Parse reads one palette line. A leading slash is optional.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeFilter:
		return parseFilter(input, rest)
	case TypeDelete:
		if rest != "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete takes no arguments"}
		}
		return Command{Type: TypeDelete, Raw: input}, nil
	case TypeStatus:
		if rest == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "status requires a value"}
		}
		return Command{Type: TypeStatus, Raw: input, Status: &StatusArgs{Status: rest}}, nil
	case TypeEdit:
		if rest == "" || len(strings.Fields(rest)) != 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires one field name"}
		}
		return Command{Type: TypeEdit, Raw: input, Edit: &EditArgs{Field: strings.ToLower(rest)}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd splits "title | description | executor | deadline [| status]".
func parseAdd(raw, rest string) (Command, error) {
	parts := strings.Split(rest, "|")
	if len(parts) < 4 || len(parts) > 5 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires title | description | executor | deadline [| status]"}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	args := AddArgs{
		Title:       parts[0],
		Description: parts[1],
		Executor:    parts[2],
		Deadline:    parts[3],
	}
	if len(parts) == 5 {
		args.Status = parts[4]
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &args}, nil
}

func parseFilter(raw, rest string) (Command, error) {
	mode := strings.ToLower(rest)
	switch mode {
	case "all", "active", "completed":
		return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Mode: mode}}, nil
	case "":
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires all, active or completed"}
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", rest)}
	}
}
