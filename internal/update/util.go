package update

import (
	"fmt"
	"strings"

	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
)

const maxDensity = 3

type dimensions struct {
	tableRows      int
	areaHeight     int
	viewportHeight int
}

func densityDimensions(level int) dimensions {
	switch level {
	case 2:
		return dimensions{tableRows: 14, areaHeight: 6, viewportHeight: 14}
	case 3:
		return dimensions{tableRows: 20, areaHeight: 8, viewportHeight: 18}
	default:
		return dimensions{tableRows: 10, areaHeight: 4, viewportHeight: 10}
	}
}

func (m *Model) cycleDensity() {
	m.uiDensity++
	if m.uiDensity > maxDensity {
		m.uiDensity = 1
	}
	m.Status = StatusBar{Text: fmt.Sprintf("density level: %d", m.uiDensity)}
}

// creationAlert is the popup alert for a rejected draft.
func creationAlert(err error) string {
	ve, ok := domainmodel.AsValidationError(err)
	if !ok {
		return err.Error()
	}
	if ve.Reason == domainmodel.ReasonInvalid {
		return invalidAlert(ve.Field)
	}
	switch ve.Field {
	case domainmodel.FieldTitle:
		return "Введите название задачи"
	case domainmodel.FieldDescription:
		return "Введите описание задачи"
	case domainmodel.FieldExecutor:
		return "Укажите исполнителя"
	case domainmodel.FieldDeadline:
		return "Укажите дедлайн"
	default:
		return "Поле не может быть пустым"
	}
}

// editAlert is the alert for a rejected inline edit.
func editAlert(err error) string {
	ve, ok := domainmodel.AsValidationError(err)
	if !ok {
		return err.Error()
	}
	if ve.Reason == domainmodel.ReasonInvalid {
		return invalidAlert(ve.Field)
	}
	return "Поле не может быть пустым"
}

func invalidAlert(f domainmodel.Field) string {
	switch f {
	case domainmodel.FieldDeadline:
		return "Некорректная дата"
	case domainmodel.FieldStatus:
		return "Неизвестный статус"
	default:
		return "Некорректное значение"
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
