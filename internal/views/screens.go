package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xansi "github.com/charmbracelet/x/ansi"
)

// EmptyTableText is shown when the filter leaves no rows.
const EmptyTableText = "Нет задач для отображения"

const deleteAction = "[удалить]"

var fieldLabels = map[string]string{
	"title":       "Название",
	"description": "Описание",
	"executor":    "Исполнитель",
	"deadline":    "Дедлайн",
	"status":      "Статус",
}

// column widths, fields first then the actions column
var columnWidths = []int{18, 26, 14, 12, 18, 11}

var (
	tabStyle        = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle  = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	tableHeader     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	tableCell       = lipgloss.NewStyle().Padding(0, 1)
	cursorRowCell   = tableCell.Foreground(lipgloss.Color("15"))
	cursorCell      = tableCell.Reverse(true)
	editingCell     = tableCell.Bold(true).Foreground(lipgloss.Color("11")).Underline(true)
	actionCell      = tableCell.Foreground(lipgloss.Color("9"))
	emptyStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	labelStyle      = lipgloss.NewStyle().Bold(true)
	focusLabelStyle = labelStyle.Foreground(lipgloss.Color("12"))
	buttonStyle     = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	focusButton     = buttonStyle.BorderForeground(lipgloss.Color("12")).Bold(true)
	alertStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	choiceStyle     = lipgloss.NewStyle().Padding(0, 1)
	chosenStyle     = choiceStyle.Reverse(true)
)

// badgeColors maps status slugs to badge colors.
var badgeColors = map[string]lipgloss.Color{
	"status-активная-задача":  lipgloss.Color("10"),
	"status-задача-выполнена": lipgloss.Color("12"),
	"status-задача-отменена":  lipgloss.Color("8"),
}

type FilterTab struct {
	Key    string
	Label  string
	Count  int
	Active bool
}

type TaskRow struct {
	Cells      []string
	StatusSlug string
}

type TableData struct {
	Rows       []TaskRow
	CursorRow  int
	CursorCol  int
	EditingRow int
	EditingCol int
	Height     int
}

type EditorPanelData struct {
	TaskTitle  string
	FieldLabel string
	Kind       string
	WidgetView string
}

type PopupField struct {
	Label    string
	View     string
	Required bool
	Focused  bool
}

type PopupData struct {
	Fields        []PopupField
	CreateFocused bool
	CancelFocused bool
}

type HelpPanelData struct {
	Mode     string
	Bindings []string
	HelpView string
}

type DetailsData struct {
	ProgressView string
	Done         int
	Total        int
	DetailsView  string
	HasSelection bool
}

// FieldLabel is the column header for a task field name.
func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

func RenderFilterBar(tabs []FilterTab) string {
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		text := fmt.Sprintf("%s %s (%d)", tab.Key, tab.Label, tab.Count)
		if tab.Active {
			parts = append(parts, activeTabStyle.Render(text))
		} else {
			parts = append(parts, tabStyle.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderTaskTable draws the visible window of rows around the cursor row.
func RenderTaskTable(data TableData) string {
	if len(data.Rows) == 0 {
		return emptyStyle.Render(EmptyTableText)
	}
	height := data.Height
	if height <= 0 {
		height = len(data.Rows)
	}
	offset := 0
	if data.CursorRow >= height {
		offset = data.CursorRow - height + 1
	}
	end := min(offset+height, len(data.Rows))
	window := data.Rows[offset:end]

	headers := make([]string, 0, len(columnWidths))
	for _, field := range []string{"title", "description", "executor", "deadline", "status"} {
		headers = append(headers, FieldLabel(field))
	}
	headers = append(headers, "Действия")

	rows := make([][]string, 0, len(window))
	for _, r := range window {
		cells := make([]string, 0, len(columnWidths))
		for i, c := range r.Cells {
			cells = append(cells, truncateCell(firstLine(c), columnWidths[i]-2))
		}
		cells = append(cells, deleteAction)
		rows = append(rows, cells)
	}

	statusCol := len(columnWidths) - 2
	actionsCol := len(columnWidths) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		Wrap(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader.Width(columnWidths[col])
			}
			abs := row + offset
			var style lipgloss.Style
			switch {
			case abs == data.EditingRow && col == data.EditingCol:
				style = editingCell
			case abs == data.CursorRow && col == data.CursorCol:
				style = cursorCell
			case col == actionsCol:
				style = actionCell
			case col == statusCol:
				style = badgeStyle(window[row].StatusSlug)
			case abs == data.CursorRow:
				style = cursorRowCell
			default:
				style = tableCell
			}
			return style.Width(columnWidths[col])
		})

	out := t.Render()
	if offset > 0 || end < len(data.Rows) {
		out += "\n" + hintStyle.Render(fmt.Sprintf("rows %d-%d of %d", offset+1, end, len(data.Rows)))
	}
	return out
}

func badgeStyle(slug string) lipgloss.Style {
	color, ok := badgeColors[slug]
	if !ok {
		return tableCell
	}
	return tableCell.Foreground(color).Bold(true)
}

func RenderEditorPanel(data EditorPanelData) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s: %s", data.FieldLabel, data.TaskTitle)))
	b.WriteString(hintStyle.Render(fmt.Sprintf(" (%s)", data.Kind)))
	b.WriteString("\n")
	b.WriteString(data.WidgetView)
	return b.String()
}

// RenderChoice draws a horizontal option list with the selected option
// highlighted when focused.
func RenderChoice(options []string, selected int, focused bool) string {
	parts := make([]string, 0, len(options))
	for i, opt := range options {
		switch {
		case i == selected && focused:
			parts = append(parts, chosenStyle.Render(opt))
		case i == selected:
			parts = append(parts, choiceStyle.Bold(true).Render("• "+opt))
		default:
			parts = append(parts, choiceStyle.Render(opt))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func RenderCreatePopup(data PopupData) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Новая задача"))
	b.WriteString("\n\n")
	for _, f := range data.Fields {
		label := f.Label
		if f.Required {
			label += " *"
		}
		if f.Focused {
			b.WriteString(focusLabelStyle.Render("> " + label))
		} else {
			b.WriteString(labelStyle.Render("  " + label))
		}
		b.WriteString("\n")
		b.WriteString(f.View)
		b.WriteString("\n\n")
	}
	create := buttonStyle.Render("Создать")
	if data.CreateFocused {
		create = focusButton.Render("Создать")
	}
	cancel := buttonStyle.Render("Отмена")
	if data.CancelFocused {
		cancel = focusButton.Render("Отмена")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, create, " ", cancel))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("tab next | ctrl+s create | esc cancel"))
	return b.String()
}

func RenderAlert(message string) string {
	return alertStyle.Render(message) + "\n\n" + hintStyle.Render("enter / esc / space")
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s mode:\n%s\n%s",
		data.Mode,
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func RenderDetailsPane(data DetailsData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("done: %d/%d\n", data.Done, data.Total))
	b.WriteString(data.ProgressView)
	b.WriteString("\n\n")
	if !data.HasSelection {
		b.WriteString(emptyStyle.Render("(no selection)"))
		return b.String()
	}
	b.WriteString(data.DetailsView)
	return b.String()
}

func truncateCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) > width {
		return xansi.Cut(s, 0, width-1) + "…"
	}
	return s
}

func firstLine(s string) string {
	line, rest, found := strings.Cut(s, "\n")
	if found && strings.TrimSpace(rest) != "" {
		return line + " …"
	}
	return line
}
