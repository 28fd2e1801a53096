package update

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/taskgrid/internal/editor"
	domainmodel "github.com/sandeepkv93/taskgrid/internal/model"
)

// TaskStore is the task list the UI edits.
type TaskStore interface {
	Add(ctx context.Context, d domainmodel.Draft) (string, error)
	Update(ctx context.Context, id string, field domainmodel.Field, value string) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]domainmodel.Task, error)
	Get(ctx context.Context, id string) (domainmodel.Task, error)
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	All       string
	Active    string
	Completed string
	Cycle     string
	New       string
	Help      string
	Quit      string
}

// CellCursor addresses a cell of the visible table. Col runs over the task
// fields followed by the actions column.
type CellCursor struct {
	Row int
	Col int
}

type Model struct {
	Filter         domainmodel.FilterMode
	Tasks          []domainmodel.Task
	Cursor         CellCursor
	Palette        CommandPaletteState
	HelpVisible    bool
	Alert          string
	Notifications  []Notification
	DesktopEnabled bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	ctx        context.Context
	store      TaskStore
	logger     *log.Logger
	notifier   DesktopNotifier
	dateLayout string
	editor     editor.Controller
	form       editor.Form
	popup      popupState
	uiDensity  int
	width      int
	height     int
	// Bubble components used for rich TUI controls
	cellInput     textinput.Model
	cellArea      textarea.Model
	statusChoice  int
	commandInput  textinput.Model
	completion    progress.Model
	helpModel     help.Model
	detailsView   viewport.Model
	detailsSource string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func NewModel(store TaskStore) Model {
	return NewModelWithConfig(store, nil, DefaultRuntimeConfig(), nil)
}

func NewModelWithConfig(store TaskStore, notifier DesktopNotifier, cfg RuntimeConfig, logger *log.Logger) Model {
	m := Model{
		Filter:         cfg.filterMode(),
		DesktopEnabled: cfg.DesktopNotifications,
		Keys: GlobalKeyMap{
			All:       "1",
			Active:    "2",
			Completed: "3",
			Cycle:     "f",
			New:       "n",
			Help:      "?",
			Quit:      "q",
		},
		ctx:        context.Background(),
		store:      store,
		logger:     logger,
		notifier:   notifier,
		dateLayout: cfg.DateLayout,
		editor:     editor.NewController(store),
		form:       editor.NewForm(),
		uiDensity:  cfg.Density,
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.notifier == nil {
		m.notifier = NoopDesktopNotifier{}
	}
	if m.dateLayout == "" {
		m.dateLayout = domainmodel.DisplayLayout
	}
	if m.uiDensity < 1 || m.uiDensity > maxDensity {
		m.uiDensity = 1
	}
	m.initBubbleComponents()
	m.reloadTasks()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.cellInput = textinput.New()
	m.cellInput.Prompt = "> "
	m.cellInput.CharLimit = 256
	m.cellInput.Width = 48

	m.cellArea = textarea.New()
	m.cellArea.SetWidth(54)
	m.cellArea.ShowLineNumbers = false
	m.cellArea.Placeholder = editor.KindMultiline.Placeholder()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.popup = newPopupState()

	m.completion = progress.New(progress.WithDefaultGradient())
	m.completion.Width = 40

	m.helpModel = help.New()
	m.detailsView = viewport.New(54, 12)
}

// syncBubbleData pushes model state into the bubble components that render it.
func (m *Model) syncBubbleData() {
	d := densityDimensions(m.uiDensity)
	m.cellArea.SetHeight(d.areaHeight)
	m.popup.description.SetHeight(d.areaHeight)
	m.detailsView.Height = d.viewportHeight

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	source := m.detailsMarkdown()
	if source != m.detailsSource {
		m.detailsSource = source
		m.detailsView.SetContent(renderDetails(source))
		m.detailsView.GotoTop()
	}
}

// reloadTasks refreshes the cached task list and keeps the cursor in range.
func (m *Model) reloadTasks() {
	tasks, err := m.store.List(m.ctx)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Error("list tasks", "err", err)
		return
	}
	m.Tasks = tasks
	m.clampCursor()
}

// Editor exposes the edit session for rendering and tests.
func (m Model) Editor() editor.Controller { return m.editor }

// Form exposes the creation draft for rendering and tests.
func (m Model) Form() editor.Form { return m.form }

// PopupOpen reports whether the creation popup is shown.
func (m Model) PopupOpen() bool { return m.form.IsOpen() }
