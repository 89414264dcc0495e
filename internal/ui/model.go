package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/config"
	"folio/internal/eventbus"
	"folio/internal/grid"
	"folio/internal/ui/commands"
	"folio/internal/ui/handlers"
	"folio/internal/ui/input"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/pages"
	"folio/internal/ui/state"
	"folio/internal/ui/viewmodels"
	"folio/internal/ui/views"
)

const (
	tickInterval  = 500 * time.Millisecond
	statusTimeout = 5 * time.Second
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	pages  []pages.Page

	keys        keyMap
	inPagerMode bool // tracks if we're currently in pager mode
	lastShell   grid.ShellFlags
	pageSize    int // last page size the user picked

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
	now     func() time.Time
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, all []pages.Page, exporter commands.Exporter, exportDir string) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		pages:        all,
		keys:         newKeyMap(),
		pageSize:     cfg.UISettings.PageSize,
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState, all),
		viewModel:    viewmodels.NewViewModel(appState, all),
		cmdExecutor:  commands.NewExecutor(appState, bus, exporter, exportDir),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		now:          time.Now,
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Preferences returns the UI preferences to persist
func (m *Model) Preferences() eventbus.ConfigChangedEvent {
	return commands.Preferences(m.pages, m.pageSize)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) page() pages.Page {
	return m.viewModel.ActivePage()
}

func (m *Model) context() *input.ModelContext {
	ctx := &input.ModelContext{Cursor: m.state.Cursor()}
	if p := m.page(); p != nil {
		ctx.Page = p
	}
	return ctx
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewModel.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		// Cursor blink for the filter inputs
		blink := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(cmd, blink)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	var keys help.KeyMap = normalKeys{m.keys}
	switch mode {
	case inputtypes.ModeDrag:
		keys = dragKeys{m.keys}
	case inputtypes.ModeFilter:
		keys = filterKeys{m.keys}
	}
	m.viewModel.SetMode(mode.String(), keys, m.inputHandler.Filter())

	vs := m.viewModel.BuildViewState()
	m.lastShell = vs.Table.Shell
	return m.renderer.Render(vs)
}

// clampCursor keeps the cursor and focused column on the active page
func (m *Model) clampCursor() {
	p := m.page()
	if p == nil {
		return
	}
	m.state.SetCursor(m.state.Cursor(), p.RowCount())
	m.state.SetColumn(m.state.Column(), p.VisibleColumnCount())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	p := m.page()
	if p == nil {
		if a, ok := action.(inputtypes.QuitAction); ok {
			return m.quit(a.Force)
		}
		return nil
	}
	cursor := m.state.Cursor()

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.SetCursor(cursor-1, p.RowCount())
		case "down":
			m.state.SetCursor(cursor+1, p.RowCount())
		case "top":
			m.state.SetCursor(0, p.RowCount())
		case "bottom":
			m.state.SetCursor(p.RowCount()-1, p.RowCount())
		case "left":
			m.state.SetColumn(m.state.Column()-1, p.VisibleColumnCount())
		case "right":
			m.state.SetColumn(m.state.Column()+1, p.VisibleColumnCount())
		}

	case inputtypes.SwitchPageAction:
		next := a.Index
		switch a.Index {
		case -1:
			next = (m.state.ActivePage + 1) % len(m.pages)
		case -2:
			next = (m.state.ActivePage + len(m.pages) - 1) % len(m.pages)
		}
		if next >= 0 && next < len(m.pages) {
			m.state.ActivePage = next
			m.clampCursor()
		}

	case inputtypes.SelectAction:
		p.ToggleSelected(cursor)

	case inputtypes.SelectAllAction:
		p.ToggleSelectAll()

	case inputtypes.SortAction:
		p.ToggleSort(m.state.Column())

	case inputtypes.ToggleVisibilityAction:
		p.ToggleVisibility(m.state.Column())
		m.clampCursor()

	case inputtypes.ShowAllColumnsAction:
		p.ShowAllColumns()

	case inputtypes.PageAction:
		p.Paginate(a.Direction)
		m.state.SetCursor(0, p.RowCount())

	case inputtypes.PageSizeAction:
		p.StepPageSize(a.Delta)
		m.pageSize = p.PageSize()
		m.clampCursor()

	case inputtypes.TogglePublishAction:
		return m.cmdExecutor.ExecuteTogglePublish(p, cursor)

	case inputtypes.DeleteRowAction:
		return m.cmdExecutor.ExecuteDeleteRow(p, cursor)

	case inputtypes.BeginDragAction:
		if !p.BeginDrag(cursor) {
			m.inputHandler.SetMode(inputtypes.ModeNormal, m.context())
		}

	case inputtypes.DragMoveAction:
		p.DragBy(a.Delta)

	case inputtypes.DropAction:
		m.drop(p)

	case inputtypes.CancelDragAction:
		p.CancelDrag()

	case inputtypes.SaveOrderAction:
		return m.cmdExecutor.ExecuteSaveOrder(p)

	case inputtypes.UpdateTextAction:
		p.SetFilter(a.Field, a.Text)
		m.clampCursor()

	case inputtypes.ExportAction:
		m.state.SetStatus(state.StatusInfo, fmt.Sprintf("Exporting %s…", p.Title()), m.now())
		return m.cmdExecutor.ExecuteExport(p)

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return m.quit(a.Force)
	}

	return nil
}

// drop ends a drag and leaves the cursor on the moved row
func (m *Model) drop(p pages.Page) {
	at := p.ActiveIndex()
	if p.Drop() && at >= 0 {
		m.state.SetCursor(at, p.RowCount())
	}
}

func (m *Model) quit(force bool) tea.Cmd {
	if !force && m.config.UISettings.AutosaveOnExit {
		m.cmdExecutor.ExecuteSavePreferences(m.pages, m.pageSize)
	}
	return tea.Quit
}

// handleMouse drags rows by their handle
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := m.page()
	if p == nil || !m.config.UISettings.Mouse {
		return nil
	}
	row := msg.Y - views.BodyTop(m.lastShell)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || row < 0 || row >= p.RowCount() {
			return nil
		}
		if m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
			return nil
		}
		m.state.SetCursor(row, p.RowCount())
		from, to := views.HandleSpan()
		if !m.config.UISettings.ShowDragHandles || msg.X < from || msg.X >= to {
			return nil
		}
		if p.BeginDrag(row) {
			_, cmd := m.inputHandler.SetMode(inputtypes.ModeDrag, m.context())
			return cmd
		}

	case tea.MouseActionMotion:
		if !p.Dragging() {
			return nil
		}
		p.DragPointer(grid.Point{X: msg.X, Y: msg.Y}, views.RowRects(m.lastShell, p.RowOrder()))

	case tea.MouseActionRelease:
		if !p.Dragging() {
			return nil
		}
		rects := views.RowRects(m.lastShell, p.RowOrder())
		if _, ok := grid.RowAt(grid.Point{X: msg.X, Y: msg.Y}, rects); ok {
			m.drop(p)
		} else {
			// Released outside the body
			p.CancelDrag()
		}
		_, cmd := m.inputHandler.SetMode(inputtypes.ModeNormal, m.context())
		return cmd
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		m.clampCursor()
		return m, cmd

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		now := time.Time(msg)
		m.eventHandler.Expire(now)
		m.state.ClearStatusBefore(now.Add(-statusTimeout))
		return m, tick()

	case commands.ExportedMsg:
		if msg.Err != nil {
			m.state.SetStatus(state.StatusError, fmt.Sprintf("Export failed: %v", msg.Err), m.now())
		} else {
			m.state.LastExport = msg.Path
			m.state.SetStatus(state.StatusSuccess, fmt.Sprintf("Exported to %s", msg.Path), m.now())
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, tick()

	case quitMsg:
		if msg.saveConfig {
			m.cmdExecutor.ExecuteSavePreferences(m.pages, m.pageSize)
		}
		return m, tea.Quit

	default:
		return m, nil
	}
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
