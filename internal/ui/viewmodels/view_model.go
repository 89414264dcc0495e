package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"folio/internal/ui/input/modes"
	"folio/internal/ui/pages"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	pages  []pages.Page
	help   help.Model
	keys   help.KeyMap
	mode   string
	filter *modes.FilterMode
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, all []pages.Page) *ViewModel {
	return &ViewModel{
		state: appState,
		pages: all,
		help:  help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.state.Width = width
	vm.state.Height = height
	vm.help.Width = width
}

// SetMode sets the input mode shown in the title and the key map shown in
// the help line. filter is non-nil while filters are being edited.
func (vm *ViewModel) SetMode(name string, keys help.KeyMap, filter *modes.FilterMode) {
	vm.mode = name
	vm.keys = keys
	vm.filter = filter
}

// ActivePage returns the page being shown
func (vm *ViewModel) ActivePage() pages.Page {
	if vm.state.ActivePage < 0 || vm.state.ActivePage >= len(vm.pages) {
		return nil
	}
	return vm.pages[vm.state.ActivePage]
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		ActiveTab:     vm.state.ActivePage,
		Cursor:        vm.state.Cursor(),
		Column:        vm.state.Column(),
		Mode:          vm.mode,
		StatusMessage: vm.state.StatusMessage,
		StatusLevel:   vm.state.StatusLevel,
	}
	for _, p := range vm.pages {
		vs.Tabs = append(vs.Tabs, p.Title())
		vs.Pending += p.PendingCount()
	}

	page := vm.ActivePage()
	if page == nil {
		return vs
	}
	vs.Table = page.View(vs.Column)
	if ai := page.ActiveIndex(); ai >= 0 {
		vs.Cursor = ai
	}

	// Show the live inputs while editing
	if vm.filter != nil {
		inputs := vm.filter.Views()
		for i := range vs.Table.Filters {
			if i < len(inputs) {
				vs.Table.Filters[i].Input = inputs[i]
				vs.Table.Filters[i].Focused = i == vm.filter.Focused()
			}
		}
	}

	if vm.keys != nil {
		vm.help.ShowAll = vm.state.ShowHelp
		vs.ShortHelp = vm.help.View(vm.keys)
	}
	return vs
}
