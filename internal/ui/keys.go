package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown by the short help line. Dispatch happens
// in the input modes; these only describe it.
type keyMap struct {
	Move     key.Binding
	Column   key.Binding
	Sort     key.Binding
	Filter   key.Binding
	Hide     key.Binding
	Select   key.Binding
	Publish  key.Binding
	Delete   key.Binding
	Drag     key.Binding
	Page     key.Binding
	PageSize key.Binding
	Tabs     key.Binding
	Export   key.Binding
	Help     key.Binding
	Quit     key.Binding

	Drop   key.Binding
	Cancel key.Binding
	Next   key.Binding
	Apply  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move:     key.NewBinding(key.WithKeys("j", "k", "up", "down"), key.WithHelp("j/k", "move")),
		Column:   key.NewBinding(key.WithKeys("h", "l", "left", "right"), key.WithHelp("h/l", "column")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Filter:   key.NewBinding(key.WithKeys("f", "/"), key.WithHelp("f", "filter")),
		Hide:     key.NewBinding(key.WithKeys("v", "V"), key.WithHelp("v/V", "hide/show")),
		Select:   key.NewBinding(key.WithKeys(" ", "a"), key.WithHelp("space/a", "select")),
		Publish:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "publish")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Drag:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move row")),
		Page:     key.NewBinding(key.WithKeys("[", "]", "{", "}"), key.WithHelp("[ ]", "page")),
		PageSize: key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "rows")),
		Tabs:     key.NewBinding(key.WithKeys("tab", "1", "2", "3", "4"), key.WithHelp("tab", "next page")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
	}
}

// normalKeys is the help.KeyMap for normal mode
type normalKeys struct{ keyMap }

func (k normalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Sort, k.Filter, k.Select, k.Publish, k.Drag, k.Page, k.Export, k.Help, k.Quit}
}

func (k normalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Column, k.Tabs},
		{k.Sort, k.Filter, k.Hide},
		{k.Select, k.Publish, k.Delete, k.Drag},
		{k.Page, k.PageSize, k.Export, k.Help, k.Quit},
	}
}

// dragKeys is the help.KeyMap while a row is picked up
type dragKeys struct{ keyMap }

func (k dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Drop, k.Cancel}
}

func (k dragKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// filterKeys is the help.KeyMap while editing filters
type filterKeys struct{ keyMap }

func (k filterKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Apply, k.Cancel}
}

func (k filterKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
