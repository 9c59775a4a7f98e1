package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding

	Toggle    key.Binding
	ToggleAll key.Binding
	Open      key.Binding
	Sort      key.Binding
	Filter    key.Binding
	Group     key.Binding
	Move      key.Binding
	NextPage  key.Binding
	PrevPage  key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	Delete    key.Binding
	DeleteSel key.Binding
	Reload    key.Binding
	Help      key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "select")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Group:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group")),
		Move:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move column")),
		NextPage:  key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		Bigger:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "page size")),
		Smaller:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller pages")),
		Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		DeleteSel: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Sort, k.Filter, k.Group, k.Move, k.NextPage, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.ToggleAll, k.Open, k.Delete, k.DeleteSel},
		{k.Sort, k.Filter, k.Group, k.Move},
		{k.NextPage, k.PrevPage, k.Bigger, k.Reload, k.Help, k.Quit},
	}
}

// dragKeyMap is shown while a column is picked up from the keyboard.
type dragKeyMap struct {
	Target, Drop, Cancel key.Binding
}

func newDragKeyMap() dragKeyMap {
	return dragKeyMap{
		Target: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "target")),
		Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k dragKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Target, k.Drop, k.Cancel} }
func (k dragKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
