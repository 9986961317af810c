package tracker

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	up        key.Binding
	down      key.Binding
	field     key.Binding
	edit      key.Binding
	addSet    key.Binding
	removeSet key.Binding
	insert    key.Binding
	append    key.Binding
	removeEx  key.Binding
	finish    key.Binding
	cancel    key.Binding
	quit      key.Binding
	confirm   key.Binding
	esc       key.Binding
}

var defaultKeymap = keymap{
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	field: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "weight/reps"),
	),
	edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit"),
	),
	addSet: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add set"),
	),
	removeSet: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove set"),
	),
	insert: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "insert below"),
	),
	append: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "add exercise"),
	),
	removeEx: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove exercise"),
	),
	finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finish"),
	),
	cancel: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cancel workout"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func (k keymap) browseBindings() []key.Binding {
	return []key.Binding{
		k.up,
		k.down,
		k.field,
		k.edit,
		k.addSet,
		k.removeSet,
		k.insert,
		k.append,
		k.removeEx,
		k.finish,
		k.cancel,
		k.quit,
	}
}
