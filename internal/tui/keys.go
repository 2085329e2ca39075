package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	forceQ   key.Binding
	search   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	copyUser key.Binding
	reveal   key.Binding
	generate key.Binding
	showPass key.Binding
	longer   key.Binding
	shorter  key.Binding
	similar  key.Binding
	refresh  key.Binding
	info     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q")),
	forceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	search:   key.NewBinding(key.WithKeys("/")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	reveal:   key.NewBinding(key.WithKeys("r", " ")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	showPass: key.NewBinding(key.WithKeys("ctrl+t")),
	longer:   key.NewBinding(key.WithKeys("alt+up", "ctrl+up")),
	shorter:  key.NewBinding(key.WithKeys("alt+down", "ctrl+down")),
	similar:  key.NewBinding(key.WithKeys("ctrl+l")),
	refresh:  key.NewBinding(key.WithKeys("ctrl+r")),
	info:     key.NewBinding(key.WithKeys("v")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
