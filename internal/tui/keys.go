package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	refresh   key.Binding
	settings  key.Binding
	copy      key.Binding
	dashboard key.Binding
	password  key.Binding
	ping      key.Binding
	toggle    key.Binding
	version   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	settings:  key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("c")),
	dashboard: key.NewBinding(key.WithKeys("d")),
	password:  key.NewBinding(key.WithKeys("p")),
	ping:      key.NewBinding(key.WithKeys("ctrl+t")),
	toggle:    key.NewBinding(key.WithKeys("ctrl+l")),
	version:   key.NewBinding(key.WithKeys("v")),
}
