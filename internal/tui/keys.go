package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Config    key.Binding
	Holdings  key.Binding
	Toggle    key.Binding
	Refresh   key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Cycle     key.Binding
	CycleBack key.Binding
	Submit    key.Binding
}

var keys = keyMap{
	Config:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "configure")),
	Holdings:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "holdings")),
	Toggle:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "pause/resume")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Cycle:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
	CycleBack: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev option")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
}
