// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package picker

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Mark     key.Binding
	Apply    key.Binding
	Focus    key.Binding
	Package  key.Binding
	Language key.Binding
	RCs      key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Mark:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark")),
	Apply:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show diff")),
	Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "app name")),
	Package:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "package")),
	Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
	RCs:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "release candidates")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Mark, k.Apply, k.Focus, k.Package, k.Language, k.RCs, k.Quit}
}
