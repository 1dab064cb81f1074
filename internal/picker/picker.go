// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uhctl/uhctl/internal/catalog"
	"github.com/uhctl/uhctl/internal/controller"
	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/selection"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61DAFB"))
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F6BE00"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E01B24"))
)

// Run starts the picker on the terminal and blocks until the user quits.
func Run(ctrl *controller.Controller, cat catalog.Provider) error {
	_, err := tea.NewProgram(New(ctrl, cat)).Run()
	return err
}

// Model is the bubbletea model of the picker.
type Model struct {
	ctrl    *controller.Controller
	catalog catalog.Provider

	versions []string
	cursor   int
	marked   []string

	input   textinput.Model
	editing bool

	status string
	err    error
}

// New builds a picker over ctrl. The app name field starts with the stored
// input value.
func New(ctrl *controller.Controller, cat catalog.Provider) Model {
	ti := textinput.New()
	ti.Placeholder = selection.DefaultAppName
	ti.Prompt = "App name: "
	ti.CharLimit = 128
	ti.SetValue(ctrl.Selection().AppName)

	m := Model{ctrl: ctrl, catalog: cat, input: ti}
	m.reload()
	return m
}

// reload refreshes the version list for the current package and settings and
// restores the marks of an active range.
func (m *Model) reload() {
	s := m.ctrl.Selection()
	m.err = nil
	m.marked = nil

	vs, err := m.catalog.Versions(s.Package, s.Language, s.Settings.Enabled(selection.ShowLatestRCs))
	if err != nil {
		m.versions = nil
		m.err = err
		return
	}
	m.versions = vs
	if m.cursor >= len(vs) {
		m.cursor = len(vs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if s.DiffState() == selection.Active {
		for _, v := range []string{s.From, s.To} {
			if m.index(v) >= 0 {
				m.marked = append(m.marked, v)
			}
		}
	}
}

func (m Model) index(v string) int {
	for i, known := range m.versions {
		if known == v {
			return i
		}
	}
	return -1
}

func (m Model) isMarked(v string) bool {
	for _, mk := range m.marked {
		if mk == v {
			return true
		}
	}
	return false
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateInput(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.versions)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Mark):
		m.toggleMark()
	case key.Matches(keyMsg, keys.Apply):
		m.applyRange()
	case key.Matches(keyMsg, keys.Focus):
		m.editing = true
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.Package):
		m.nextPackage()
	case key.Matches(keyMsg, keys.Language):
		m.nextLanguage()
	case key.Matches(keyMsg, keys.RCs):
		m.toggleRCs()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyTab, tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		if _, err := m.ctrl.SetAppName(m.input.Value()); err != nil {
			m.err = err
		} else {
			m.status = "app name: " + m.ctrl.Selection().DisplayAppName()
		}
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) toggleMark() {
	if len(m.versions) == 0 {
		return
	}
	v := m.versions[m.cursor]
	for i, mk := range m.marked {
		if mk == v {
			m.marked = append(m.marked[:i], m.marked[i+1:]...)
			return
		}
	}
	if len(m.marked) < 2 {
		m.marked = append(m.marked, v)
	}
}

// applyRange turns the two marks into a version range, older version first.
func (m *Model) applyRange() {
	if len(m.marked) != 2 {
		m.status = "mark two versions first"
		return
	}
	from, to := m.marked[0], m.marked[1]
	if m.index(from) > m.index(to) {
		from, to = to, from
	}

	s, err := m.ctrl.SetVersionRange(from, to)
	switch {
	case errors.Is(err, selection.ErrInvalidVersionPairing):
		m.status = "pick two different versions"
	case err != nil:
		m.err = err
	default:
		m.status = fmt.Sprintf("showing diff %s..%s for %s", s.From, s.To, s.DisplayAppName())
	}
}

func (m *Model) nextPackage() {
	pkgs := selection.Packages()
	cur := m.ctrl.Selection().Package
	next := pkgs[0]
	for i, p := range pkgs {
		if p == cur {
			next = pkgs[(i+1)%len(pkgs)]
		}
	}
	m.switchTo(next, "")
}

func (m *Model) nextLanguage() {
	s := m.ctrl.Selection()
	if !s.Package.MultiLanguage() {
		m.status = fmt.Sprintf("%s only supports %s", s.Package, s.Language.Label())
		return
	}
	langs := s.Package.Languages()
	next := langs[0]
	for i, l := range langs {
		if l == s.Language {
			next = langs[(i+1)%len(langs)]
		}
	}
	m.switchTo(s.Package, next)
}

func (m *Model) switchTo(pkg selection.Package, lang selection.Language) {
	s, err := m.ctrl.SetPackageAndLanguage(pkg, lang)
	if err != nil {
		m.err = err
		return
	}
	m.cursor = 0
	m.reload()
	m.status = fmt.Sprintf("%s (%s)", s.Package, s.Language.Label())
}

func (m *Model) toggleRCs() {
	s := m.ctrl.Selection()
	var flags []selection.SettingFlag
	for _, f := range s.Settings.Flags() {
		if f != selection.ShowLatestRCs {
			flags = append(flags, f)
		}
	}
	if !s.Settings.Enabled(selection.ShowLatestRCs) {
		flags = append(flags, selection.ShowLatestRCs)
	}
	if _, err := m.ctrl.SetSettingFlags(flags); err != nil {
		m.err = err
		return
	}
	m.reload()
	log.Debugf("picker: settings now %v", m.ctrl.Selection().Settings.Names())
}

func (m Model) View() string {
	s := m.ctrl.Selection()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", s.Package, s.Language.Label())))
	if s.Settings.Enabled(selection.ShowLatestRCs) {
		b.WriteString(statusStyle.Render("  + release candidates"))
	}
	b.WriteString("\n\n")

	for i, v := range m.versions {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.isMarked(v) {
			mark = markStyle.Render("x")
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", cursor, mark, v)
	}

	b.WriteString("\n" + m.input.View() + "\n")
	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}

	var help []string
	for _, k := range keys.help() {
		h := k.Help()
		help = append(help, strings.ToUpper(h.Key)+": "+h.Desc)
	}
	return b.String() + "\n" + strings.Join(help, ", ") + "\n"
}
