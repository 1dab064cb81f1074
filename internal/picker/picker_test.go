// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhctl/uhctl/internal/catalog"
	"github.com/uhctl/uhctl/internal/controller"
	"github.com/uhctl/uhctl/internal/selection"
	"github.com/uhctl/uhctl/internal/urlstore"
)

const releases = `{
  "react-native": ["0.70.0", "0.71.0", "0.72.0", "0.73.0-rc.1"],
  "react-native-windows": {"cpp": ["0.70.0", "0.71.0"], "cs": ["0.71.0"]},
  "react-native-macos": ["0.70.0"]
}`

func newModel(t *testing.T, query string) (Model, *controller.Controller, *urlstore.Memory) {
	t.Helper()
	cat, err := catalog.Parse([]byte(releases))
	require.NoError(t, err)
	q, err := selection.ParseQuery(query)
	require.NoError(t, err)
	store := urlstore.NewMemory(q)
	ctrl := controller.New(store)
	return New(ctrl, cat), ctrl, store
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestNew_ListsVersions(t *testing.T) {
	m, _, _ := newModel(t, "")
	assert.Equal(t, []string{"0.70.0", "0.71.0", "0.72.0"}, m.versions)
	assert.Empty(t, m.marked)
	assert.Contains(t, m.View(), "react-native (C++)")
}

func TestNew_RestoresActiveRange(t *testing.T) {
	m, _, _ := newModel(t, "from=0.70.0&to=0.72.0")
	assert.Equal(t, []string{"0.70.0", "0.72.0"}, m.marked)
}

func TestCursorBounds(t *testing.T) {
	m, _, _ := newModel(t, "")
	m = press(t, m, up)
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, down, down, down, down)
	assert.Equal(t, 2, m.cursor)
}

func TestApply_OlderMarkBecomesFrom(t *testing.T) {
	m, ctrl, store := newModel(t, "")

	// Mark the newest first, then the oldest.
	m = press(t, m, down, down, space, up, up, space, enter)

	s := ctrl.Selection()
	assert.Equal(t, "0.70.0", s.From)
	assert.Equal(t, "0.72.0", s.To)
	assert.Equal(t, selection.Active, s.DiffState())
	require.Len(t, store.Writes(), 1)
	assert.Equal(t, "0.70.0", store.Read().Get("from"))
	assert.Contains(t, m.status, "0.70.0..0.72.0")
}

func TestApply_NeedsTwoMarks(t *testing.T) {
	m, ctrl, store := newModel(t, "")

	m = press(t, m, space, enter)

	assert.Equal(t, selection.Inactive, ctrl.DiffState())
	assert.Empty(t, store.Writes())
	assert.Equal(t, "mark two versions first", m.status)
}

func TestMark_ToggleAndLimit(t *testing.T) {
	m, _, _ := newModel(t, "")

	m = press(t, m, space, down, space, down, space)
	assert.Equal(t, []string{"0.70.0", "0.71.0"}, m.marked, "a third mark is ignored")

	m = press(t, m, up, space)
	assert.Equal(t, []string{"0.70.0"}, m.marked)
}

func TestPackageCycle_ClearsRange(t *testing.T) {
	m, ctrl, _ := newModel(t, "from=0.70.0&to=0.71.0")

	m = press(t, m, runes("p"))

	s := ctrl.Selection()
	assert.Equal(t, selection.ReactNativeWindows, s.Package)
	assert.Equal(t, selection.Cpp, s.Language)
	assert.Equal(t, selection.Inactive, s.DiffState())
	assert.Equal(t, []string{"0.70.0", "0.71.0"}, m.versions)
	assert.Empty(t, m.marked)
}

func TestLanguageCycle(t *testing.T) {
	m, ctrl, _ := newModel(t, "package=react-native-windows")

	m = press(t, m, runes("l"))
	assert.Equal(t, selection.CSharp, ctrl.Selection().Language)
	assert.Equal(t, []string{"0.71.0"}, m.versions)

	m, ctrl, store := newModel(t, "")
	m = press(t, m, runes("l"))
	assert.Equal(t, selection.Cpp, ctrl.Selection().Language)
	assert.Empty(t, store.Writes())
	assert.Contains(t, m.status, "only supports C++")
}

func TestToggleRCs(t *testing.T) {
	m, ctrl, store := newModel(t, "")

	m = press(t, m, runes("r"))
	assert.True(t, ctrl.Selection().Settings.Enabled(selection.ShowLatestRCs))
	assert.Equal(t, []string{"0.70.0", "0.71.0", "0.72.0", "0.73.0-rc.1"}, m.versions)
	assert.Equal(t, []string{"Show latest release candidates"}, store.Read()["setting"])

	m = press(t, m, runes("r"))
	assert.False(t, ctrl.Selection().Settings.Enabled(selection.ShowLatestRCs))
	assert.Len(t, m.versions, 3)
}

func TestAppNameEdit_DoesNotWriteURL(t *testing.T) {
	m, ctrl, store := newModel(t, "")

	m = press(t, m, tab)
	require.True(t, m.editing)
	m = press(t, m, runes("q"), runes("A"), runes("p"), runes("p"), enter)

	assert.False(t, m.editing)
	assert.Equal(t, "qApp", ctrl.Selection().AppName)
	assert.Empty(t, store.Writes())
	assert.Equal(t, "app name: qApp", m.status)
}

func TestQuit(t *testing.T) {
	m, _, _ := newModel(t, "")
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_ShowsError(t *testing.T) {
	cat, err := catalog.Parse([]byte(`{"react-native": ["0.70.0"]}`))
	require.NoError(t, err)
	ctrl := controller.New(urlstore.NewMemory(nil))
	_, err = ctrl.SetPackageAndLanguage(selection.ReactNativeMacOS, "")
	require.NoError(t, err)

	m := New(ctrl, cat)

	assert.ErrorIs(t, m.err, catalog.ErrNoVersions)
	assert.Contains(t, m.View(), "no versions")
}
