// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package controller

import (
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhctl/uhctl/internal/selection"
	"github.com/uhctl/uhctl/internal/urlstore"
)

func newController(t *testing.T, query string) (*Controller, *urlstore.Memory) {
	t.Helper()
	q, err := selection.ParseQuery(query)
	require.NoError(t, err)
	store := urlstore.NewMemory(q)
	return New(store), store
}

// failingStore rejects every write.
type failingStore struct{ urlstore.Memory }

func (f *failingStore) Write(url.Values) error { return errors.New("disk full") }

// localStore is a Memory store that also keeps the app name.
type localStore struct {
	*urlstore.Memory
	name string
}

func (l *localStore) AppName() string { return l.name }

func (l *localStore) SetAppName(name string) error {
	l.name = name
	return nil
}

func TestNew_LoadsWithoutWriting(t *testing.T) {
	c, store := newController(t, "?package=rn&from=0.70&to=0.71")

	s := c.Selection()
	assert.Equal(t, selection.ReactNative, s.Package)
	assert.Equal(t, selection.Cpp, s.Language)
	assert.Equal(t, "0.70", s.From)
	assert.Equal(t, "0.71", s.To)
	assert.Equal(t, selection.Active, c.DiffState())
	assert.Empty(t, store.Writes())
}

func TestSetPackageAndLanguage_WritesClearedVersions(t *testing.T) {
	c, store := newController(t, "from=0.70&to=0.71")

	s, err := c.SetPackageAndLanguage(selection.ReactNativeWindows, selection.CSharp)
	require.NoError(t, err)

	assert.Equal(t, selection.Selection{Package: selection.ReactNativeWindows, Language: selection.CSharp}, s)
	assert.Equal(t, selection.Inactive, c.DiffState())

	writes := store.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, url.Values{"package": {"react-native-windows"}, "language": {"cs"}}, writes[0])
	assert.NotContains(t, writes[0], "from")
	assert.NotContains(t, writes[0], "to")
}

func TestSetVersionRange_EqualIsSilentNoOp(t *testing.T) {
	c, store := newController(t, "package=rnm")
	before := c.Selection()

	s, err := c.SetVersionRange("0.71.0", "0.71.0")

	assert.ErrorIs(t, err, selection.ErrInvalidVersionPairing)
	assert.Equal(t, before, s)
	assert.Equal(t, before, c.Selection())
	assert.Empty(t, store.Writes())
}

func TestSetVersionRange_InvalidVersionWritesNothing(t *testing.T) {
	c, store := newController(t, "package=rnm")
	before := c.Selection()

	_, err := c.SetVersionRange("latest", "0.71")

	assert.ErrorIs(t, err, selection.ErrInvalidVersion)
	assert.Equal(t, before, c.Selection())
	assert.Empty(t, store.Writes())
	assert.Equal(t, selection.Inactive, New(store).DiffState())
}

func TestSetVersionRange_StoreReloadsSameSelection(t *testing.T) {
	c, store := newController(t, "")

	s, err := c.SetVersionRange("0.70", "0.71")
	require.NoError(t, err)

	reloaded := New(store).Selection()
	assert.True(t, selection.ShareEqual(s, reloaded))
	assert.Equal(t, selection.Active, reloaded.DiffState())
}

func TestSetVersionRange_Activates(t *testing.T) {
	c, store := newController(t, "package=rnw&language=cs")

	_, err := c.SetVersionRange("0.70.0", "0.71.0")
	require.NoError(t, err)

	assert.Equal(t, selection.Active, c.DiffState())
	writes := store.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, "from=0.70.0&language=cs&package=react-native-windows&to=0.71.0", writes[0].Encode())
}

func TestStateMachine(t *testing.T) {
	c, _ := newController(t, "")
	assert.Equal(t, selection.Inactive, c.DiffState())

	_, err := c.SetVersionRange("0.70.0", "0.71.0")
	require.NoError(t, err)
	assert.Equal(t, selection.Active, c.DiffState())

	_, err = c.SetPackageAndLanguage(selection.ReactNative, "")
	require.NoError(t, err)
	assert.Equal(t, selection.Inactive, c.DiffState(), "same package still deactivates")

	_, err = c.SetVersionRange("0.72.0", "0.73.0")
	require.NoError(t, err)
	assert.Equal(t, selection.Active, c.DiffState())
}

func TestSetAppName_NoURLWrite(t *testing.T) {
	c, store := newController(t, "from=0.70.0&to=0.71.0")

	s, err := c.SetAppName("")
	require.NoError(t, err)
	assert.Equal(t, "", s.AppName)
	assert.Equal(t, selection.DefaultAppName, s.DisplayAppName())

	s, err = c.SetAppName("MyApp")
	require.NoError(t, err)
	assert.Equal(t, "MyApp", s.DisplayAppName())
	assert.Empty(t, store.Writes())
}

func TestSetAppName_LocalStore(t *testing.T) {
	store := &localStore{Memory: urlstore.NewMemory(nil), name: "Saved"}
	c := New(store)
	assert.Equal(t, "Saved", c.Selection().AppName)

	_, err := c.SetAppName("Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", store.name)
	assert.Empty(t, store.Writes())
}

func TestSetSettingFlags_ReplacesAndWrites(t *testing.T) {
	c, store := newController(t, "setting=Show+latest+release+candidates")
	assert.True(t, c.Selection().Settings.Enabled(selection.ShowLatestRCs))

	s, err := c.SetSettingFlags(nil)
	require.NoError(t, err)
	assert.False(t, s.Settings.Enabled(selection.ShowLatestRCs))

	writes := store.Writes()
	require.Len(t, writes, 1)
	assert.Empty(t, writes[0])
}

func TestOpen_NormalizesAndKeepsAppName(t *testing.T) {
	c, store := newController(t, "")
	_, err := c.SetAppName("MyApp")
	require.NoError(t, err)

	q, _ := selection.ParseQuery("package=rnm&language=cs&from=0.70.0&to=0.70.0&junk=1")
	s, err := c.Open(q)
	require.NoError(t, err)

	assert.Equal(t, selection.ReactNativeMacOS, s.Package)
	assert.Equal(t, selection.Cpp, s.Language)
	assert.Equal(t, selection.Inactive, s.DiffState())
	assert.Equal(t, "MyApp", s.AppName)

	writes := store.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, "package=react-native-macos", writes[0].Encode())
}

func TestFailedWriteKeepsSelection(t *testing.T) {
	store := &failingStore{}
	c := New(store)
	before := c.Selection()

	_, err := c.SetVersionRange("0.70.0", "0.71.0")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, before, c.Selection())
}

func TestObservers(t *testing.T) {
	var calls []string
	c := New(urlstore.NewMemory(nil), WithObserver(func(prev, next selection.Selection) {
		calls = append(calls, "first:"+next.Query())
	}))
	c.OnChange(func(prev, next selection.Selection) {
		calls = append(calls, "second:"+prev.Query())
	})

	_, _ = c.SetVersionRange("0.70.0", "0.70.0")
	_, err := c.SetVersionRange("0.70.0", "0.71.0")
	require.NoError(t, err)

	assert.Equal(t, []string{"first:from=0.70.0&to=0.71.0", "second:"}, calls)
}

func TestConcurrentTransitionsKeepURLInStep(t *testing.T) {
	c, store := newController(t, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = c.SetVersionRange("0.70.0", "0.71.0")
			} else {
				_, _ = c.SetPackageAndLanguage(selection.ReactNativeWindows, selection.CSharp)
			}
		}(i)
	}
	wg.Wait()

	writes := store.Writes()
	require.Len(t, writes, 20)
	assert.Equal(t, selection.Encode(c.Selection()), store.Read())
}
