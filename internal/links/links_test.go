// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhctl/uhctl/internal/selection"
)

func TestDiffURL(t *testing.T) {
	tests := []struct {
		name string
		sel  selection.Selection
		want string
	}{
		{
			name: "react-native",
			sel:  selection.Selection{Package: selection.ReactNative, Language: selection.Cpp, From: "0.70.0", To: "0.71.0"},
			want: "https://raw.githubusercontent.com/react-native-community/rn-diff-purge/diffs/diffs/0.70.0..0.71.0.diff",
		},
		{
			name: "windows csharp",
			sel:  selection.Selection{Package: selection.ReactNativeWindows, Language: selection.CSharp, From: "0.70.0", To: "0.71.0"},
			want: "https://raw.githubusercontent.com/acoates-ms/rnw-diff/diffs/diffs/react-native-windows/cs/0.70.0..0.71.0.diff",
		},
		{
			name: "macos",
			sel:  selection.Selection{Package: selection.ReactNativeMacOS, Language: selection.Cpp, From: "0.70.0", To: "0.71.0"},
			want: "https://raw.githubusercontent.com/acoates-ms/rnw-diff/diffs/diffs/react-native-macos/0.70.0..0.71.0.diff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiffURL(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiffURL_Inactive(t *testing.T) {
	_, err := DiffURL(selection.Default())
	assert.ErrorIs(t, err, ErrDiffInactive)
}

func TestReleasesURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/react-native-community/rn-diff-purge/master/RELEASES",
		ReleasesURL(selection.ReactNative, selection.Cpp))
	assert.Equal(t,
		"https://raw.githubusercontent.com/acoates-ms/rnw-diff/master/react-native-windows/cpp/RELEASES",
		ReleasesURL(selection.ReactNativeWindows, selection.Cpp))
}

func TestBinaryFileURL(t *testing.T) {
	assert.Equal(t,
		"https://github.com/react-native-community/rn-diff-purge/raw/release/0.71.0/RnDiffApp/android/app/debug.keystore",
		BinaryFileURL(selection.ReactNative, selection.Cpp, "0.71.0", "/RnDiffApp/android/app/debug.keystore"))
	assert.Equal(t,
		"https://github.com/acoates-ms/rnw-diff/raw/release/react-native-macos/0.71.0/icon.png",
		BinaryFileURL(selection.ReactNativeMacOS, selection.Cpp, "0.71.0", "icon.png"))
}

func TestShareURL(t *testing.T) {
	s := selection.Selection{Package: selection.ReactNativeWindows, Language: selection.CSharp, From: "0.70.0", To: "0.71.0", AppName: "Hidden"}

	got, err := ShareURL("", s)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL+"?from=0.70.0&language=cs&package=react-native-windows&to=0.71.0", got)

	got, err = ShareURL("https://example.test/uh/?stale=1", selection.Default())
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/uh/", got)

	_, err = ShareURL("://bad", s)
	assert.Error(t, err)
}

func TestFor(t *testing.T) {
	set, err := For("", selection.Default())
	require.NoError(t, err)
	assert.Empty(t, set.Diff)
	assert.Equal(t, DefaultBaseURL, set.Share)

	set, err = For("", selection.Selection{Package: selection.ReactNative, Language: selection.Cpp, From: "0.70.0", To: "0.71.0"})
	require.NoError(t, err)
	assert.NotEmpty(t, set.Diff)
}
