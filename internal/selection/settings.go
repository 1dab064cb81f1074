// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SettingFlag is one of the fixed display toggles.
type SettingFlag uint8

const (
	// ShowLatestRCs includes the newest release candidates in version lists.
	ShowLatestRCs SettingFlag = iota

	numSettingFlags
)

var settingNames = [numSettingFlags]string{
	ShowLatestRCs: "Show latest release candidates",
}

// SettingFlags returns every known flag in declaration order.
func SettingFlags() []SettingFlag {
	out := make([]SettingFlag, 0, numSettingFlags)
	for f := SettingFlag(0); f < numSettingFlags; f++ {
		out = append(out, f)
	}
	return out
}

func (f SettingFlag) String() string {
	if f < numSettingFlags {
		return settingNames[f]
	}
	return fmt.Sprintf("SettingFlag(%d)", uint8(f))
}

// ParseSettingFlag maps a flag name onto a SettingFlag. Matching ignores case
// and surrounding space. Unknown names return ErrUnknownSetting.
func ParseSettingFlag(name string) (SettingFlag, error) {
	want := strings.TrimSpace(name)
	for f, n := range settingNames {
		if strings.EqualFold(n, want) {
			return SettingFlag(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
}

// ParseSettingFlags parses every name and fails on the first unknown one.
func ParseSettingFlags(names []string) ([]SettingFlag, error) {
	out := make([]SettingFlag, 0, len(names))
	for _, n := range names {
		f, err := ParseSettingFlag(n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Settings is the set of enabled flags. The zero value has every flag off.
type Settings uint32

// NewSettings enables exactly the given flags.
func NewSettings(flags ...SettingFlag) Settings {
	var s Settings
	for _, f := range flags {
		if f < numSettingFlags {
			s |= 1 << f
		}
	}
	return s
}

// Enabled reports whether f is on.
func (s Settings) Enabled(f SettingFlag) bool {
	return f < numSettingFlags && s&(1<<f) != 0
}

// Flags returns the enabled flags in declaration order.
func (s Settings) Flags() []SettingFlag {
	var out []SettingFlag
	for _, f := range SettingFlags() {
		if s.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}

// Names returns the names of the enabled flags in declaration order.
func (s Settings) Names() []string {
	flags := s.Flags()
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = f.String()
	}
	return out
}

// MarshalJSON renders the set as a list of flag names.
func (s Settings) MarshalJSON() ([]byte, error) {
	names := s.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

// MarshalYAML renders the set as a list of flag names.
func (s Settings) MarshalYAML() (interface{}, error) {
	return s.Names(), nil
}
