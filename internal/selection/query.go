// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/hashicorp/go-version"
)

// URL query keys.
const (
	KeyPackage  = "package"
	KeyLanguage = "language"
	KeyFrom     = "from"
	KeyTo       = "to"
	KeySetting  = "setting"
)

var knownKeys = map[string]bool{
	KeyPackage:  true,
	KeyLanguage: true,
	KeyFrom:     true,
	KeyTo:       true,
	KeySetting:  true,
}

// Anomaly records one piece of query input that was normalized away while
// loading. Kind is one of the package's sentinel errors.
type Anomaly struct {
	Kind  error
	Key   string
	Value string
}

func (a Anomaly) Error() string {
	return fmt.Sprintf("%s: %s=%q", a.Kind, a.Key, a.Value)
}

func (a Anomaly) Unwrap() error { return a.Kind }

// LoadInitialSelection builds the selection a page load would show for query.
// It never fails: anything unusable falls back to the defaults.
func LoadInitialSelection(query url.Values) Selection {
	s, _ := Load(query)
	return s
}

// Load is LoadInitialSelection that also reports what it normalized.
func Load(query url.Values) (Selection, []Anomaly) {
	var anomalies []Anomaly
	note := func(kind error, key, value string) {
		anomalies = append(anomalies, Anomaly{Kind: kind, Key: key, Value: value})
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !knownKeys[k] {
			note(ErrUnrecognizedURLParameter, k, query.Get(k))
		}
	}

	s := Default()

	if raw := query.Get(KeyPackage); raw != "" {
		if p, err := ParsePackage(raw); err == nil {
			s.Package = p
		} else {
			note(ErrUnknownPackage, KeyPackage, raw)
		}
	}

	s.Language = s.Package.DefaultLanguage()
	if raw := query.Get(KeyLanguage); raw != "" {
		lang, err := ParseLanguage(raw)
		switch {
		case err != nil:
			note(ErrUnknownLanguage, KeyLanguage, raw)
		case !s.Package.Supports(lang):
			note(ErrUnsupportedPackageLanguage, KeyLanguage, raw)
		default:
			s.Language = lang
		}
	}

	from := normalizeVersion(query.Get(KeyFrom))
	to := normalizeVersion(query.Get(KeyTo))
	if raw := query.Get(KeyFrom); raw != "" && from == "" {
		note(ErrInvalidVersion, KeyFrom, raw)
	}
	if raw := query.Get(KeyTo); raw != "" && to == "" {
		note(ErrInvalidVersion, KeyTo, raw)
	}
	switch {
	case from == "" && to == "":
	case from == "" || to == "" || sameVersion(from, to):
		note(ErrInvalidVersionPairing, KeyFrom+".."+KeyTo, from+".."+to)
	default:
		s.From, s.To = from, to
	}

	var flags []SettingFlag
	for _, raw := range query[KeySetting] {
		f, err := ParseSettingFlag(raw)
		if err != nil {
			note(ErrUnknownSetting, KeySetting, raw)
			continue
		}
		flags = append(flags, f)
	}
	s.Settings = NewSettings(flags...)

	return s, anomalies
}

// normalizeVersion trims v and returns "" when it does not parse as a version.
func normalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if _, err := version.NewVersion(v); err != nil {
		return ""
	}
	return v
}

// ValidVersion reports whether v parses as a version identifier.
func ValidVersion(v string) bool {
	n := normalizeVersion(v)
	return n != "" && n == v
}

// Encode maps s onto URL query values. Fields at their implicit default are
// omitted, and AppName is never included.
func Encode(s Selection) url.Values {
	q := url.Values{}
	if s.Package != PrimaryPackage {
		q.Set(KeyPackage, s.Package.String())
	}
	if s.Package.MultiLanguage() && s.Language != s.Package.DefaultLanguage() {
		q.Set(KeyLanguage, s.Language.String())
	}
	if s.From != "" {
		q.Set(KeyFrom, s.From)
	}
	if s.To != "" {
		q.Set(KeyTo, s.To)
	}
	names := s.Settings.Names()
	sort.Strings(names)
	for _, n := range names {
		q.Add(KeySetting, n)
	}
	return q
}

// Query is the encoded query string of s. url.Values.Encode sorts by key so
// equal selections give identical strings.
func (s Selection) Query() string {
	return Encode(s).Encode()
}

// ParseQuery accepts a full URL, a "?query" or a bare "k=v&..." string and
// returns its query values. The returned values are never nil: on a malformed
// query they hold whatever pairs did parse, alongside the error.
func ParseQuery(raw string) (url.Values, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return url.Values{}, nil
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return url.Values{}, fmt.Errorf("failed to parse url: %w", err)
		}
		raw = u.RawQuery
	}
	if i := strings.Index(raw, "#"); i >= 0 {
		raw = raw[:i]
	}
	q, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if q == nil {
		q = url.Values{}
	}
	if err != nil {
		return q, fmt.Errorf("failed to parse query: %w", err)
	}
	return q, nil
}
