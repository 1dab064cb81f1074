// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package controller

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	apex "github.com/apex/log"

	"github.com/uhctl/uhctl/internal/log"
	"github.com/uhctl/uhctl/internal/selection"
	"github.com/uhctl/uhctl/internal/urlstore"
)

// LocalStore is implemented by stores that also keep the non-shareable app
// name input.
type LocalStore interface {
	AppName() string
	SetAppName(name string) error
}

// Observer is called after every committed transition.
type Observer func(prev, next selection.Selection)

// Controller serializes transitions over one Selection.
type Controller struct {
	mu        sync.Mutex
	store     urlstore.Store
	sel       selection.Selection
	observers []Observer
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers o before the initial load completes.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// New loads the initial selection from store. Loading never writes.
func New(store urlstore.Store, opts ...Option) *Controller {
	c := &Controller{store: store}
	for _, opt := range opts {
		opt(c)
	}

	sel, anomalies := selection.Load(store.Read())
	logAnomalies(anomalies)
	if ls, ok := store.(LocalStore); ok {
		sel = selection.SetAppName(sel, ls.AppName())
	}
	c.sel = sel

	log.WithFields(apex.Fields{
		"query": sel.Query(),
		"diff":  sel.DiffState(),
	}).Debug("selection loaded")
	return c
}

func logAnomalies(anomalies []selection.Anomaly) {
	for _, a := range anomalies {
		log.Debugf("normalized url input: %v", a)
	}
}

// OnChange registers an observer. Observers run synchronously, in
// registration order, after the URL write of the transition.
func (c *Controller) OnChange(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// Selection returns the current selection.
func (c *Controller) Selection() selection.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// DiffState returns the diff visibility of the current selection.
func (c *Controller) DiffState() selection.DiffState {
	return c.Selection().DiffState()
}

// SetPackageAndLanguage switches package (and language when the package has
// a choice) and clears the version pair.
func (c *Controller) SetPackageAndLanguage(pkg selection.Package, lang selection.Language) (selection.Selection, error) {
	return c.apply(true, func(s selection.Selection) (selection.Selection, error) {
		return selection.SetPackageAndLanguage(s, pkg, lang), nil
	})
}

// SetVersionRange activates the diff for from..to. An invalid pair returns
// selection.ErrInvalidVersionPairing, and an endpoint that is not a version
// returns selection.ErrInvalidVersion. Either way the selection and the URL
// are left untouched.
func (c *Controller) SetVersionRange(from, to string) (selection.Selection, error) {
	return c.apply(true, func(s selection.Selection) (selection.Selection, error) {
		return selection.SetVersionRange(s, from, to)
	})
}

// SetAppName updates the app name input. The URL is not written.
func (c *Controller) SetAppName(name string) (selection.Selection, error) {
	if ls, ok := c.store.(LocalStore); ok {
		if err := ls.SetAppName(name); err != nil {
			return c.Selection(), fmt.Errorf("failed to store app name: %w", err)
		}
	}
	return c.apply(false, func(s selection.Selection) (selection.Selection, error) {
		return selection.SetAppName(s, name), nil
	})
}

// SetSettingFlags replaces the enabled setting flags.
func (c *Controller) SetSettingFlags(flags []selection.SettingFlag) (selection.Selection, error) {
	return c.apply(true, func(s selection.Selection) (selection.Selection, error) {
		return selection.SetSettingFlags(s, flags), nil
	})
}

// Open replaces the shareable part of the selection with what q loads as,
// keeping the app name, and writes the normalized query back.
func (c *Controller) Open(q url.Values) (selection.Selection, error) {
	return c.apply(true, func(s selection.Selection) (selection.Selection, error) {
		next, anomalies := selection.Load(q)
		logAnomalies(anomalies)
		return selection.SetAppName(next, s.AppName), nil
	})
}

// apply runs one transition under the lock. A transition error or a failed
// URL write leaves the current selection in place.
func (c *Controller) apply(writeURL bool, fn func(selection.Selection) (selection.Selection, error)) (selection.Selection, error) {
	c.mu.Lock()
	prev := c.sel
	next, err := fn(prev)
	if err != nil {
		c.mu.Unlock()
		if errors.Is(err, selection.ErrInvalidVersionPairing) {
			log.Debugf("ignored transition: %v", err)
		}
		return prev, err
	}

	if writeURL {
		if err := c.store.Write(selection.Encode(next)); err != nil {
			c.mu.Unlock()
			return prev, fmt.Errorf("failed to write url: %w", err)
		}
	}
	c.sel = next
	observers := append([]Observer(nil), c.observers...)
	c.mu.Unlock()

	log.Tracef("transition: %q -> %q", prev.Query(), next.Query())
	for _, o := range observers {
		o(prev, next)
	}
	return next, nil
}
