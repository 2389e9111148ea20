// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2026 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package gsettingstest provides an in-memory configuration store that
// knows about schemas, keys and their defaults the way gsettings does.
package gsettingstest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/snapcore/desktop-settings/bridge"
)

type schemaKey struct {
	schema, key string
}

// Store is an in-memory configuration store.
type Store struct {
	mu       sync.Mutex
	defaults map[schemaKey]string
	values   map[schemaKey]string
	writes   []string
}

// New returns a store without any schema.
func New() *Store {
	return &Store{
		defaults: make(map[schemaKey]string),
		values:   make(map[schemaKey]string),
	}
}

// desktopDefaults are the stock GNOME defaults of the keys used by the
// desktop façades.
var desktopDefaults = []struct {
	schema, key, value string
}{
	{"org.gnome.settings-daemon.plugins.color", "night-light-enabled", "false"},
	{"org.gnome.settings-daemon.plugins.color", "night-light-temperature", "2700"},
	{"org.gnome.shell", "disable-user-extensions", "false"},
	{"org.gnome.desktop.interface", "show-battery-percentage", "false"},
	{"org.gnome.desktop.interface", "locate-pointer", "false"},
	{"org.gnome.desktop.interface", "cursor-size", "24"},
	{"org.gnome.desktop.peripherals.keyboard", "delay", "500"},
	{"org.gnome.desktop.peripherals.keyboard", "repeat-interval", "30"},
	{"org.gnome.desktop.peripherals.mouse", "natural-scroll", "false"},
	{"org.gnome.desktop.peripherals.touchpad", "tap-to-click", "false"},
	{"org.gnome.desktop.peripherals.touchpad", "two-finger-scrolling-enabled", "true"},
}

// NewDesktop returns a store knowing the desktop schemas with their
// stock defaults.
func NewDesktop() *Store {
	s := New()
	for _, d := range desktopDefaults {
		s.AddKey(d.schema, d.key, d.value)
	}
	return s
}

// AddKey declares schema/key with the given default.
func (s *Store) AddKey(schema, key, dflt string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defaults[schemaKey{schema, key}] = dflt
	return s
}

func (s *Store) check(schema, key string) error {
	if _, ok := s.defaults[schemaKey{schema, key}]; ok {
		return nil
	}
	target := schema + " " + key
	for k := range s.defaults {
		if k.schema == schema {
			return bridge.NewError(bridge.ErrorKindTargetNotFound, target, fmt.Errorf("No such key “%s”", key))
		}
	}
	return bridge.NewError(bridge.ErrorKindTargetNotFound, target, fmt.Errorf("No such schema “%s”", schema))
}

// Get returns the value of schema/key, or its default if never set.
func (s *Store) Get(ctx context.Context, schema, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(schema, key); err != nil {
		return "", err
	}
	if value, ok := s.values[schemaKey{schema, key}]; ok {
		return value, nil
	}
	return s.defaults[schemaKey{schema, key}], nil
}

// Set stores value for schema/key. The value is not validated.
func (s *Store) Set(ctx context.Context, schema, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(schema, key); err != nil {
		return err
	}
	s.values[schemaKey{schema, key}] = value
	s.writes = append(s.writes, fmt.Sprintf("set %s %s %s", schema, key, value))
	return nil
}

// Reset drops the value of schema/key so its default applies again.
func (s *Store) Reset(ctx context.Context, schema, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(schema, key); err != nil {
		return err
	}
	delete(s.values, schemaKey{schema, key})
	s.writes = append(s.writes, fmt.Sprintf("reset %s %s", schema, key))
	return nil
}

// Writes returns the modifications made so far, as "set schema key value"
// and "reset schema key" lines.
func (s *Store) Writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.writes...)
}

// Modified returns the keys currently holding a non-default value, sorted.
func (s *Store) Modified() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k.schema+" "+k.key)
	}
	sort.Strings(keys)
	return keys
}
