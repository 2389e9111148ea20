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

package gsettings

import (
	"context"
	"fmt"
	"sync"

	"github.com/snapcore/desktop-settings/bridge"
)

type schemaKey struct {
	schema, key string
}

// DryRun is a store that reads through to another store but only
// records the modifications made to it.
type DryRun struct {
	store bridge.Store

	mu     sync.Mutex
	values map[schemaKey]string
	writes []string
}

// NewDryRun returns a store reading from store and keeping writes in
// memory.
func NewDryRun(store bridge.Store) *DryRun {
	return &DryRun{
		store:  store,
		values: make(map[schemaKey]string),
	}
}

// Get returns the value recorded by an earlier Set, or else the value
// of the underlying store.
func (d *DryRun) Get(ctx context.Context, schema, key string) (string, error) {
	d.mu.Lock()
	value, ok := d.values[schemaKey{schema, key}]
	d.mu.Unlock()
	if ok {
		return value, nil
	}
	return d.store.Get(ctx, schema, key)
}

// Set records value for schema/key, which must exist in the underlying
// store.
func (d *DryRun) Set(ctx context.Context, schema, key, value string) error {
	if _, err := d.store.Get(ctx, schema, key); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[schemaKey{schema, key}] = value
	d.writes = append(d.writes, fmt.Sprintf("set %s %s %s", schema, key, value))
	return nil
}

// Reset records the reset of schema/key and forgets any value set for
// it, reads then go to the underlying store again.
func (d *DryRun) Reset(ctx context.Context, schema, key string) error {
	if _, err := d.store.Get(ctx, schema, key); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.values, schemaKey{schema, key})
	d.writes = append(d.writes, fmt.Sprintf("reset %s %s", schema, key))
	return nil
}

// Writes returns the recorded modifications, as "set schema key value"
// and "reset schema key" lines.
func (d *DryRun) Writes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.writes...)
}
