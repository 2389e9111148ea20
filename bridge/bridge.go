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

// Package bridge provides typed access to desktop settings kept by
// session and system bus services and by the gsettings configuration
// store. Every operation is an independent round trip bounded by the
// call timeout, and every failure is reported as an *Error.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/snapcore/desktop-settings/dbusutil"
)

// Scope selects the bus a call is sent on.
type Scope int

const (
	SessionBus Scope = iota
	SystemBus
)

func (s Scope) String() string {
	switch s {
	case SessionBus:
		return "session bus"
	case SystemBus:
		return "system bus"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// Conn is the part of a bus connection used by the accessors;
// *dbus.Conn implements it.
type Conn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
}

// Connector returns a connection to the bus of the given scope.
type Connector func(scope Scope) (Conn, error)

// DefaultConnector returns the shared connections managed by godbus.
func DefaultConnector(scope Scope) (Conn, error) {
	var conn *dbus.Conn
	var err error
	switch scope {
	case SessionBus:
		conn, err = dbusutil.SessionBus()
	case SystemBus:
		conn, err = dbusutil.SystemBus()
	default:
		return nil, fmt.Errorf("internal error: unknown bus scope %d", int(scope))
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Store is the configuration store: string values addressed by schema
// and key.
type Store interface {
	Get(ctx context.Context, schema, key string) (string, error)
	Set(ctx context.Context, schema, key, value string) error
	Reset(ctx context.Context, schema, key string) error
}

// DefaultCallTimeout bounds a single round trip unless configured otherwise.
const DefaultCallTimeout = 25 * time.Second

var errNoStore = errors.New("no configuration store available")

// Options configures a Bridge.
type Options struct {
	// Store is the configuration store, store keys fail as unreachable
	// without one.
	Store Store
	// Connect defaults to DefaultConnector.
	Connect Connector
	// CallTimeout defaults to DefaultCallTimeout.
	CallTimeout time.Duration
}

// Bridge gives access to the backends. It holds no mutable state and
// can be used concurrently.
type Bridge struct {
	store       Store
	connect     Connector
	callTimeout time.Duration
}

// New returns a Bridge with the given options.
func New(opts *Options) *Bridge {
	if opts == nil {
		opts = &Options{}
	}
	b := &Bridge{
		store:       opts.Store,
		connect:     opts.Connect,
		callTimeout: opts.CallTimeout,
	}
	if b.connect == nil {
		b.connect = DefaultConnector
	}
	if b.callTimeout <= 0 {
		b.callTimeout = DefaultCallTimeout
	}
	return b
}

func (b *Bridge) roundTripContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, b.callTimeout)
}

func (b *Bridge) object(scope Scope, dest string, path dbus.ObjectPath, target string) (dbus.BusObject, error) {
	conn, err := b.connect(scope)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransportUnavailable, Target: target, Err: fmt.Errorf("cannot connect to %s: %w", scope, err)}
	}
	return conn.Object(dest, path), nil
}
