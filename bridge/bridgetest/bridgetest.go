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

// Package bridgetest wires a Bridge to fake buses and an in-memory
// configuration store.
package bridgetest

import (
	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/dbusutil/dbustest"
	"github.com/snapcore/desktop-settings/gsettings/gsettingstest"
)

// Fixture is a Bridge together with the fakes behind it.
type Fixture struct {
	Session *dbustest.Conn
	System  *dbustest.Conn
	Store   *gsettingstest.Store
	Bridge  *bridge.Bridge
}

// New returns a fixture whose store knows the desktop schemas.
func New() *Fixture {
	f := &Fixture{
		Session: dbustest.NewConn(),
		System:  dbustest.NewConn(),
		Store:   gsettingstest.NewDesktop(),
	}
	f.Bridge = bridge.New(&bridge.Options{
		Store: f.Store,
		Connect: func(scope bridge.Scope) (bridge.Conn, error) {
			if scope == bridge.SystemBus {
				return f.System, nil
			}
			return f.Session, nil
		},
	})
	return f
}
