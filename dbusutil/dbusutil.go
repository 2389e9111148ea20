// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2020-2026 Canonical Ltd
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

package dbusutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/godbus/dbus/v5"

	"github.com/snapcore/desktop-settings/dirs"
	"github.com/snapcore/desktop-settings/osutil"
)

// ErrNoSessionBus is returned when no session bus can be found for the
// current user.
var ErrNoSessionBus = errors.New("cannot find session bus")

// isSessionBusLikelyPresent checks for the apparent availability of DBus session bus.
//
// The code matches what go-dbus does when it tries to detect the session bus:
// - the presence of the environment variable DBUS_SESSION_BUS_ADDRESS
// - the presence of the bus socket address in the file /run/user/UID/dbus-session
// - the presence of the bus socket in /run/user/UID/bus
func isSessionBusLikelyPresent() bool {
	if address := os.Getenv("DBUS_SESSION_BUS_ADDRESS"); address != "" {
		return true
	}
	uid := os.Getuid()
	if fi, err := os.Stat(fmt.Sprintf("%s/%d/dbus-session", dirs.XdgRuntimeDirBase, uid)); err == nil {
		if fi.Mode().IsRegular() {
			return true
		}
	}
	if fi, err := os.Stat(fmt.Sprintf("%s/%d/bus", dirs.XdgRuntimeDirBase, uid)); err == nil {
		if fi.Mode()&os.ModeType == os.ModeSocket {
			return true
		}
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" && osutil.FileExists(filepath.Join(dir, "bus")) {
		return true
	}
	return false
}

// IsSessionBusLikelyPresent checks for the apparent availability of DBus session bus.
var IsSessionBusLikelyPresent = isSessionBusLikelyPresent

// SessionBus is like dbus.SessionBus but it avoids a potentially costly
// autolaunch attempt when no session bus is around. The connection is
// shared and must not be closed.
func SessionBus() (*dbus.Conn, error) {
	if !IsSessionBusLikelyPresent() {
		return nil, ErrNoSessionBus
	}
	return sessionBus()
}

var sessionBus = dbus.SessionBus

// SystemBus is like dbus.SystemBus and is provided for symmetry with
// SessionBus. The connection is shared and must not be closed.
func SystemBus() (*dbus.Conn, error) {
	return systemBus()
}

var systemBus = dbus.SystemBus

// MockConnections replaces the connection factories used by SystemBus and
// SessionBus. A nil function makes the respective bus unavailable.
func MockConnections(system, session func() (*dbus.Conn, error)) (restore func()) {
	oldSystem, oldSession, oldPresent := systemBus, sessionBus, IsSessionBusLikelyPresent
	unavailable := func(name string) func() (*dbus.Conn, error) {
		return func() (*dbus.Conn, error) {
			return nil, fmt.Errorf("%s bus is not available for testing", name)
		}
	}
	if system == nil {
		system = unavailable("system")
	}
	if session == nil {
		session = unavailable("session")
	}
	systemBus = system
	sessionBus = session
	IsSessionBusLikelyPresent = func() bool { return true }
	return func() {
		systemBus, sessionBus, IsSessionBusLikelyPresent = oldSystem, oldSession, oldPresent
	}
}

// ErrorName returns the name of the D-Bus error carried by err, if any.
func ErrorName(err error) (name string, ok bool) {
	var derr dbus.Error
	if errors.As(err, &derr) {
		return derr.Name, true
	}
	var pderr *dbus.Error
	if errors.As(err, &pderr) && pderr != nil {
		return pderr.Name, true
	}
	return "", false
}

// ErrorMessage returns the first string argument of a D-Bus error, which
// by convention is the human readable message.
func ErrorMessage(err error) string {
	var derr dbus.Error
	if !errors.As(err, &derr) {
		var pderr *dbus.Error
		if !errors.As(err, &pderr) || pderr == nil {
			return ""
		}
		derr = *pderr
	}
	if len(derr.Body) == 0 {
		return ""
	}
	msg, _ := derr.Body[0].(string)
	return msg
}
