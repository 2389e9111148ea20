// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2019-2026 Canonical Ltd
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

package agent

import (
	"net"
	"net/http"

	"golang.org/x/sys/unix"
)

var (
	SessionInfoCmd = sessionInfoCmd
	SettingsCmd    = settingsCmd
	SettingCmd     = settingCmd
	ExtensionsCmd  = extensionsCmd
	ExtensionCmd   = extensionCmd
	PowerCmd       = powerCmd
	ScreenCmd      = screenCmd
	BatteryCmd     = batteryCmd
	AppsCmd        = appsCmd
	PickColorCmd   = pickColorCmd
)

func MockUcred(ucred *unix.Ucred, err error) (restore func()) {
	old := sysGetsockoptUcred
	sysGetsockoptUcred = func(fd, level, opt int) (*unix.Ucred, error) {
		return ucred, err
	}
	return func() {
		sysGetsockoptUcred = old
	}
}

func MockActivationListeners(f func() ([]net.Listener, error)) (restore func()) {
	old := activationListeners
	activationListeners = f
	return func() {
		activationListeners = old
	}
}

func MockSdNotify(f func(unsetEnvironment bool, state string) (bool, error)) (restore func()) {
	old := sdNotify
	sdNotify = f
	return func() {
		sdNotify = old
	}
}

// Handler returns the request router of the agent.
func (s *SessionAgent) Handler() http.Handler {
	return s.router
}
