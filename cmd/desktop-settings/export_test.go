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

package main

import (
	"os"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/config"
)

var (
	Columns      = columns
	FmtRemaining = fmtRemaining
)

func MockBackends(connect bridge.Connector, store bridge.Store) (restore func()) {
	oldConnect, oldStore := busConnector, newStore
	busConnector = connect
	newStore = func(*config.Config) bridge.Store { return store }
	return func() {
		busConnector, newStore = oldConnect, oldStore
	}
}

func MockTermWidth(width int) (restore func()) {
	old := termWidth
	termWidth = func() int { return width }
	return func() {
		termWidth = old
	}
}

func MockSignalNotify(f func(sig ...os.Signal) (chan os.Signal, func())) (restore func()) {
	old := signalNotify
	signalNotify = f
	return func() {
		signalNotify = old
	}
}

func CompleteSetting(match string) []string {
	var names []string
	for _, comp := range (&settingName{}).Complete(match) {
		names = append(names, comp.Item)
	}
	return names
}
