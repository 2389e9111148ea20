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

package extensions

import (
	"fmt"
)

// State is the lifecycle state of an installed extension.
type State int

// The numeric codes are the ones used by the shell.
const (
	StateEnabled     State = 1
	StateDisabled    State = 2
	StateError       State = 3
	StateOutOfDate   State = 4
	StateDownloading State = 5
	StateInitialized State = 6
	StateUninstalled State = 99
)

// StateFromCode decodes the state code reported by the shell. Codes are
// compared exactly; unknown codes map to StateUninstalled.
func StateFromCode(code float64) State {
	switch code {
	case 1:
		return StateEnabled
	case 2:
		return StateDisabled
	case 3:
		return StateError
	case 4:
		return StateOutOfDate
	case 5:
		return StateDownloading
	case 6:
		return StateInitialized
	}
	return StateUninstalled
}

func (s State) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	case StateError:
		return "error"
	case StateOutOfDate:
		return "out-of-date"
	case StateDownloading:
		return "downloading"
	case StateInitialized:
		return "initialized"
	case StateUninstalled:
		return "uninstalled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText makes states appear by name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
