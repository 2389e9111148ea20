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

package power

import (
	"fmt"
)

// Profile is a power profile of power-profiles-daemon.
type Profile int

const (
	ProfilePowerSaver Profile = iota
	ProfileBalanced
	ProfilePerformance
)

// ProfileFromWire decodes the profile name reported by the daemon.
// Unknown names decode as ProfileBalanced.
func ProfileFromWire(name string) Profile {
	switch name {
	case "power-saver":
		return ProfilePowerSaver
	case "performance":
		return ProfilePerformance
	}
	return ProfileBalanced
}

// Wire returns the name the daemon uses for the profile.
func (p Profile) Wire() string {
	switch p {
	case ProfilePowerSaver:
		return "power-saver"
	case ProfileBalanced:
		return "balanced"
	case ProfilePerformance:
		return "performance"
	}
	return ""
}

func (p Profile) String() string {
	if wire := p.Wire(); wire != "" {
		return wire
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

// ParseProfile parses a profile name given by the user. Unlike
// ProfileFromWire it rejects unknown names.
func ParseProfile(name string) (Profile, error) {
	for _, p := range []Profile{ProfilePowerSaver, ProfileBalanced, ProfilePerformance} {
		if p.Wire() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown power profile %q (expected power-saver, balanced or performance)", name)
}

// MarshalText makes profiles appear by name in JSON.
func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
