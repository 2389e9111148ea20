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

// Package power controls system power state via logind and the power
// profile via power-profiles-daemon.
package power

import (
	"context"
	"fmt"

	"github.com/snapcore/desktop-settings/bridge"
)

func login1Method(name string) bridge.Method {
	return bridge.Method{
		Scope:       bridge.SystemBus,
		Destination: "org.freedesktop.login1",
		Path:        "/org/freedesktop/login1",
		Interface:   "org.freedesktop.login1.Manager",
		Name:        name,
	}
}

var (
	suspend  = login1Method("Suspend")
	powerOff = login1Method("PowerOff")
	reboot   = login1Method("Reboot")

	activeProfile = bridge.Property[string]{
		Scope:       bridge.SystemBus,
		Destination: "net.hadess.PowerProfiles",
		Path:        "/net/hadess/PowerProfiles",
		Interface:   "net.hadess.PowerProfiles",
		Name:        "ActiveProfile",
	}
)

// the actions may ask the user to authenticate
const interactive = true

// Suspend suspends the machine.
func Suspend(ctx context.Context, b *bridge.Bridge) error {
	_, err := suspend.Call(ctx, b, interactive)
	return err
}

// PowerOff shuts the machine down.
func PowerOff(ctx context.Context, b *bridge.Bridge) error {
	_, err := powerOff.Call(ctx, b, interactive)
	return err
}

// Reboot restarts the machine.
func Reboot(ctx context.Context, b *bridge.Bridge) error {
	_, err := reboot.Call(ctx, b, interactive)
	return err
}

// ActiveProfile returns the active power profile.
func ActiveProfile(ctx context.Context, b *bridge.Bridge) (Profile, error) {
	name, err := activeProfile.Get(ctx, b)
	if err != nil {
		return ProfileBalanced, err
	}
	return ProfileFromWire(name), nil
}

// SetActiveProfile switches the power profile.
func SetActiveProfile(ctx context.Context, b *bridge.Bridge, p Profile) error {
	wire := p.Wire()
	if wire == "" {
		return fmt.Errorf("internal error: invalid power profile %d", int(p))
	}
	return activeProfile.Set(ctx, b, wire)
}
