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

// Package screen controls the screen brightness through the power
// plugin of gnome-settings-daemon.
package screen

import (
	"context"

	"github.com/snapcore/desktop-settings/bridge"
)

const (
	busName    = "org.gnome.SettingsDaemon.Power"
	objectPath = "/org/gnome/SettingsDaemon/Power"
	iface      = "org.gnome.SettingsDaemon.Power.Screen"
)

func method(name string) bridge.Method {
	return bridge.Method{
		Scope:       bridge.SessionBus,
		Destination: busName,
		Path:        objectPath,
		Interface:   iface,
		Name:        name,
	}
}

var (
	brightness = bridge.Property[int32]{
		Scope:       bridge.SessionBus,
		Destination: busName,
		Path:        objectPath,
		Interface:   iface,
		Name:        "Brightness",
	}
	stepUp   = method("StepUp")
	stepDown = method("StepDown")
)

// Brightness returns the brightness of the screen, in percent. A
// negative value means the brightness cannot be controlled.
func Brightness(ctx context.Context, b *bridge.Bridge) (int32, error) {
	return brightness.Get(ctx, b)
}

// SetBrightness sets the brightness. The value is passed on unchanged,
// range checks are left to the settings daemon.
func SetBrightness(ctx context.Context, b *bridge.Bridge, level int32) error {
	return brightness.Set(ctx, b, level)
}

// StepUp increases the brightness by one step.
func StepUp(ctx context.Context, b *bridge.Bridge) error {
	_, err := stepUp.Call(ctx, b)
	return err
}

// StepDown decreases the brightness by one step.
func StepDown(ctx context.Context, b *bridge.Bridge) error {
	_, err := stepDown.Call(ctx, b)
	return err
}
