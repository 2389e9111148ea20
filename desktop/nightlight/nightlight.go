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

// Package nightlight controls the night light of the color plugin of
// gnome-settings-daemon.
package nightlight

import (
	"context"

	"github.com/snapcore/desktop-settings/bridge"
)

const schema = "org.gnome.settings-daemon.plugins.color"

var (
	enabled     = bridge.StoreKey[bool]{Schema: schema, Key: "night-light-enabled"}
	temperature = bridge.StoreKey[uint32]{Schema: schema, Key: "night-light-temperature"}
)

// Enabled returns whether night light is on.
func Enabled(ctx context.Context, b *bridge.Bridge) (bool, error) {
	return enabled.Get(ctx, b)
}

// SetEnabled turns night light on or off.
func SetEnabled(ctx context.Context, b *bridge.Bridge, on bool) error {
	return enabled.Set(ctx, b, on)
}

// Temperature returns the night light color temperature in Kelvin.
func Temperature(ctx context.Context, b *bridge.Bridge) (uint32, error) {
	return temperature.Get(ctx, b)
}

// SetTemperature sets the color temperature in Kelvin.
func SetTemperature(ctx context.Context, b *bridge.Bridge, kelvin uint32) error {
	return temperature.Set(ctx, b, kelvin)
}

// ResetTemperature restores the default color temperature.
func ResetTemperature(ctx context.Context, b *bridge.Bridge) error {
	return temperature.Reset(ctx, b)
}
