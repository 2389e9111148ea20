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

// Package desktopiface accesses settings of the org.gnome.desktop.interface
// schema.
package desktopiface

import (
	"context"

	"github.com/snapcore/desktop-settings/bridge"
)

const schema = "org.gnome.desktop.interface"

var (
	showBatteryPercentage = bridge.StoreKey[bool]{Schema: schema, Key: "show-battery-percentage"}
	locatePointer         = bridge.StoreKey[bool]{Schema: schema, Key: "locate-pointer"}
	cursorSize            = bridge.StoreKey[uint32]{Schema: schema, Key: "cursor-size"}
)

func ShowBatteryPercentage(ctx context.Context, b *bridge.Bridge) (bool, error) {
	return showBatteryPercentage.Get(ctx, b)
}

func SetShowBatteryPercentage(ctx context.Context, b *bridge.Bridge, show bool) error {
	return showBatteryPercentage.Set(ctx, b, show)
}

func ResetShowBatteryPercentage(ctx context.Context, b *bridge.Bridge) error {
	return showBatteryPercentage.Reset(ctx, b)
}

// LocatePointer returns whether pressing Ctrl highlights the pointer.
func LocatePointer(ctx context.Context, b *bridge.Bridge) (bool, error) {
	return locatePointer.Get(ctx, b)
}

func SetLocatePointer(ctx context.Context, b *bridge.Bridge, enabled bool) error {
	return locatePointer.Set(ctx, b, enabled)
}

func ResetLocatePointer(ctx context.Context, b *bridge.Bridge) error {
	return locatePointer.Reset(ctx, b)
}

// CursorSize returns the cursor size in pixels.
func CursorSize(ctx context.Context, b *bridge.Bridge) (uint32, error) {
	return cursorSize.Get(ctx, b)
}

func SetCursorSize(ctx context.Context, b *bridge.Bridge, size uint32) error {
	return cursorSize.Set(ctx, b, size)
}

func ResetCursorSize(ctx context.Context, b *bridge.Bridge) error {
	return cursorSize.Reset(ctx, b)
}
