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

// Package screenshot uses the GNOME Shell screenshot service.
package screenshot

import (
	"context"
	"fmt"
	"math"

	"github.com/godbus/dbus/v5"

	"github.com/snapcore/desktop-settings/bridge"
)

var pickColor = bridge.Method{
	Scope:       bridge.SessionBus,
	Destination: "org.gnome.Shell.Screenshot",
	Path:        "/org/gnome/Shell/Screenshot",
	Interface:   "org.gnome.Shell.Screenshot",
	Name:        "PickColor",
}

// Color is an RGB color with components in the [0, 1] range.
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

func component(f float64) uint8 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(math.Round(f * 255))
}

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", component(c.Red), component(c.Green), component(c.Blue))
}

// PickColor lets the user pick a pixel on the screen and returns its
// color.
func PickColor(ctx context.Context, b *bridge.Bridge) (Color, error) {
	reply, err := pickColor.Call(ctx, b)
	if err != nil {
		return Color{}, err
	}
	var result map[string]dbus.Variant
	if err := reply.Store(&result); err != nil {
		return Color{}, err
	}
	return decodeColor(bridge.Dict(result))
}

func decodeColor(result bridge.Dict) (Color, error) {
	target := pickColor.String()
	field, ok := result.Field("color")
	if !ok {
		return Color{}, bridge.DecodeError(target, `missing required field "color"`)
	}
	elems, ok := field.AsSlice()
	if !ok || len(elems) != 3 {
		return Color{}, bridge.DecodeError(target, `field "color" is a %s, not a (ddd) tuple`, field.TypeName())
	}
	var rgb [3]float64
	for i, elem := range elems {
		f, ok := elem.Raw().(float64)
		if !ok {
			return Color{}, bridge.DecodeError(target, `field "color" holds a %s, not a double`, elem.TypeName())
		}
		rgb[i] = f
	}
	return Color{Red: rgb[0], Green: rgb[1], Blue: rgb[2]}, nil
}
