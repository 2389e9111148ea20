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

// Package peripherals accesses keyboard, mouse and touchpad settings.
package peripherals

import (
	"context"

	"github.com/snapcore/desktop-settings/bridge"
)

const (
	keyboardSchema = "org.gnome.desktop.peripherals.keyboard"
	mouseSchema    = "org.gnome.desktop.peripherals.mouse"
	touchpadSchema = "org.gnome.desktop.peripherals.touchpad"
)

var (
	keyboardDelay           = bridge.StoreKey[uint32]{Schema: keyboardSchema, Key: "delay"}
	keyboardRepeatInterval  = bridge.StoreKey[uint32]{Schema: keyboardSchema, Key: "repeat-interval"}
	mouseNaturalScroll      = bridge.StoreKey[bool]{Schema: mouseSchema, Key: "natural-scroll"}
	touchpadTapToClick      = bridge.StoreKey[bool]{Schema: touchpadSchema, Key: "tap-to-click"}
	touchpadTwoFingerScroll = bridge.StoreKey[bool]{Schema: touchpadSchema, Key: "two-finger-scrolling-enabled"}
)

// KeyboardDelay returns the delay before keys repeat, in milliseconds.
func KeyboardDelay(ctx context.Context, b *bridge.Bridge) (uint32, error) {
	return keyboardDelay.Get(ctx, b)
}

func SetKeyboardDelay(ctx context.Context, b *bridge.Bridge, ms uint32) error {
	return keyboardDelay.Set(ctx, b, ms)
}

func ResetKeyboardDelay(ctx context.Context, b *bridge.Bridge) error {
	return keyboardDelay.Reset(ctx, b)
}

// KeyboardRepeatInterval returns the interval between repeated keys, in
// milliseconds.
func KeyboardRepeatInterval(ctx context.Context, b *bridge.Bridge) (uint32, error) {
	return keyboardRepeatInterval.Get(ctx, b)
}

func SetKeyboardRepeatInterval(ctx context.Context, b *bridge.Bridge, ms uint32) error {
	return keyboardRepeatInterval.Set(ctx, b, ms)
}

func ResetKeyboardRepeatInterval(ctx context.Context, b *bridge.Bridge) error {
	return keyboardRepeatInterval.Reset(ctx, b)
}

func MouseNaturalScroll(ctx context.Context, b *bridge.Bridge) (bool, error) {
	return mouseNaturalScroll.Get(ctx, b)
}

func SetMouseNaturalScroll(ctx context.Context, b *bridge.Bridge, enabled bool) error {
	return mouseNaturalScroll.Set(ctx, b, enabled)
}

func ResetMouseNaturalScroll(ctx context.Context, b *bridge.Bridge) error {
	return mouseNaturalScroll.Reset(ctx, b)
}

func TouchpadTapToClick(ctx context.Context, b *bridge.Bridge) (bool, error) {
	return touchpadTapToClick.Get(ctx, b)
}

func SetTouchpadTapToClick(ctx context.Context, b *bridge.Bridge, enabled bool) error {
	return touchpadTapToClick.Set(ctx, b, enabled)
}

func ResetTouchpadTapToClick(ctx context.Context, b *bridge.Bridge) error {
	return touchpadTapToClick.Reset(ctx, b)
}

func TouchpadTwoFingerScroll(ctx context.Context, b *bridge.Bridge) (bool, error) {
	return touchpadTwoFingerScroll.Get(ctx, b)
}

func SetTouchpadTwoFingerScroll(ctx context.Context, b *bridge.Bridge, enabled bool) error {
	return touchpadTwoFingerScroll.Set(ctx, b, enabled)
}

func ResetTouchpadTwoFingerScroll(ctx context.Context, b *bridge.Bridge) error {
	return touchpadTwoFingerScroll.Reset(ctx, b)
}
