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

// Package settings names the scalar desktop settings so that they can be
// read and written as text.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/desktop/desktopiface"
	"github.com/snapcore/desktop-settings/desktop/extensions"
	"github.com/snapcore/desktop-settings/desktop/nightlight"
	"github.com/snapcore/desktop-settings/desktop/peripherals"
	"github.com/snapcore/desktop-settings/desktop/power"
	"github.com/snapcore/desktop-settings/desktop/screen"
)

// ErrNotResettable is returned when resetting a setting that has no
// default to go back to.
var ErrNotResettable = errors.New("setting cannot be reset")

// UnknownSettingError is returned when looking up a name that is not in
// the catalogue.
type UnknownSettingError struct {
	Name string
}

func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("unknown setting %q", e.Name)
}

type (
	getter  func(ctx context.Context, b *bridge.Bridge) (string, error)
	setter  func(ctx context.Context, b *bridge.Bridge, value string) error
	resetFn func(ctx context.Context, b *bridge.Bridge) error
)

// Setting is a named scalar setting.
type Setting struct {
	Name    string
	Summary string
	// Type is a short description of the accepted values.
	Type string

	get   getter
	set   setter
	reset resetFn
}

// Get returns the current value formatted as text.
func (s *Setting) Get(ctx context.Context, b *bridge.Bridge) (string, error) {
	return s.get(ctx, b)
}

// Set parses value and writes it.
func (s *Setting) Set(ctx context.Context, b *bridge.Bridge, value string) error {
	return s.set(ctx, b, value)
}

// Resettable returns whether Reset is supported.
func (s *Setting) Resettable() bool {
	return s.reset != nil
}

// Reset restores the default value.
func (s *Setting) Reset(ctx context.Context, b *bridge.Bridge) error {
	if s.reset == nil {
		return ErrNotResettable
	}
	return s.reset(ctx, b)
}

func parseBool(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q (expected true or false)", value)
}

func parseUint32(value string) (uint32, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q (expected a number between 0 and %d)", value, uint32(1<<32-1))
	}
	return uint32(n), nil
}

func boolSetting(name, summary string,
	get func(context.Context, *bridge.Bridge) (bool, error),
	set func(context.Context, *bridge.Bridge, bool) error,
	reset resetFn) *Setting {
	return &Setting{
		Name:    name,
		Summary: summary,
		Type:    "true|false",
		get: func(ctx context.Context, b *bridge.Bridge) (string, error) {
			v, err := get(ctx, b)
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(v), nil
		},
		set: func(ctx context.Context, b *bridge.Bridge, value string) error {
			v, err := parseBool(value)
			if err != nil {
				return err
			}
			return set(ctx, b, v)
		},
		reset: reset,
	}
}

func uint32Setting(name, summary string,
	get func(context.Context, *bridge.Bridge) (uint32, error),
	set func(context.Context, *bridge.Bridge, uint32) error,
	reset resetFn) *Setting {
	return &Setting{
		Name:    name,
		Summary: summary,
		Type:    "unsigned integer",
		get: func(ctx context.Context, b *bridge.Bridge) (string, error) {
			v, err := get(ctx, b)
			if err != nil {
				return "", err
			}
			return strconv.FormatUint(uint64(v), 10), nil
		},
		set: func(ctx context.Context, b *bridge.Bridge, value string) error {
			v, err := parseUint32(value)
			if err != nil {
				return err
			}
			return set(ctx, b, v)
		},
		reset: reset,
	}
}

var powerProfile = &Setting{
	Name:    "power.profile",
	Summary: "Active power profile",
	Type:    "power-saver|balanced|performance",
	get: func(ctx context.Context, b *bridge.Bridge) (string, error) {
		p, err := power.ActiveProfile(ctx, b)
		if err != nil {
			return "", err
		}
		return p.String(), nil
	},
	set: func(ctx context.Context, b *bridge.Bridge, value string) error {
		p, err := power.ParseProfile(value)
		if err != nil {
			return err
		}
		return power.SetActiveProfile(ctx, b, p)
	},
}

var screenBrightness = &Setting{
	Name:    "screen.brightness",
	Summary: "Screen brightness level",
	Type:    "non-negative integer",
	get: func(ctx context.Context, b *bridge.Bridge) (string, error) {
		level, err := screen.Brightness(ctx, b)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(level), 10), nil
	},
	set: func(ctx context.Context, b *bridge.Bridge, value string) error {
		level, err := strconv.ParseInt(value, 10, 32)
		if err != nil || level < 0 {
			return fmt.Errorf("invalid brightness %q (expected a non-negative number)", value)
		}
		return screen.SetBrightness(ctx, b, int32(level))
	},
}

var catalogue = []*Setting{
	boolSetting("nightlight.enabled", "Night light is enabled",
		nightlight.Enabled, nightlight.SetEnabled, nil),
	uint32Setting("nightlight.temperature", "Night light color temperature in Kelvin",
		nightlight.Temperature, nightlight.SetTemperature, nightlight.ResetTemperature),
	boolSetting("extensions.disable-user-extensions", "User installed shell extensions are disabled",
		extensions.DisableUserExtensions, extensions.SetDisableUserExtensions, extensions.ResetDisableUserExtensions),
	boolSetting("interface.show-battery-percentage", "Battery percentage is shown in the top bar",
		desktopiface.ShowBatteryPercentage, desktopiface.SetShowBatteryPercentage, desktopiface.ResetShowBatteryPercentage),
	boolSetting("interface.locate-pointer", "Pressing Ctrl highlights the pointer",
		desktopiface.LocatePointer, desktopiface.SetLocatePointer, desktopiface.ResetLocatePointer),
	uint32Setting("interface.cursor-size", "Cursor size in pixels",
		desktopiface.CursorSize, desktopiface.SetCursorSize, desktopiface.ResetCursorSize),
	uint32Setting("peripherals.keyboard-delay", "Delay before key repeat starts in milliseconds",
		peripherals.KeyboardDelay, peripherals.SetKeyboardDelay, peripherals.ResetKeyboardDelay),
	uint32Setting("peripherals.keyboard-repeat-interval", "Interval between key repeats in milliseconds",
		peripherals.KeyboardRepeatInterval, peripherals.SetKeyboardRepeatInterval, peripherals.ResetKeyboardRepeatInterval),
	boolSetting("peripherals.mouse-natural-scroll", "Mouse scrolling moves the content",
		peripherals.MouseNaturalScroll, peripherals.SetMouseNaturalScroll, peripherals.ResetMouseNaturalScroll),
	boolSetting("peripherals.touchpad-tap-to-click", "Tapping the touchpad clicks",
		peripherals.TouchpadTapToClick, peripherals.SetTouchpadTapToClick, peripherals.ResetTouchpadTapToClick),
	boolSetting("peripherals.touchpad-two-finger-scroll", "Two finger scrolling on the touchpad",
		peripherals.TouchpadTwoFingerScroll, peripherals.SetTouchpadTwoFingerScroll, peripherals.ResetTouchpadTwoFingerScroll),
	powerProfile,
	screenBrightness,
}

var byName map[string]*Setting

func init() {
	sort.Slice(catalogue, func(i, j int) bool { return catalogue[i].Name < catalogue[j].Name })
	byName = make(map[string]*Setting, len(catalogue))
	for _, s := range catalogue {
		byName[s.Name] = s
	}
}

// All returns every known setting sorted by name.
func All() []*Setting {
	all := make([]*Setting, len(catalogue))
	copy(all, catalogue)
	return all
}

// Lookup returns the setting with the given name.
func Lookup(name string) (*Setting, error) {
	if s, ok := byName[name]; ok {
		return s, nil
	}
	return nil, &UnknownSettingError{Name: name}
}
