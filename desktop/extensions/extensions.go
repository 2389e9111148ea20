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

// Package extensions gives access to the GNOME Shell extensions.
package extensions

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/logger"
)

const (
	busName    = "org.gnome.Shell.Extensions"
	objectPath = dbus.ObjectPath("/org/gnome/Shell/Extensions")
	iface      = "org.gnome.Shell.Extensions"
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
	listExtensions       = method("ListExtensions")
	enableExtension      = method("EnableExtension")
	disableExtension     = method("DisableExtension")
	uninstallExtension   = method("UninstallExtension")
	launchExtensionPrefs = method("LaunchExtensionPrefs")

	disableUserExtensions = bridge.StoreKey[bool]{Schema: "org.gnome.shell", Key: "disable-user-extensions"}
)

// Extension is an installed shell extension.
type Extension struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	State       State  `json:"state"`
	URL         string `json:"url"`
}

// Decode turns the reply of ListExtensions into extensions. The name,
// description and url of every extension are required, a single
// malformed entry fails the whole listing. Entries come out in map
// iteration order.
func Decode(raw map[string]map[string]dbus.Variant) ([]Extension, error) {
	target := listExtensions.String()
	exts := make([]Extension, 0, len(raw))
	for uuid, fields := range raw {
		info := bridge.Dict(fields)

		var ext Extension
		var err error
		ext.UUID = uuid
		if ext.Name, err = info.RequireString("name"); err != nil {
			return nil, bridge.DecodeError(target, "extension %q: %v", uuid, err)
		}
		if ext.Description, err = info.RequireString("description"); err != nil {
			return nil, bridge.DecodeError(target, "extension %q: %v", uuid, err)
		}
		if ext.URL, err = info.RequireString("url"); err != nil {
			return nil, bridge.DecodeError(target, "extension %q: %v", uuid, err)
		}
		ext.Version = info.StringOr("version", "")
		ext.State = StateUninstalled
		if state, ok := info.Field("state"); ok {
			if code, ok := state.AsFloat64(); ok {
				ext.State = StateFromCode(code)
			}
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

// List returns a fresh snapshot of the installed extensions.
func List(ctx context.Context, b *bridge.Bridge) ([]Extension, error) {
	reply, err := listExtensions.Call(ctx, b)
	if err != nil {
		return nil, err
	}
	var raw map[string]map[string]dbus.Variant
	if err := reply.Store(&raw); err != nil {
		return nil, err
	}
	return Decode(raw)
}

func callWithResult(ctx context.Context, b *bridge.Bridge, m bridge.Method, uuid string) (bool, error) {
	reply, err := m.Call(ctx, b, uuid)
	if err != nil {
		return false, err
	}
	ok, err := reply.Bool()
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Debugf("%s %q reported failure", m, uuid)
	}
	return ok, nil
}

// Enable enables the extension. The result reported by the shell is
// informational, only failing calls are errors.
func Enable(ctx context.Context, b *bridge.Bridge, uuid string) (bool, error) {
	return callWithResult(ctx, b, enableExtension, uuid)
}

// Disable disables the extension, see Enable about the result.
func Disable(ctx context.Context, b *bridge.Bridge, uuid string) (bool, error) {
	return callWithResult(ctx, b, disableExtension, uuid)
}

// Uninstall removes the extension, see Enable about the result.
func Uninstall(ctx context.Context, b *bridge.Bridge, uuid string) (bool, error) {
	return callWithResult(ctx, b, uninstallExtension, uuid)
}

// LaunchPrefs opens the preferences of the extension. The shell refusing
// to do so is not an error, failing to reach it is.
func LaunchPrefs(ctx context.Context, b *bridge.Bridge, uuid string) error {
	_, err := launchExtensionPrefs.Call(ctx, b, uuid)
	if kind, _ := bridge.KindOf(err); kind == bridge.ErrorKindRemoteRejected {
		logger.Debugf("cannot launch preferences of %q: %v", uuid, err)
		return nil
	}
	return err
}

// DisableUserExtensions returns whether user extensions are disabled.
func DisableUserExtensions(ctx context.Context, b *bridge.Bridge) (bool, error) {
	return disableUserExtensions.Get(ctx, b)
}

// SetDisableUserExtensions disables or enables all user extensions.
func SetDisableUserExtensions(ctx context.Context, b *bridge.Bridge, disabled bool) error {
	return disableUserExtensions.Set(ctx, b, disabled)
}

// ResetDisableUserExtensions restores the default.
func ResetDisableUserExtensions(ctx context.Context, b *bridge.Bridge) error {
	return disableUserExtensions.Reset(ctx, b)
}
