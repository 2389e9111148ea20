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

// Package battery queries batteries and other power supplies known to
// UPower.
package battery

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/snapcore/desktop-settings/bridge"
)

const (
	busName     = "org.freedesktop.UPower"
	upowerPath  = dbus.ObjectPath("/org/freedesktop/UPower")
	upowerIface = "org.freedesktop.UPower"
	deviceIface = "org.freedesktop.UPower.Device"
)

func upowerMethod(name string) bridge.Method {
	return bridge.Method{
		Scope:       bridge.SystemBus,
		Destination: busName,
		Path:        upowerPath,
		Interface:   upowerIface,
		Name:        name,
	}
}

var (
	getDisplayDevice = upowerMethod("GetDisplayDevice")
	enumerateDevices = upowerMethod("EnumerateDevices")

	getAllProperties = bridge.Method{
		Scope:       bridge.SystemBus,
		Destination: busName,
		Interface:   "org.freedesktop.DBus.Properties",
		Name:        "GetAll",
	}
)

// Device refers to a power supply device. It holds no state, every query
// asks UPower.
type Device struct {
	path dbus.ObjectPath
}

// NewDevice returns the device at the given UPower object path.
func NewDevice(path dbus.ObjectPath) Device {
	return Device{path: path}
}

// Path returns the UPower object path of the device.
func (d Device) Path() dbus.ObjectPath {
	return d.path
}

func (d Device) property(name string) bridge.Property[bool] {
	return bridge.Property[bool]{
		Scope:       bridge.SystemBus,
		Destination: busName,
		Path:        d.path,
		Interface:   deviceIface,
		Name:        name,
	}
}

// IsRechargeable returns whether the device has a rechargeable battery.
func (d Device) IsRechargeable(ctx context.Context, b *bridge.Bridge) (bool, error) {
	return d.property("IsRechargeable").Get(ctx, b)
}

// Properties returns a snapshot of the device properties. Properties
// the device does not report keep their zero value.
func (d Device) Properties(ctx context.Context, b *bridge.Bridge) (*Info, error) {
	reply, err := getAllProperties.OnPath(d.path).Call(ctx, b, deviceIface)
	if err != nil {
		return nil, err
	}
	var props map[string]dbus.Variant
	if err := reply.Store(&props); err != nil {
		return nil, err
	}
	dict := bridge.Dict(props)
	return &Info{
		NativePath:     dict.StringOr("NativePath", ""),
		Vendor:         dict.StringOr("Vendor", ""),
		Model:          dict.StringOr("Model", ""),
		Kind:           KindFromCode(dict.Int64Or("Type", 0)),
		State:          StateFromCode(dict.Int64Or("State", 0)),
		Percentage:     dict.Float64Or("Percentage", 0),
		TimeToEmpty:    dict.Int64Or("TimeToEmpty", 0),
		TimeToFull:     dict.Int64Or("TimeToFull", 0),
		IsPresent:      dict.BoolOr("IsPresent", false),
		IsRechargeable: dict.BoolOr("IsRechargeable", false),
	}, nil
}

// DisplayDevice returns the composite device UPower shows in the
// desktop, aggregating all batteries.
func DisplayDevice(ctx context.Context, b *bridge.Bridge) (Device, error) {
	reply, err := getDisplayDevice.Call(ctx, b)
	if err != nil {
		return Device{}, err
	}
	v, err := reply.Value(0)
	if err != nil {
		return Device{}, err
	}
	path, ok := v.AsObjectPath()
	if !ok {
		return Device{}, bridge.DecodeError(getDisplayDevice.String(), "reply holds %s, not an object path", v.TypeName())
	}
	return NewDevice(path), nil
}

// Devices returns all devices known to UPower.
func Devices(ctx context.Context, b *bridge.Bridge) ([]Device, error) {
	reply, err := enumerateDevices.Call(ctx, b)
	if err != nil {
		return nil, err
	}
	v, err := reply.Value(0)
	if err != nil {
		return nil, err
	}
	elems, ok := v.AsSlice()
	if !ok {
		return nil, bridge.DecodeError(enumerateDevices.String(), "reply holds %s, not an array of object paths", v.TypeName())
	}
	devices := make([]Device, len(elems))
	for i, elem := range elems {
		path, ok := elem.AsObjectPath()
		if !ok {
			return nil, bridge.DecodeError(enumerateDevices.String(), "device %d is %s, not an object path", i, elem.TypeName())
		}
		devices[i] = NewDevice(path)
	}
	return devices, nil
}

// Batteries returns the rechargeable devices, in the order UPower
// lists them. Failing to query any device fails the whole call.
func Batteries(ctx context.Context, b *bridge.Bridge) ([]Device, error) {
	devices, err := Devices(ctx, b)
	if err != nil {
		return nil, err
	}
	var batteries []Device
	for _, dev := range devices {
		rechargeable, err := dev.IsRechargeable(ctx, b)
		if err != nil {
			return nil, err
		}
		if rechargeable {
			batteries = append(batteries, dev)
		}
	}
	return batteries, nil
}
