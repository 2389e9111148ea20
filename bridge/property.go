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

package bridge

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/snapcore/desktop-settings/logger"
)

const (
	propertiesGet = "org.freedesktop.DBus.Properties.Get"
	propertiesSet = "org.freedesktop.DBus.Properties.Set"
)

// PropertyValue are the types bus properties can be accessed as.
type PropertyValue interface {
	string | bool | int32 | uint32 | int64 | uint64 | float64 | dbus.ObjectPath
}

// Property is a typed property of a bus object.
type Property[T PropertyValue] struct {
	Scope       Scope
	Destination string
	Path        dbus.ObjectPath
	Interface   string
	Name        string
}

// String returns the fully qualified property name.
func (p Property[T]) String() string {
	return p.Interface + "." + p.Name
}

// Get reads the property. A value of any other type than T is a
// DecodeFailure.
func (p Property[T]) Get(ctx context.Context, b *Bridge) (T, error) {
	var zero T
	obj, err := b.object(p.Scope, p.Destination, p.Path, p.String())
	if err != nil {
		return zero, err
	}
	ctx, cancel := b.roundTripContext(ctx)
	defer cancel()

	var variant dbus.Variant
	err = obj.CallWithContext(ctx, propertiesGet, 0, p.Interface, p.Name).Store(&variant)
	logger.Debugf("get property %s: %v (err: %v)", p, variant, err)
	if err != nil {
		return zero, fromDBus(p.String(), err)
	}
	value, ok := ValueOf(variant).Raw().(T)
	if !ok {
		return zero, DecodeError(p.String(), "property holds %s, not %T", ValueOf(variant).TypeName(), zero)
	}
	return value, nil
}

// Set writes the property, the remote object validates the value.
func (p Property[T]) Set(ctx context.Context, b *Bridge, value T) error {
	obj, err := b.object(p.Scope, p.Destination, p.Path, p.String())
	if err != nil {
		return err
	}
	ctx, cancel := b.roundTripContext(ctx)
	defer cancel()

	err = obj.CallWithContext(ctx, propertiesSet, 0, p.Interface, p.Name, dbus.MakeVariant(value)).Err
	logger.Debugf("set property %s to %v (err: %v)", p, value, err)
	return fromDBus(p.String(), err)
}
