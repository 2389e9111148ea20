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
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/snapcore/desktop-settings/logger"
)

// Method is a method of a bus object.
type Method struct {
	Scope       Scope
	Destination string
	Path        dbus.ObjectPath
	Interface   string
	Name        string
}

// String returns the fully qualified method name.
func (m Method) String() string {
	return m.Interface + "." + m.Name
}

// OnPath returns the same method on the object at path.
func (m Method) OnPath(path dbus.ObjectPath) Method {
	m.Path = path
	return m
}

// Call invokes the method and waits for the reply. Only failures of the
// call itself are errors, a reply reporting failure is not.
func (m Method) Call(ctx context.Context, b *Bridge, args ...interface{}) (*Reply, error) {
	obj, err := b.object(m.Scope, m.Destination, m.Path, m.String())
	if err != nil {
		return nil, err
	}
	ctx, cancel := b.roundTripContext(ctx)
	defer cancel()

	call := obj.CallWithContext(ctx, m.String(), 0, args...)
	logger.Debugf("call %s on %s%v (err: %v)", m, m.Path, args, call.Err)
	if call.Err != nil {
		return nil, fromDBus(m.String(), call.Err)
	}
	return &Reply{target: m.String(), body: call.Body}, nil
}

// Reply is the body of a method reply.
type Reply struct {
	target string
	body   []interface{}
}

// Len returns the number of values in the reply.
func (r *Reply) Len() int {
	return len(r.body)
}

// Value returns the i-th value of the reply.
func (r *Reply) Value(i int) (Value, error) {
	if i < 0 || i >= len(r.body) {
		return Value{}, DecodeError(r.target, "reply has %d values, wanted at least %d", len(r.body), i+1)
	}
	return ValueOf(r.body[i]), nil
}

// Store stores the reply values into the given pointers; see dbus.Store.
func (r *Reply) Store(dest ...interface{}) error {
	if err := dbus.Store(r.body, dest...); err != nil {
		return &Error{Kind: ErrorKindDecodeFailure, Target: r.target, Err: err}
	}
	return nil
}

// Bool returns the single boolean the reply consists of.
func (r *Reply) Bool() (bool, error) {
	v, err := r.Value(0)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, DecodeError(r.target, "reply holds %s, not a boolean", v.TypeName())
	}
	return b, nil
}

func (r *Reply) String() string {
	return fmt.Sprintf("%s%v", r.target, r.body)
}
