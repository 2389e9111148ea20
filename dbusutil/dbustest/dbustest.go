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

// Package dbustest provides an in-process stand-in for a D-Bus
// connection. Objects are registered with scripted method handlers and
// property values; every call is recorded. Unlike a real bus no
// messages are serialised, so handlers must return the Go types godbus
// would have decoded (e.g. []dbus.ObjectPath for "ao").
package dbustest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	propertiesInterface = "org.freedesktop.DBus.Properties"

	errServiceUnknown   = "org.freedesktop.DBus.Error.ServiceUnknown"
	errUnknownObject    = "org.freedesktop.DBus.Error.UnknownObject"
	errUnknownMethod    = "org.freedesktop.DBus.Error.UnknownMethod"
	errUnknownInterface = "org.freedesktop.DBus.Error.UnknownInterface"
	errUnknownProperty  = "org.freedesktop.DBus.Error.UnknownProperty"
	errInvalidArgs      = "org.freedesktop.DBus.Error.InvalidArgs"
)

// MethodFunc handles a method call on a fake object. It receives the
// call arguments and returns the reply body.
type MethodFunc func(args []interface{}) ([]interface{}, error)

// Call is a recorded method call.
type Call struct {
	Destination string
	Path        dbus.ObjectPath
	Method      string
	Args        []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s %s %s%v", c.Destination, c.Path, c.Method, c.Args)
}

type objectKey struct {
	dest string
	path dbus.ObjectPath
}

// Conn is a fake bus connection.
type Conn struct {
	mu      sync.Mutex
	objects map[objectKey]*Object
	calls   []Call
}

// NewConn returns an empty fake connection.
func NewConn() *Conn {
	return &Conn{objects: make(map[objectKey]*Object)}
}

// AddObject registers a new object owned by dest at path and returns it
// for scripting.
func (conn *Conn) AddObject(dest string, path dbus.ObjectPath) *Object {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	obj := &Object{
		conn:       conn,
		dest:       dest,
		path:       path,
		methods:    make(map[string]MethodFunc),
		properties: make(map[string]map[string]interface{}),
	}
	conn.objects[objectKey{dest, path}] = obj
	return obj
}

// Object returns a handle to the object at dest/path. Calls on objects
// that were never registered fail the way the bus daemon would.
func (conn *Conn) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	if obj, ok := conn.objects[objectKey{dest, path}]; ok {
		return obj
	}
	return &Object{conn: conn, dest: dest, path: path, missing: true}
}

// Calls returns the method calls seen so far, in order.
func (conn *Conn) Calls() []Call {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	return append([]Call(nil), conn.calls...)
}

// ForgetCalls drops the recorded calls.
func (conn *Conn) ForgetCalls() {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	conn.calls = nil
}

func (conn *Conn) hasDestination(dest string) bool {
	for key := range conn.objects {
		if key.dest == dest {
			return true
		}
	}
	return false
}

// Object is a scripted bus object. Only the synchronous call methods of
// dbus.BusObject are implemented.
type Object struct {
	dbus.BusObject

	conn    *Conn
	dest    string
	path    dbus.ObjectPath
	missing bool

	methods    map[string]MethodFunc
	properties map[string]map[string]interface{}
}

// HandleMethod installs the handler for the fully qualified method
// (interface.Member). Handlers for org.freedesktop.DBus.Properties
// methods take precedence over the built-in property support.
func (o *Object) HandleMethod(method string, f MethodFunc) *Object {
	o.conn.mu.Lock()
	defer o.conn.mu.Unlock()

	o.methods[method] = f
	return o
}

// Reply installs a handler that always returns the given reply body.
func (o *Object) Reply(method string, body ...interface{}) *Object {
	return o.HandleMethod(method, func([]interface{}) ([]interface{}, error) {
		return body, nil
	})
}

// Fail installs a handler that always fails with the named D-Bus error.
func (o *Object) Fail(method, errName, msg string) *Object {
	return o.HandleMethod(method, func([]interface{}) ([]interface{}, error) {
		return nil, MakeError(errName, msg)
	})
}

// SetPropertyValue sets the value of the given property, as seen by
// org.freedesktop.DBus.Properties.Get and GetAll.
func (o *Object) SetPropertyValue(iface, name string, value interface{}) *Object {
	o.conn.mu.Lock()
	defer o.conn.mu.Unlock()

	props := o.properties[iface]
	if props == nil {
		props = make(map[string]interface{})
		o.properties[iface] = props
	}
	props[name] = value
	return o
}

// PropertyValue returns the current value of the given property.
func (o *Object) PropertyValue(iface, name string) (value interface{}, ok bool) {
	o.conn.mu.Lock()
	defer o.conn.mu.Unlock()

	value, ok = o.properties[iface][name]
	return value, ok
}

// Destination returns the destination that calls on this object are sent to.
func (o *Object) Destination() string {
	return o.dest
}

// Path returns the path that calls on this object are sent to.
func (o *Object) Path() dbus.ObjectPath {
	return o.path
}

// Call calls a method with (*Object).CallWithContext and a background context.
func (o *Object) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	return o.CallWithContext(context.Background(), method, flags, args...)
}

// CallWithContext records the call and dispatches it to the scripted
// handler or to the built-in properties support.
func (o *Object) CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	call := &dbus.Call{
		Destination: o.dest,
		Path:        o.path,
		Method:      method,
		Args:        args,
	}
	if err := ctx.Err(); err != nil {
		call.Err = err
		return call
	}

	o.conn.mu.Lock()
	o.conn.calls = append(o.conn.calls, Call{Destination: o.dest, Path: o.path, Method: method, Args: args})
	var handler MethodFunc
	switch {
	case o.missing && o.conn.hasDestination(o.dest):
		call.Err = MakeError(errUnknownObject, fmt.Sprintf("No such object path '%s'", o.path))
	case o.missing:
		call.Err = MakeError(errServiceUnknown, fmt.Sprintf("The name %s was not provided by any .service files", o.dest))
	default:
		handler = o.methods[method]
	}
	o.conn.mu.Unlock()

	if call.Err != nil {
		return call
	}
	if handler == nil && strings.HasPrefix(method, propertiesInterface+".") {
		handler = o.builtinPropertyHandler(strings.TrimPrefix(method, propertiesInterface+"."))
	}
	if handler == nil {
		call.Err = MakeError(errUnknownMethod, fmt.Sprintf("No such method '%s'", method))
		return call
	}
	call.Body, call.Err = handler(args)
	return call
}

func (o *Object) builtinPropertyHandler(member string) MethodFunc {
	switch member {
	case "Get":
		return o.getProperty
	case "GetAll":
		return o.getAllProperties
	case "Set":
		return o.setProperty
	}
	return nil
}

func (o *Object) lookupInterface(args []interface{}, nargs int) (string, map[string]interface{}, error) {
	if len(args) != nargs {
		return "", nil, MakeError(errInvalidArgs, fmt.Sprintf("expected %d arguments, got %d", nargs, len(args)))
	}
	iface, ok := args[0].(string)
	if !ok {
		return "", nil, MakeError(errInvalidArgs, "interface name must be a string")
	}
	props, ok := o.properties[iface]
	if !ok {
		return "", nil, MakeError(errUnknownInterface, fmt.Sprintf("No such interface '%s'", iface))
	}
	return iface, props, nil
}

func (o *Object) getProperty(args []interface{}) ([]interface{}, error) {
	o.conn.mu.Lock()
	defer o.conn.mu.Unlock()

	_, props, err := o.lookupInterface(args, 2)
	if err != nil {
		return nil, err
	}
	name, _ := args[1].(string)
	value, ok := props[name]
	if !ok {
		return nil, MakeError(errUnknownProperty, fmt.Sprintf("No such property '%s'", name))
	}
	return []interface{}{dbus.MakeVariant(value)}, nil
}

func (o *Object) getAllProperties(args []interface{}) ([]interface{}, error) {
	o.conn.mu.Lock()
	defer o.conn.mu.Unlock()

	_, props, err := o.lookupInterface(args, 1)
	if err != nil {
		return nil, err
	}
	all := make(map[string]dbus.Variant, len(props))
	for name, value := range props {
		all[name] = dbus.MakeVariant(value)
	}
	return []interface{}{all}, nil
}

func (o *Object) setProperty(args []interface{}) ([]interface{}, error) {
	o.conn.mu.Lock()
	defer o.conn.mu.Unlock()

	_, props, err := o.lookupInterface(args, 3)
	if err != nil {
		return nil, err
	}
	name, _ := args[1].(string)
	if _, ok := props[name]; !ok {
		return nil, MakeError(errUnknownProperty, fmt.Sprintf("No such property '%s'", name))
	}
	value, ok := args[2].(dbus.Variant)
	if !ok {
		return nil, MakeError(errInvalidArgs, "property value must be a variant")
	}
	props[name] = value.Value()
	return nil, nil
}

// MakeError returns a D-Bus error as godbus reports remote failures.
func MakeError(name, msg string) error {
	return dbus.Error{Name: name, Body: []interface{}{msg}}
}
