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
	"fmt"
	"reflect"

	"github.com/godbus/dbus/v5"
)

// Value is a dynamically typed value received from the bus. The As*
// conversions report whether the value has the requested shape.
type Value struct {
	v interface{}
}

// ValueOf wraps v, looking through any variants.
func ValueOf(v interface{}) Value {
	for {
		variant, ok := v.(dbus.Variant)
		if !ok {
			return Value{v}
		}
		v = variant.Value()
	}
}

// Raw returns the wrapped Go value.
func (v Value) Raw() interface{} {
	return v.v
}

// TypeName describes the type of the value for error messages.
func (v Value) TypeName() string {
	if v.v == nil {
		return "nothing"
	}
	return fmt.Sprintf("%T", v.v)
}

// AsString succeeds for strings only.
func (v Value) AsString() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

// AsBool succeeds for booleans only.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

// AsObjectPath succeeds for object paths only.
func (v Value) AsObjectPath() (dbus.ObjectPath, bool) {
	p, ok := v.v.(dbus.ObjectPath)
	return p, ok
}

// AsFloat64 succeeds for any numeric value.
func (v Value) AsFloat64() (float64, bool) {
	switch n := v.v.(type) {
	case float64:
		return n, true
	case byte:
		return float64(n), true
	case int16:
		return float64(n), true
	case uint16:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// AsInt64 succeeds for integer values that fit an int64.
func (v Value) AsInt64() (int64, bool) {
	switch n := v.v.(type) {
	case byte:
		return int64(n), true
	case int16:
		return int64(n), true
	case uint16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// AsSlice succeeds for arrays and structs (which godbus decodes as
// []interface{}), returning the elements.
func (v Value) AsSlice() ([]Value, bool) {
	if v.v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v.v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		// "ay" is a byte string, not a sequence of values
		return nil, false
	}
	elems := make([]Value, rv.Len())
	for i := range elems {
		elems[i] = ValueOf(rv.Index(i).Interface())
	}
	return elems, true
}

// Dict is a string keyed dictionary of variants, "a{sv}" on the wire.
type Dict map[string]dbus.Variant

// Field returns the named field, if present.
func (d Dict) Field(name string) (Value, bool) {
	variant, ok := d[name]
	if !ok {
		return Value{}, false
	}
	return ValueOf(variant), true
}

// RequireString returns the named string field; a missing field or one
// of another type is an error.
func (d Dict) RequireString(name string) (string, error) {
	v, ok := d.Field(name)
	if !ok {
		return "", fmt.Errorf("missing required field %q", name)
	}
	s, ok := v.AsString()
	if !ok {
		return "", fmt.Errorf("field %q is a %s, not a string", name, v.TypeName())
	}
	return s, nil
}

// StringOr returns the named string field, or dflt when it is missing or
// not a string.
func (d Dict) StringOr(name, dflt string) string {
	if v, ok := d.Field(name); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return dflt
}

// BoolOr returns the named boolean field, or dflt.
func (d Dict) BoolOr(name string, dflt bool) bool {
	if v, ok := d.Field(name); ok {
		if b, ok := v.AsBool(); ok {
			return b
		}
	}
	return dflt
}

// Float64Or returns the named numeric field as a float64, or dflt.
func (d Dict) Float64Or(name string, dflt float64) float64 {
	if v, ok := d.Field(name); ok {
		if f, ok := v.AsFloat64(); ok {
			return f
		}
	}
	return dflt
}

// Int64Or returns the named integer field, or dflt.
func (d Dict) Int64Or(name string, dflt int64) int64 {
	if v, ok := d.Field(name); ok {
		if n, ok := v.AsInt64(); ok {
			return n
		}
	}
	return dflt
}
