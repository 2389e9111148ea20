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

package bridge_test

import (
	"github.com/godbus/dbus/v5"
	. "gopkg.in/check.v1"

	"github.com/snapcore/desktop-settings/bridge"
)

type valueSuite struct{}

var _ = Suite(&valueSuite{})

func (s *valueSuite) TestValueOfUnwrapsVariants(c *C) {
	v := bridge.ValueOf(dbus.MakeVariant(dbus.MakeVariant("nested")))
	str, ok := v.AsString()
	c.Check(ok, Equals, true)
	c.Check(str, Equals, "nested")
	c.Check(v.Raw(), Equals, "nested")
}

func (s *valueSuite) TestConversions(c *C) {
	_, ok := bridge.ValueOf(int32(1)).AsString()
	c.Check(ok, Equals, false)

	b, ok := bridge.ValueOf(true).AsBool()
	c.Check(ok, Equals, true)
	c.Check(b, Equals, true)
	_, ok = bridge.ValueOf("true").AsBool()
	c.Check(ok, Equals, false)

	p, ok := bridge.ValueOf(dbus.ObjectPath("/a")).AsObjectPath()
	c.Check(ok, Equals, true)
	c.Check(p, Equals, dbus.ObjectPath("/a"))
	_, ok = bridge.ValueOf("/a").AsObjectPath()
	c.Check(ok, Equals, false)

	for _, n := range []interface{}{byte(2), int16(2), uint16(2), int32(2), uint32(2), int64(2), uint64(2), float64(2)} {
		f, ok := bridge.ValueOf(n).AsFloat64()
		c.Check(ok, Equals, true, Commentf("%T", n))
		c.Check(f, Equals, 2.0)
	}
	_, ok = bridge.ValueOf("2").AsFloat64()
	c.Check(ok, Equals, false)

	i, ok := bridge.ValueOf(uint32(7)).AsInt64()
	c.Check(ok, Equals, true)
	c.Check(i, Equals, int64(7))
	_, ok = bridge.ValueOf(7.0).AsInt64()
	c.Check(ok, Equals, false)
	_, ok = bridge.ValueOf(uint64(1 << 63)).AsInt64()
	c.Check(ok, Equals, false)

	c.Check(bridge.ValueOf(nil).TypeName(), Equals, "nothing")
	c.Check(bridge.ValueOf(1.5).TypeName(), Equals, "float64")
}

func (s *valueSuite) TestAsSlice(c *C) {
	elems, ok := bridge.ValueOf([]interface{}{1.0, dbus.MakeVariant("x")}).AsSlice()
	c.Assert(ok, Equals, true)
	c.Assert(elems, HasLen, 2)
	f, _ := elems[0].AsFloat64()
	c.Check(f, Equals, 1.0)
	str, _ := elems[1].AsString()
	c.Check(str, Equals, "x")

	paths, ok := bridge.ValueOf([]dbus.ObjectPath{"/a", "/b"}).AsSlice()
	c.Assert(ok, Equals, true)
	c.Check(paths, HasLen, 2)

	_, ok = bridge.ValueOf([]byte("abc")).AsSlice()
	c.Check(ok, Equals, false)
	_, ok = bridge.ValueOf("abc").AsSlice()
	c.Check(ok, Equals, false)
	_, ok = bridge.ValueOf(nil).AsSlice()
	c.Check(ok, Equals, false)
}

func (s *valueSuite) TestDict(c *C) {
	d := bridge.Dict{
		"name":    dbus.MakeVariant("Foo"),
		"state":   dbus.MakeVariant(1.0),
		"flag":    dbus.MakeVariant(true),
		"count":   dbus.MakeVariant(int64(-3)),
		"version": dbus.MakeVariant(int32(3)),
	}

	name, err := d.RequireString("name")
	c.Assert(err, IsNil)
	c.Check(name, Equals, "Foo")
	_, err = d.RequireString("missing")
	c.Check(err, ErrorMatches, `missing required field "missing"`)
	_, err = d.RequireString("state")
	c.Check(err, ErrorMatches, `field "state" is a float64, not a string`)

	c.Check(d.StringOr("version", ""), Equals, "")
	c.Check(d.StringOr("name", "x"), Equals, "Foo")
	c.Check(d.BoolOr("flag", false), Equals, true)
	c.Check(d.BoolOr("name", false), Equals, false)
	c.Check(d.Float64Or("state", 0), Equals, 1.0)
	c.Check(d.Float64Or("missing", 99), Equals, 99.0)
	c.Check(d.Int64Or("count", 0), Equals, int64(-3))
	c.Check(d.Int64Or("state", 5), Equals, int64(5))
}
