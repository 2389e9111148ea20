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
	"context"

	"github.com/godbus/dbus/v5"
	. "gopkg.in/check.v1"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/dbusutil/dbustest"
	"github.com/snapcore/desktop-settings/testutil"
)

var levelProperty = bridge.Property[int32]{
	Scope:       bridge.SessionBus,
	Destination: "org.example",
	Path:        "/org/example",
	Interface:   "org.example.Screen",
	Name:        "Level",
}

func (s *bridgeSuite) TestPropertyGetSet(c *C) {
	obj := s.session.AddObject("org.example", "/org/example").SetPropertyValue("org.example.Screen", "Level", int32(40))

	level, err := levelProperty.Get(context.Background(), s.b)
	c.Assert(err, IsNil)
	c.Check(level, Equals, int32(40))

	// values are forwarded as they are
	c.Assert(levelProperty.Set(context.Background(), s.b, -5), IsNil)
	value, _ := obj.PropertyValue("org.example.Screen", "Level")
	c.Check(value, Equals, int32(-5))

	c.Check(s.session.Calls(), DeepEquals, []dbustest.Call{
		{Destination: "org.example", Path: "/org/example", Method: "org.freedesktop.DBus.Properties.Get", Args: []interface{}{"org.example.Screen", "Level"}},
		{Destination: "org.example", Path: "/org/example", Method: "org.freedesktop.DBus.Properties.Set", Args: []interface{}{"org.example.Screen", "Level", dbus.MakeVariant(int32(-5))}},
	})
}

func (s *bridgeSuite) TestPropertyWrongType(c *C) {
	s.session.AddObject("org.example", "/org/example").SetPropertyValue("org.example.Screen", "Level", uint32(40))

	_, err := levelProperty.Get(context.Background(), s.b)
	c.Check(err, testutil.ErrorIs, bridge.ErrDecodeFailure)
	c.Check(err, ErrorMatches, "cannot decode org.example.Screen.Level: property holds uint32, not int32")
}

func (s *bridgeSuite) TestPropertyNotFound(c *C) {
	s.session.AddObject("org.example", "/org/example").SetPropertyValue("org.example.Screen", "Other", int32(1))

	_, err := levelProperty.Get(context.Background(), s.b)
	c.Check(err, testutil.ErrorIs, bridge.ErrTargetNotFound)
	c.Check(levelProperty.Set(context.Background(), s.b, 1), testutil.ErrorIs, bridge.ErrTargetNotFound)
}

func (s *bridgeSuite) TestPropertyRejected(c *C) {
	s.session.AddObject("org.example", "/org/example").
		SetPropertyValue("org.example.Screen", "Level", int32(40)).
		Fail("org.freedesktop.DBus.Properties.Set", "org.freedesktop.DBus.Error.InvalidArgs", "value out of range")

	err := levelProperty.Set(context.Background(), s.b, 1000)
	c.Check(err, testutil.ErrorIs, bridge.ErrRemoteRejected)
	c.Check(err, ErrorMatches, "org.example.Screen.Level was rejected: value out of range")
}

func (s *bridgeSuite) TestPropertyUnreachable(c *C) {
	_, err := levelProperty.Get(context.Background(), s.b)
	c.Check(err, testutil.ErrorIs, bridge.ErrTransportUnavailable)
}
