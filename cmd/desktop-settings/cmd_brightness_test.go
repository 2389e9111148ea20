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

package main_test

import (
	"github.com/godbus/dbus/v5"
	. "gopkg.in/check.v1"

	"github.com/snapcore/desktop-settings/dbusutil/dbustest"
)

const screenIface = "org.gnome.SettingsDaemon.Power.Screen"

type brightnessSuite struct {
	BaseDesktopSettingsSuite

	power *dbustest.Object
}

var _ = Suite(&brightnessSuite{})

func (s *brightnessSuite) SetUpTest(c *C) {
	s.BaseDesktopSettingsSuite.SetUpTest(c)
	s.power = s.fix.Session.AddObject("org.gnome.SettingsDaemon.Power", "/org/gnome/SettingsDaemon/Power").
		SetPropertyValue(screenIface, "Brightness", int32(40)).
		Reply(screenIface+".StepUp", int32(45), "").
		Reply(screenIface+".StepDown", int32(35), "")
}

func (s *brightnessSuite) TestShow(c *C) {
	_, err := s.run("brightness")
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "40%\n")
}

func (s *brightnessSuite) TestShowUncontrollable(c *C) {
	s.power.SetPropertyValue(screenIface, "Brightness", int32(-1))

	_, err := s.run("brightness")
	c.Check(err, ErrorMatches, "the screen brightness cannot be controlled")
	c.Check(s.Stdout(), Equals, "")
}

func (s *brightnessSuite) TestSetLevel(c *C) {
	_, err := s.run("brightness", "75")
	c.Assert(err, IsNil)
	value, ok := s.power.PropertyValue(screenIface, "Brightness")
	c.Assert(ok, Equals, true)
	c.Check(value, Equals, int32(75))

	calls := s.fix.Session.Calls()
	c.Assert(calls, HasLen, 1)
	c.Check(calls[0].Method, Equals, "org.freedesktop.DBus.Properties.Set")
	c.Check(calls[0].Args, DeepEquals, []interface{}{screenIface, "Brightness", dbus.MakeVariant(int32(75))})
}

func (s *brightnessSuite) TestSetLevelOutOfRange(c *C) {
	_, err := s.run("brightness", "150")
	c.Check(err, ErrorMatches, "brightness must be between 0 and 100, not 150")
	c.Check(s.fix.Session.Calls(), HasLen, 0)
}

func (s *brightnessSuite) TestSteps(c *C) {
	_, err := s.run("brightness", "--up")
	c.Assert(err, IsNil)
	_, err = s.run("brightness", "--down")
	c.Assert(err, IsNil)

	calls := s.fix.Session.Calls()
	c.Assert(calls, HasLen, 2)
	c.Check(calls[0].Method, Equals, screenIface+".StepUp")
	c.Check(calls[1].Method, Equals, screenIface+".StepDown")
	c.Check(s.Stdout(), Equals, "")
}

func (s *brightnessSuite) TestConflictingArguments(c *C) {
	for _, args := range [][]string{
		{"brightness", "--up", "--down"},
		{"brightness", "--up", "20"},
		{"brightness", "--down", "20"},
	} {
		_, err := s.run(args...)
		c.Check(err, ErrorMatches, "cannot use --up, --down and a level together", Commentf("%v", args))
	}
	c.Check(s.fix.Session.Calls(), HasLen, 0)
}
