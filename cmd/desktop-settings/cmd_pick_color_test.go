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
)

type pickColorSuite struct {
	BaseDesktopSettingsSuite
}

var _ = Suite(&pickColorSuite{})

func (s *pickColorSuite) TestPickColor(c *C) {
	s.fix.Session.AddObject("org.gnome.Shell.Screenshot", "/org/gnome/Shell/Screenshot").
		Reply("org.gnome.Shell.Screenshot.PickColor", map[string]dbus.Variant{
			"color": dbus.MakeVariant([]interface{}{1.0, 0.5, 0.0}),
		})

	_, err := s.run("pick-color")
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "#ff8000 (1.000, 0.500, 0.000)\n")
}

func (s *pickColorSuite) TestPickColorCancelled(c *C) {
	s.fix.Session.AddObject("org.gnome.Shell.Screenshot", "/org/gnome/Shell/Screenshot").
		Fail("org.gnome.Shell.Screenshot.PickColor", "org.freedesktop.DBus.Error.Failed", "Operation was cancelled")

	_, err := s.run("pick-color")
	c.Check(err, ErrorMatches, "org.gnome.Shell.Screenshot.PickColor was rejected: Operation was cancelled")
	c.Check(s.Stdout(), Equals, "")
}
