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

	desktopsettings "github.com/snapcore/desktop-settings/cmd/desktop-settings"
)

type extensionsSuite struct {
	BaseDesktopSettingsSuite

	shell *dbustest.Object
}

var _ = Suite(&extensionsSuite{})

func (s *extensionsSuite) SetUpTest(c *C) {
	s.BaseDesktopSettingsSuite.SetUpTest(c)
	s.shell = s.fix.Session.AddObject("org.gnome.Shell.Extensions", "/org/gnome/Shell/Extensions")
}

func extension(name, description, version string, state float64) map[string]dbus.Variant {
	ext := map[string]dbus.Variant{
		"name":        dbus.MakeVariant(name),
		"description": dbus.MakeVariant(description),
		"url":         dbus.MakeVariant("https://extensions.gnome.org"),
		"state":       dbus.MakeVariant(state),
	}
	if version != "" {
		ext["version"] = dbus.MakeVariant(version)
	}
	return ext
}

func (s *extensionsSuite) TestList(c *C) {
	s.shell.Reply("org.gnome.Shell.Extensions.ListExtensions", map[string]map[string]dbus.Variant{
		"dash-to-dock@micxgx.gmail.com": extension("Dash to Dock", "Shows a dock", "69", 1),
		"appindicator@ubuntu.com":       extension("AppIndicator", "Adds AppIndicator\nsupport to the top panel", "", 2),
	})

	_, err := s.run("extensions")
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, ""+
		"Name          Version  State     UUID                           Description\n"+
		"AppIndicator  -        disabled  appindicator@ubuntu.com        Adds AppIndicat…\n"+
		"Dash to Dock  69       enabled   dash-to-dock@micxgx.gmail.com  Shows a dock\n")
	c.Check(s.Stderr(), Equals, "")
}

func (s *extensionsSuite) TestListNarrowTerminal(c *C) {
	s.AddCleanup(desktopsettings.MockTermWidth(20))
	s.shell.Reply("org.gnome.Shell.Extensions.ListExtensions", map[string]map[string]dbus.Variant{
		"a@example.com": extension("A", "A rather long description", "1", 1),
	})

	_, err := s.run("extensions")
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, ""+
		"Name  Version  State    UUID           Description\n"+
		"A     1        enabled  a@example.com  A rather …\n")
}

func (s *extensionsSuite) TestListEmpty(c *C) {
	s.shell.Reply("org.gnome.Shell.Extensions.ListExtensions", map[string]map[string]dbus.Variant{})

	_, err := s.run("extensions")
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "")
	c.Check(s.Stderr(), Equals, "No shell extensions are installed.\n")
}

func (s *extensionsSuite) TestListMalformed(c *C) {
	s.shell.Reply("org.gnome.Shell.Extensions.ListExtensions", map[string]map[string]dbus.Variant{
		"a@example.com": {"name": dbus.MakeVariant("A")},
	})

	_, err := s.run("extensions")
	c.Check(err, ErrorMatches, `cannot decode org.gnome.Shell.Extensions.ListExtensions: extension "a@example.com": .*`)
}

func (s *extensionsSuite) TestActions(c *C) {
	s.shell.Reply("org.gnome.Shell.Extensions.EnableExtension", true).
		Reply("org.gnome.Shell.Extensions.DisableExtension", false).
		Reply("org.gnome.Shell.Extensions.UninstallExtension", true).
		Reply("org.gnome.Shell.Extensions.LaunchExtensionPrefs")

	for _, t := range []struct {
		cmd    string
		method string
		out    string
	}{
		{"enable-extension", "EnableExtension", "Extension a@example.com enabled.\n"},
		{"disable-extension", "DisableExtension", "Extension a@example.com was not disabled by the shell.\n"},
		{"uninstall-extension", "UninstallExtension", "Extension a@example.com uninstalled.\n"},
		{"extension-prefs", "LaunchExtensionPrefs", ""},
	} {
		s.ResetStdStreams()
		s.fix.Session.ForgetCalls()

		_, err := s.run(t.cmd, "a@example.com")
		c.Assert(err, IsNil, Commentf(t.cmd))
		c.Check(s.Stdout(), Equals, t.out, Commentf(t.cmd))
		c.Check(s.fix.Session.Calls(), DeepEquals, []dbustest.Call{{
			Destination: "org.gnome.Shell.Extensions",
			Path:        "/org/gnome/Shell/Extensions",
			Method:      "org.gnome.Shell.Extensions." + t.method,
			Args:        []interface{}{"a@example.com"},
		}}, Commentf(t.cmd))
	}
}

func (s *extensionsSuite) TestActionRejected(c *C) {
	s.shell.Fail("org.gnome.Shell.Extensions.EnableExtension", "org.freedesktop.DBus.Error.AccessDenied", "not allowed")

	_, err := s.run("enable-extension", "a@example.com")
	c.Check(err, ErrorMatches, `org.gnome.Shell.Extensions.EnableExtension was rejected: not allowed`)
}

func (s *extensionsSuite) TestActionNeedsUUID(c *C) {
	_, err := s.run("enable-extension")
	c.Check(err, ErrorMatches, `.*<uuid>.*`)
}

func (s *extensionsSuite) TestColumns(c *C) {
	c.Check(desktopsettings.Columns([][]string{
		{"a", "bb", "x"},
		{"ccc", "d", "yy"},
	}), DeepEquals, []string{
		"a    bb  x",
		"ccc  d   yy",
	})
}
