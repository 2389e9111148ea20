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

	"github.com/snapcore/desktop-settings/desktop/battery"

	desktopsettings "github.com/snapcore/desktop-settings/cmd/desktop-settings"
)

const deviceIface = "org.freedesktop.UPower.Device"

type batterySuite struct {
	BaseDesktopSettingsSuite
}

var _ = Suite(&batterySuite{})

func (s *batterySuite) TestBattery(c *C) {
	display := dbus.ObjectPath("/org/freedesktop/UPower/devices/DisplayDevice")
	bat := dbus.ObjectPath("/org/freedesktop/UPower/devices/battery_BAT0")
	ac := dbus.ObjectPath("/org/freedesktop/UPower/devices/line_power_AC")
	s.fix.System.AddObject("org.freedesktop.UPower", "/org/freedesktop/UPower").
		Reply("org.freedesktop.UPower.GetDisplayDevice", display).
		Reply("org.freedesktop.UPower.EnumerateDevices", []dbus.ObjectPath{ac, bat})
	s.fix.System.AddObject("org.freedesktop.UPower", display).
		SetPropertyValue(deviceIface, "Type", uint32(2)).
		SetPropertyValue(deviceIface, "State", uint32(2)).
		SetPropertyValue(deviceIface, "Percentage", 63.0).
		SetPropertyValue(deviceIface, "TimeToEmpty", int64(5400))
	s.fix.System.AddObject("org.freedesktop.UPower", bat).
		SetPropertyValue(deviceIface, "NativePath", "BAT0").
		SetPropertyValue(deviceIface, "Model", "DELL 1VX1H").
		SetPropertyValue(deviceIface, "Type", uint32(2)).
		SetPropertyValue(deviceIface, "State", uint32(2)).
		SetPropertyValue(deviceIface, "Percentage", 63.0).
		SetPropertyValue(deviceIface, "TimeToEmpty", int64(5400)).
		SetPropertyValue(deviceIface, "IsPresent", true).
		SetPropertyValue(deviceIface, "IsRechargeable", true)
	s.fix.System.AddObject("org.freedesktop.UPower", ac).
		SetPropertyValue(deviceIface, "Type", uint32(1)).
		SetPropertyValue(deviceIface, "IsRechargeable", false)

	_, err := s.run("battery")
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Matches, `(?s)Battery +Kind +State +Charge +Remaining\n`+
		`\(total\) +battery +discharging +63% +1h30m0s\n`+
		`DELL 1VX1H +battery +discharging +63% +1h30m0s\n`)
}

func (s *batterySuite) TestNoUPower(c *C) {
	_, err := s.run("battery")
	c.Check(err, ErrorMatches, `cannot reach org.freedesktop.UPower.GetDisplayDevice: .*`)
	c.Check(s.Stdout(), Equals, "")
}

func (s *batterySuite) TestRemaining(c *C) {
	for _, t := range []struct {
		info     battery.Info
		expected string
	}{
		{battery.Info{State: battery.StateCharging, TimeToFull: 90, TimeToEmpty: 10}, "1m30s"},
		{battery.Info{State: battery.StateDischarging, TimeToFull: 90, TimeToEmpty: 10}, "10s"},
		{battery.Info{State: battery.StateDischarging}, "-"},
		{battery.Info{State: battery.StateFullyCharged, TimeToFull: 90}, "-"},
	} {
		info := t.info
		c.Check(desktopsettings.FmtRemaining(&info), Equals, t.expected, Commentf("%+v", t.info))
	}
}
