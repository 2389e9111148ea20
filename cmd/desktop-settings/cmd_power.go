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

package main

import (
	"context"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/desktop/power"
	"github.com/snapcore/desktop-settings/i18n"
)

type cmdPowerAction struct {
	action func(context.Context, *bridge.Bridge) error
}

func init() {
	for _, c := range []struct {
		name, short, long string
		action            func(context.Context, *bridge.Bridge) error
	}{{
		name:  "suspend",
		short: i18n.G("Suspend the system"),
		long: i18n.G(`
The suspend command asks the login manager to suspend the system.
`),
		action: power.Suspend,
	}, {
		name:  "power-off",
		short: i18n.G("Power off the system"),
		long: i18n.G(`
The power-off command asks the login manager to power off the system.
`),
		action: power.PowerOff,
	}, {
		name:  "reboot",
		short: i18n.G("Reboot the system"),
		long: i18n.G(`
The reboot command asks the login manager to reboot the system.
`),
		action: power.Reboot,
	}} {
		action := c.action
		addCommand(c.name, c.short, c.long, func() flags.Commander {
			return &cmdPowerAction{action: action}
		}, nil, nil)
	}
}

func (x *cmdPowerAction) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	return x.action(commandContext(), b)
}
