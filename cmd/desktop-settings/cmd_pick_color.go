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
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/desktop-settings/desktop/screenshot"
	"github.com/snapcore/desktop-settings/i18n"
)

type cmdPickColor struct{}

func init() {
	addCommand("pick-color",
		i18n.G("Pick a color from the screen"),
		i18n.G(`
The pick-color command lets the user select a point on the screen and
prints its color.
`),
		func() flags.Commander { return &cmdPickColor{} }, nil, nil)
}

func (x *cmdPickColor) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	color, err := screenshot.PickColor(commandContext(), b)
	if err != nil {
		return err
	}
	fmt.Fprintf(Stdout, "%s (%.3f, %.3f, %.3f)\n", color.Hex(), color.Red, color.Green, color.Blue)
	return nil
}
