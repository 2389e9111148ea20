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
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/desktop-settings/desktop/screen"
	"github.com/snapcore/desktop-settings/i18n"
)

type cmdBrightness struct {
	Up         bool `long:"up"`
	Down       bool `long:"down"`
	Positional struct {
		Level *uint8 `positional-arg-name:"<level>"`
	} `positional-args:"yes"`
}

func init() {
	addCommand("brightness",
		i18n.G("Show or change the screen brightness"),
		i18n.G(`
Without arguments the brightness command prints the screen brightness in
percent. Given a level it sets the brightness, --up and --down change it by
one step.
`),
		func() flags.Commander { return &cmdBrightness{} },
		map[string]string{
			// TRANSLATORS: This should not start with a lowercase letter.
			"up": i18n.G("Increase the brightness by one step"),
			// TRANSLATORS: This should not start with a lowercase letter.
			"down": i18n.G("Decrease the brightness by one step"),
		}, []argDesc{{
			// TRANSLATORS: This needs to begin with < and end with >
			name: i18n.G("<level>"),
			// TRANSLATORS: This should not start with a lowercase letter.
			desc: i18n.G("Brightness in percent"),
		}})
}

func (x *cmdBrightness) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	n := 0
	for _, given := range []bool{x.Up, x.Down, x.Positional.Level != nil} {
		if given {
			n++
		}
	}
	if n > 1 {
		return errors.New(i18n.G("cannot use --up, --down and a level together"))
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	ctx := commandContext()

	switch {
	case x.Up:
		return screen.StepUp(ctx, b)
	case x.Down:
		return screen.StepDown(ctx, b)
	case x.Positional.Level != nil:
		if *x.Positional.Level > 100 {
			return fmt.Errorf(i18n.G("brightness must be between 0 and 100, not %d"), *x.Positional.Level)
		}
		return screen.SetBrightness(ctx, b, int32(*x.Positional.Level))
	}

	level, err := screen.Brightness(ctx, b)
	if err != nil {
		return err
	}
	if level < 0 {
		return errors.New(i18n.G("the screen brightness cannot be controlled"))
	}
	fmt.Fprintf(Stdout, "%d%%\n", level)
	return nil
}
