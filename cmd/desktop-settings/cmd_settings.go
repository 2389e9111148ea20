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
	"text/tabwriter"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/desktop-settings/desktop/settings"
	"github.com/snapcore/desktop-settings/i18n"
	"github.com/snapcore/desktop-settings/logger"
)

type settingName struct {
	Name string
}

type cmdGet struct {
	Positional struct {
		Setting settingName `required:"yes"`
	} `positional-args:"yes"`
}

type cmdSet struct {
	Positional struct {
		Setting settingName `required:"yes"`
		Value   string      `required:"yes"`
	} `positional-args:"yes"`
}

type cmdReset struct {
	Positional struct {
		Setting settingName `required:"yes"`
	} `positional-args:"yes"`
}

type cmdSettings struct{}

// UnmarshalFlag validates the setting name while parsing arguments.
func (n *settingName) UnmarshalFlag(value string) error {
	if _, err := settings.Lookup(value); err != nil {
		return err
	}
	n.Name = value
	return nil
}

// Complete lists the setting names matching the given prefix.
func (n *settingName) Complete(match string) []flags.Completion {
	var completions []flags.Completion
	for _, s := range settings.All() {
		if len(s.Name) >= len(match) && s.Name[:len(match)] == match {
			completions = append(completions, flags.Completion{Item: s.Name, Description: s.Summary})
		}
	}
	return completions
}

func (n settingName) setting() *settings.Setting {
	s, err := settings.Lookup(n.Name)
	if err != nil {
		// names are validated when parsing
		logger.Panicf("internal error: %v", err)
	}
	return s
}

var settingArgDesc = argDesc{
	// TRANSLATORS: This needs to begin with < and end with >
	name: i18n.G("<setting>"),
	// TRANSLATORS: This should not start with a lowercase letter.
	desc: i18n.G("Name of the setting, see 'desktop-settings settings'"),
}

func init() {
	addCommand("get",
		i18n.G("Print the value of a setting"),
		i18n.G(`
The get command prints the current value of the given setting.
`),
		func() flags.Commander { return &cmdGet{} }, nil, []argDesc{settingArgDesc})

	addCommand("set",
		i18n.G("Change the value of a setting"),
		i18n.G(`
The set command changes the given setting. Booleans are written as true or
false, numbers in decimal notation.
`),
		func() flags.Commander { return &cmdSet{} }, nil, []argDesc{settingArgDesc, {
			// TRANSLATORS: This needs to begin with < and end with >
			name: i18n.G("<value>"),
			// TRANSLATORS: This should not start with a lowercase letter.
			desc: i18n.G("New value of the setting"),
		}})

	addCommand("reset",
		i18n.G("Restore the default value of a setting"),
		i18n.G(`
The reset command restores the default value of the given setting. Not
every setting has a default.
`),
		func() flags.Commander { return &cmdReset{} }, nil, []argDesc{settingArgDesc})

	addCommand("settings",
		i18n.G("List the known settings"),
		i18n.G(`
The settings command lists the known settings with their current values.
Settings whose backend cannot be reached are shown with a dash.
`),
		func() flags.Commander { return &cmdSettings{} }, nil, nil)
}

func (x *cmdGet) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	value, err := x.Positional.Setting.setting().Get(commandContext(), b)
	if err != nil {
		return err
	}
	fmt.Fprintln(Stdout, value)
	return nil
}

func (x *cmdSet) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	return x.Positional.Setting.setting().Set(commandContext(), b, x.Positional.Value)
}

func (x *cmdReset) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	setting := x.Positional.Setting.setting()
	if err := setting.Reset(commandContext(), b); err != nil {
		if err == settings.ErrNotResettable {
			return fmt.Errorf(i18n.G("setting %q has no default to reset to"), setting.Name)
		}
		return err
	}
	return nil
}

func (x *cmdSettings) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	ctx := commandContext()

	w := tabwriter.NewWriter(Stdout, 5, 3, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, i18n.G("Name\tValue\tSummary"))
	for _, setting := range settings.All() {
		value, err := setting.Get(ctx, b)
		if err != nil {
			logger.Debugf("cannot get %s: %v", setting.Name, err)
			value = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", setting.Name, value, setting.Summary)
	}
	return nil
}
