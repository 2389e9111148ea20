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
	"fmt"
	"sort"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-runewidth"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/desktop/extensions"
	"github.com/snapcore/desktop-settings/i18n"
)

type cmdExtensions struct{}

type extensionUUID struct {
	UUID string `required:"yes"`
}

type cmdEnableExtension struct {
	Positional extensionUUID `positional-args:"yes"`
}

type cmdDisableExtension struct {
	Positional extensionUUID `positional-args:"yes"`
}

type cmdUninstallExtension struct {
	Positional extensionUUID `positional-args:"yes"`
}

type cmdExtensionPrefs struct {
	Positional extensionUUID `positional-args:"yes"`
}

var uuidArgDesc = []argDesc{{
	// TRANSLATORS: This needs to begin with < and end with >
	name: i18n.G("<uuid>"),
	// TRANSLATORS: This should not start with a lowercase letter.
	desc: i18n.G("UUID of the extension, e.g. ding@rastersoft.com"),
}}

func init() {
	addCommand("extensions",
		i18n.G("List the installed shell extensions"),
		i18n.G(`
The extensions command lists the installed shell extensions, sorted by
name, together with their state.
`),
		func() flags.Commander { return &cmdExtensions{} }, nil, nil)
	addCommand("enable-extension",
		i18n.G("Enable a shell extension"),
		i18n.G(`
The enable-extension command enables the given shell extension.
`),
		func() flags.Commander { return &cmdEnableExtension{} }, nil, uuidArgDesc)
	addCommand("disable-extension",
		i18n.G("Disable a shell extension"),
		i18n.G(`
The disable-extension command disables the given shell extension.
`),
		func() flags.Commander { return &cmdDisableExtension{} }, nil, uuidArgDesc)
	addCommand("uninstall-extension",
		i18n.G("Uninstall a shell extension"),
		i18n.G(`
The uninstall-extension command removes the given shell extension.
`),
		func() flags.Commander { return &cmdUninstallExtension{} }, nil, uuidArgDesc)
	addCommand("extension-prefs",
		i18n.G("Open the preferences of a shell extension"),
		i18n.G(`
The extension-prefs command asks the shell to open the preferences dialog
of the given extension.
`),
		func() flags.Commander { return &cmdExtensionPrefs{} }, nil, uuidArgDesc)
}

const minDescriptionWidth = 10

// columns pads every column but the last to its widest cell.
func columns(rows [][]string) []string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row[:len(row)-1] {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		for i, cell := range row[:len(row)-1] {
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		sb.WriteString(row[len(row)-1])
		lines = append(lines, sb.String())
	}
	return lines
}

func (x *cmdExtensions) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	exts, err := extensions.List(commandContext(), b)
	if err != nil {
		return err
	}
	if len(exts) == 0 {
		fmt.Fprintln(Stderr, i18n.G("No shell extensions are installed."))
		return nil
	}
	sort.Slice(exts, func(i, j int) bool {
		ni, nj := strings.ToLower(exts[i].Name), strings.ToLower(exts[j].Name)
		if ni != nj {
			return ni < nj
		}
		return exts[i].UUID < exts[j].UUID
	})

	rows := [][]string{{i18n.G("Name"), i18n.G("Version"), i18n.G("State"), i18n.G("UUID"), ""}}
	for _, ext := range exts {
		version := ext.Version
		if version == "" {
			version = "-"
		}
		rows = append(rows, []string{ext.Name, version, ext.State.String(), ext.UUID, ""})
	}
	// the description fills what is left of the terminal
	lines := columns(rows)
	used := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > used {
			used = w
		}
	}
	descWidth := termWidth() - used
	if descWidth < minDescriptionWidth {
		descWidth = minDescriptionWidth
	}
	for i, line := range lines {
		if i == 0 {
			line += i18n.G("Description")
		} else {
			desc := strings.Join(strings.Fields(exts[i-1].Description), " ")
			line += runewidth.Truncate(desc, descWidth, "…")
		}
		fmt.Fprintln(Stdout, strings.TrimRight(line, " "))
	}
	return nil
}

func runExtensionAction(uuid string, action func(context.Context, *bridge.Bridge, string) (bool, error), done, notDone string) error {
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	ok, err := action(commandContext(), b, uuid)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(Stdout, done, uuid)
	} else {
		fmt.Fprintf(Stdout, notDone, uuid)
	}
	return nil
}

func (x *cmdEnableExtension) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	return runExtensionAction(x.Positional.UUID, extensions.Enable,
		i18n.G("Extension %s enabled.\n"),
		i18n.G("Extension %s was not enabled by the shell.\n"))
}

func (x *cmdDisableExtension) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	return runExtensionAction(x.Positional.UUID, extensions.Disable,
		i18n.G("Extension %s disabled.\n"),
		i18n.G("Extension %s was not disabled by the shell.\n"))
}

func (x *cmdUninstallExtension) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	return runExtensionAction(x.Positional.UUID, extensions.Uninstall,
		i18n.G("Extension %s uninstalled.\n"),
		i18n.G("Extension %s was not uninstalled by the shell.\n"))
}

func (x *cmdExtensionPrefs) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	return extensions.LaunchPrefs(commandContext(), b, x.Positional.UUID)
}
