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

	"github.com/snapcore/desktop-settings/desktop/apps"
	"github.com/snapcore/desktop-settings/i18n"
)

type cmdApps struct {
	Icons bool `long:"icons"`
}

func init() {
	addCommand("apps",
		i18n.G("List the installed applications"),
		i18n.G(`
The apps command lists the applications shown in the application overview
of the current desktop, sorted by name.
`),
		func() flags.Commander { return &cmdApps{} },
		map[string]string{
			// TRANSLATORS: This should not start with a lowercase letter.
			"icons": i18n.G("Also show the icon of each application"),
		}, nil)
}

func (x *cmdApps) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	list, err := apps.List(&apps.Options{IconSize: cfg.IconSize})
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Stderr, i18n.G("No applications found."))
		return nil
	}

	w := tabwriter.NewWriter(Stdout, 5, 3, 2, ' ', 0)
	defer w.Flush()

	if x.Icons {
		fmt.Fprintln(w, i18n.G("ID\tName\tIcon"))
	} else {
		fmt.Fprintln(w, i18n.G("ID\tName"))
	}
	for _, app := range list {
		if !x.Icons {
			fmt.Fprintf(w, "%s\t%s\n", app.ID, app.Name)
			continue
		}
		icon := app.IconPath
		if icon == "" {
			icon = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", app.ID, app.Name, icon)
	}
	return nil
}
