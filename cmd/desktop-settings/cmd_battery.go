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
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/desktop-settings/desktop/battery"
	"github.com/snapcore/desktop-settings/i18n"
)

type cmdBattery struct{}

func init() {
	addCommand("battery",
		i18n.G("Show the state of the batteries"),
		i18n.G(`
The battery command shows the combined battery state as reported to the
desktop, followed by every rechargeable battery.
`),
		func() flags.Commander { return &cmdBattery{} }, nil, nil)
}

func fmtRemaining(info *battery.Info) string {
	var secs int64
	switch info.State {
	case battery.StateCharging:
		secs = info.TimeToFull
	case battery.StateDischarging:
		secs = info.TimeToEmpty
	}
	if secs <= 0 {
		return "-"
	}
	return (time.Duration(secs) * time.Second).String()
}

func batteryName(info *battery.Info) string {
	switch {
	case info.Model != "":
		return info.Model
	case info.NativePath != "":
		return info.NativePath
	}
	return "-"
}

func (x *cmdBattery) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, _, err := newBridge()
	if err != nil {
		return err
	}
	ctx := commandContext()

	display, err := battery.DisplayDevice(ctx, b)
	if err != nil {
		return err
	}
	summary, err := display.Properties(ctx, b)
	if err != nil {
		return err
	}
	devices, err := battery.Batteries(ctx, b)
	if err != nil {
		return err
	}
	infos := make([]*battery.Info, 0, len(devices))
	for _, dev := range devices {
		info, err := dev.Properties(ctx, b)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	w := tabwriter.NewWriter(Stdout, 5, 3, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, i18n.G("Battery\tKind\tState\tCharge\tRemaining"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%s\n", i18n.G("(total)"), summary.Kind, summary.State, summary.Percentage, fmtRemaining(summary))
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%s\n", batteryName(info), info.Kind, info.State, info.Percentage, fmtRemaining(info))
	}
	return nil
}
