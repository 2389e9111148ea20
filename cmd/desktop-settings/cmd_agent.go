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
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/desktop-settings/desktop/apps"
	"github.com/snapcore/desktop-settings/i18n"
	"github.com/snapcore/desktop-settings/usersession/agent"
)

type cmdAgent struct{}

func init() {
	cmd := addCommand("agent",
		i18n.G("Run the session agent"),
		i18n.G(`
The agent command serves the desktop settings of the session over a REST
API on a socket in the user runtime directory. It exits after a period
without requests.
`),
		func() flags.Commander { return &cmdAgent{} }, nil, nil)
	cmd.hidden = true
}

var signalNotify = signalNotifyImpl

func (x *cmdAgent) Execute(args []string) error {
	if len(args) > 0 {
		return ErrExtraArgs
	}
	b, cfg, err := newBridge()
	if err != nil {
		return err
	}
	sa, err := agent.New(&agent.Options{
		Bridge:      b,
		Apps:        &apps.Options{IconSize: cfg.IconSize},
		IdleTimeout: cfg.AgentIdleTimeout,
	})
	if err != nil {
		return err
	}
	sa.Version = Version
	sa.Start()

	ch, stop := signalNotify(syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case sig := <-ch:
		fmt.Fprintf(Stdout, "Exiting on %s.\n", sig)
	case <-sa.Dying():
		// something called Stop() or the agent was idle
	}

	return sa.Stop()
}

func signalNotifyImpl(sig ...os.Signal) (ch chan os.Signal, stop func()) {
	ch = make(chan os.Signal, len(sig))
	signal.Notify(ch, sig...)
	stop = func() { signal.Stop(ch) }
	return ch, stop
}
