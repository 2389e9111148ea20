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
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"syscall"
	"time"

	. "gopkg.in/check.v1"

	"github.com/snapcore/desktop-settings/dirs"
	"github.com/snapcore/desktop-settings/osutil"

	desktopsettings "github.com/snapcore/desktop-settings/cmd/desktop-settings"
)

type agentSuite struct {
	BaseDesktopSettingsSuite
}

var _ = Suite(&agentSuite{})

func (s *agentSuite) SetUpTest(c *C) {
	s.BaseDesktopSettingsSuite.SetUpTest(c)
	s.SetEnv("LISTEN_PID", "")
	s.SetEnv("NOTIFY_SOCKET", "")
}

func (s *agentSuite) TestExitOnSignal(c *C) {
	ch := make(chan os.Signal, 1)
	ch <- syscall.SIGTERM
	stopped := false
	s.AddCleanup(desktopsettings.MockSignalNotify(func(sig ...os.Signal) (chan os.Signal, func()) {
		c.Check(sig, DeepEquals, []os.Signal{syscall.SIGINT, syscall.SIGTERM})
		return ch, func() { stopped = true }
	}))

	_, err := s.run("agent")
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "Exiting on terminated.\n")
	c.Check(stopped, Equals, true)
}

func (s *agentSuite) TestServesUntilIdle(c *C) {
	config := dirs.ConfigFile()
	c.Assert(os.MkdirAll(filepath.Dir(config), 0755), IsNil)
	c.Assert(os.WriteFile(config, []byte("agent-idle-timeout: 500ms\n"), 0644), IsNil)
	s.AddCleanup(desktopsettings.MockSignalNotify(func(sig ...os.Signal) (chan os.Signal, func()) {
		return make(chan os.Signal), func() {}
	}))

	done := make(chan error, 1)
	go func() {
		_, err := s.run("agent")
		done <- err
	}()

	// wait for the socket to show up
	socket := dirs.AgentSocket()
	for i := 0; i < 100 && !osutil.FileExists(socket); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	client := &http.Client{Transport: &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(ctx, "unix", socket)
		},
	}}
	rsp, err := client.Get("http://localhost/v1/session-info")
	c.Assert(err, IsNil)
	rsp.Body.Close()
	c.Check(rsp.StatusCode, Equals, 200)

	select {
	case err := <-done:
		c.Check(err, IsNil)
	case <-time.After(10 * time.Second):
		c.Fatal("agent did not exit when idle")
	}
	c.Check(s.Stdout(), Equals, "")
}

func (s *agentSuite) TestBadConfig(c *C) {
	config := dirs.ConfigFile()
	c.Assert(os.MkdirAll(filepath.Dir(config), 0755), IsNil)
	c.Assert(os.WriteFile(config, []byte("agent-idle-timeout: -1s\n"), 0644), IsNil)

	_, err := s.run("agent")
	c.Check(err, ErrorMatches, `.*invalid agent-idle-timeout "-1s": must be positive`)
}
