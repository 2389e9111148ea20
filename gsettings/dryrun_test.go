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

package gsettings_test

import (
	"context"

	. "gopkg.in/check.v1"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/gsettings"
	"github.com/snapcore/desktop-settings/gsettings/gsettingstest"
	"github.com/snapcore/desktop-settings/testutil"
)

type dryRunSuite struct {
	backend *gsettingstest.Store
	store   *gsettings.DryRun
}

var _ = Suite(&dryRunSuite{})

func (s *dryRunSuite) SetUpTest(c *C) {
	s.backend = gsettingstest.NewDesktop()
	c.Assert(s.backend.Set(context.Background(), "org.gnome.desktop.interface", "cursor-size", "48"), IsNil)
	s.store = gsettings.NewDryRun(s.backend)
}

func (s *dryRunSuite) TestGetReadsThrough(c *C) {
	value, err := s.store.Get(context.Background(), "org.gnome.desktop.interface", "cursor-size")
	c.Assert(err, IsNil)
	c.Check(value, Equals, "48")

	_, err = s.store.Get(context.Background(), "org.gnome.desktop.interface", "no-such-key")
	c.Check(err, testutil.ErrorIs, bridge.ErrTargetNotFound)
}

func (s *dryRunSuite) TestSetAndResetAreRecorded(c *C) {
	ctx := context.Background()
	c.Assert(s.store.Set(ctx, "org.gnome.desktop.interface", "cursor-size", "64"), IsNil)

	value, err := s.store.Get(ctx, "org.gnome.desktop.interface", "cursor-size")
	c.Assert(err, IsNil)
	c.Check(value, Equals, "64")

	c.Assert(s.store.Reset(ctx, "org.gnome.desktop.interface", "cursor-size"), IsNil)
	value, err = s.store.Get(ctx, "org.gnome.desktop.interface", "cursor-size")
	c.Assert(err, IsNil)
	c.Check(value, Equals, "48")

	c.Check(s.store.Writes(), DeepEquals, []string{
		"set org.gnome.desktop.interface cursor-size 64",
		"reset org.gnome.desktop.interface cursor-size",
	})
	// only the initial write reached the backend
	c.Check(s.backend.Writes(), DeepEquals, []string{
		"set org.gnome.desktop.interface cursor-size 48",
	})
}

func (s *dryRunSuite) TestUnknownKey(c *C) {
	err := s.store.Set(context.Background(), "org.gnome.desktop.interface", "no-such-key", "1")
	c.Check(err, testutil.ErrorIs, bridge.ErrTargetNotFound)
	err = s.store.Reset(context.Background(), "org.gnome.nothing", "key")
	c.Check(err, testutil.ErrorIs, bridge.ErrTargetNotFound)
	c.Check(s.store.Writes(), HasLen, 0)
}
