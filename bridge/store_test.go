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

package bridge_test

import (
	"context"

	. "gopkg.in/check.v1"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/testutil"
)

var (
	enabledKey = bridge.StoreKey[bool]{Schema: "org.example.app", Key: "enabled"}
	sizeKey    = bridge.StoreKey[uint32]{Schema: "org.example.app", Key: "size"}
)

func (s *bridgeSuite) TestStoreKeyString(c *C) {
	c.Check(enabledKey.String(), Equals, "org.example.app enabled")
}

func (s *bridgeSuite) TestStoreBoolRoundTrip(c *C) {
	ctx := context.Background()
	for _, value := range []bool{true, false} {
		c.Assert(enabledKey.Set(ctx, s.b, value), IsNil)
		got, err := enabledKey.Get(ctx, s.b)
		c.Assert(err, IsNil)
		c.Check(got, Equals, value)
	}
	c.Check(s.store.Writes(), DeepEquals, []string{
		"set org.example.app enabled true",
		"set org.example.app enabled false",
	})
}

func (s *bridgeSuite) TestStoreUintRoundTrip(c *C) {
	ctx := context.Background()
	for _, value := range []uint32{0, 1, 48, 4294967295} {
		c.Assert(sizeKey.Set(ctx, s.b, value), IsNil)
		got, err := sizeKey.Get(ctx, s.b)
		c.Assert(err, IsNil)
		c.Check(got, Equals, value)
	}
	c.Check(s.store.Writes()[3], Equals, "set org.example.app size 4294967295")
}

func (s *bridgeSuite) TestStoreReset(c *C) {
	ctx := context.Background()
	c.Assert(sizeKey.Set(ctx, s.b, 96), IsNil)
	c.Assert(sizeKey.Reset(ctx, s.b), IsNil)
	got, err := sizeKey.Get(ctx, s.b)
	c.Assert(err, IsNil)
	c.Check(got, Equals, uint32(24))

	// resetting an untouched key is fine too
	c.Assert(enabledKey.Reset(ctx, s.b), IsNil)
	enabled, err := enabledKey.Get(ctx, s.b)
	c.Assert(err, IsNil)
	c.Check(enabled, Equals, false)
}

func (s *bridgeSuite) TestStoreDecodeFailure(c *C) {
	ctx := context.Background()
	for _, raw := range []string{"yes", "1", "True", ""} {
		c.Assert(s.store.Set(ctx, "org.example.app", "enabled", raw), IsNil)
		_, err := enabledKey.Get(ctx, s.b)
		c.Check(err, testutil.ErrorIs, bridge.ErrDecodeFailure, Commentf("%q", raw))
	}
	for _, raw := range []string{"-1", "4294967296", "12px", "0x10", ""} {
		c.Assert(s.store.Set(ctx, "org.example.app", "size", raw), IsNil)
		_, err := sizeKey.Get(ctx, s.b)
		c.Check(err, testutil.ErrorIs, bridge.ErrDecodeFailure, Commentf("%q", raw))
	}
	_, err := sizeKey.Get(ctx, s.b)
	c.Check(err, ErrorMatches, `cannot decode org.example.app size: "" is not an unsigned 32-bit integer`)
}

func (s *bridgeSuite) TestStoreTargetNotFound(c *C) {
	ctx := context.Background()
	missing := bridge.StoreKey[bool]{Schema: "org.example.app", Key: "missing"}
	_, err := missing.Get(ctx, s.b)
	c.Check(err, testutil.ErrorIs, bridge.ErrTargetNotFound)
	c.Check(missing.Set(ctx, s.b, true), testutil.ErrorIs, bridge.ErrTargetNotFound)
	c.Check(missing.Reset(ctx, s.b), testutil.ErrorIs, bridge.ErrTargetNotFound)
}

type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, schema, key string) (string, error) {
	return "", context.Canceled
}

func (brokenStore) Set(ctx context.Context, schema, key, value string) error {
	return context.Canceled
}

func (brokenStore) Reset(ctx context.Context, schema, key string) error {
	return context.Canceled
}

func (s *bridgeSuite) TestStoreUnclassifiedErrors(c *C) {
	b := bridge.New(&bridge.Options{Store: brokenStore{}})
	_, err := enabledKey.Get(context.Background(), b)
	c.Check(err, testutil.ErrorIs, bridge.ErrTransportUnavailable)
	c.Check(err, testutil.ErrorIs, context.Canceled)
	c.Check(enabledKey.Set(context.Background(), b, true), testutil.ErrorIs, bridge.ErrTransportUnavailable)
	c.Check(enabledKey.Reset(context.Background(), b), testutil.ErrorIs, bridge.ErrTransportUnavailable)
}
