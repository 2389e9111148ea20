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
	"errors"
	"fmt"
	"io"

	"github.com/godbus/dbus/v5"
	. "gopkg.in/check.v1"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/testutil"
)

type errorsSuite struct{}

var _ = Suite(&errorsSuite{})

func (s *errorsSuite) TestKindString(c *C) {
	c.Check(bridge.ErrorKindTransportUnavailable.String(), Equals, "transport-unavailable")
	c.Check(bridge.ErrorKindTargetNotFound.String(), Equals, "target-not-found")
	c.Check(bridge.ErrorKindDecodeFailure.String(), Equals, "decode-failure")
	c.Check(bridge.ErrorKindRemoteRejected.String(), Equals, "remote-rejected")
	c.Check(bridge.ErrorKind(42).String(), Equals, "ErrorKind(42)")
}

func (s *errorsSuite) TestIsAndKindOf(c *C) {
	err := fmt.Errorf("context: %w", bridge.NewError(bridge.ErrorKindTargetNotFound, "org.example.Foo", io.EOF))
	c.Check(errors.Is(err, bridge.ErrTargetNotFound), Equals, true)
	c.Check(errors.Is(err, bridge.ErrRemoteRejected), Equals, false)
	c.Check(errors.Is(err, io.EOF), Equals, true)

	kind, ok := bridge.KindOf(err)
	c.Check(ok, Equals, true)
	c.Check(kind, Equals, bridge.ErrorKindTargetNotFound)

	_, ok = bridge.KindOf(io.EOF)
	c.Check(ok, Equals, false)
}

func (s *errorsSuite) TestDecodeError(c *C) {
	err := bridge.DecodeError("org.example.Foo", "field %q missing", "name")
	c.Check(err, testutil.ErrorIs, bridge.ErrDecodeFailure)
	c.Check(err, ErrorMatches, `cannot decode org.example.Foo: field "name" missing`)
}

func dbusErr(name, msg string) error {
	return dbus.Error{Name: name, Body: []interface{}{msg}}
}

func (s *errorsSuite) TestFromDBus(c *C) {
	for _, t := range []struct {
		err  error
		kind error
	}{
		{context.Canceled, bridge.ErrTransportUnavailable},
		{context.DeadlineExceeded, bridge.ErrTransportUnavailable},
		{io.ErrUnexpectedEOF, bridge.ErrTransportUnavailable},
		{dbusErr("org.freedesktop.DBus.Error.ServiceUnknown", ""), bridge.ErrTransportUnavailable},
		{dbusErr("org.freedesktop.DBus.Error.NameHasNoOwner", ""), bridge.ErrTransportUnavailable},
		{dbusErr("org.freedesktop.DBus.Error.NoReply", ""), bridge.ErrTransportUnavailable},
		{dbusErr("org.freedesktop.DBus.Error.Disconnected", ""), bridge.ErrTransportUnavailable},
		{dbusErr("org.freedesktop.DBus.Error.TimedOut", ""), bridge.ErrTransportUnavailable},
		{dbusErr("org.freedesktop.DBus.Error.UnknownMethod", ""), bridge.ErrTargetNotFound},
		{dbusErr("org.freedesktop.DBus.Error.UnknownObject", ""), bridge.ErrTargetNotFound},
		{dbusErr("org.freedesktop.DBus.Error.UnknownInterface", ""), bridge.ErrTargetNotFound},
		{dbusErr("org.freedesktop.DBus.Error.UnknownProperty", ""), bridge.ErrTargetNotFound},
		{dbusErr("org.freedesktop.DBus.Error.InvalidArgs", "No such property “Foo”"), bridge.ErrTargetNotFound},
		{dbusErr("org.freedesktop.DBus.Error.InvalidArgs", "No such interface “org.example”"), bridge.ErrTargetNotFound},
		{dbusErr("org.freedesktop.DBus.Error.InvalidArgs", "value out of range"), bridge.ErrRemoteRejected},
		{dbusErr("org.freedesktop.DBus.Error.AccessDenied", ""), bridge.ErrRemoteRejected},
		{dbusErr("org.freedesktop.DBus.Error.PropertyReadOnly", ""), bridge.ErrRemoteRejected},
		{dbusErr("org.gnome.Shell.Extensions.Error", "oops"), bridge.ErrRemoteRejected},
		{&dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}, bridge.ErrTargetNotFound},
	} {
		err := bridge.FromDBus("org.example.Foo", t.err)
		c.Check(err, testutil.ErrorIs, t.kind, Commentf("%v", t.err))
		c.Check(errors.Unwrap(err), DeepEquals, t.err, Commentf("%v", t.err))
	}

	c.Check(bridge.FromDBus("org.example.Foo", nil), IsNil)

	classified := bridge.DecodeError("org.example.Bar", "bad")
	c.Check(bridge.FromDBus("org.example.Foo", classified), Equals, classified)
}
