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

package bridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/snapcore/desktop-settings/dbusutil"
)

// ErrorKind classifies failures of any backend.
type ErrorKind int

const (
	// ErrorKindTransportUnavailable means the bus or the store could not
	// be reached, or the round trip did not complete.
	ErrorKindTransportUnavailable ErrorKind = iota + 1
	// ErrorKindTargetNotFound means the backend does not know the
	// requested interface, property, method, schema or key.
	ErrorKindTargetNotFound
	// ErrorKindDecodeFailure means a returned value does not have the
	// expected shape.
	ErrorKindDecodeFailure
	// ErrorKindRemoteRejected means the backend received the request
	// and refused it.
	ErrorKindRemoteRejected
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransportUnavailable:
		return "transport-unavailable"
	case ErrorKindTargetNotFound:
		return "target-not-found"
	case ErrorKindDecodeFailure:
		return "decode-failure"
	case ErrorKindRemoteRejected:
		return "remote-rejected"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// kindError is the type of the per-kind sentinels.
type kindError ErrorKind

func (e kindError) Error() string {
	return ErrorKind(e).String()
}

// Sentinels matching any *Error of the respective kind with errors.Is.
var (
	ErrTransportUnavailable error = kindError(ErrorKindTransportUnavailable)
	ErrTargetNotFound       error = kindError(ErrorKindTargetNotFound)
	ErrDecodeFailure        error = kindError(ErrorKindDecodeFailure)
	ErrRemoteRejected       error = kindError(ErrorKindRemoteRejected)
)

// Error is the error returned by every accessor, whatever the backend.
type Error struct {
	Kind ErrorKind
	// Target names what was accessed, e.g. "org.gnome.Shell.Extensions.ListExtensions".
	Target string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindTransportUnavailable:
		return fmt.Sprintf("cannot reach %s: %v", e.Target, e.Err)
	case ErrorKindTargetNotFound:
		return fmt.Sprintf("cannot find %s: %v", e.Target, e.Err)
	case ErrorKindDecodeFailure:
		return fmt.Sprintf("cannot decode %s: %v", e.Target, e.Err)
	case ErrorKindRemoteRejected:
		return fmt.Sprintf("%s was rejected: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("cannot access %s: %v", e.Target, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTargetNotFound) and friends work.
func (e *Error) Is(target error) bool {
	k, ok := target.(kindError)
	return ok && ErrorKind(k) == e.Kind
}

// NewError returns an *Error of the given kind.
func NewError(kind ErrorKind, target string, err error) error {
	return &Error{Kind: kind, Target: target, Err: err}
}

// DecodeError returns a DecodeFailure error with a formatted cause.
func DecodeError(target string, format string, v ...interface{}) error {
	return &Error{Kind: ErrorKindDecodeFailure, Target: target, Err: fmt.Errorf(format, v...)}
}

// KindOf returns the kind of the given error, and false if err is not an
// *Error.
func KindOf(err error) (ErrorKind, bool) {
	var berr *Error
	if errors.As(err, &berr) {
		return berr.Kind, true
	}
	return 0, false
}

// asError passes classified errors through and wraps anything else with
// the given kind.
func asError(kind ErrorKind, target string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := KindOf(err); ok {
		return err
	}
	return &Error{Kind: kind, Target: target, Err: err}
}

var transportErrorNames = map[string]bool{
	"org.freedesktop.DBus.Error.ServiceUnknown": true,
	"org.freedesktop.DBus.Error.NameHasNoOwner": true,
	"org.freedesktop.DBus.Error.NoReply":        true,
	"org.freedesktop.DBus.Error.Disconnected":   true,
	"org.freedesktop.DBus.Error.NoServer":       true,
	"org.freedesktop.DBus.Error.Timeout":        true,
	"org.freedesktop.DBus.Error.TimedOut":       true,
	"org.freedesktop.DBus.Error.NoNetwork":      true,
}

var notFoundErrorNames = map[string]bool{
	"org.freedesktop.DBus.Error.UnknownMethod":    true,
	"org.freedesktop.DBus.Error.UnknownObject":    true,
	"org.freedesktop.DBus.Error.UnknownInterface": true,
	"org.freedesktop.DBus.Error.UnknownProperty":  true,
}

// fromDBus maps a failed bus round trip onto the error taxonomy.
func fromDBus(target string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := KindOf(err); ok {
		return err
	}
	name, ok := dbusutil.ErrorName(err)
	switch {
	case !ok:
		// context expiry, closed connections and I/O errors
		return &Error{Kind: ErrorKindTransportUnavailable, Target: target, Err: err}
	case transportErrorNames[name]:
		return &Error{Kind: ErrorKindTransportUnavailable, Target: target, Err: err}
	case notFoundErrorNames[name]:
		return &Error{Kind: ErrorKindTargetNotFound, Target: target, Err: err}
	case name == "org.freedesktop.DBus.Error.InvalidArgs":
		// GLib based services report unknown properties this way
		msg := dbusutil.ErrorMessage(err)
		if strings.HasPrefix(msg, "No such property") || strings.HasPrefix(msg, "No such interface") {
			return &Error{Kind: ErrorKindTargetNotFound, Target: target, Err: err}
		}
	}
	return &Error{Kind: ErrorKindRemoteRejected, Target: target, Err: err}
}
