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
	"context"
	"fmt"
	"strconv"

	"github.com/snapcore/desktop-settings/logger"
)

// StoreValue are the types store keys can hold.
type StoreValue interface {
	bool | uint32
}

// StoreKey is a typed setting in the configuration store.
type StoreKey[T StoreValue] struct {
	Schema string
	Key    string
}

// String returns the key the way the gsettings tool spells it.
func (k StoreKey[T]) String() string {
	return k.Schema + " " + k.Key
}

// Get reads and parses the stored value. A value that does not parse as
// T is a DecodeFailure, there are no defaults.
func (k StoreKey[T]) Get(ctx context.Context, b *Bridge) (T, error) {
	var zero T
	if b.store == nil {
		return zero, &Error{Kind: ErrorKindTransportUnavailable, Target: k.String(), Err: errNoStore}
	}
	ctx, cancel := b.roundTripContext(ctx)
	defer cancel()

	raw, err := b.store.Get(ctx, k.Schema, k.Key)
	logger.Debugf("get %s: %q (err: %v)", k, raw, err)
	if err != nil {
		return zero, asError(ErrorKindTransportUnavailable, k.String(), err)
	}
	value, err := parseStoreValue[T](raw)
	if err != nil {
		return zero, &Error{Kind: ErrorKindDecodeFailure, Target: k.String(), Err: err}
	}
	return value, nil
}

// Set writes the canonical text form of value.
func (k StoreKey[T]) Set(ctx context.Context, b *Bridge, value T) error {
	if b.store == nil {
		return &Error{Kind: ErrorKindTransportUnavailable, Target: k.String(), Err: errNoStore}
	}
	ctx, cancel := b.roundTripContext(ctx)
	defer cancel()

	raw := formatStoreValue(value)
	err := b.store.Set(ctx, k.Schema, k.Key, raw)
	logger.Debugf("set %s to %q (err: %v)", k, raw, err)
	return asError(ErrorKindTransportUnavailable, k.String(), err)
}

// Reset restores the default defined by the schema.
func (k StoreKey[T]) Reset(ctx context.Context, b *Bridge) error {
	if b.store == nil {
		return &Error{Kind: ErrorKindTransportUnavailable, Target: k.String(), Err: errNoStore}
	}
	ctx, cancel := b.roundTripContext(ctx)
	defer cancel()

	err := b.store.Reset(ctx, k.Schema, k.Key)
	logger.Debugf("reset %s (err: %v)", k, err)
	return asError(ErrorKindTransportUnavailable, k.String(), err)
}

func parseStoreValue[T StoreValue](raw string) (T, error) {
	var value T
	switch v := any(&value).(type) {
	case *bool:
		switch raw {
		case "true":
			*v = true
		case "false":
			*v = false
		default:
			return value, fmt.Errorf("%q is not a boolean", raw)
		}
	case *uint32:
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return value, fmt.Errorf("%q is not an unsigned 32-bit integer", raw)
		}
		*v = uint32(n)
	}
	return value, nil
}

func formatStoreValue[T StoreValue](value T) string {
	switch v := any(value).(type) {
	case bool:
		return strconv.FormatBool(v)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	}
	panic(fmt.Sprintf("internal error: unsupported store value %T", value))
}
