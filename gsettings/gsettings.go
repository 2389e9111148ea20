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

// Package gsettings implements the configuration store on top of the
// gsettings command line tool.
package gsettings

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/logger"
	"github.com/snapcore/desktop-settings/osutil"
)

// DefaultCommand is the tool used unless configured otherwise.
const DefaultCommand = "gsettings"

// waitDelay bounds how long output is awaited after the tool was killed.
var waitDelay = 2 * time.Second

// Store reads and writes settings by running the gsettings tool.
type Store struct {
	command string
}

// New returns a store running the given command, DefaultCommand if empty.
func New(command string) *Store {
	if command == "" {
		command = DefaultCommand
	}
	return &Store{command: command}
}

// Get returns the current value of schema/key, without GVariant type
// annotations and quotes.
func (s *Store) Get(ctx context.Context, schema, key string) (string, error) {
	out, err := s.run(ctx, schema, key, "get", schema, key)
	if err != nil {
		return "", err
	}
	return normalize(out), nil
}

// Set sets schema/key to value, given in GVariant text format.
func (s *Store) Set(ctx context.Context, schema, key, value string) error {
	_, err := s.run(ctx, schema, key, "set", schema, key, value)
	return err
}

// Reset restores the schema default of schema/key.
func (s *Store) Reset(ctx context.Context, schema, key string) error {
	_, err := s.run(ctx, schema, key, "reset", schema, key)
	return err
}

func (s *Store) run(ctx context.Context, schema, key string, args ...string) (string, error) {
	target := schema + " " + key

	cmd := exec.CommandContext(ctx, s.command, args...)
	cmd.Env = messagesInC(os.Environ())
	cmd.WaitDelay = waitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	logger.Debugf("running %s %s", s.command, strings.Join(args, " "))
	out, err := cmd.Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", bridge.NewError(bridge.ErrorKindTransportUnavailable, target, ctxErr)
	}
	if err == nil {
		return string(out), nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// the tool is missing or cannot be started
		return "", bridge.NewError(bridge.ErrorKindTransportUnavailable, target, err)
	}
	err = osutil.OutputErr(stderr.Bytes(), err)
	msg := err.Error()
	if strings.Contains(msg, "No such schema") || strings.Contains(msg, "No such key") {
		return "", bridge.NewError(bridge.ErrorKindTargetNotFound, target, err)
	}
	return "", bridge.NewError(bridge.ErrorKindRemoteRejected, target, err)
}

// messagesInC makes the tool report errors untranslated.
func messagesInC(env []string) []string {
	filtered := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, "LC_ALL=") || strings.HasPrefix(kv, "LC_MESSAGES=") || strings.HasPrefix(kv, "LANGUAGE=") {
			continue
		}
		filtered = append(filtered, kv)
	}
	return append(filtered, "LC_MESSAGES=C")
}

var typeAnnotations = []string{
	"byte ", "int16 ", "uint16 ", "int32 ", "uint32 ", "int64 ", "uint64 ",
	"handle ", "double ", "objectpath ", "signature ",
}

// normalize turns GVariant text such as "uint32 2700" or "'adwaita'"
// into the bare value.
func normalize(out string) string {
	s := strings.TrimSpace(out)
	for _, annotation := range typeAnnotations {
		if strings.HasPrefix(s, annotation) {
			s = strings.TrimPrefix(s, annotation)
			break
		}
	}
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return unescape(s[1 : len(s)-1])
	}
	return s
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			switch r {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
