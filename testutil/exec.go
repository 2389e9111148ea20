// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2015-2026 Canonical Ltd
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

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/check.v1"
)

// MockCmd is a fake executable placed first in PATH that records how it
// was invoked.
type MockCmd struct {
	binDir  string
	exeFile string
	logFile string
}

const (
	argSep  = "\000"
	callSep = "\036"
)

// Every invocation is logged as its NUL terminated argv followed by an
// ASCII record separator, so arguments may contain newlines.
const scriptTpl = `#!/bin/bash
printf '%%s\0' "${0##*/}" "$@" >> %[1]q
printf '\036' >> %[1]q
%[2]s
`

// MockCommand installs an executable called basename in a temporary
// directory prepended to PATH. The executable runs script after logging
// its arguments, an empty script exits successfully.
func MockCommand(c *check.C, basename, script string) *MockCmd {
	binDir := c.MkDir()
	cmd := &MockCmd{
		binDir:  binDir,
		exeFile: filepath.Join(binDir, basename),
		logFile: filepath.Join(binDir, basename+".log"),
	}
	content := fmt.Sprintf(scriptTpl, cmd.logFile, script)
	if err := os.WriteFile(cmd.exeFile, []byte(content), 0700); err != nil {
		panic(err)
	}
	os.Setenv("PATH", binDir+":"+os.Getenv("PATH"))
	return cmd
}

// Restore takes the mock out of PATH.
func (cmd *MockCmd) Restore() {
	var kept []string
	for _, dir := range strings.Split(os.Getenv("PATH"), ":") {
		if dir != cmd.binDir {
			kept = append(kept, dir)
		}
	}
	os.Setenv("PATH", strings.Join(kept, ":"))
}

// Calls returns the argv of every invocation so far, oldest first, or
// nil if there was none.
func (cmd *MockCmd) Calls() [][]string {
	raw, err := os.ReadFile(cmd.logFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		panic(err)
	}
	var calls [][]string
	for _, record := range strings.Split(string(raw), callSep) {
		if record == "" {
			continue
		}
		calls = append(calls, strings.Split(strings.TrimSuffix(record, argSep), argSep))
	}
	return calls
}

// ForgetCalls drops the invocations recorded so far.
func (cmd *MockCmd) ForgetCalls() {
	if err := os.Remove(cmd.logFile); err != nil && !os.IsNotExist(err) {
		panic(err)
	}
}

// BinDir is the directory holding the mock.
func (cmd *MockCmd) BinDir() string {
	return cmd.binDir
}

// Exe is the full path of the mock.
func (cmd *MockCmd) Exe() string {
	return cmd.exeFile
}
