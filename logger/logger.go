// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2014-2026 Canonical Ltd
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

// Package logger is the process wide log of the command line tool and
// the session agent. Backend round trips are logged at debug level.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/snapcore/desktop-settings/osutil"
)

// A Logger receives formatted messages.
type Logger interface {
	// Notice is for messages the user should see.
	Notice(msg string)
	// Debug is for tracing backend traffic, shown only when debugging
	// is enabled.
	Debug(msg string)
}

const (
	// DefaultFlags are used when logging to a terminal.
	DefaultFlags = log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile
	// JournalFlags are used when the journal adds its own timestamps.
	JournalFlags = log.Lshortfile

	debugEnvVar = "DESKTOP_SETTINGS_DEBUG"
)

type nullLogger struct{}

func (nullLogger) Notice(string) {}
func (nullLogger) Debug(string)  {}

// NullLogger drops everything.
var NullLogger = nullLogger{}

var (
	logger Logger = NullLogger
	lock   sync.Mutex
)

// Panicf logs the message as a notice and panics with it.
func Panicf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)

	lock.Lock()
	defer lock.Unlock()

	logger.Notice("PANIC " + msg)
	panic(msg)
}

// Noticef notifies the user of something.
func Noticef(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)

	lock.Lock()
	defer lock.Unlock()

	logger.Notice(msg)
}

// Debugf records something in the debug log.
func Debugf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)

	lock.Lock()
	defer lock.Unlock()

	logger.Debug(msg)
}

// SetLogger sets the global logger.
func SetLogger(l Logger) {
	lock.Lock()
	defer lock.Unlock()

	logger = l
}

// MockLogger replaces the global logger with one writing to a buffer.
// Debug messages are kept only if enabled through the environment.
func MockLogger() (buf *bytes.Buffer, restore func()) {
	return mockLogger(false)
}

// MockDebugLogger is like MockLogger but keeps debug messages.
func MockDebugLogger() (buf *bytes.Buffer, restore func()) {
	return mockLogger(true)
}

func mockLogger(debug bool) (*bytes.Buffer, func()) {
	buf := &bytes.Buffer{}
	old := logger
	SetLogger(&Log{log: log.New(buf, "", DefaultFlags), debug: debug})
	return buf, func() {
		SetLogger(old)
	}
}

// Log writes messages through a log.Logger.
type Log struct {
	log *log.Logger

	debug bool
}

// Options configures a Log.
type Options struct {
	// Flags are the log.Logger flags.
	Flags int
	// Debug forces debug messages on, they are otherwise enabled by
	// setting DESKTOP_SETTINGS_DEBUG.
	Debug bool
}

// New returns a Log writing to w.
func New(w io.Writer, opts *Options) *Log {
	if opts == nil {
		opts = &Options{Flags: DefaultFlags}
	}
	return &Log{
		log:   log.New(w, "", opts.Flags),
		debug: opts.Debug,
	}
}

func (l *Log) debugEnabled() bool {
	return l.debug || osutil.GetenvBool(debugEnvVar)
}

// Debug prints msg if debugging is enabled.
func (l *Log) Debug(msg string) {
	if l.debugEnabled() {
		l.log.Output(3, "DEBUG: "+msg)
	}
}

// Notice prints msg.
func (l *Log) Notice(msg string) {
	l.log.Output(3, msg)
}

// underJournal tells whether stderr is connected to the journal, as is
// the case for the agent started as a user service.
func underJournal() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// SimpleSetup logs to stderr, without timestamps when the journal
// provides them.
func SimpleSetup(debug bool) {
	flags := DefaultFlags
	if underJournal() {
		flags = JournalFlags
	}
	SetLogger(New(os.Stderr, &Options{Flags: flags, Debug: debug}))
}
