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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/jessevdk/go-flags"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/config"
	"github.com/snapcore/desktop-settings/dirs"
	"github.com/snapcore/desktop-settings/gsettings"
	"github.com/snapcore/desktop-settings/i18n"
	"github.com/snapcore/desktop-settings/logger"
)

// Version is set at build time.
var Version = "unknown"

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

type options struct {
	Version func() `long:"version"`
	Config  string `long:"config"`
	DryRun  bool   `long:"dry-run"`
	Debug   bool   `long:"debug"`
}

type argDesc struct {
	name string
	desc string
}

var optionsData options

var ErrExtraArgs = fmt.Errorf(i18n.G("too many arguments for command"))

type cmdInfo struct {
	name, shortHelp, longHelp string
	builder                   func() flags.Commander
	hidden                    bool
	optDescs                  map[string]string
	argDescs                  []argDesc
}

var commands []*cmdInfo

func addCommand(name, shortHelp, longHelp string, builder func() flags.Commander, optDescs map[string]string, argDescs []argDesc) *cmdInfo {
	info := &cmdInfo{
		name:      name,
		shortHelp: shortHelp,
		longHelp:  longHelp,
		builder:   builder,
		optDescs:  optDescs,
		argDescs:  argDescs,
	}
	commands = append(commands, info)
	return info
}

func lintDesc(cmdName, optName, desc, origDesc string) {
	if len(optName) == 0 {
		logger.Panicf("option on %q has no name", cmdName)
	}
	if len(origDesc) != 0 {
		logger.Panicf("description of %s's %q of %q set from tag (=> no i18n)", cmdName, optName, origDesc)
	}
	if len(desc) > 0 {
		if !unicode.IsUpper(([]rune)(desc)[0]) {
			logger.Panicf("description of %s's %q not uppercase: %q", cmdName, optName, desc)
		}
	}
}

func lintArg(cmdName, optName, desc, origDesc string) {
	lintDesc(cmdName, optName, desc, origDesc)
	if optName[0] != '<' || optName[len(optName)-1] != '>' {
		logger.Panicf("argument %q's %q should have <>s", cmdName, optName)
	}
}

// Parser creates and populates a fresh parser.
func Parser() *flags.Parser {
	optionsData = options{}
	optionsData.Version = func() {
		fmt.Fprintf(Stdout, "desktop-settings %s\n", Version)
		panic(&exitStatus{0})
	}
	parser := flags.NewParser(&optionsData, flags.HelpFlag|flags.PassDoubleDash|flags.PassAfterNonOption)
	parser.ShortDescription = i18n.G("Tool to inspect and change desktop settings")
	parser.LongDescription = i18n.G(`
Read and change the settings of the desktop session: night light, power
profiles, screen brightness, shell extensions, input devices and more.

Start with 'desktop-settings settings' to see the known settings and their
current values.
`)
	parser.FindOptionByLongName("version").Description = i18n.G("Print the version and exit")
	parser.FindOptionByLongName("config").Description = i18n.G("Use the given configuration file")
	parser.FindOptionByLongName("dry-run").Description = i18n.G("Read the configuration store but only print the changes")
	parser.FindOptionByLongName("debug").Description = i18n.G("Log the traffic with the desktop services")
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		dryRunStore = nil
		if cmd == nil {
			return nil
		}
		if optionsData.Debug {
			logger.SimpleSetup(true)
		}
		if err := cmd.Execute(args); err != nil {
			return err
		}
		printDryRun()
		return nil
	}

	for _, c := range commands {
		obj := c.builder()
		cmd, err := parser.AddCommand(c.name, c.shortHelp, strings.TrimSpace(c.longHelp), obj)
		if err != nil {
			logger.Panicf("cannot add command %q: %v", c.name, err)
		}
		cmd.Hidden = c.hidden

		opts := cmd.Options()
		if c.optDescs != nil && len(opts) != len(c.optDescs) {
			logger.Panicf("wrong number of option descriptions for %s: expected %d, got %d", c.name, len(opts), len(c.optDescs))
		}
		for _, opt := range opts {
			name := opt.LongName
			if name == "" {
				name = string(opt.ShortName)
			}
			desc, ok := c.optDescs[name]
			if !(c.optDescs == nil || ok) {
				logger.Panicf("%s missing description for %s", c.name, name)
			}
			lintDesc(c.name, name, desc, opt.Description)
			if desc != "" {
				opt.Description = desc
			}
		}

		args := cmd.Args()
		if c.argDescs != nil && len(args) != len(c.argDescs) {
			logger.Panicf("wrong number of argument descriptions for %s: expected %d, got %d", c.name, len(args), len(c.argDescs))
		}
		for i, arg := range args {
			name, desc := arg.Name, ""
			if c.argDescs != nil {
				name = c.argDescs[i].name
				desc = c.argDescs[i].desc
			}
			lintArg(c.name, name, desc, arg.Description)
			arg.Name = name
			arg.Description = desc
		}
	}
	return parser
}

var (
	busConnector bridge.Connector = bridge.DefaultConnector
	newStore                      = func(cfg *config.Config) bridge.Store {
		return gsettings.New(cfg.GSettingsCommand)
	}
)

// dryRunStore records the store writes of --dry-run.
var dryRunStore *gsettings.DryRun

func loadConfig() (*config.Config, error) {
	path := optionsData.Config
	if path == "" {
		path = dirs.ConfigFile()
	}
	return config.Load(path)
}

// newBridge returns a bridge to the desktop backends, configured from
// the configuration file.
func newBridge() (*bridge.Bridge, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store := newStore(cfg)
	if optionsData.DryRun {
		dryRunStore = gsettings.NewDryRun(store)
		store = dryRunStore
	}
	b := bridge.New(&bridge.Options{
		Store:       store,
		Connect:     busConnector,
		CallTimeout: cfg.CallTimeout,
	})
	return b, cfg, nil
}

// commandContext is the context of a single command run.
var commandContext = context.Background

func init() {
	logger.SimpleSetup(false)
}

var isStdoutTTY = terminal.IsTerminal(1)

var termWidth = termWidthImpl

// termWidthImpl returns the width of the terminal stdout is connected to.
func termWidthImpl() int {
	if !isStdoutTTY {
		return 80
	}
	width, _, err := terminal.GetSize(1)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func main() {
	defer func() {
		if v := recover(); v != nil {
			if e, ok := v.(*exitStatus); ok {
				os.Exit(e.code)
			}
			panic(v)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(Stderr, i18n.G("error: %v\n"), err)
		os.Exit(1)
	}
}

type exitStatus struct {
	code int
}

func (e *exitStatus) Error() string {
	return fmt.Sprintf("internal error: exitStatus{%d} being handled as normal error", e.code)
}

func printDryRun() {
	if dryRunStore == nil {
		return
	}
	for _, w := range dryRunStore.Writes() {
		// TRANSLATORS: %s is a configuration store operation like "set schema key value"
		fmt.Fprintf(Stdout, i18n.G("Would %s\n"), w)
	}
}

func run() error {
	parser := Parser()
	_, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok {
			if e.Type == flags.ErrHelp || e.Type == flags.ErrCommandRequired {
				if parser.Command.Active != nil && parser.Command.Active.Name == "help" {
					parser.Command.Active = nil
				}
				parser.WriteHelp(Stdout)
				return nil
			}
			if e.Type == flags.ErrUnknownCommand {
				return fmt.Errorf(i18n.G(`unknown command %q, see "desktop-settings --help"`), os.Args[1])
			}
		}
	}
	return err
}
