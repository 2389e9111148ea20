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

// Package config loads the user configuration of desktop-settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/desktop/apps"
	"github.com/snapcore/desktop-settings/gsettings"
)

// DefaultAgentIdleTimeout is used unless configured otherwise.
const DefaultAgentIdleTimeout = 30 * time.Second

// Config holds the tunables of the command line tool and the agent.
type Config struct {
	// CallTimeout bounds every bus call and store round trip.
	CallTimeout time.Duration
	// GSettingsCommand is the tool driving the configuration store.
	GSettingsCommand string
	// AgentIdleTimeout is how long the agent waits for requests before
	// exiting.
	AgentIdleTimeout time.Duration
	// IconSize is the preferred application icon size in pixels.
	IconSize int
}

type configYAML struct {
	CallTimeout      string `yaml:"call-timeout"`
	GSettingsCommand string `yaml:"gsettings-command"`
	AgentIdleTimeout string `yaml:"agent-idle-timeout"`
	IconSize         *int   `yaml:"icon-size"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		CallTimeout:      bridge.DefaultCallTimeout,
		GSettingsCommand: gsettings.DefaultCommand,
		AgentIdleTimeout: DefaultAgentIdleTimeout,
		IconSize:         apps.DefaultIconSize,
	}
}

func parsePositiveDuration(key, value string, dflt time.Duration) (time.Duration, error) {
	if value == "" {
		return dflt, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %v", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return d, nil
}

// Parse reads a configuration from r. Keys that are not given keep their
// default.
func Parse(r io.Reader) (*Config, error) {
	var raw configYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot parse configuration: %v", err)
	}

	cfg := Default()
	var err error
	if cfg.CallTimeout, err = parsePositiveDuration("call-timeout", raw.CallTimeout, cfg.CallTimeout); err != nil {
		return nil, err
	}
	if cfg.AgentIdleTimeout, err = parsePositiveDuration("agent-idle-timeout", raw.AgentIdleTimeout, cfg.AgentIdleTimeout); err != nil {
		return nil, err
	}
	if raw.GSettingsCommand != "" {
		cfg.GSettingsCommand = raw.GSettingsCommand
	}
	if raw.IconSize != nil {
		if *raw.IconSize <= 0 {
			return nil, fmt.Errorf("invalid icon-size %d: must be positive", *raw.IconSize)
		}
		cfg.IconSize = *raw.IconSize
	}
	return cfg, nil
}

// Load reads the configuration file at path. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return cfg, nil
}
