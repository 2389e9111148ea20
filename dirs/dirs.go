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

package dirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/snapcore/desktop-settings/osutil"
)

// the various file paths
var (
	GlobalRootDir string

	XdgRuntimeDirBase string

	// SystemDataDirs are the XDG data directories used when
	// $XDG_DATA_DIRS is unset.
	SystemDataDirs []string
)

const (
	defaultConfigDirName = "desktop-settings"
	configFileName       = "config.yaml"
	agentSocketName      = "desktop-settings-agent.socket"
)

func init() {
	// init the global directories at startup
	root := os.Getenv("DESKTOP_SETTINGS_GLOBAL_ROOT")

	SetRootDir(root)
}

// SetRootDir allows settings a new global root directory, this is useful
// for e.g. chroot operations
func SetRootDir(rootdir string) {
	if rootdir == "" {
		rootdir = "/"
	}
	GlobalRootDir = rootdir

	XdgRuntimeDirBase = filepath.Join(rootdir, "/run/user")
	SystemDataDirs = []string{
		filepath.Join(rootdir, "/usr/local/share"),
		filepath.Join(rootdir, "/usr/share"),
	}
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// ConfigFile returns the location of the user configuration file,
// honouring $XDG_CONFIG_HOME.
func ConfigFile() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" || !filepath.IsAbs(configHome) {
		configHome = filepath.Join(homeDir(), ".config")
	}
	return filepath.Join(configHome, defaultConfigDirName, configFileName)
}

// XdgRuntimeDir returns the runtime directory of the current user,
// honouring $XDG_RUNTIME_DIR.
func XdgRuntimeDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	return fmt.Sprintf("%s/%d", XdgRuntimeDirBase, os.Getuid())
}

// AgentSocket is the path of the socket the session agent listens on.
func AgentSocket() string {
	return filepath.Join(XdgRuntimeDir(), agentSocketName)
}

// DataHome returns $XDG_DATA_HOME or its default.
func DataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" && filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(homeDir(), ".local/share")
}

// DataDirs returns the user data directory followed by the system ones,
// in order of preference.
func DataDirs() []string {
	dirs := []string{DataHome()}
	return append(dirs, osutil.GetenvPathList("XDG_DATA_DIRS", SystemDataDirs...)...)
}
