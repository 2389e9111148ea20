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

// Package apps builds the inventory of installed desktop applications
// from XDG desktop entries.
package apps

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/snapcore/desktop-settings/desktop/desktopentry"
	"github.com/snapcore/desktop-settings/dirs"
	"github.com/snapcore/desktop-settings/i18n"
	"github.com/snapcore/desktop-settings/logger"
	"github.com/snapcore/desktop-settings/osutil"
)

// DefaultIconSize is the preferred icon size in pixels.
const DefaultIconSize = 128

// FallbackIcon is the icon used for applications whose icon cannot be
// found.
const FallbackIcon = "info"

// hicolor sizes searched after the preferred one, largest first
var iconSizes = []int{256, 192, 128, 96, 64, 48, 32, 24, 16}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// Options controls where and how applications are looked up. Zero values
// select the defaults of the current session.
type Options struct {
	// DataDirs are the XDG data directories, in order of preference.
	DataDirs []string
	// Locale selects translated names and descriptions.
	Locale string
	// CurrentDesktop lists the desktop environments of the session.
	CurrentDesktop []string
	// IconSize is the preferred icon size in pixels.
	IconSize int
}

func (opts *Options) withDefaults() Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.DataDirs == nil {
		o.DataDirs = dirs.DataDirs()
	}
	if o.Locale == "" {
		o.Locale = i18n.CurrentLocale()
	}
	if o.CurrentDesktop == nil {
		if current := os.Getenv("XDG_CURRENT_DESKTOP"); current != "" {
			o.CurrentDesktop = strings.Split(current, ":")
		}
	}
	if o.IconSize <= 0 {
		o.IconSize = DefaultIconSize
	}
	return o
}

// App describes an installed application.
type App struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Exec        string `json:"exec,omitempty"`
	// IconPath is the resolved icon file, empty when none was found.
	IconPath string `json:"icon-path,omitempty"`
}

// IconDataURI returns the icon as a data URI. Only PNG icons are supported.
func (a *App) IconDataURI() (string, error) {
	if a.IconPath == "" {
		return "", fmt.Errorf("application %q has no icon", a.ID)
	}
	data, err := os.ReadFile(a.IconPath)
	if err != nil {
		return "", err
	}
	if !bytes.HasPrefix(data, pngMagic) {
		return "", fmt.Errorf("icon %q is not a PNG image", a.IconPath)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// desktopID computes the desktop file id of path relative to the
// applications directory it was found in.
func desktopID(appsDir, path string) string {
	rel, err := filepath.Rel(appsDir, path)
	if err != nil {
		return filepath.Base(path)
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "-")
}

// List returns the applications that should be shown in the current
// session, sorted by name. An entry found in an earlier data directory
// shadows entries with the same desktop id in later ones.
func List(opts *Options) ([]*App, error) {
	o := opts.withDefaults()

	seen := make(map[string]bool)
	var apps []*App
	for _, dataDir := range o.DataDirs {
		appsDir := filepath.Join(dataDir, "applications")
		if !osutil.IsDirectory(appsDir) {
			continue
		}
		err := filepath.WalkDir(appsDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Debugf("cannot read %s: %v", path, err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(path, ".desktop") {
				return nil
			}
			id := desktopID(appsDir, path)
			if seen[id] {
				return nil
			}
			seen[id] = true

			de, err := desktopentry.Read(path)
			if err != nil {
				logger.Debugf("ignoring %s: %v", path, err)
				return nil
			}
			if !de.ShouldShow(o.CurrentDesktop) {
				return nil
			}
			apps = append(apps, &App{
				ID:          strings.TrimSuffix(id, ".desktop"),
				Name:        de.LocalizedName(o.Locale),
				Description: de.LocalizedComment(o.Locale),
				Exec:        de.Exec,
				IconPath:    findIcon(de.Icon, o),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(apps, func(i, j int) bool {
		ni, nj := strings.ToLower(apps[i].Name), strings.ToLower(apps[j].Name)
		if ni != nj {
			return ni < nj
		}
		return apps[i].ID < apps[j].ID
	})
	return apps, nil
}

// findIcon resolves the Icon key of an entry. Entries without one get
// no icon, the fallback only replaces icons that cannot be found.
func findIcon(icon string, o Options) string {
	if icon == "" {
		return ""
	}
	if filepath.IsAbs(icon) {
		if osutil.FileExists(icon) {
			return icon
		}
	} else if path := lookupIcon(icon, o); path != "" {
		return path
	}
	return lookupIcon(FallbackIcon, o)
}

func lookupIcon(name string, o Options) string {
	sizes := append([]int{o.IconSize}, iconSizes...)
	for _, dataDir := range o.DataDirs {
		for _, size := range sizes {
			path := filepath.Join(dataDir, "icons/hicolor", fmt.Sprintf("%dx%d", size, size), "apps", name+".png")
			if osutil.FileExists(path) {
				return path
			}
		}
	}
	for _, dataDir := range o.DataDirs {
		path := filepath.Join(dataDir, "pixmaps", name+".png")
		if osutil.FileExists(path) {
			return path
		}
	}
	return ""
}
