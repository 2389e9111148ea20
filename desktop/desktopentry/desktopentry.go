// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2023-2026 Canonical Ltd
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

// Package desktopentry parses the [Desktop Entry] group of freedesktop.org
// desktop files.
package desktopentry

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mvo5/goconfigparser"
)

const desktopEntryGroup = "Desktop Entry"

// DesktopEntry holds the keys of a desktop file needed to list
// applications.
type DesktopEntry struct {
	Filename string

	Type      string
	Name      string
	Comment   string
	Icon      string
	Exec      string
	NoDisplay bool
	Hidden    bool

	OnlyShowIn []string
	NotShownIn []string

	// localized values keyed by lower case "key[locale]"
	localized map[string]string
}

// Read parses the desktop file at filename.
func Read(filename string) (*DesktopEntry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(filename, f)
}

func splitList(value string) []string {
	var list []string
	for _, item := range strings.Split(value, ";") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func parseBool(value string) bool {
	return strings.TrimSpace(value) == "true"
}

// Parse parses the desktop file read from r; filename is only used in
// error messages.
func Parse(filename string, r io.Reader) (*DesktopEntry, error) {
	cfg := goconfigparser.New()
	if err := cfg.Read(r); err != nil {
		return nil, fmt.Errorf("desktop file %q badly formed: %v", filename, err)
	}
	options, err := cfg.Options(desktopEntryGroup)
	if err != nil {
		return nil, fmt.Errorf("desktop file %q has no [Desktop Entry] group", filename)
	}

	de := &DesktopEntry{
		Filename:  filename,
		localized: make(map[string]string),
	}
	for _, option := range options {
		value, err := cfg.Get(desktopEntryGroup, option)
		if err != nil {
			continue
		}
		if i := strings.IndexByte(option, '['); i > 0 && strings.HasSuffix(option, "]") {
			base, locale := option[:i], option[i+1:len(option)-1]
			de.localized[localizedKey(base, locale)] = value
			continue
		}
		// keys are case sensitive, but be lenient about how the parser
		// reports them
		switch strings.ToLower(option) {
		case "type":
			de.Type = value
		case "name":
			de.Name = value
		case "comment":
			de.Comment = value
		case "icon":
			de.Icon = value
		case "exec":
			de.Exec = value
		case "nodisplay":
			de.NoDisplay = parseBool(value)
		case "hidden":
			de.Hidden = parseBool(value)
		case "onlyshowin":
			de.OnlyShowIn = splitList(value)
		case "notshowin":
			de.NotShownIn = splitList(value)
		}
	}
	return de, nil
}

// localeVariants returns the lookup order of the XDG desktop entry
// specification for a POSIX locale (lang_COUNTRY.ENCODING@MODIFIER).
func localeVariants(locale string) []string {
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		// drop the encoding, keep a modifier following it
		rest := locale[i:]
		locale = locale[:i]
		if j := strings.IndexByte(rest, '@'); j >= 0 {
			locale += rest[j:]
		}
	}
	if locale == "" {
		return nil
	}
	lang, modifier := locale, ""
	if i := strings.IndexByte(lang, '@'); i >= 0 {
		lang, modifier = lang[:i], lang[i:]
	}
	country := ""
	if i := strings.IndexByte(lang, '_'); i >= 0 {
		lang, country = lang[:i], lang[i:]
	}

	var variants []string
	if country != "" && modifier != "" {
		variants = append(variants, lang+country+modifier)
	}
	if country != "" {
		variants = append(variants, lang+country)
	}
	if modifier != "" {
		variants = append(variants, lang+modifier)
	}
	return append(variants, lang)
}

func localizedKey(key, locale string) string {
	return strings.ToLower(key + "[" + locale + "]")
}

func (de *DesktopEntry) localizedValue(key, dflt, locale string) string {
	for _, variant := range localeVariants(locale) {
		if value, ok := de.localized[localizedKey(key, variant)]; ok {
			return value
		}
	}
	return dflt
}

// LocalizedName returns the Name for the given locale, falling back to
// the untranslated one.
func (de *DesktopEntry) LocalizedName(locale string) string {
	return de.localizedValue("name", de.Name, locale)
}

// LocalizedComment returns the Comment for the given locale, falling back
// to the untranslated one.
func (de *DesktopEntry) LocalizedComment(locale string) string {
	return de.localizedValue("comment", de.Comment, locale)
}

func isOneOfIn(of []string, other []string) bool {
	for _, one := range of {
		for _, two := range other {
			if one == two {
				return true
			}
		}
	}
	return false
}

// ShouldShow returns whether the entry should appear in application
// listings of the given desktop environments (as in $XDG_CURRENT_DESKTOP).
func (de *DesktopEntry) ShouldShow(currentDesktop []string) bool {
	if de.Type != "Application" {
		return false
	}
	if de.Hidden || de.NoDisplay {
		return false
	}
	if de.Name == "" {
		return false
	}
	if len(de.OnlyShowIn) > 0 && !isOneOfIn(currentDesktop, de.OnlyShowIn) {
		return false
	}
	if len(de.NotShownIn) > 0 && isOneOfIn(currentDesktop, de.NotShownIn) {
		return false
	}
	return true
}
