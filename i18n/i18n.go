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

package i18n

//go:generate update-pot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/snapcore/go-gettext"

	"github.com/snapcore/desktop-settings/dirs"
	"github.com/snapcore/desktop-settings/osutil"
)

// TEXTDOMAIN is the message domain used by desktop-settings; see
// dgettext(3) for more information.
var (
	TEXTDOMAIN   = "desktop-settings"
	locale       gettext.Catalog
	translations gettext.Translations
)

func init() {
	bindTextDomain(TEXTDOMAIN, filepath.Join(dirs.GlobalRootDir, "/usr/share/locale"))
	setLocale("")
}

func langpackResolver(baseRoot string, locale string, domain string) string {
	// first check for the real locale (e.g. de_DE)
	// then try to simplify the locale (e.g. de_DE -> de)
	locales := []string{locale, strings.SplitN(locale, "_", 2)[0]}
	for _, locale := range locales {
		r := filepath.Join(locale, "LC_MESSAGES", fmt.Sprintf("%s.mo", domain))

		// ubuntu uses /usr/share/locale-langpack and patches the glibc
		// gettext implementation
		langpack := filepath.Join(baseRoot, "..", "locale-langpack", r)
		if osutil.FileExists(langpack) {
			return langpack
		}

		regular := filepath.Join(baseRoot, r)
		if osutil.FileExists(regular) {
			return regular
		}
	}

	return ""
}

func bindTextDomain(domain, dir string) {
	translations = gettext.NewTranslations(dir, domain, langpackResolver)
}

// CurrentLocale returns the locale messages are translated into, as
// derived from the environment (e.g. "de_DE"). It is empty for the C
// and POSIX locales.
func CurrentLocale() string {
	return simplifyLocale(localeFromEnv())
}

func localeFromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if loc := os.Getenv(key); loc != "" {
			return loc
		}
	}
	return ""
}

func simplifyLocale(loc string) string {
	loc = strings.SplitN(loc, ".", 2)[0]
	loc = strings.SplitN(loc, "@", 2)[0]
	if loc == "C" || loc == "POSIX" {
		return ""
	}
	return loc
}

func setLocale(loc string) {
	if loc == "" {
		loc = CurrentLocale()
	}

	locale = translations.Locale(loc)
}

// G is the shorthand for Gettext
func G(msgid string) string {
	return locale.Gettext(msgid)
}

// NG is the shorthand for NGettext
func NG(msgid string, msgidPlural string, n int) string {
	if n < 0 {
		n = 0
	}
	return locale.NGettext(msgid, msgidPlural, uint32(n))
}
