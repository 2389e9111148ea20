// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2016-2026 Canonical Ltd
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

package osutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// GetenvBool tells whether the variable is set to a true value as
// understood by strconv.ParseBool. Unset or unparsable values yield dflt
// if given, false otherwise.
func GetenvBool(key string, dflt ...bool) bool {
	fallback := len(dflt) > 0 && dflt[0]
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}

// GetenvPathList returns the colon separated, absolute entries of the
// given environment variable. Relative entries are dropped, as mandated by
// the XDG base directory specification. When nothing usable is set the
// default list is returned.
func GetenvPathList(key string, dflt ...string) []string {
	var paths []string
	for _, p := range strings.Split(os.Getenv(key), ":") {
		if p == "" || !filepath.IsAbs(p) {
			continue
		}
		paths = append(paths, filepath.Clean(p))
	}
	if len(paths) == 0 {
		return dflt
	}
	return paths
}
