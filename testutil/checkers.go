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
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/check.v1"
)

type containsChecker struct {
	*check.CheckerInfo
}

// Contains is a Checker that looks for a needle in a haystack.
// The haystack can be a slice, an array or a string.
var Contains check.Checker = &containsChecker{
	&check.CheckerInfo{Name: "Contains", Params: []string{"haystack", "needle"}},
}

func (c *containsChecker) Check(params []interface{}, names []string) (result bool, error string) {
	defer func() {
		if v := recover(); v != nil {
			result = false
			error = fmt.Sprint(v)
		}
	}()
	haystack, needle := params[0], params[1]
	switch haystackV := reflect.ValueOf(haystack); haystackV.Kind() {
	case reflect.Slice, reflect.Array:
		needleV := reflect.ValueOf(needle)
		if haystackV.Type().Elem() != needleV.Type() {
			panic(fmt.Sprintf("haystack contains items of type %s but needle is a %s",
				haystackV.Type().Elem(), needleV.Type()))
		}
		for i := 0; i < haystackV.Len(); i++ {
			if reflect.DeepEqual(haystackV.Index(i).Interface(), needle) {
				return true, ""
			}
		}
		return false, ""
	case reflect.String:
		needleS, ok := needle.(string)
		if !ok {
			return false, "needle must be a string when the haystack is one"
		}
		return strings.Contains(haystackV.String(), needleS), ""
	default:
		return false, fmt.Sprintf("%T is not a supported haystack", haystack)
	}
}

type errorIsChecker struct {
	*check.CheckerInfo
}

// ErrorIs calls errors.Is with the provided arguments.
var ErrorIs check.Checker = &errorIsChecker{
	&check.CheckerInfo{Name: "ErrorIs", Params: []string{"error", "target"}},
}

func (*errorIsChecker) Check(params []interface{}, names []string) (result bool, errMsg string) {
	if params[0] == nil {
		return params[1] == nil, ""
	}
	err, ok := params[0].(error)
	if !ok {
		return false, "first argument must be an error"
	}
	target, ok := params[1].(error)
	if !ok {
		return false, "second argument must be an error"
	}
	return errors.Is(err, target), ""
}
