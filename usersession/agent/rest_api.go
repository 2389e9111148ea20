// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2019-2026 Canonical Ltd
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

package agent

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/snapcore/desktop-settings/bridge"
	"github.com/snapcore/desktop-settings/desktop/apps"
	"github.com/snapcore/desktop-settings/desktop/battery"
	"github.com/snapcore/desktop-settings/desktop/extensions"
	"github.com/snapcore/desktop-settings/desktop/power"
	"github.com/snapcore/desktop-settings/desktop/screen"
	"github.com/snapcore/desktop-settings/desktop/screenshot"
	"github.com/snapcore/desktop-settings/desktop/settings"
	"github.com/snapcore/desktop-settings/logger"
)

var restApi = []*Command{
	rootCmd,
	sessionInfoCmd,
	settingsCmd,
	settingCmd,
	extensionsCmd,
	extensionCmd,
	powerCmd,
	screenCmd,
	batteryCmd,
	appsCmd,
	pickColorCmd,
}

var (
	rootCmd = &Command{
		Path: "/",
		GET:  nil,
	}

	sessionInfoCmd = &Command{
		Path: "/v1/session-info",
		GET:  sessionInfo,
	}

	settingsCmd = &Command{
		Path: "/v1/settings",
		GET:  getSettings,
	}

	settingCmd = &Command{
		Path:   "/v1/settings/{name}",
		GET:    getSetting,
		PUT:    putSetting,
		DELETE: resetSetting,
	}

	extensionsCmd = &Command{
		Path: "/v1/extensions",
		GET:  getExtensions,
	}

	extensionCmd = &Command{
		Path: "/v1/extensions/{uuid}",
		POST: postExtension,
	}

	powerCmd = &Command{
		Path: "/v1/power",
		POST: postPower,
	}

	screenCmd = &Command{
		Path: "/v1/screen",
		POST: postScreen,
	}

	batteryCmd = &Command{
		Path: "/v1/battery",
		GET:  getBattery,
	}

	appsCmd = &Command{
		Path: "/v1/apps",
		GET:  getApps,
	}

	pickColorCmd = &Command{
		Path: "/v1/pick-color",
		POST: postPickColor,
	}
)

func sessionInfo(c *Command, r *http.Request) Response {
	m := map[string]interface{}{
		"version": c.s.Version,
	}
	return SyncResponse(m)
}

func validateJSONRequest(r *http.Request) (valid bool, errResp Response) {
	contentType := r.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false, BadRequest("cannot parse content type: %v", err)
	}

	if mediaType != "application/json" {
		return false, BadRequest("unknown content type: %s", contentType)
	}

	charset := strings.ToUpper(params["charset"])
	if charset != "" && charset != "UTF-8" {
		return false, BadRequest("unknown charset in content type: %s", contentType)
	}

	return true, nil
}

func decodeJSONRequest(r *http.Request, what string, v interface{}) Response {
	if ok, resp := validateJSONRequest(r); !ok {
		return resp
	}
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		return BadRequest("cannot decode request body into %s: %v", what, err)
	}
	return nil
}

type settingInfo struct {
	Name       string `json:"name"`
	Summary    string `json:"summary,omitempty"`
	Type       string `json:"type,omitempty"`
	Resettable bool   `json:"resettable,omitempty"`
	Value      string `json:"value"`
	// Error is set instead of Value when the current value is not
	// available.
	Error string `json:"error,omitempty"`
}

func getSettings(c *Command, r *http.Request) Response {
	ctx := r.Context()
	all := settings.All()
	infos := make([]settingInfo, 0, len(all))
	for _, setting := range all {
		info := settingInfo{
			Name:       setting.Name,
			Summary:    setting.Summary,
			Type:       setting.Type,
			Resettable: setting.Resettable(),
		}
		value, err := setting.Get(ctx, c.s.bridge)
		if err != nil {
			info.Error = err.Error()
		} else {
			info.Value = value
		}
		infos = append(infos, info)
	}
	return SyncResponse(infos)
}

func lookupSetting(r *http.Request) (*settings.Setting, Response) {
	setting, err := settings.Lookup(mux.Vars(r)["name"])
	if err != nil {
		return nil, &resp{
			Type:   ResponseTypeError,
			Status: 404,
			Result: &errorResult{Message: err.Error(), Kind: errorKindUnknownSetting},
		}
	}
	return setting, nil
}

func getSetting(c *Command, r *http.Request) Response {
	setting, rsp := lookupSetting(r)
	if rsp != nil {
		return rsp
	}
	value, err := setting.Get(r.Context(), c.s.bridge)
	if err != nil {
		return BackendError(err)
	}
	return SyncResponse(&settingInfo{Name: setting.Name, Value: value})
}

type settingValue struct {
	Value *string `json:"value"`
}

func putSetting(c *Command, r *http.Request) Response {
	setting, rsp := lookupSetting(r)
	if rsp != nil {
		return rsp
	}
	var v settingValue
	if rsp := decodeJSONRequest(r, "setting value", &v); rsp != nil {
		return rsp
	}
	if v.Value == nil {
		return BadRequest("missing value for setting %q", setting.Name)
	}
	if err := setting.Set(r.Context(), c.s.bridge, *v.Value); err != nil {
		if _, ok := bridge.KindOf(err); !ok {
			// the value could not be parsed
			return BadRequest("cannot set %q: %v", setting.Name, err)
		}
		return BackendError(err)
	}
	return SyncResponse(nil)
}

func resetSetting(c *Command, r *http.Request) Response {
	setting, rsp := lookupSetting(r)
	if rsp != nil {
		return rsp
	}
	if err := setting.Reset(r.Context(), c.s.bridge); err != nil {
		if errors.Is(err, settings.ErrNotResettable) {
			return &resp{
				Type:   ResponseTypeError,
				Status: 400,
				Result: &errorResult{Message: "setting " + setting.Name + " cannot be reset", Kind: errorKindNotResettable},
			}
		}
		return BackendError(err)
	}
	return SyncResponse(nil)
}

func getExtensions(c *Command, r *http.Request) Response {
	exts, err := extensions.List(r.Context(), c.s.bridge)
	if err != nil {
		return BackendError(err)
	}
	if exts == nil {
		exts = []extensions.Extension{}
	}
	return SyncResponse(exts)
}

type actionInstruction struct {
	Action string `json:"action"`
}

type extensionAction func(ctx context.Context, c *Command, uuid string) (interface{}, error)

func extensionResult(f func(context.Context, *Command, string) (bool, error)) extensionAction {
	return func(ctx context.Context, c *Command, uuid string) (interface{}, error) {
		ok, err := f(ctx, c, uuid)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": ok}, nil
	}
}

var extensionActions = map[string]extensionAction{
	"enable": extensionResult(func(ctx context.Context, c *Command, uuid string) (bool, error) {
		return extensions.Enable(ctx, c.s.bridge, uuid)
	}),
	"disable": extensionResult(func(ctx context.Context, c *Command, uuid string) (bool, error) {
		return extensions.Disable(ctx, c.s.bridge, uuid)
	}),
	"uninstall": extensionResult(func(ctx context.Context, c *Command, uuid string) (bool, error) {
		return extensions.Uninstall(ctx, c.s.bridge, uuid)
	}),
	"launch-prefs": func(ctx context.Context, c *Command, uuid string) (interface{}, error) {
		return nil, extensions.LaunchPrefs(ctx, c.s.bridge, uuid)
	},
}

func postExtension(c *Command, r *http.Request) Response {
	var inst actionInstruction
	if rsp := decodeJSONRequest(r, "extension action", &inst); rsp != nil {
		return rsp
	}
	impl := extensionActions[inst.Action]
	if impl == nil {
		return BadRequest("unknown action %s", inst.Action)
	}
	uuid := mux.Vars(r)["uuid"]
	result, err := impl(r.Context(), c, uuid)
	if err != nil {
		return BackendError(err)
	}
	return SyncResponse(result)
}

var powerActions = map[string]func(context.Context, *Command) error{
	"suspend": func(ctx context.Context, c *Command) error {
		return power.Suspend(ctx, c.s.bridge)
	},
	"power-off": func(ctx context.Context, c *Command) error {
		return power.PowerOff(ctx, c.s.bridge)
	},
	"reboot": func(ctx context.Context, c *Command) error {
		return power.Reboot(ctx, c.s.bridge)
	},
}

var screenActions = map[string]func(context.Context, *Command) error{
	"step-up": func(ctx context.Context, c *Command) error {
		return screen.StepUp(ctx, c.s.bridge)
	},
	"step-down": func(ctx context.Context, c *Command) error {
		return screen.StepDown(ctx, c.s.bridge)
	},
}

func postAction(c *Command, r *http.Request, what string, actions map[string]func(context.Context, *Command) error) Response {
	var inst actionInstruction
	if rsp := decodeJSONRequest(r, what, &inst); rsp != nil {
		return rsp
	}
	impl := actions[inst.Action]
	if impl == nil {
		return BadRequest("unknown action %s", inst.Action)
	}
	logger.Debugf("running %s action %s", what, inst.Action)
	if err := impl(r.Context(), c); err != nil {
		return BackendError(err)
	}
	return SyncResponse(nil)
}

func postPower(c *Command, r *http.Request) Response {
	return postAction(c, r, "power action", powerActions)
}

func postScreen(c *Command, r *http.Request) Response {
	return postAction(c, r, "screen action", screenActions)
}

type batteryInfo struct {
	Display   *battery.Info   `json:"display,omitempty"`
	Batteries []*battery.Info `json:"batteries"`
}

func getBattery(c *Command, r *http.Request) Response {
	ctx := r.Context()
	display, err := battery.DisplayDevice(ctx, c.s.bridge)
	if err != nil {
		return BackendError(err)
	}
	info := batteryInfo{Batteries: []*battery.Info{}}
	if info.Display, err = display.Properties(ctx, c.s.bridge); err != nil {
		return BackendError(err)
	}
	devices, err := battery.Batteries(ctx, c.s.bridge)
	if err != nil {
		return BackendError(err)
	}
	for _, dev := range devices {
		props, err := dev.Properties(ctx, c.s.bridge)
		if err != nil {
			return BackendError(err)
		}
		info.Batteries = append(info.Batteries, props)
	}
	return SyncResponse(&info)
}

type appInfo struct {
	*apps.App
	Icon string `json:"icon,omitempty"`
}

func getApps(c *Command, r *http.Request) Response {
	list, err := apps.List(c.s.appsOptions)
	if err != nil {
		return InternalError("cannot list applications: %v", err)
	}
	withIcons := r.URL.Query().Get("icons") == "true"
	infos := make([]appInfo, 0, len(list))
	for _, app := range list {
		info := appInfo{App: app}
		if withIcons && app.IconPath != "" {
			if uri, err := app.IconDataURI(); err != nil {
				logger.Debugf("cannot encode icon of %s: %v", app.ID, err)
			} else {
				info.Icon = uri
			}
		}
		infos = append(infos, info)
	}
	return SyncResponse(infos)
}

type colorInfo struct {
	screenshot.Color
	Hex string `json:"hex"`
}

func postPickColor(c *Command, r *http.Request) Response {
	color, err := screenshot.PickColor(r.Context(), c.s.bridge)
	if err != nil {
		return BackendError(err)
	}
	return SyncResponse(&colorInfo{Color: color, Hex: color.Hex()})
}
