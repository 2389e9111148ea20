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

package battery

import (
	"fmt"
)

// Kind is the UPower device type.
type Kind uint32

const (
	KindUnknown Kind = iota
	KindLinePower
	KindBattery
	KindUPS
	KindMonitor
	KindMouse
	KindKeyboard
	KindPDA
	KindPhone
	KindMediaPlayer
	KindTablet
	KindComputer
	KindGamingInput
	KindPen
	KindTouchpad
	KindModem
	KindNetwork
	KindHeadset
	KindSpeakers
	KindHeadphones
	KindVideo
	KindOtherAudio
	KindRemoteControl
	KindPrinter
	KindScanner
	KindCamera
	KindWearable
	KindToy
	KindBluetoothGeneric
)

var kindNames = []string{
	"unknown", "line-power", "battery", "ups", "monitor", "mouse",
	"keyboard", "pda", "phone", "media-player", "tablet", "computer",
	"gaming-input", "pen", "touchpad", "modem", "network", "headset",
	"speakers", "headphones", "video", "other-audio", "remote-control",
	"printer", "scanner", "camera", "wearable", "toy", "bluetooth-generic",
}

// KindFromCode decodes the type reported by UPower, unknown codes decode
// as KindUnknown.
func KindFromCode(code int64) Kind {
	if code < 0 || code >= int64(len(kindNames)) {
		return KindUnknown
	}
	return Kind(code)
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// State is the charge state of a device.
type State uint32

const (
	StateUnknown State = iota
	StateCharging
	StateDischarging
	StateEmpty
	StateFullyCharged
	StatePendingCharge
	StatePendingDischarge
)

var stateNames = []string{
	"unknown", "charging", "discharging", "empty", "fully-charged",
	"pending-charge", "pending-discharge",
}

// StateFromCode decodes the state reported by UPower, unknown codes
// decode as StateUnknown.
func StateFromCode(code int64) State {
	if code < 0 || code >= int64(len(stateNames)) {
		return StateUnknown
	}
	return State(code)
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Info is a snapshot of the properties of a device.
type Info struct {
	NativePath string  `json:"native-path"`
	Vendor     string  `json:"vendor,omitempty"`
	Model      string  `json:"model,omitempty"`
	Kind       Kind    `json:"kind"`
	State      State   `json:"state"`
	Percentage float64 `json:"percentage"`
	// TimeToEmpty and TimeToFull are in seconds, 0 if unknown.
	TimeToEmpty    int64 `json:"time-to-empty"`
	TimeToFull     int64 `json:"time-to-full"`
	IsPresent      bool  `json:"is-present"`
	IsRechargeable bool  `json:"is-rechargeable"`
}
