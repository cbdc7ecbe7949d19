// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"fmt"
)

// Device-level identity and maintenance operations that sit outside the five
// parameter groups.

// StartupFunction selects the startup mode action triggered by SCS.
type StartupFunction int

const (
	StartupRerunPreheatBypass  StartupFunction = 0 // rerun preheat / bypass
	StartupCancelPreheatBypass StartupFunction = 1 // cancel preheat / bypass
	StartupRerunBypass         StartupFunction = 2 // rerun bypass only
	StartupBypassIndefinite    StartupFunction = 3 // run bypass indefinitely
)

// DrainMode selects the drain system behaviour set by SDS.
type DrainMode int

const (
	DrainDisable DrainMode = 0
	// DrainActiveHeads drains through the active heads.
	DrainActiveHeads DrainMode = 1
	// DrainActiveHeadsPurge drains through the active heads with a permanent
	// purge.
	DrainActiveHeadsPurge DrainMode = 2
	// DrainDeAirPurge drains through the active heads plus de-airing with a
	// permanent purge.
	DrainDeAirPurge DrainMode = 3
)

// FirmwareVersion reads the firmware version string (SVN?).
func (sf *Client) FirmwareVersion() (string, error) {
	return sf.getString(OpFirmwareVersion)
}

// SerialNumber reads the unit serial number (SSN?).
func (sf *Client) SerialNumber() (string, error) {
	return sf.getString(OpSerialNumber)
}

// UnitType reads the unit type identifier used for system detection (SUT?).
func (sf *Client) UnitType() (int, error) {
	return sf.getInt(OpUnitType)
}

// SetActiveHeads sets the active head bit mask (SAH): heads 1-6 as bits
// 1,2,4,8,16,32, maximum 63.
func (sf *Client) SetActiveHeads(mask int) error {
	if mask < 0 || mask > 63 {
		return fmt.Errorf("%w: head mask %d outside [0, 63]", ErrEncode, mask)
	}
	return sf.setInt(OpActiveHeads, mask)
}

// BypassTime reads the bypass time in seconds (SBT?), 0-600.
func (sf *Client) BypassTime() (int, error) {
	return sf.getInt(OpBypassTime)
}

// SetBypassTime sets the bypass time in seconds (SBT).
func (sf *Client) SetBypassTime(seconds int) error {
	return sf.setInt(OpBypassTime, seconds)
}

// SetStartupFunction triggers a startup mode action (SCS).
func (sf *Client) SetStartupFunction(fn StartupFunction) error {
	if fn < StartupRerunPreheatBypass || fn > StartupBypassIndefinite {
		return fmt.Errorf("%w: startup function %d outside [0, 3]", ErrEncode, fn)
	}
	return sf.setInt(OpStartupFunction, int(fn))
}

// DrainActive reports whether the drain system is active (SDS?).
func (sf *Client) DrainActive() (bool, error) {
	return sf.getBool(OpDrain)
}

// SetDrain sets the drain system mode (SDS). Draining turns off the
// meniscus and opens the head valve so the purge functions can push the
// fluid out of the system.
func (sf *Client) SetDrain(mode DrainMode) error {
	if mode < DrainDisable || mode > DrainDeAirPurge {
		return fmt.Errorf("%w: drain mode %d outside [0, 3]", ErrEncode, mode)
	}
	return sf.setInt(OpDrain, int(mode))
}

// PrimeActive reports whether the unit is priming (SPR?).
func (sf *Client) PrimeActive() (bool, error) {
	return sf.getBool(OpPrime)
}

// SetPrime starts or ends head priming (SPR). Priming requires ink enable
// to be off; the unit runs in bypass until the bypass is cancelled, then
// primes the heads.
func (sf *Client) SetPrime(enable bool) error {
	return sf.setBool(OpPrime, enable)
}

// NetworkID reads the unit's network ID, 1-15 (SNI?). The vendor protocol
// reference assigns SNI to both the network ID and the manual meniscus
// control; see Pumps.ManualMeniscus.
func (sf *Client) NetworkID() (int, error) {
	return sf.getInt(OpNetworkID)
}

// SetNetworkID sets the unit's network ID, 1-15 (SNI).
func (sf *Client) SetNetworkID(id int) error {
	if id < 1 || id > NodeIDMax {
		return fmt.Errorf("%w: network ID %d outside [1, 15]", ErrEncode, id)
	}
	return sf.setInt(OpNetworkID, id)
}

// ExtendedEnableBits reads the extended enable word (SEE?). Unlike the main
// enable word this one is freely bit-composable.
func (sf *Client) ExtendedEnableBits() (uint16, error) {
	v, err := sf.getInt(OpExtendedEnables)
	return uint16(v), err
}

// SetExtendedEnableBits sets the extended enable word (SEE).
func (sf *Client) SetExtendedEnableBits(word uint16) error {
	return sf.setInt(OpExtendedEnables, int(word))
}

// DynamicCalibration reads the dynamic calibration state (SDC?).
func (sf *Client) DynamicCalibration() (int, error) {
	return sf.getInt(OpDynamicCal)
}

// SetDynamicCalibration sets the dynamic calibration state (SDC).
func (sf *Client) SetDynamicCalibration(state int) error {
	return sf.setInt(OpDynamicCal, state)
}
