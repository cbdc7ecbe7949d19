// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"fmt"
)

// Purge is the purge parameters view of the unit.
type Purge struct {
	c *Client
}

// PurgeType selects the purge cycle triggered by STP.
type PurgeType int

const (
	// PurgeSoft: valves remain open, purge for the time defined by SPT.
	PurgeSoft PurgeType = 1
	// PurgeHard: valves close, pressure builds to the SPP target, then purge
	// for the time defined by SPT.
	PurgeHard PurgeType = 2
	// PurgeCancel cancels a running purge.
	PurgeCancel PurgeType = 3
	// PurgeDeAir: head de-airing purge (gravity+ systems only); opens both
	// valves and pushes fluid out the second head port.
	PurgeDeAir PurgeType = 4
	// PurgeReleasePressure: 100 ms pressure release purge.
	PurgeReleasePressure PurgeType = 5
)

// PurgePressure reads the target purge pressure in mbar (SPP?), 0-500.
func (sf Purge) PurgePressure() (int, error) {
	return sf.c.getInt(OpPurgePressure)
}

// SetPurgePressure sets the target purge pressure in mbar (SPP).
func (sf Purge) SetPurgePressure(mbar int) error {
	return sf.c.setInt(OpPurgePressure, mbar)
}

// Active reports whether a purge is running (STP?).
func (sf Purge) Active() (bool, error) {
	return sf.c.getBool(OpPurgeControl)
}

// Trigger starts a purge cycle of the given type (STP). The type is
// validated before anything is sent.
func (sf Purge) Trigger(t PurgeType) error {
	if t < PurgeSoft || t > PurgeReleasePressure {
		return fmt.Errorf("%w: purge type %d outside [1, 5]", ErrEncode, t)
	}
	return sf.c.setInt(OpPurgeControl, int(t))
}

// PurgeTime reads the purge time in 0.1 second units (SPT?), 0-255.
func (sf Purge) PurgeTime() (int, error) {
	return sf.c.getInt(OpPurgeTime)
}

// SetPurgeTime sets the purge time in 0.1 second units (SPT), e.g. 30 is
// 3.0 s.
func (sf Purge) SetPurgeTime(tenths int) error {
	return sf.c.setInt(OpPurgeTime, tenths)
}

// LocalPurgeTime reads the local purge time in seconds (SLP?), 0-60.
func (sf Purge) LocalPurgeTime() (int, error) {
	return sf.c.getInt(OpLocalPurgeTime)
}

// SetLocalPurgeTime sets the local purge time in seconds (SLP).
func (sf Purge) SetLocalPurgeTime(seconds int) error {
	return sf.c.setInt(OpLocalPurgeTime, seconds)
}
