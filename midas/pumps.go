// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

// Pumps is the recirculation and fill pump view of the unit.
type Pumps struct {
	c *Client
}

// PumpTimeout reads the fill pump timeout in seconds (STO?), 0-90.
func (sf Pumps) PumpTimeout() (int, error) {
	return sf.c.getInt(OpPumpTimeout)
}

// SetPumpTimeout sets the fill pump timeout in seconds (STO).
func (sf Pumps) SetPumpTimeout(seconds int) error {
	return sf.c.setInt(OpPumpTimeout, seconds)
}

// ManualRecircSpeed reads the manual recirculation speed (SMR?), internal
// units 0-700.
func (sf Pumps) ManualRecircSpeed() (int, error) {
	return sf.c.getInt(OpManualRecirc)
}

// SetManualRecircSpeed sets the manual recirculation speed (SMR).
func (sf Pumps) SetManualRecircSpeed(speed int) error {
	return sf.c.setInt(OpManualRecirc, speed)
}

// FillSpeed reads the fill pump speed in ml per minute (SFS?), 0-255.
func (sf Pumps) FillSpeed() (int, error) {
	return sf.c.getInt(OpFillSpeed)
}

// SetFillSpeed sets the fill pump speed in ml per minute (SFS).
func (sf Pumps) SetFillSpeed(mlPerMin int) error {
	return sf.c.setInt(OpFillSpeed, mlPerMin)
}

// RecircPumpCommand reads the current recirculation pump drive command
// (SVR?).
func (sf Pumps) RecircPumpCommand() (int, error) {
	return sf.c.getInt(OpRecircCommand)
}

// ManualMeniscus reads whether the meniscus pump runs at the fixed minimum
// speed (SNI?), used on HV controllers when setting the minimum meniscus
// pressure.
func (sf Pumps) ManualMeniscus() (bool, error) {
	return sf.c.getBool(OpManualMeniscus)
}

// SetManualMeniscus runs or stops the meniscus pump at the fixed minimum
// speed (SNI).
func (sf Pumps) SetManualMeniscus(enable bool) error {
	return sf.c.setBool(OpManualMeniscus, enable)
}

// MeniscusPumpCommand reads the current meniscus pump drive command (SVM?).
func (sf Pumps) MeniscusPumpCommand() (int, error) {
	return sf.c.getInt(OpMeniscusCmd)
}
