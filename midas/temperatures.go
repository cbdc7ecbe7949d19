// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

// Temperatures is the heater zones view of the unit. Temperatures are in
// degrees C, duties in percent.
type Temperatures struct {
	c *Client
}

// HeaterTemp reads the spare thermocouple on the manifold (ST3?), as a
// floating point temperature in degrees C.
func (sf Temperatures) HeaterTemp() (float64, error) {
	return sf.c.getFloat(OpHeaterTemp)
}

// TankTemperature reads the target tank heater temperature (SHT?),
// 0-60 degrees C.
func (sf Temperatures) TankTemperature() (int, error) {
	return sf.c.getInt(OpTankTemp)
}

// SetTankTemperature sets the target tank heater temperature (SHT).
func (sf Temperatures) SetTankTemperature(celsius int) error {
	return sf.c.setInt(OpTankTemp, celsius)
}

// AuxTemperature reads the target auxiliary heater temperature (SH2?),
// 0-60 degrees C. Fitted on 450 units only.
func (sf Temperatures) AuxTemperature() (int, error) {
	return sf.c.getInt(OpAuxTemp)
}

// SetAuxTemperature sets the target auxiliary heater temperature (SH2).
func (sf Temperatures) SetAuxTemperature(celsius int) error {
	return sf.c.setInt(OpAuxTemp, celsius)
}

// PreheatTime reads the preheat time in seconds (SPH?), 0-600.
func (sf Temperatures) PreheatTime() (int, error) {
	return sf.c.getInt(OpPreheatTime)
}

// SetPreheatTime sets the preheat time in seconds (SPH).
func (sf Temperatures) SetPreheatTime(seconds int) error {
	return sf.c.setInt(OpPreheatTime, seconds)
}

// Heater1Duty reads heater 1 duty in percent (SHD?), 0-100.
func (sf Temperatures) Heater1Duty() (int, error) {
	return sf.c.getInt(OpHeater1Duty)
}

// SetHeater1Duty sets heater 1 duty in percent (SHD).
func (sf Temperatures) SetHeater1Duty(percent int) error {
	return sf.c.setInt(OpHeater1Duty, percent)
}

// Heater2Duty reads heater 2 duty in percent (SHA?), 0-100.
func (sf Temperatures) Heater2Duty() (int, error) {
	return sf.c.getInt(OpHeater2Duty)
}

// SetHeater2Duty sets heater 2 duty in percent (SHA).
func (sf Temperatures) SetHeater2Duty(percent int) error {
	return sf.c.setInt(OpHeater2Duty, percent)
}
