// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

// Status is the alarms and status view of the unit. It holds no state of its
// own; every call is a fresh exchange over the client's serial link.
type Status struct {
	c *Client
}

// Status word bits (STA?/SSB?).
const (
	StatusTankFilling     uint16 = 1 << 0
	StatusPurging         uint16 = 1 << 1
	StatusTankHeaterOn    uint16 = 1 << 2
	StatusExtHeaterOn     uint16 = 1 << 3
	StatusCureLampOn      uint16 = 1 << 4
	StatusInternalRecirc  uint16 = 1 << 5
	StatusHeadLockoffOpen uint16 = 1 << 6
	StatusSystemEnabled   uint16 = 1 << 7
	StatusPreheatActive   uint16 = 1 << 8
	StatusBypassActive    uint16 = 1 << 9
	StatusDrainActive     uint16 = 1 << 10
	StatusFlushActive     uint16 = 1 << 11
	StatusCalibrating     uint16 = 1 << 12
)

// Alarm word bits (SA1?/SAB/SAM).
const (
	AlarmVacuumPressure  uint16 = 1 << 0
	AlarmPumpTimeout     uint16 = 1 << 1
	AlarmInkLevel        uint16 = 1 << 2
	AlarmInkBottleEmpty  uint16 = 1 << 3
	AlarmTankThermo      uint16 = 1 << 4
	AlarmDegas           uint16 = 1 << 5
	AlarmRecirc          uint16 = 1 << 6
	AlarmFailsafe        uint16 = 1 << 7
	AlarmMeniscusSlow    uint16 = 1 << 8
	AlarmMeniscusFast    uint16 = 1 << 9
	AlarmRecircPumpSlow  uint16 = 1 << 10
	AlarmRecircPumpFast  uint16 = 1 << 11
)

var alarmDescriptions = []struct {
	bit  uint16
	desc string
}{
	{AlarmVacuumPressure, "vacuum/pressure alarm"},
	{AlarmPumpTimeout, "pump timeout"},
	{AlarmInkLevel, "ink level warning"},
	{AlarmInkBottleEmpty, "ink bottle empty"},
	{AlarmTankThermo, "tank thermocouple fault"},
	{AlarmDegas, "degas fault"},
	{AlarmRecirc, "recirculation fault"},
	{AlarmFailsafe, "failsafe alarm (float switch in the air bottle)"},
	{AlarmMeniscusSlow, "meniscus pump running too slow (bleed filter blocked)"},
	{AlarmMeniscusFast, "meniscus pump running too fast (air leak)"},
	{AlarmRecircPumpSlow, "recirculation pump running too slow (blockage in pipework/head)"},
	{AlarmRecircPumpFast, "recirculation pump running too fast (leak/pump fault)"},
}

// errorDescriptions maps SLE? codes to the vendor fault texts.
var errorDescriptions = map[int]string{
	0:  "no error reported",
	10: "temperature heater 1 less than 1",
	20: "temperature heater 1 higher than upper limit",
	30: "temperature heater 1 ground loop error",
	40: "temperature heater 2 less than 1",
	50: "temperature heater 2 higher than upper limit",
	60: "temperature heater 2 ground loop error",
	70: "i2c read error",
}

// DescribeAlarms expands an alarm word into the vendor fault descriptions of
// its set bits.
func DescribeAlarms(word uint16) []string {
	var out []string
	for _, a := range alarmDescriptions {
		if word&a.bit != 0 {
			out = append(out, a.desc)
		}
	}
	return out
}

// StatusWord reads the system status word (STA?). See the Status* bit
// constants.
func (sf Status) StatusWord() (uint16, error) {
	v, err := sf.c.getInt(OpStatusWord)
	return uint16(v), err
}

// StatusBits reads the status bits as a decimal word (SSB?).
func (sf Status) StatusBits() (uint16, error) {
	v, err := sf.c.getInt(OpStatusBits)
	return uint16(v), err
}

// LastError reads the last error code on the unit (SLE?) and its
// description, or "unknown error code" for codes outside the vendor table.
func (sf Status) LastError() (int, string, error) {
	code, err := sf.c.getInt(OpLastError)
	if err != nil {
		return 0, "", err
	}
	desc, ok := errorDescriptions[code]
	if !ok {
		desc = "unknown error code"
	}
	return code, desc, nil
}

// Alarms reads the active alarm word (SA1?). See the Alarm* bit constants
// and DescribeAlarms.
func (sf Status) Alarms() (uint16, error) {
	v, err := sf.c.getInt(OpAlarms)
	return uint16(v), err
}

// ClearAlarms resets the alarms on the unit (SA1,0).
func (sf Status) ClearAlarms() error {
	return sf.c.setInt(OpAlarms, 0)
}

// AlarmMask reads which alarms raise the alarm output (SAB?).
func (sf Status) AlarmMask() (uint16, error) {
	v, err := sf.c.getInt(OpAlarmMask)
	return uint16(v), err
}

// SetAlarmMask selects which alarms raise the alarm output (SAB).
func (sf Status) SetAlarmMask(mask uint16) error {
	return sf.c.setInt(OpAlarmMask, int(mask))
}

// CriticalAlarms reads which alarms shut the system down (SAM?). Bits 0, 6
// and 7 are hard coded on by the unit.
func (sf Status) CriticalAlarms() (uint16, error) {
	v, err := sf.c.getInt(OpCriticalAlarms)
	return uint16(v), err
}

// SetCriticalAlarms selects which alarms shut the system down (SAM).
func (sf Status) SetCriticalAlarms(mask uint16) error {
	return sf.c.setInt(OpCriticalAlarms, int(mask))
}

// FillCycles reads the number of completed fill cycles (SFC?).
func (sf Status) FillCycles() (int, error) {
	return sf.c.getInt(OpFillCycles)
}
