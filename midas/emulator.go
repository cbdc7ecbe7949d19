// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"strings"
	"sync"
)

// Emulator is an in-memory secondary station: it answers the ASCII protocol
// from a register map the way the unit does, including the acknowledge and
// reject sentinels. It is used by the package tests and is handy for
// integrators who want to exercise their control logic without hardware.
type Emulator struct {
	mu sync.Mutex
	// NodeID, when non-zero, makes the emulator answer only lines carrying
	// its network address letter.
	NodeID int

	regs    map[Opcode]any
	current EnableBits
	// SequenceViolations counts SEB writes that jumped into
	// EnableFillReservoir from a state other than EnableFillOnDemand. The
	// real hardware misbehaves on that sequence rather than rejecting it;
	// the emulator accepts it and records the hazard for tests to assert on.
	SequenceViolations int
}

// NewEmulator creates an emulator with factory-ish register defaults.
func NewEmulator() *Emulator {
	return &Emulator{
		current: EnableOff,
		regs: map[Opcode]any{
			OpStatusWord:           0,
			OpStatusBits:           0,
			OpLastError:            0,
			OpAlarms:               0,
			OpAlarmMask:            int(AlarmFailsafe | AlarmInkBottleEmpty),
			OpCriticalAlarms:       int(AlarmVacuumPressure | AlarmRecirc | AlarmFailsafe),
			OpFillCycles:           0,
			OpMeniscusPressure:     350,
			OpNonRecircMeniscus:    300,
			OpInfeedPressure:       120,
			OpPressureSensorSource: 0,
			OpHeaterTemp:           23.4,
			OpTankTemp:             40,
			OpAuxTemp:              40,
			OpPreheatTime:          120,
			OpHeater1Duty:          0,
			OpHeater2Duty:          0,
			OpPumpTimeout:          60,
			OpManualRecirc:         0,
			OpFillSpeed:            30,
			OpRecircCommand:        0,
			OpManualMeniscus:       0,
			OpMeniscusCmd:          0,
			OpPurgePressure:        250,
			OpPurgeControl:         0,
			OpPurgeTime:            30,
			OpLocalPurgeTime:       5,
			OpFirmwareVersion:      "4.02",
			OpSerialNumber:         "MJ104732",
			OpUnitType:             12,
			OpBypassTime:           60,
			OpDrain:                0,
			OpPrime:                0,
			OpEnableBits:           int(EnableOff),
			OpExtendedEnables:      0,
			OpDynamicCal:           0,
		},
	}
}

// SetRegister overrides one register value, for test setup.
func (sf *Emulator) SetRegister(op Opcode, v any) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.regs[op] = v
}

// EnableWord returns the enable word the emulator currently holds.
func (sf *Emulator) EnableWord() EnableBits {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.current
}

// Serve answers protocol lines on the port until a read fails (closed pipe).
// Run it in its own goroutine.
func (sf *Emulator) Serve(port Porter) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := port.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		if buf[0] != lineTerminator {
			line = append(line, buf[0])
			continue
		}
		if resp := sf.HandleLine(string(line)); resp != "" {
			if _, err := port.Write([]byte(resp)); err != nil {
				return
			}
		}
		line = line[:0]
	}
}

// HandleLine answers a single request line (without its terminator) and
// returns the full response line including the terminator, or "" when the
// line is addressed to another unit and must be ignored.
func (sf *Emulator) HandleLine(line string) string {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	// Multi-drop addressing: a leading 'A'-'O' routes the command.
	if len(line) > 0 && line[0] >= 'A' && line[0] <= 'O' && sf.NodeID != 0 {
		if int(line[0]-'@') != sf.NodeID {
			return ""
		}
		line = line[1:]
	} else if sf.NodeID != 0 {
		return "" // addressed lines only
	}

	if q := strings.TrimSuffix(line, "?"); q != line {
		return sf.answerQuery(Opcode(q))
	}

	op, arg, ok := strings.Cut(line, string(fieldSeparator))
	if !ok {
		return respMissingData + string(lineTerminator)
	}
	return sf.applySet(Opcode(op), arg)
}

func (sf *Emulator) answerQuery(op Opcode) string {
	sch, ok := opcodeTable[op]
	if !ok || sch.resp == nil {
		return respBadCommand + string(lineTerminator)
	}
	v, ok := sf.regs[op]
	if !ok {
		return respBadCommand + string(lineTerminator)
	}
	s, err := formatField(sch.resp[0], v)
	if err != nil {
		return respBadCommand + string(lineTerminator)
	}
	return string(op) + string(fieldSeparator) + s + string(lineTerminator)
}

func (sf *Emulator) applySet(op Opcode, arg string) string {
	sch, ok := opcodeTable[op]
	if !ok || sch.set == nil {
		return respBadCommand + string(lineTerminator)
	}
	v, err := parseField(sch.set[0], arg)
	if err != nil {
		return respMissingData + string(lineTerminator)
	}

	switch op {
	case OpEnableBits:
		word := EnableBits(v.(int))
		if !word.Valid() {
			return respMissingData + string(lineTerminator)
		}
		if word == EnableFillReservoir && sf.current != EnableFillOnDemand {
			sf.SequenceViolations++
		}
		sf.current = word
		sf.regs[OpEnableBits] = v
	case OpAlarms:
		// Only SA1,0 (clear) is meaningful.
		sf.regs[OpAlarms] = 0
	case OpPurgeControl:
		if v.(int) == int(PurgeCancel) {
			sf.regs[OpPurgeControl] = 0
		} else {
			sf.regs[OpPurgeControl] = 1
		}
	default:
		sf.regs[op] = v
	}
	return string(op) + string(fieldSeparator) + respAck + string(lineTerminator)
}
