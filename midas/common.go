// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"fmt"
	"time"

	"go.bug.st/serial"
	"gopkg.in/yaml.v3"
)

// Wire framing. Commands and responses are ASCII lines: fields joined by the
// separator, terminated by a carriage return.
const (
	fieldSeparator = ','
	lineTerminator = '\r'
)

// Response sentinels sent by the unit.
const (
	respAck         = "A" // set command acknowledged
	respBadCommand  = "?" // command not understood
	respMissingData = "<" // command recognised, data field missing
)

// SerialConfig holds serial port configuration parameters for the RS-422
// link to the unit.
type SerialConfig struct {
	// Address is the serial port address (e.g., "COM3" on Windows, "/dev/ttyUSB0" on Linux).
	Address string `yaml:"address"`
	// BaudRate is the serial port speed. The unit ships at 115200.
	BaudRate int `yaml:"baud_rate"`
	// DataBits is the number of data bits, 8 for this protocol.
	DataBits int `yaml:"data_bits"`
	// StopBits specifies the number of stop bits. Use serial.OneStopBit or serial.TwoStopBits.
	StopBits serial.StopBits `yaml:"stop_bits"`
	// Parity specifies the parity mode. Use serial.NoParity, serial.OddParity, serial.EvenParity.
	Parity serial.Parity `yaml:"parity"`
	// Timeout is the read timeout for a response line. 0 selects the default.
	Timeout time.Duration `yaml:"timeout"`
}

// UnmarshalYAML decodes the serial settings, accepting Go duration strings
// such as "500ms" or "2s" for the timeout field.
func (sc *SerialConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Address  string          `yaml:"address"`
		BaudRate int             `yaml:"baud_rate"`
		DataBits int             `yaml:"data_bits"`
		StopBits serial.StopBits `yaml:"stop_bits"`
		Parity   serial.Parity   `yaml:"parity"`
		Timeout  string          `yaml:"timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	sc.Address = raw.Address
	sc.BaudRate = raw.BaudRate
	sc.DataBits = raw.DataBits
	sc.StopBits = raw.StopBits
	sc.Parity = raw.Parity
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		sc.Timeout = d
	} else {
		sc.Timeout = 0
	}
	return nil
}

// mode converts the SerialConfig to a go.bug.st/serial Mode.
func (sc SerialConfig) mode() *serial.Mode {
	return &serial.Mode{
		BaudRate: sc.BaudRate,
		DataBits: sc.DataBits,
		Parity:   sc.Parity,
		StopBits: sc.StopBits,
	}
}

// mapParity maps a byte representation to serial.Parity.
// 0 = None, 1 = Odd, 2 = Even. Returns NoParity for invalid values.
func mapParity(p byte) serial.Parity {
	switch p {
	case 1:
		return serial.OddParity
	case 2:
		return serial.EvenParity
	default: // Includes 0
		return serial.NoParity
	}
}

// mapStopBits maps a byte representation to serial.StopBits.
// 1 = OneStopBit, 2 = TwoStopBits. Returns OneStopBit for invalid values.
func mapStopBits(s byte) serial.StopBits {
	if s == 2 {
		return serial.TwoStopBits
	}
	return serial.OneStopBit // Default includes 1
}
