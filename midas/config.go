// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Constants defining default values and ranges for the serial link. The unit
// ships configured for 115200 baud, 8 data bits, no parity, one stop bit.
const (
	DefaultBaudRate = 115200
	DefaultDataBits = 8

	// Default timeout waiting for a response line from the unit.
	DefaultResponseTimeout = 1 * time.Second
	ResponseTimeoutMin     = 10 * time.Millisecond
	ResponseTimeoutMax     = 60 * time.Second

	// Network node IDs for multi-drop wiring. 0 means a single unit on the
	// link; 1-15 address networked units via a prefix letter 'A'-'O'.
	NodeIDMin = 0
	NodeIDMax = 15
)

// Config defines a connection to one ink delivery unit.
type Config struct {
	// Serial port settings for the RS-422 link.
	Serial SerialConfig `yaml:"serial"`

	// NodeID selects the unit on a multi-drop link. Leave 0 for a single
	// unit; 1-15 prepends the network address letter to every command.
	NodeID int `yaml:"node_id"`
}

// Valid applies defaults and checks configuration validity.
func (sf *Config) Valid() error {
	if sf == nil {
		return errors.New("invalid nil config")
	}

	// Serial.Address stays optional here: clients built over an injected
	// transport never open a port. Connect enforces it.
	if sf.Serial.BaudRate == 0 {
		sf.Serial.BaudRate = DefaultBaudRate
	} else if sf.Serial.BaudRate < 0 {
		return errors.New("serial baud rate must be positive")
	}
	if sf.Serial.DataBits == 0 {
		sf.Serial.DataBits = DefaultDataBits
	} else if sf.Serial.DataBits != 7 && sf.Serial.DataBits != 8 {
		return errors.New("serial data bits must be 7 or 8")
	}

	if sf.Serial.Timeout == 0 {
		sf.Serial.Timeout = DefaultResponseTimeout
	} else if sf.Serial.Timeout < ResponseTimeoutMin || sf.Serial.Timeout > ResponseTimeoutMax {
		return errors.New("response timeout out of range [10ms, 60s]")
	}

	if sf.NodeID < NodeIDMin || sf.NodeID > NodeIDMax {
		return errors.New("node ID must be in [0, 15]")
	}

	return nil
}

// DefaultConfig provides a default configuration.
// NOTE: Serial.Address needs to be set explicitly.
func DefaultConfig() Config {
	return Config{
		Serial: SerialConfig{
			BaudRate: DefaultBaudRate,
			DataBits: DefaultDataBits,
			Timeout:  DefaultResponseTimeout,
		},
		NodeID: 0,
	}
}

// LoadConfig reads a Config from a YAML file and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
