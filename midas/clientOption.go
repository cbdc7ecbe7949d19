// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"github.com/sirupsen/logrus"
)

// ClientOption holds client configuration options.
type ClientOption struct {
	config Config
	logger logrus.FieldLogger
}

// NewOption creates a new ClientOption with the default config.
// Note: Serial.Address needs to be set explicitly using SetSerialConfig.
func NewOption() *ClientOption {
	return &ClientOption{
		config: DefaultConfig(),
	}
}

// SetConfig sets the main configuration. Uses DefaultConfig() if the
// provided cfg is invalid.
func (sf *ClientOption) SetConfig(cfg Config) *ClientOption {
	if err := cfg.Valid(); err != nil {
		sf.config = DefaultConfig()
	} else {
		sf.config = cfg
	}
	return sf
}

// SetSerialConfig sets the serial port configuration within the main config.
func (sf *ClientOption) SetSerialConfig(serialCfg SerialConfig) *ClientOption {
	sf.config.Serial = serialCfg
	return sf
}

// SetNodeID sets the network node ID (0 for a single unit, 1-15 for
// networked units). Out-of-range values are ignored.
func (sf *ClientOption) SetNodeID(id int) *ClientOption {
	if id >= NodeIDMin && id <= NodeIDMax {
		sf.config.NodeID = id
	}
	return sf
}

// SetLogger sets the logger used by the client. A nil logger is ignored.
func (sf *ClientOption) SetLogger(l logrus.FieldLogger) *ClientOption {
	if l != nil {
		sf.logger = l
	}
	return sf
}
