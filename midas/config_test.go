// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValid(t *testing.T) {
	t.Parallel()

	t.Run("zero config gets defaults", func(t *testing.T) {
		t.Parallel()
		cfg := Config{}
		require.NoError(t, cfg.Valid())
		assert.Equal(t, DefaultBaudRate, cfg.Serial.BaudRate)
		assert.Equal(t, DefaultDataBits, cfg.Serial.DataBits)
		assert.Equal(t, DefaultResponseTimeout, cfg.Serial.Timeout)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		t.Parallel()
		cfg := Config{NodeID: 7}
		cfg.Serial.BaudRate = 9600
		cfg.Serial.Timeout = 250 * time.Millisecond
		require.NoError(t, cfg.Valid())
		assert.Equal(t, 9600, cfg.Serial.BaudRate)
		assert.Equal(t, 250*time.Millisecond, cfg.Serial.Timeout)
		assert.Equal(t, 7, cfg.NodeID)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		t.Parallel()
		for name, mod := range map[string]func(*Config){
			"negative baud":     func(c *Config) { c.Serial.BaudRate = -1 },
			"odd data bits":     func(c *Config) { c.Serial.DataBits = 9 },
			"timeout too short": func(c *Config) { c.Serial.Timeout = time.Millisecond },
			"timeout too long":  func(c *Config) { c.Serial.Timeout = 2 * time.Minute },
			"node id too big":   func(c *Config) { c.NodeID = 16 },
			"negative node id":  func(c *Config) { c.NodeID = -1 },
		} {
			cfg := DefaultConfig()
			mod(&cfg)
			assert.Error(t, cfg.Valid(), name)
		}
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		var cfg *Config
		assert.Error(t, cfg.Valid())
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "midas.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("full file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, `
serial:
  address: /dev/ttyUSB0
  baud_rate: 57600
  timeout: 500ms
node_id: 3
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Address)
		assert.Equal(t, 57600, cfg.Serial.BaudRate)
		assert.Equal(t, 500*time.Millisecond, cfg.Serial.Timeout)
		assert.Equal(t, 3, cfg.NodeID)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "serial:\n  address: COM3\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "COM3", cfg.Serial.Address)
		assert.Equal(t, DefaultBaudRate, cfg.Serial.BaudRate)
		assert.Equal(t, DefaultResponseTimeout, cfg.Serial.Timeout)
		assert.Equal(t, 0, cfg.NodeID)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "node_id: 99\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "serial: [not a mapping")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
