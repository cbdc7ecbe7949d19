// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(port Porter) *Client {
	return NewClientWithPort(port, NewOption())
}

func TestClientSetEnableBits(t *testing.T) {
	t.Parallel()

	t.Run("direct target sends one command", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SEB,A\r")}
		c := newTestClient(port)

		require.NoError(t, c.SetEnableBits(EnablePrinting))
		assert.Equal(t, "SEB,37001\r", string(port.Written()))

		bits, known := c.CurrentEnableBits()
		assert.True(t, known)
		assert.Equal(t, EnablePrinting, bits)
	})

	t.Run("fill reservoir sends the two-step sequence", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SEB,A\rSEB,A\r")}
		c := newTestClient(port)

		require.NoError(t, c.SetEnableBits(EnableFillReservoir))
		assert.Equal(t, "SEB,32905\rSEB,32897\r", string(port.Written()))

		bits, known := c.CurrentEnableBits()
		assert.True(t, known)
		assert.Equal(t, EnableFillReservoir, bits)
	})

	t.Run("same target again sends nothing", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SEB,A\r")}
		c := newTestClient(port)

		require.NoError(t, c.SetEnableBits(EnablePrinting))
		written := len(port.Written())

		require.NoError(t, c.SetEnableBits(EnablePrinting))
		assert.Len(t, port.Written(), written, "no-op transition must not re-send")
	})

	t.Run("timeout on step one leaves recorded bits unchanged", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{} // no response at all
		c := newTestClient(port)

		err := c.SetEnableBits(EnableFillReservoir)
		assert.ErrorIs(t, err, ErrTimeout)

		_, known := c.CurrentEnableBits()
		assert.False(t, known, "failed step must not advance the recorded word")
	})

	t.Run("timeout on step two keeps the last acknowledged step", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SEB,A\r")} // ack for step one only
		c := newTestClient(port)

		err := c.SetEnableBits(EnableFillReservoir)
		assert.ErrorIs(t, err, ErrTimeout)

		bits, known := c.CurrentEnableBits()
		assert.True(t, known)
		assert.Equal(t, EnableFillOnDemand, bits)
	})

	t.Run("invalid raw value is rejected before transmission", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{}
		c := newTestClient(port)

		err := c.SetEnableValue(12345)
		assert.ErrorIs(t, err, ErrUnknownCombination)
		assert.Empty(t, port.Written())
	})

	t.Run("unsupported flag combination is rejected before transmission", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{}
		c := newTestClient(port)

		err := c.SetEnableFlags(false, true, false)
		assert.ErrorIs(t, err, ErrUnknownCombination)
		assert.Empty(t, port.Written())
	})
}

func TestClientEnableBitsQuery(t *testing.T) {
	t.Parallel()

	t.Run("reads and records the current word", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SEB,37001\r")}
		c := newTestClient(port)

		bits, err := c.EnableBits()
		require.NoError(t, err)
		assert.Equal(t, EnablePrinting, bits)
		assert.Equal(t, "SEB?\r", string(port.Written()))

		recorded, known := c.CurrentEnableBits()
		assert.True(t, known)
		assert.Equal(t, EnablePrinting, recorded)
	})

	t.Run("a word outside the table is surfaced and not recorded", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SEB,12345\r")}
		c := newTestClient(port)

		_, err := c.EnableBits()
		assert.ErrorIs(t, err, ErrUnknownCombination)

		_, known := c.CurrentEnableBits()
		assert.False(t, known)
	})
}

func TestClientExchange(t *testing.T) {
	t.Parallel()

	t.Run("not connected", func(t *testing.T) {
		t.Parallel()
		c := NewClient(NewOption())
		_, err := c.Pressures().MeniscusPressure()
		assert.ErrorIs(t, err, ErrNotConnected)
	})

	t.Run("unit rejects unknown command", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("?\r")}
		c := newTestClient(port)

		_, err := c.Pressures().MeniscusPressure()
		assert.ErrorIs(t, err, ErrBadCommand)
	})

	t.Run("unit rejects missing data", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("<\r")}
		c := newTestClient(port)

		err := c.Pressures().SetMeniscusPressure(350)
		assert.ErrorIs(t, err, ErrMissingData)
	})

	t.Run("set without acknowledge is a decode error", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SVP,350\r")}
		c := newTestClient(port)

		err := c.Pressures().SetMeniscusPressure(350)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("query decodes the typed reading", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SVP,350\r")}
		c := newTestClient(port)

		v, err := c.Pressures().MeniscusPressure()
		require.NoError(t, err)
		assert.Equal(t, 350, v)
		assert.Equal(t, "SVP?\r", string(port.Written()))
	})

	t.Run("node ID prefixes the network address letter", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SEB,A\r")}
		c := NewClientWithPort(port, NewOption().SetNodeID(3))

		require.NoError(t, c.SetEnableBits(EnablePrinting))
		assert.Equal(t, "CSEB,37001\r", string(port.Written()))
	})

	t.Run("close forgets the recorded enable word", func(t *testing.T) {
		t.Parallel()
		port := &MockPort{ReadData: []byte("SEB,A\r")}
		c := newTestClient(port)

		require.NoError(t, c.SetEnableBits(EnablePrinting))
		require.NoError(t, c.Close())
		assert.True(t, port.Closed)

		_, known := c.CurrentEnableBits()
		assert.False(t, known)

		err := c.Close()
		assert.ErrorIs(t, err, ErrUseClosedConnection)
	})
}
