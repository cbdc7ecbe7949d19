// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValue(t *testing.T) {
	t.Parallel()

	documented := map[uint16]Flags{
		36922: {Ink: false, Recirc: false, FillPump: false},
		32896: {Ink: false, Recirc: false, FillPump: true},
		36933: {Ink: true, Recirc: false, FillPump: false},
		37001: {Ink: true, Recirc: true, FillPump: false},
		32897: {Ink: true, Recirc: false, FillPump: true},
		32905: {Ink: true, Recirc: true, FillPump: true},
	}

	for v, want := range documented {
		eb, err := FromValue(v)
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, want, eb.Flags(), "value %d", v)
	}

	for _, v := range []uint16{0, 1, 128, 32898, 36921, 37002, 65535} {
		_, err := FromValue(v)
		assert.ErrorIs(t, err, ErrUnknownCombination, "value %d", v)
	}
}

func TestFromFlags(t *testing.T) {
	t.Parallel()

	t.Run("documented triples resolve", func(t *testing.T) {
		t.Parallel()
		eb, err := FromFlags(true, true, false)
		require.NoError(t, err)
		assert.Equal(t, EnablePrinting, eb)

		eb, err = FromFlags(false, false, false)
		require.NoError(t, err)
		assert.Equal(t, EnableOff, eb)
	})

	t.Run("recirculation without ink is unsupported", func(t *testing.T) {
		t.Parallel()
		_, err := FromFlags(false, true, false)
		assert.ErrorIs(t, err, ErrUnknownCombination)

		_, err = FromFlags(false, true, true)
		assert.ErrorIs(t, err, ErrUnknownCombination)
	})
}

func TestTransitionPlan(t *testing.T) {
	t.Parallel()

	t.Run("fill reservoir from off routes through fill on demand", func(t *testing.T) {
		t.Parallel()
		plan, err := TransitionPlan(EnableOff, true, EnableFillReservoir)
		require.NoError(t, err)
		assert.Equal(t, []EnableBits{EnableFillOnDemand, EnableFillReservoir}, plan)
	})

	t.Run("fill reservoir from unknown state routes through fill on demand", func(t *testing.T) {
		t.Parallel()
		plan, err := TransitionPlan(0, false, EnableFillReservoir)
		require.NoError(t, err)
		assert.Equal(t, []EnableBits{EnableFillOnDemand, EnableFillReservoir}, plan)
	})

	t.Run("fill reservoir from fill on demand is direct", func(t *testing.T) {
		t.Parallel()
		plan, err := TransitionPlan(EnableFillOnDemand, true, EnableFillReservoir)
		require.NoError(t, err)
		assert.Equal(t, []EnableBits{EnableFillReservoir}, plan)
	})

	t.Run("same target is an empty plan", func(t *testing.T) {
		t.Parallel()
		for _, v := range []EnableBits{EnableOff, EnablePrinting, EnableFillReservoir} {
			plan, err := TransitionPlan(v, true, v)
			require.NoError(t, err)
			assert.Empty(t, plan, "value %d", uint16(v))
		}
	})

	t.Run("ordinary targets are direct", func(t *testing.T) {
		t.Parallel()
		plan, err := TransitionPlan(EnableOff, true, EnablePrinting)
		require.NoError(t, err)
		assert.Equal(t, []EnableBits{EnablePrinting}, plan)

		plan, err = TransitionPlan(EnableFillReservoir, true, EnableOff)
		require.NoError(t, err)
		assert.Equal(t, []EnableBits{EnableOff}, plan)
	})

	t.Run("unsupported target is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := TransitionPlan(EnableOff, true, EnableBits(12345))
		assert.ErrorIs(t, err, ErrUnknownCombination)
	})
}

func TestEnableBitsString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EnableBits(37001, ink=true recirc=true fillPump=false)", EnablePrinting.String())
	assert.Contains(t, EnableBits(7).String(), "unknown")
}
