// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"fmt"
)

// EnableBits is the unit's composite enable word: ink enable, recirculation
// enable and fill pump enable folded into one 16-bit value together with
// fixed vendor housekeeping bits. Only the documented combinations below may
// ever be sent; the word is not bit-composable and arbitrary values are
// rejected before transmission.
type EnableBits uint16

// The vendor-documented enable word combinations.
const (
	// EnableOff: everything off.
	EnableOff EnableBits = 36922
	// EnableOffFillPump: fill pump flag set with ink disabled, effectively off.
	EnableOffFillPump EnableBits = 32896
	// EnableInkOnly: ink enabled, pumps off.
	EnableInkOnly EnableBits = 36933
	// EnablePrinting: recirculation running, printing enabled.
	EnablePrinting EnableBits = 37001
	// EnableFillReservoir: fill pump running with printing disabled. The
	// hardware cannot enter this state directly; EnableFillOnDemand must be
	// sent first (see TransitionPlan).
	EnableFillReservoir EnableBits = 32897
	// EnableFillOnDemand: fill on demand with printing enabled.
	EnableFillOnDemand EnableBits = 32905
)

// Flags is the decomposition of an enable word into its three independent
// controls.
type Flags struct {
	Ink      bool // ink enable (printing)
	Recirc   bool // recirculation enable
	FillPump bool // fill pump enable
}

// combinationTable maps each documented enable word to its flag triple.
// Values come from the vendor documentation and are not derivable from the
// flag bits alone.
var combinationTable = map[EnableBits]Flags{
	EnableOff:           {Ink: false, Recirc: false, FillPump: false},
	EnableOffFillPump:   {Ink: false, Recirc: false, FillPump: true},
	EnableInkOnly:       {Ink: true, Recirc: false, FillPump: false},
	EnablePrinting:      {Ink: true, Recirc: true, FillPump: false},
	EnableFillReservoir: {Ink: true, Recirc: false, FillPump: true},
	EnableFillOnDemand:  {Ink: true, Recirc: true, FillPump: true},
}

// flagsTable is the reverse lookup, keyed by the flag triple.
var flagsTable = func() map[Flags]EnableBits {
	m := make(map[Flags]EnableBits, len(combinationTable))
	for v, f := range combinationTable {
		m[f] = v
	}
	return m
}()

// FromValue validates a raw enable word against the combination table.
func FromValue(v uint16) (EnableBits, error) {
	eb := EnableBits(v)
	if _, ok := combinationTable[eb]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCombination, v)
	}
	return eb, nil
}

// FromFlags looks up the enable word for a flag triple. Not every triple has
// a documented word; recirculation without ink enable in particular is not
// supported by the hardware.
func FromFlags(ink, recirc, fillPump bool) (EnableBits, error) {
	eb, ok := flagsTable[Flags{Ink: ink, Recirc: recirc, FillPump: fillPump}]
	if !ok {
		return 0, fmt.Errorf("%w: ink=%t recirc=%t fillPump=%t",
			ErrUnknownCombination, ink, recirc, fillPump)
	}
	return eb, nil
}

// Flags returns the flag triple for a validated enable word.
func (eb EnableBits) Flags() Flags {
	return combinationTable[eb]
}

// Valid reports whether the word is one of the documented combinations.
func (eb EnableBits) Valid() bool {
	_, ok := combinationTable[eb]
	return ok
}

func (eb EnableBits) String() string {
	f, ok := combinationTable[eb]
	if !ok {
		return fmt.Sprintf("EnableBits(%d, unknown)", uint16(eb))
	}
	return fmt.Sprintf("EnableBits(%d, ink=%t recirc=%t fillPump=%t)",
		uint16(eb), f.Ink, f.Recirc, f.FillPump)
}

// TransitionPlan returns the ordered enable words to send to move the unit
// from current to target. known is false when the current word has never
// been read or written on this connection.
//
// The fill pump must not be started with printing disabled from an arbitrary
// state: EnableFillReservoir is only reachable from EnableFillOnDemand, so
// the plan routes through the fully enabled word first. Every other target
// is reached directly. A target equal to a known current word yields an
// empty plan; the same word is never re-sent.
func TransitionPlan(current EnableBits, known bool, target EnableBits) ([]EnableBits, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCombination, uint16(target))
	}
	if known && current == target {
		return nil, nil
	}
	if target == EnableFillReservoir && !(known && current == EnableFillOnDemand) {
		return []EnableBits{EnableFillOnDemand, EnableFillReservoir}, nil
	}
	return []EnableBits{target}, nil
}
