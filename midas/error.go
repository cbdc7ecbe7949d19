// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"errors"
)

// error defined
var (
	ErrUseClosedConnection = errors.New("use of closed connection")
	ErrNotConnected        = errors.New("client is not connected")
)

// Protocol specific errors
var (
	// ErrEncode reports a request that cannot be placed on the wire: wrong
	// argument count or type for the opcode, a value outside the protocol
	// range, or an argument containing the field separator or terminator.
	ErrEncode = errors.New("encoding error")

	// ErrDecode reports a response line that does not match the opcode's
	// field schema: empty line, wrong field count, or an unparsable field.
	ErrDecode = errors.New("decoding error")

	// ErrUnknownCombination reports an enable-bits value outside the
	// vendor-documented combination table. Such values are never sent.
	ErrUnknownCombination = errors.New("enable bits combination not supported by the hardware")

	// ErrTimeout reports that the serial port read timeout expired before a
	// full response line arrived.
	ErrTimeout = errors.New("response timeout")

	// ErrBadCommand is returned when the unit answers "?": the command was
	// not understood.
	ErrBadCommand = errors.New("unit rejected command as not understood")

	// ErrMissingData is returned when the unit answers "<": the command was
	// recognised but its data field was missing or malformed.
	ErrMissingData = errors.New("unit rejected command for missing data")
)
