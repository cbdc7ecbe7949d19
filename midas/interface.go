// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"io"
)

// Porter is the minimal duplex byte channel the client drives. A real
// RS-422 port from go.bug.st/serial satisfies it, as does MockPort and the
// pipe used by the Emulator. Read must honour the timeout configured on the
// underlying channel and return n == 0 with a nil error when it expires.
type Porter interface {
	io.ReadWriter
	io.Closer
}
