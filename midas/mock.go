// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"io"
	"sync"
)

// MockPort implements Porter for testing. Reads drain ReadData; once it is
// empty, Read returns n == 0 with a nil error, which is how a serial port
// reports an expired read timeout.
type MockPort struct {
	mu          sync.Mutex
	ReadData    []byte
	WrittenData []byte
	ReadError   error
	WriteError  error
	CloseError  error
	Closed      bool
}

func (m *MockPort) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadError != nil {
		return 0, m.ReadError
	}
	if len(m.ReadData) == 0 {
		return 0, nil // timeout
	}
	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	return n, nil
}

func (m *MockPort) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteError != nil {
		return 0, m.WriteError
	}
	m.WrittenData = append(m.WrittenData, p...)
	return len(p), nil
}

func (m *MockPort) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.CloseError
}

// Written returns a copy of everything written to the port so far.
func (m *MockPort) Written() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(m.WrittenData))
	copy(out, m.WrittenData)
	return out
}

// QueueRead appends bytes for subsequent reads to return.
func (m *MockPort) QueueRead(p []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadData = append(m.ReadData, p...)
}

// pipePort is one end of an in-memory duplex byte channel.
type pipePort struct {
	r *io.PipeReader
	w *io.PipeWriter
}

func (p pipePort) Read(b []byte) (int, error)  { return p.r.Read(b) }
func (p pipePort) Write(b []byte) (int, error) { return p.w.Write(b) }

func (p pipePort) Close() error {
	_ = p.r.Close()
	return p.w.Close()
}

// Pipe returns two connected Porters: what is written to one is read from
// the other. Useful for running a Client against an Emulator in memory.
func Pipe() (Porter, Porter) {
	ar, bw := io.Pipe()
	br, aw := io.Pipe()
	return pipePort{r: ar, w: aw}, pipePort{r: br, w: bw}
}
