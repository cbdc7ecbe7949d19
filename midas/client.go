// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

// Client talks to one ink delivery unit over a point-to-point serial link.
// The protocol is strictly synchronous request/response: the client holds a
// mutex across every exchange so exactly one command is in flight at a time,
// and concurrent callers queue on the lock. The client also owns the current
// enable word and enforces the fill pump transition sequence.
type Client struct {
	option  ClientOption
	log     logrus.FieldLogger
	baseLog *logrus.Logger // nil when the caller supplied its own logger

	mu   sync.Mutex // serializes all port access and guards the fields below
	port Porter
	// Current enable word, valid only while bitsKnown. Updated after each
	// acknowledged SEB step; never advanced past the last acknowledge.
	bits      EnableBits
	bitsKnown bool
}

// NewClient creates a new client from the given options. The serial port is
// not opened until Connect is called.
func NewClient(o *ClientOption) *Client {
	opt := *o // Copy option
	if err := opt.config.Valid(); err != nil {
		opt.config = DefaultConfig() // Serial.Address still has to be set
	}

	var base *logrus.Logger
	log := opt.logger
	if log == nil {
		base = logrus.New()
		base.SetLevel(logrus.WarnLevel)
		log = base
	}

	return &Client{
		option:  opt,
		log:     log.WithField("unit", opt.config.Serial.Address),
		baseLog: base,
	}
}

// NewClientWithPort creates a client driving an already open transport.
// Config timeouts and line settings are the transport's concern; only the
// node ID from the options applies. Used with MockPort and the Emulator.
func NewClientWithPort(port Porter, o *ClientOption) *Client {
	c := NewClient(o)
	c.port = port
	return c
}

// SetLogMode enables or disables debug logging output. It is a no-op when
// the caller supplied its own logger via SetLogger.
func (sf *Client) SetLogMode(enable bool) {
	if sf.baseLog == nil {
		return
	}
	if enable {
		sf.baseLog.SetLevel(logrus.DebugLevel)
	} else {
		sf.baseLog.SetLevel(logrus.WarnLevel)
	}
}

// Connect opens the serial port configured in the options. It fails if the
// client already holds an open port.
func (sf *Client) Connect() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if sf.port != nil {
		return errors.New("client already connected")
	}
	cfg := sf.option.config
	if cfg.Serial.Address == "" {
		return errors.New("serial address (port name) must be configured")
	}

	port, err := serial.Open(cfg.Serial.Address, cfg.Serial.mode())
	if err != nil {
		return fmt.Errorf("opening serial port %s: %w", cfg.Serial.Address, err)
	}
	if err := port.SetReadTimeout(cfg.Serial.Timeout); err != nil {
		_ = port.Close()
		return fmt.Errorf("setting read timeout: %w", err)
	}

	sf.port = port
	sf.bitsKnown = false
	sf.log.Debugf("connected to %s", cfg.Serial.Address)
	return nil
}

// Close closes the serial port. The recorded enable word is forgotten: after
// a reconnect the unit state is Unknown again.
func (sf *Client) Close() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	if sf.port == nil {
		return ErrUseClosedConnection
	}
	err := sf.port.Close()
	sf.port = nil
	sf.bitsKnown = false
	return err
}

// IsConnected reports whether the client holds an open port.
func (sf *Client) IsConnected() bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.port != nil
}

// Parameter group accessors. Groups are stateless views; all I/O goes back
// through the client's single exchange path.

// Status returns the alarms and status bits view.
func (sf *Client) Status() Status { return Status{c: sf} }

// Pressures returns the pressure parameters view.
func (sf *Client) Pressures() Pressures { return Pressures{c: sf} }

// Temperatures returns the heater parameters view.
func (sf *Client) Temperatures() Temperatures { return Temperatures{c: sf} }

// Pumps returns the recirculation and fill pump view.
func (sf *Client) Pumps() Pumps { return Pumps{c: sf} }

// Purge returns the purge parameters view.
func (sf *Client) Purge() Purge { return Purge{c: sf} }

// SetEnableBits drives the unit to the target enable word, sending the
// intermediate combination first where the hardware requires it. The
// recorded current word advances only on acknowledged steps, so a transport
// or unit error mid-plan leaves the client's view at the last step the unit
// actually confirmed.
func (sf *Client) SetEnableBits(target EnableBits) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	plan, err := TransitionPlan(sf.bits, sf.bitsKnown, target)
	if err != nil {
		return err
	}
	for _, step := range plan {
		if _, err := sf.exchangeLocked(NewSet(OpEnableBits, int(step))); err != nil {
			return fmt.Errorf("enable bits transition to %d at step %d: %w",
				uint16(target), uint16(step), err)
		}
		sf.bits = step
		sf.bitsKnown = true
	}
	return nil
}

// SetEnableValue is the raw-integer entry point for SetEnableBits. The value
// is validated against the combination table before anything is sent.
func (sf *Client) SetEnableValue(v uint16) error {
	eb, err := FromValue(v)
	if err != nil {
		return err
	}
	return sf.SetEnableBits(eb)
}

// SetEnableFlags sets the enable word from the three independent controls.
func (sf *Client) SetEnableFlags(ink, recirc, fillPump bool) error {
	eb, err := FromFlags(ink, recirc, fillPump)
	if err != nil {
		return err
	}
	return sf.SetEnableBits(eb)
}

// EnableBits reads the current enable word from the unit. A word outside the
// combination table is surfaced as ErrUnknownCombination and not recorded.
func (sf *Client) EnableBits() (EnableBits, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	fields, err := sf.exchangeLocked(NewQuery(OpEnableBits))
	if err != nil {
		return 0, err
	}
	eb, err := FromValue(uint16(fields[0].(int)))
	if err != nil {
		return 0, err
	}
	sf.bits = eb
	sf.bitsKnown = true
	return eb, nil
}

// CurrentEnableBits returns the client's recorded enable word and whether it
// is known at all, without touching the wire.
func (sf *Client) CurrentEnableBits() (EnableBits, bool) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.bits, sf.bitsKnown
}

// exchange runs one command against the unit, serialized against every
// other caller.
func (sf *Client) exchange(cmd Command) ([]any, error) {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.exchangeLocked(cmd)
}

// exchangeLocked writes one command line and reads and interprets the
// response line. Caller holds sf.mu.
func (sf *Client) exchangeLocked(cmd Command) ([]any, error) {
	if sf.port == nil {
		return nil, ErrNotConnected
	}

	line, err := cmd.MarshalText()
	if err != nil {
		observeError(err)
		return nil, err
	}
	if sf.option.config.NodeID != 0 {
		// Networked units are addressed by a prefix letter 'A'-'O'.
		line = append([]byte{byte('@' + sf.option.config.NodeID)}, line...)
	}

	start := time.Now()
	sf.log.Debugf("tx %q", line)
	if _, err := sf.port.Write(line); err != nil {
		observeError(err)
		return nil, fmt.Errorf("writing command %s: %w", cmd.Op, err)
	}

	resp, err := sf.readLine()
	if err != nil {
		observeError(err)
		return nil, fmt.Errorf("reading response to %s: %w", cmd.Op, err)
	}
	sf.log.Debugf("rx %q (%.1fms)", resp, float64(time.Since(start).Microseconds())/1000)
	commandsTotal.WithLabelValues(string(cmd.Op)).Inc()

	fields, err := sf.interpret(cmd, resp)
	if err != nil {
		observeError(err)
	}
	return fields, err
}

// interpret maps a raw response line to decoded fields or a protocol error.
func (sf *Client) interpret(cmd Command, resp string) ([]any, error) {
	switch strings.TrimSuffix(resp, string(lineTerminator)) {
	case respBadCommand:
		return nil, fmt.Errorf("%w: %s", ErrBadCommand, cmd.Op)
	case respMissingData:
		return nil, fmt.Errorf("%w: %s", ErrMissingData, cmd.Op)
	}

	if cmd.Query {
		return Decode(cmd.Op, resp)
	}

	// Set commands are answered by an opcode-tagged acknowledge.
	if strings.TrimSuffix(resp, string(lineTerminator)) != string(cmd.Op)+string(fieldSeparator)+respAck {
		return nil, fmt.Errorf("%w: %s not acknowledged, got %q", ErrDecode, cmd.Op, resp)
	}
	return nil, nil
}

// readLine reads bytes from the port until the carriage return terminator.
// A zero-byte read means the port's timeout expired with no (further) data.
func (sf *Client) readLine() (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := sf.port.Read(buf)
		if err != nil {
			return "", fmt.Errorf("serial read: %w", err)
		}
		if n == 0 {
			return "", ErrTimeout
		}
		if buf[0] == lineTerminator {
			return b.String(), nil
		}
		b.WriteByte(buf[0])
	}
}

// Typed exchange helpers used by the parameter groups and device accessors.

func (sf *Client) getInt(op Opcode) (int, error) {
	fields, err := sf.exchange(NewQuery(op))
	if err != nil {
		return 0, err
	}
	return fields[0].(int), nil
}

func (sf *Client) setInt(op Opcode, v int) error {
	_, err := sf.exchange(NewSet(op, v))
	return err
}

func (sf *Client) getFloat(op Opcode) (float64, error) {
	fields, err := sf.exchange(NewQuery(op))
	if err != nil {
		return 0, err
	}
	return fields[0].(float64), nil
}

func (sf *Client) getString(op Opcode) (string, error) {
	fields, err := sf.exchange(NewQuery(op))
	if err != nil {
		return "", err
	}
	return fields[0].(string), nil
}

// getBool reads a 0/1 parameter.
func (sf *Client) getBool(op Opcode) (bool, error) {
	v, err := sf.getInt(op)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (sf *Client) setBool(op Opcode, v bool) error {
	n := 0
	if v {
		n = 1
	}
	return sf.setInt(op, n)
}
