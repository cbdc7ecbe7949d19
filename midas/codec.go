// Copyright 2026 The go-midas Authors. All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package midas

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode is the three-letter ASCII command mnemonic from the vendor protocol
// reference. A set command goes on the wire as "OP,arg\r", a query as
// "OP?\r". Query responses mirror the request framing: "OP,value\r", and a
// set acknowledge is "OP,A\r".
type Opcode string

// Opcodes from the CIMS II / Midas protocol reference.
const (
	// Status group
	OpStatusWord     Opcode = "STA" // system status word (bit field)
	OpStatusBits     Opcode = "SSB" // status bits, decimal 0-65535
	OpLastError      Opcode = "SLE" // last error code
	OpAlarms         Opcode = "SA1" // active alarm word; SA1,0 clears
	OpAlarmMask      Opcode = "SAB" // alarm output mask
	OpCriticalAlarms Opcode = "SAM" // critical alarm (shutdown) mask
	OpFillCycles     Opcode = "SFC" // completed fill cycles

	// Pressures group
	OpMeniscusPressure     Opcode = "SVP" // target meniscus pressure, 0.1 mbar units
	OpNonRecircMeniscus    Opcode = "SV2" // non-recirculating meniscus pressure, 0.1 mbar units
	OpInfeedPressure       Opcode = "SRS" // recirculation pump infeed pressure, mbar
	OpPressureSensorSource Opcode = "SSR" // 0 internal sensors, 1 remote manifold

	// Temperatures group
	OpHeaterTemp     Opcode = "ST3" // manifold thermocouple readback, degrees C
	OpTankTemp       Opcode = "SHT" // tank heater target, degrees C
	OpAuxTemp        Opcode = "SH2" // auxiliary heater target, degrees C
	OpPreheatTime    Opcode = "SPH" // preheat time, seconds
	OpHeater1Duty    Opcode = "SHD" // heater 1 duty, percent
	OpHeater2Duty    Opcode = "SHA" // heater 2 duty, percent

	// Pumps group
	OpPumpTimeout    Opcode = "STO" // fill pump timeout, seconds
	OpManualRecirc   Opcode = "SMR" // manual recirculation speed
	OpFillSpeed      Opcode = "SFS" // fill pump speed, ml/min
	OpRecircCommand  Opcode = "SVR" // recirculation pump drive command
	OpManualMeniscus Opcode = "SNI" // run meniscus pump at fixed minimum speed
	OpMeniscusCmd    Opcode = "SVM" // meniscus pump drive command

	// Purge group
	OpPurgePressure  Opcode = "SPP" // target purge pressure, mbar
	OpPurgeControl   Opcode = "STP" // trigger purge / purge active
	OpPurgeTime      Opcode = "SPT" // purge time, 0.1 s units
	OpLocalPurgeTime Opcode = "SLP" // local purge time, seconds

	// Device level
	OpFirmwareVersion Opcode = "SVN" // firmware version string
	OpSerialNumber    Opcode = "SSN" // unit serial number
	OpUnitType        Opcode = "SUT" // unit type identifier
	OpActiveHeads     Opcode = "SAH" // active head bit mask, set only
	OpBypassTime      Opcode = "SBT" // bypass time, seconds
	OpStartupFunction Opcode = "SCS" // startup mode function, set only
	OpDrain           Opcode = "SDS" // drain system control
	OpPrime           Opcode = "SPR" // prime system control
	OpNetworkID       Opcode = "SNI" // network ID 1-15 (shares SNI with manual meniscus, see doc)
	OpEnableBits      Opcode = "SEB" // composite enable word
	OpExtendedEnables Opcode = "SEE" // extended enable word
	OpDynamicCal      Opcode = "SDC" // dynamic calibration state
)

// FieldType declares how a positional field is parsed and formatted.
type FieldType byte

const (
	// FieldInt is a decimal integer. Outgoing values must lie in [0, 65535].
	FieldInt FieldType = iota
	// FieldFloat is a decimal floating point reading (e.g. "23.4").
	FieldFloat
	// FieldString is free text without the separator or terminator.
	FieldString
)

// fieldRangeMax bounds outgoing integer fields. The protocol carries 16-bit
// words and smaller quantities only.
const fieldRangeMax = 65535

// schema fixes the argument and response field layout of one opcode.
// A nil set means the opcode is read only, a nil resp means set only.
type schema struct {
	set  []FieldType
	resp []FieldType
}

var intWord = []FieldType{FieldInt}

var opcodeTable = map[Opcode]schema{
	OpStatusWord:     {resp: intWord},
	OpStatusBits:     {resp: intWord},
	OpLastError:      {resp: intWord},
	OpAlarms:         {set: intWord, resp: intWord},
	OpAlarmMask:      {set: intWord, resp: intWord},
	OpCriticalAlarms: {set: intWord, resp: intWord},
	OpFillCycles:     {resp: intWord},

	OpMeniscusPressure:     {set: intWord, resp: intWord},
	OpNonRecircMeniscus:    {set: intWord, resp: intWord},
	OpInfeedPressure:       {set: intWord, resp: intWord},
	OpPressureSensorSource: {set: intWord, resp: intWord},

	OpHeaterTemp:  {resp: []FieldType{FieldFloat}},
	OpTankTemp:    {set: intWord, resp: intWord},
	OpAuxTemp:     {set: intWord, resp: intWord},
	OpPreheatTime: {set: intWord, resp: intWord},
	OpHeater1Duty: {set: intWord, resp: intWord},
	OpHeater2Duty: {set: intWord, resp: intWord},

	OpPumpTimeout:    {set: intWord, resp: intWord},
	OpManualRecirc:   {set: intWord, resp: intWord},
	OpFillSpeed:      {set: intWord, resp: intWord},
	OpRecircCommand:  {resp: intWord},
	OpManualMeniscus: {set: intWord, resp: intWord},
	OpMeniscusCmd:    {resp: intWord},

	OpPurgePressure:  {set: intWord, resp: intWord},
	OpPurgeControl:   {set: intWord, resp: intWord},
	OpPurgeTime:      {set: intWord, resp: intWord},
	OpLocalPurgeTime: {set: intWord, resp: intWord},

	OpFirmwareVersion: {resp: []FieldType{FieldString}},
	OpSerialNumber:    {resp: []FieldType{FieldString}},
	OpUnitType:        {resp: intWord},
	OpActiveHeads:     {set: intWord},
	OpBypassTime:      {set: intWord, resp: intWord},
	OpStartupFunction: {set: intWord},
	OpDrain:           {set: intWord, resp: intWord},
	OpPrime:           {set: intWord, resp: intWord},
	OpEnableBits:      {set: intWord, resp: intWord},
	OpExtendedEnables: {set: intWord, resp: intWord},
	OpDynamicCal:      {set: intWord, resp: intWord},
}

// Command is a single request to the unit: an opcode plus its ordered
// arguments. Query is true for read requests, which carry no arguments.
// A Command is immutable once constructed.
type Command struct {
	Op    Opcode
	Args  []any
	Query bool
}

// NewSet builds a set command for the given opcode.
func NewSet(op Opcode, args ...any) Command {
	return Command{Op: op, Args: args}
}

// NewQuery builds a query command for the given opcode.
func NewQuery(op Opcode) Command {
	return Command{Op: op, Query: true}
}

// MarshalText encodes the command into its wire line, validating the
// arguments against the opcode schema. The line includes the terminating
// carriage return.
func (c Command) MarshalText() ([]byte, error) {
	sch, ok := opcodeTable[c.Op]
	if !ok {
		return nil, fmt.Errorf("%w: unknown opcode %q", ErrEncode, c.Op)
	}

	var b strings.Builder
	b.WriteString(string(c.Op))

	if c.Query {
		if sch.resp == nil {
			return nil, fmt.Errorf("%w: opcode %q is set only", ErrEncode, c.Op)
		}
		if len(c.Args) != 0 {
			return nil, fmt.Errorf("%w: query %q takes no arguments", ErrEncode, c.Op)
		}
		b.WriteByte('?')
		b.WriteByte(lineTerminator)
		return []byte(b.String()), nil
	}

	if sch.set == nil {
		return nil, fmt.Errorf("%w: opcode %q is read only", ErrEncode, c.Op)
	}
	if len(c.Args) != len(sch.set) {
		return nil, fmt.Errorf("%w: opcode %q takes %d argument(s), got %d",
			ErrEncode, c.Op, len(sch.set), len(c.Args))
	}
	for i, arg := range c.Args {
		s, err := formatField(sch.set[i], arg)
		if err != nil {
			return nil, fmt.Errorf("%w: opcode %q argument %d: %v", ErrEncode, c.Op, i, err)
		}
		b.WriteByte(fieldSeparator)
		b.WriteString(s)
	}
	b.WriteByte(lineTerminator)
	return []byte(b.String()), nil
}

// Decode parses a response line for the given opcode. The line may carry its
// trailing carriage return or arrive already stripped. The first field must
// echo the opcode; the remaining fields are parsed against the opcode's
// response schema and returned positionally as int, float64 or string.
func Decode(op Opcode, line string) ([]any, error) {
	sch, ok := opcodeTable[op]
	if !ok {
		return nil, fmt.Errorf("%w: unknown opcode %q", ErrDecode, op)
	}
	if sch.resp == nil {
		return nil, fmt.Errorf("%w: opcode %q has no response schema", ErrDecode, op)
	}

	line = strings.TrimSuffix(line, string(lineTerminator))
	if line == "" {
		return nil, fmt.Errorf("%w: empty response line", ErrDecode)
	}

	fields := strings.Split(line, string(fieldSeparator))
	if fields[0] != string(op) {
		return nil, fmt.Errorf("%w: response %q does not echo opcode %q", ErrDecode, fields[0], op)
	}
	fields = fields[1:]
	if len(fields) != len(sch.resp) {
		return nil, fmt.Errorf("%w: opcode %q expects %d field(s), got %d",
			ErrDecode, op, len(sch.resp), len(fields))
	}

	out := make([]any, len(fields))
	for i, f := range fields {
		v, err := parseField(sch.resp[i], f)
		if err != nil {
			return nil, fmt.Errorf("%w: opcode %q field %d: %v", ErrDecode, op, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// formatField renders one outgoing field, rejecting values the wire cannot
// carry safely.
func formatField(ft FieldType, v any) (string, error) {
	switch ft {
	case FieldInt:
		n, ok := v.(int)
		if !ok {
			return "", fmt.Errorf("expected int, got %T", v)
		}
		if n < 0 || n > fieldRangeMax {
			return "", fmt.Errorf("value %d outside [0, %d]", n, fieldRangeMax)
		}
		return strconv.Itoa(n), nil
	case FieldFloat:
		f, ok := v.(float64)
		if !ok {
			return "", fmt.Errorf("expected float64, got %T", v)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case FieldString:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}
		if strings.ContainsAny(s, string(fieldSeparator)+string(lineTerminator)) {
			return "", fmt.Errorf("value %q contains separator or terminator", s)
		}
		return s, nil
	default:
		return "", fmt.Errorf("unknown field type %d", ft)
	}
}

// parseField parses one incoming field per its declared type.
func parseField(ft FieldType, s string) (any, error) {
	switch ft {
	case FieldInt:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", s)
		}
		return n, nil
	case FieldFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		return f, nil
	case FieldString:
		return s, nil
	default:
		return nil, fmt.Errorf("unknown field type %d", ft)
	}
}
