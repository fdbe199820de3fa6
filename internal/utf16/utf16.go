// Package utf16 implements the UTF-16 decode step for the incremental engine.
//
// A step is a pure function of a byte window and a State. It decodes whole
// code units from the front of the window and stops at the first unit it
// cannot finish (the engine carries those bytes into the next call) or the
// first malformed unit (the engine replaces it and resumes after it).
//
// Three states exist. BOMSniff is the initial state of the "utf-16" decoder:
// the first code unit is read little-endian and if it is U+FEFF the stream is
// little-endian, otherwise big-endian. The BOM itself is decoded as an
// ordinary character. LittleEndian and BigEndian are sticky once chosen.
package utf16

import (
	"encoding/binary"
	"fmt"

	"github.com/LynnKirby/charconv/internal/charcode"
	"github.com/LynnKirby/charconv/internal/engine"
	"github.com/LynnKirby/charconv/internal/tostring"
)

// State is the continuation state of a UTF-16 decode.
type State uint8

const (
	// BOMSniff waits for the first code unit to choose the byte order.
	BOMSniff State = iota
	// LittleEndian decodes UTF-16LE.
	LittleEndian
	// BigEndian decodes UTF-16BE.
	BigEndian
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case BOMSniff:
		return "bom-sniff"
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// unitWidth is the size of one code unit in bytes.
const unitWidth = 2

// Decode is the step for "utf-16": it resolves BOMSniff and then decodes
// with whichever byte order the state names.
func Decode(src []byte, state State) engine.Outcome[State] {
	switch state {
	case BOMSniff:
		if len(src) < unitWidth {
			return engine.Outcome[State]{Need: unitWidth, State: BOMSniff}
		}
		if binary.LittleEndian.Uint16(src) == charcode.ByteOrderMarkUnit {
			return decodeUnits(src, LittleEndian)
		}
		return decodeUnits(src, BigEndian)
	case LittleEndian, BigEndian:
		return decodeUnits(src, state)
	default:
		panic(fmt.Sprintf("utf16: unreachable state %v", state))
	}
}

// DecodeLE is the step for "utf-16le". The state argument is ignored.
func DecodeLE(src []byte, _ State) engine.Outcome[State] {
	return decodeUnits(src, LittleEndian)
}

// DecodeBE is the step for "utf-16be". The state argument is ignored.
func DecodeBE(src []byte, _ State) engine.Outcome[State] {
	return decodeUnits(src, BigEndian)
}

func byteOrder(state State) binary.ByteOrder {
	if state == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// decodeUnits scans src one code unit at a time in the byte order of state.
//
// Decoded units come from a zero-copy view of src (see unitView) or are
// appended to a slice as they are consumed, so the copying path allocates in
// proportion to what it decodes rather than to the window.
func decodeUnits(src []byte, state State) engine.Outcome[State] {
	order := byteOrder(state)
	units, view := unitView(src, state)

	read := 0
	result := func(need int, invalid bool) engine.Outcome[State] {
		o := engine.Outcome[State]{
			Read:    read,
			Need:    need,
			State:   state,
			Invalid: invalid,
		}
		if read > 0 {
			o.Text = tostring.FromUnits(units[:read/unitWidth])
		}
		if invalid {
			o.Skip = unitWidth
		}
		return o
	}

	for {
		remaining := len(src) - read
		if remaining < unitWidth {
			return result(unitWidth, false)
		}

		unit := order.Uint16(src[read:])

		switch {
		case charcode.IsHighSurrogate(unit):
			if remaining < 2*unitWidth {
				// Wait for the low surrogate.
				return result(2*unitWidth, false)
			}
			low := order.Uint16(src[read+unitWidth:])
			if !charcode.IsLowSurrogate(low) {
				return result(unitWidth, true)
			}
			if !view {
				units = append(units, unit, low)
			}
			read += 2 * unitWidth
		case charcode.IsLowSurrogate(unit):
			return result(unitWidth, true)
		default:
			if !view {
				units = append(units, unit)
			}
			read += unitWidth
		}
	}
}
