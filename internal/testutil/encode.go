// Package testutil provides fixtures shared by the decoder tests.
package testutil

import (
	"encoding/binary"
	stdutf16 "unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// EncodeUnits serializes raw UTF-16 code units in the given byte order.
//
// Unlike EncodeString it can produce unpaired surrogates.
func EncodeUnits(units []uint16, order binary.ByteOrder) []byte {
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = order.AppendUint16(out, u)
	}
	return out
}

// Units returns the UTF-16 code units of s.
func Units(s string) []uint16 {
	return stdutf16.Encode([]rune(s))
}

// EncodeString encodes s as UTF-16 with a reference encoder.
//
// The result carries no byte order mark unless s starts with one.
func EncodeString(s string, order binary.ByteOrder) []byte {
	endianness := unicode.BigEndian
	if order == binary.LittleEndian {
		endianness = unicode.LittleEndian
	}

	out, err := unicode.UTF16(endianness, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		// The encoder replaces invalid UTF-8 instead of failing.
		panic(err)
	}
	return out
}

// LE encodes s as UTF-16LE.
func LE(s string) []byte {
	return EncodeString(s, binary.LittleEndian)
}

// BE encodes s as UTF-16BE.
func BE(s string) []byte {
	return EncodeString(s, binary.BigEndian)
}
