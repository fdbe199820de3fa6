// Package tostring converts UTF-16 code units into Go strings.
//
// Conversion runs in fixed-size batches so very long inputs never need a
// scratch buffer proportional to the whole input. A batch boundary never
// splits a valid surrogate pair.
//
// FromUnits performs no validation: unpaired surrogates are written in the
// generalized UTF-8 form (three bytes, as WTF-8 does) so the exact code unit
// sequence survives. Decoders validate before calling it.
package tostring

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/LynnKirby/charconv/internal/charcode"
)

// BatchSize is the number of code units converted per batch.
const BatchSize = 1 << 14

// FromUnits returns the text whose UTF-16 code unit sequence is units.
func FromUnits(units []uint16) string {
	if len(units) == 0 {
		return ""
	}

	n := min(len(units), BatchSize)
	if len(units) <= n {
		return string(appendUnits(make([]byte, 0, len(units)*3), units))
	}

	var b strings.Builder
	b.Grow(len(units))
	scratch := make([]byte, 0, (BatchSize+1)*3)

	for len(units) > 0 {
		n = min(len(units), BatchSize)
		if n < len(units) && charcode.IsHighSurrogate(units[n-1]) && charcode.IsLowSurrogate(units[n]) {
			n++
		}
		scratch = appendUnits(scratch[:0], units[:n])
		b.Write(scratch)
		units = units[n:]
	}

	return b.String()
}

func appendUnits(dst []byte, units []uint16) []byte {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < utf8.RuneSelf:
			dst = append(dst, byte(u))
		case charcode.IsHighSurrogate(u) && i+1 < len(units) && charcode.IsLowSurrogate(units[i+1]):
			dst = utf8.AppendRune(dst, utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case charcode.IsSurrogate(u):
			dst = appendSurrogate(dst, u)
		default:
			dst = utf8.AppendRune(dst, rune(u))
		}
	}
	return dst
}

// appendSurrogate writes the three-byte generalized UTF-8 form of a lone
// surrogate. utf8.AppendRune would replace it with U+FFFD.
func appendSurrogate(dst []byte, u uint16) []byte {
	return append(dst,
		0xE0|byte(u>>12),
		0x80|byte(u>>6)&0x3F,
		0x80|byte(u)&0x3F,
	)
}
