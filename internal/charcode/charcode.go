// Package charcode holds the Unicode code point constants shared by the
// decoders.
package charcode

// Code unit values.
const (
	FirstHighSurrogate uint16 = 0xD800
	LastHighSurrogate  uint16 = 0xDBFF

	FirstLowSurrogate uint16 = 0xDC00
	LastLowSurrogate  uint16 = 0xDFFF

	ByteOrderMarkUnit uint16 = 0xFEFF
	ReplacementUnit   uint16 = 0xFFFD

	FirstNoncharacter  uint16 = 0xFFFE
	SecondNoncharacter uint16 = 0xFFFF
)

// String forms.
const (
	ByteOrderMark = "\uFEFF"
	Replacement   = "\uFFFD"
)

// IsSurrogate reports whether c is a high or low surrogate.
func IsSurrogate(c uint16) bool {
	return c >= FirstHighSurrogate && c <= LastLowSurrogate
}

// IsHighSurrogate reports whether c is the leading half of a surrogate pair.
func IsHighSurrogate(c uint16) bool {
	return c >= FirstHighSurrogate && c <= LastHighSurrogate
}

// IsLowSurrogate reports whether c is the trailing half of a surrogate pair.
func IsLowSurrogate(c uint16) bool {
	return c >= FirstLowSurrogate && c <= LastLowSurrogate
}
