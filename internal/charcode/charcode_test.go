package charcode

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSurrogatePredicates(t *testing.T) {
	tests := []struct {
		name string
		c    uint16
		high bool
		low  bool
	}{
		{"ascii", 'a', false, false},
		{"below high range", 0xD7FF, false, false},
		{"first high", FirstHighSurrogate, true, false},
		{"last high", LastHighSurrogate, true, false},
		{"first low", FirstLowSurrogate, false, true},
		{"last low", LastLowSurrogate, false, true},
		{"above low range", 0xE000, false, false},
		{"bom", ByteOrderMarkUnit, false, false},
		{"swapped bom", FirstNoncharacter, false, false},
		{"last unit", SecondNoncharacter, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.high, IsHighSurrogate(tt.c))
			assert.Equal(t, tt.low, IsLowSurrogate(tt.c))
			assert.Equal(t, tt.high || tt.low, IsSurrogate(tt.c))
		})
	}
}

func TestStringForms(t *testing.T) {
	r, _ := utf8.DecodeRuneInString(Replacement)
	assert.Equal(t, rune(ReplacementUnit), r)
	assert.Equal(t, utf8.RuneError, r)

	r, _ = utf8.DecodeRuneInString(ByteOrderMark)
	assert.Equal(t, rune(ByteOrderMarkUnit), r)
}
