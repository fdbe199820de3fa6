package charconv

import (
	"fmt"
	"strings"

	"github.com/LynnKirby/charconv/internal/engine"
	"github.com/LynnKirby/charconv/internal/utf16"
)

// Canonical encoding names.
const (
	UTF16   = "utf-16"
	UTF16LE = "utf-16le"
	UTF16BE = "utf-16be"
)

type encodingInfo struct {
	name    string
	aliases []string
	step    engine.StepFunc[utf16.State]
	initial utf16.State
}

var registry = []*encodingInfo{
	{
		name:    UTF16,
		aliases: []string{"utf16"},
		step:    utf16.Decode,
		initial: utf16.BOMSniff,
	},
	{
		name:    UTF16LE,
		aliases: []string{"utf16le", "unicodefeff", "ucs-2", "unicode", "csunicode", "iso-10646-ucs-2"},
		step:    utf16.DecodeLE,
		initial: utf16.LittleEndian,
	},
	{
		name:    UTF16BE,
		aliases: []string{"utf16be", "unicodefffe"},
		step:    utf16.DecodeBE,
		initial: utf16.BigEndian,
	},
}

// labels maps every normalized label to its encoding.
var labels = func() map[string]*encodingInfo {
	m := make(map[string]*encodingInfo)
	for _, enc := range registry {
		m[enc.name] = enc
		for _, alias := range enc.aliases {
			m[alias] = enc
		}
	}
	return m
}()

// normalizeLabel trims ASCII whitespace and lowercases ASCII letters.
func normalizeLabel(label string) string {
	label = strings.Trim(label, " \t\n\f\r")

	var b strings.Builder
	b.Grow(len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func lookup(label string) (*encodingInfo, error) {
	enc, ok := labels[normalizeLabel(label)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
	}
	return enc, nil
}

// Lookup returns the canonical name for label.
func Lookup(label string) (string, bool) {
	enc, err := lookup(label)
	if err != nil {
		return "", false
	}
	return enc.name, true
}

// Encodings returns the canonical names of all supported encodings.
func Encodings() []string {
	names := make([]string, len(registry))
	for i, enc := range registry {
		names[i] = enc.name
	}
	return names
}

// Aliases returns the alternative labels for a canonical name, or nil.
func Aliases(name string) []string {
	for _, enc := range registry {
		if enc.name == name {
			return append([]string(nil), enc.aliases...)
		}
	}
	return nil
}

// NewDecoder creates a Decoder for the encoding named by label.
//
// Labels are matched case-insensitively and may carry surrounding
// whitespace. Unknown labels return an error wrapping ErrUnsupportedEncoding.
func NewDecoder(label string, opts ...Option) (*Decoder, error) {
	enc, err := lookup(label)
	if err != nil {
		return nil, err
	}
	return newDecoder(enc, newConfig(opts)), nil
}

// Decode decodes a complete byte slice in one call.
func Decode(src []byte, label string, opts ...Option) (string, error) {
	dec, err := NewDecoder(label, opts...)
	if err != nil {
		return "", err
	}
	return dec.End(src)
}
