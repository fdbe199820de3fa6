package charconv

import (
	"errors"

	"github.com/LynnKirby/charconv/internal/engine"
)

// ErrMalformed is matched by every error a fatal Decoder returns for bad input.
var ErrMalformed = engine.ErrMalformed

// ErrUnsupportedEncoding is returned for labels that name no known encoding.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// MalformedError reports the stream offset of the first malformed unit seen by
// a fatal Decoder.
type MalformedError = engine.MalformedError

// IsMalformed returns true if err is, or wraps, a MalformedError.
func IsMalformed(err error) bool {
	return engine.IsMalformed(err)
}
