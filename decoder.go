package charconv

import (
	"strings"

	"github.com/LynnKirby/charconv/internal/charcode"
	"github.com/LynnKirby/charconv/internal/engine"
	"github.com/LynnKirby/charconv/internal/utf16"
)

// Stats counts the bytes a Decoder accepted and the replacement characters it
// emitted since it was created.
type Stats = engine.Stats

// Decoder decodes one byte stream at a time.
//
// Create one with NewDecoder. After a non-streaming call (End, or Decode with
// stream false) the Decoder is back in its initial state and can take a new
// stream.
type Decoder struct {
	name     string
	engine   *engine.Engine[utf16.State]
	stripBOM bool

	// atStart is set until the first text of the current stream is emitted.
	atStart bool
}

func newDecoder(enc *encodingInfo, c config) *Decoder {
	return &Decoder{
		name:     enc.name,
		engine:   engine.New(enc.step, enc.initial, c.engineOptions()...),
		stripBOM: c.stripBOM,
		atStart:  true,
	}
}

// Decode decodes src and returns the text it completes.
//
// With stream set, a trailing partial code unit is kept for the next call.
// Without it, src ends the stream: a trailing partial unit becomes U+FFFD and
// the Decoder resets. A nil or empty src with stream false just flushes.
//
// Errors are only returned by decoders created WithFatal.
func (d *Decoder) Decode(src []byte, stream bool) (string, error) {
	text, err := d.engine.Process(src, stream)
	if err != nil {
		d.atStart = true
		return "", err
	}

	if d.atStart && text != "" {
		d.atStart = false
		if d.stripBOM {
			text = strings.TrimPrefix(text, charcode.ByteOrderMark)
		}
	}
	if !stream {
		d.atStart = true
	}
	return text, nil
}

// Write decodes a chunk in the middle of a stream.
func (d *Decoder) Write(src []byte) (string, error) {
	return d.Decode(src, true)
}

// End decodes the final chunk of a stream and resets the Decoder.
func (d *Decoder) End(src []byte) (string, error) {
	return d.Decode(src, false)
}

// Reset abandons the current stream, discarding buffered bytes.
func (d *Decoder) Reset() {
	d.engine.Reset()
	d.atStart = true
}

// Encoding returns the canonical name of the decoded encoding.
func (d *Decoder) Encoding() string {
	return d.name
}

// Buffered returns the number of bytes held back for the next call.
func (d *Decoder) Buffered() int {
	return d.engine.Buffered()
}

// Stats returns the counters accumulated since the Decoder was created.
func (d *Decoder) Stats() Stats {
	return d.engine.Stats()
}
