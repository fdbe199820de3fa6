package charconv

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Transformer adapts a Decoder to transform.Transformer.
//
// Every call consumes all of src. Decoded text that does not fit in dst is
// held and handed out on later calls, which report transform.ErrShortDst
// until it is drained. A call with atEOF set ends the stream.
type Transformer struct {
	dec     *Decoder
	pending []byte
	ended   bool
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer creates a Transformer for the encoding named by label.
func NewTransformer(label string, opts ...Option) (*Transformer, error) {
	dec, err := NewDecoder(label, opts...)
	if err != nil {
		return nil, err
	}
	return &Transformer{dec: dec}, nil
}

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(t.pending) > 0 {
		nDst = t.drain(dst)
		if len(t.pending) > 0 {
			return nDst, 0, transform.ErrShortDst
		}
	}

	if len(src) == 0 && (!atEOF || t.ended) {
		return nDst, 0, nil
	}

	// Input after the end of a stream starts a new one.
	t.ended = false

	text, err := t.dec.Decode(src, !atEOF)
	if err != nil {
		return nDst, 0, err
	}
	t.ended = atEOF

	t.pending = append(t.pending, text...)
	nDst += t.drain(dst[nDst:])
	if len(t.pending) > 0 {
		return nDst, len(src), transform.ErrShortDst
	}
	return nDst, len(src), nil
}

// drain copies as much pending output as fits into dst.
func (t *Transformer) drain(dst []byte) int {
	n := copy(dst, t.pending)
	t.pending = t.pending[n:]
	if len(t.pending) == 0 {
		t.pending = nil
	}
	return n
}

// Reset implements transform.Transformer.
func (t *Transformer) Reset() {
	t.dec.Reset()
	t.pending = nil
	t.ended = false
}

// NewReader returns a reader that decodes r as the encoding named by label.
func NewReader(r io.Reader, label string, opts ...Option) (io.Reader, error) {
	t, err := NewTransformer(label, opts...)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, t), nil
}

// NewTextDecoder returns an x/text encoding.Decoder for the encoding named by
// label, for use with its Bytes, String and Reader helpers.
func NewTextDecoder(label string, opts ...Option) (*encoding.Decoder, error) {
	t, err := NewTransformer(label, opts...)
	if err != nil {
		return nil, err
	}
	return &encoding.Decoder{Transformer: t}, nil
}
