// Package charconv decodes UTF-16 byte streams into Go strings.
//
// Input may arrive in chunks of any size. A Decoder keeps the bytes of a code
// unit or surrogate pair that straddles a chunk boundary and finishes it on
// the next call, so the decoded text does not depend on how the stream was
// split:
//
//	dec, err := charconv.NewDecoder("utf-16le")
//	if err != nil {
//		return err
//	}
//	for _, chunk := range chunks {
//		text, _ := dec.Write(chunk)
//		out.WriteString(text)
//	}
//	text, _ := dec.End(nil)
//	out.WriteString(text)
//
// Malformed input (an unpaired surrogate, or a stream that ends inside a
// code unit) becomes U+FFFD by default. WithFatal turns it into an error
// instead.
//
// A byte order mark is decoded as an ordinary U+FEFF character unless
// WithStripBOM is given. The "utf-16" label uses the BOM to pick the byte
// order and falls back to big-endian.
//
// For io.Reader pipelines, NewReader and NewTransformer adapt a Decoder to
// golang.org/x/text/transform.
//
// Thread-safety: a Decoder and a Transformer are not safe for concurrent use.
// Use one per stream.
package charconv
