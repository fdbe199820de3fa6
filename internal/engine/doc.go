// Package engine implements the incremental multi-byte decode engine.
//
// The engine turns a stateless step function into a resumable streaming
// decoder. A step looks at a window of bytes plus a continuation state and
// reports how far it got (Outcome). The engine owns everything that spans
// calls: the continuation state and a small carry buffer holding the bytes of
// a unit that straddles two input chunks.
//
// ARCHITECTURE:
//
// Each Process call runs in two phases:
//  1. Drain the carry. Input bytes are copied into the carry until it holds
//     enough for the step to decide, then the step runs on the carry alone.
//     Only the few bytes crossing a chunk boundary ever touch the carry.
//  2. Decode the rest of the input in place. Leftover bytes that cannot form a
//     unit yet are moved into the carry (streaming) or replaced (flush).
//
// A malformed unit costs exactly one byte: the engine emits one replacement
// character, skips the byte the step flagged, and resumes. This keeps the
// loop finite on any input while letting the step resynchronize on the next
// unit boundary.
//
// INVARIANTS:
//
//   - carryLen < wantLen whenever the engine is idle between calls
//   - wantLen <= MaxUnitWidth; the carry never grows
//   - after a non-streaming call the state is back to its initial value
//   - output is identical for every chunking of the same byte stream
//
// Thread-safety: an Engine is owned by one decoder and must not be used from
// several goroutines at once. Independent engines share nothing.
package engine
