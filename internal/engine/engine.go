package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/LynnKirby/charconv/internal/charcode"
)

// Stats counts what an engine has processed since it was created.
// Reset does not clear it.
type Stats struct {
	// Bytes is the number of input bytes accepted.
	Bytes int64

	// Replacements is the number of replacement characters emitted.
	Replacements int64
}

// Engine is the incremental decode engine for one byte stream.
//
// The step function is injected; the engine itself knows nothing about any
// particular encoding. S is the step's continuation state type.
type Engine[S comparable] struct {
	step    StepFunc[S]
	initial S
	fatal   bool
	logger  *slog.Logger

	state    S
	carry    [MaxUnitWidth]byte
	carryLen int   // bytes held in carry
	wantLen  int   // bytes required in carry before the next step call
	offset   int64 // stream offset of carry[0], or of the next unread input byte

	stats Stats
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	fatal  bool
	logger *slog.Logger
}

// WithFatal makes malformed input an error instead of a replacement character.
//
// The first malformed unit makes Process return a *MalformedError and resets
// the engine. Text decoded earlier in the same call is discarded.
func WithFatal() Option {
	return func(o *options) {
		o.fatal = true
	}
}

// WithLogger sets the logger used for debug diagnostics.
//
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an Engine that decodes with step, starting from initial.
func New[S comparable](step StepFunc[S], initial S, opts ...Option) *Engine[S] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[S]{
		step:    step,
		initial: initial,
		fatal:   o.fatal,
		logger:  o.logger,
		state:   initial,
	}
}

// Process decodes src and returns the text it completes.
//
// With stream set, bytes that do not yet form a whole unit are kept for the
// next call. Without it, src is the end of the stream: any incomplete tail
// becomes one replacement character per byte and the engine is reset.
//
// An error is only returned in fatal mode.
func (e *Engine[S]) Process(src []byte, stream bool) (string, error) {
	e.stats.Bytes += int64(len(src))

	var out strings.Builder

	// Finish the unit that straddles the previous call first. This can take
	// several rounds when the carry holds back-to-back malformed bytes.
	for e.carryLen > 0 {
		if e.carryLen < e.wantLen {
			n := copy(e.carry[e.carryLen:e.wantLen], src)
			e.carryLen += n
			src = src[n:]
		}

		if e.carryLen < e.wantLen {
			// src is exhausted.
			if stream {
				return out.String(), nil
			}
			if err := e.replaceTail(&out, e.carryLen); err != nil {
				return "", err
			}
			e.end()
			return out.String(), nil
		}

		window := e.carry[:e.carryLen]
		o := e.call(window)
		out.WriteString(o.Text)

		if o.Read == len(window) {
			e.offset += int64(e.carryLen)
			e.carryLen = 0
			break
		}

		if o.Invalid {
			if err := e.replace(&out, e.offset+int64(o.Read), false); err != nil {
				return "", err
			}
		}
		skip := o.Read + o.skip()

		copy(e.carry[:], e.carry[skip:e.carryLen])
		e.carryLen -= skip
		e.offset += int64(skip)
	}

	for {
		o := e.call(src)
		out.WriteString(o.Text)

		if o.Invalid {
			if err := e.replace(&out, e.offset+int64(o.Read), false); err != nil {
				return "", err
			}
		}
		skip := o.Read + o.skip()
		src = src[skip:]
		e.offset += int64(skip)

		if o.Need > len(src) {
			break
		}
	}

	// Fewer than wantLen bytes are left, so they fit in the carry.
	if len(src) > 0 {
		if stream {
			e.carryLen = copy(e.carry[:], src)
		} else if err := e.replaceTail(&out, len(src)); err != nil {
			return "", err
		}
	}

	if !stream {
		e.end()
	}

	return out.String(), nil
}

// Reset discards buffered bytes and returns to the initial state.
func (e *Engine[S]) Reset() {
	e.state = e.initial
	e.carryLen = 0
	e.wantLen = 0
	e.offset = 0
}

// State returns the current continuation state.
func (e *Engine[S]) State() S {
	return e.state
}

// Buffered returns the number of bytes held for the next call.
func (e *Engine[S]) Buffered() int {
	return e.carryLen
}

// Stats returns the counters accumulated since the engine was created.
func (e *Engine[S]) Stats() Stats {
	return e.stats
}

// call runs the step on window and enforces the Outcome contract.
func (e *Engine[S]) call(window []byte) Outcome[S] {
	o := e.step(window, e.state)

	switch {
	case o.Read < 0 || o.Read > len(window):
		panic(newContractError(ErrCodeReadOutOfRange, "step read outside its window", len(window), o.Read, o.Need))
	case o.Need < 1 || o.Need > MaxUnitWidth:
		panic(newContractError(ErrCodeNeedOutOfRange, "step needs an impossible byte count", len(window), o.Read, o.Need))
	case o.Invalid && o.Read+o.skip() > len(window):
		panic(newContractError(ErrCodeInvalidPastEnd, "step flagged bytes past its window", len(window), o.Read, o.Need))
	case !o.Invalid && o.Read == 0 && o.Need <= len(window):
		panic(newContractError(ErrCodeNoProgress, "step made no progress", len(window), o.Read, o.Need))
	}

	e.state = o.State
	e.wantLen = o.Need
	return o
}

// logCtx is the context for debug logging; Process takes none.
var logCtx = context.Background()

// replace emits the replacement for one malformed unit starting at offset.
func (e *Engine[S]) replace(out *strings.Builder, offset int64, truncated bool) error {
	if e.logger.Enabled(logCtx, slog.LevelDebug) {
		e.logger.LogAttrs(logCtx, slog.LevelDebug, "malformed sequence",
			slog.Int64("offset", offset),
			slog.Bool("truncated", truncated),
			slog.Bool("fatal", e.fatal),
		)
	}

	if e.fatal {
		err := &MalformedError{Offset: offset, Truncated: truncated}
		e.Reset()
		return err
	}

	out.WriteString(charcode.Replacement)
	e.stats.Replacements++
	return nil
}

// replaceTail emits one replacement per byte of an incomplete tail of n
// bytes starting at the current offset.
func (e *Engine[S]) replaceTail(out *strings.Builder, n int) error {
	start := e.offset
	for i := 0; i < n; i++ {
		if err := e.replace(out, start+int64(i), true); err != nil {
			return err
		}
	}
	e.offset += int64(n)
	return nil
}

// end resets the engine after a non-streaming call.
func (e *Engine[S]) end() {
	if e.logger.Enabled(logCtx, slog.LevelDebug) {
		e.logger.LogAttrs(logCtx, slog.LevelDebug, "stream ended",
			slog.Int64("bytes", e.offset),
			slog.Int64("replacements", e.stats.Replacements),
		)
	}
	e.Reset()
}
