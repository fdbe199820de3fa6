package engine

// MaxUnitWidth is the widest unit any step may ask for, and the capacity of
// the carry buffer. UTF-16 needs four bytes for a surrogate pair.
const MaxUnitWidth = 4

// Outcome is the result of one step over a byte window.
type Outcome[S comparable] struct {
	// Read is the number of leading bytes fully decoded into Text.
	Read int

	// Need is the minimum number of bytes required, counted from Read, before
	// the step can make further progress. When Invalid is set it counts from
	// the byte after the skipped one.
	Need int

	// Text is the decoded text of the first Read bytes.
	Text string

	// State is the continuation handed to the next step call.
	State S

	// Invalid reports that the byte at offset Read starts a malformed unit.
	Invalid bool

	// Skip is the width in bytes of the malformed unit when Invalid is set.
	// Zero means a single byte. A step that knows its unit boundaries sets it
	// so decoding resumes on the next boundary.
	Skip int
}

// skip returns how many bytes past Read the engine drops for a malformed unit.
func (o Outcome[S]) skip() int {
	if !o.Invalid {
		return 0
	}
	if o.Skip < 1 {
		return 1
	}
	return o.Skip
}

// StepFunc decodes as much of src as possible starting from state.
// It must not retain src.
type StepFunc[S comparable] func(src []byte, state S) Outcome[S]
