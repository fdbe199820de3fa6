package harness

// CallTrace records one Decoder call.
type CallTrace struct {
	// Stream is false for the final call.
	Stream bool `json:"stream"`

	// Input is the chunk passed to the call.
	Input []byte `json:"input"`

	// Output is the text the call returned.
	Output string `json:"output"`

	// Err is the error message, if the call failed.
	Err string `json:"error,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true if every expectation held.
	Pass bool `json:"pass"`

	// Encoding is the canonical name the scenario's label resolved to.
	Encoding string `json:"encoding"`

	// Calls lists the decoder calls in order. A fatal error ends the list.
	Calls []CallTrace `json:"calls"`

	// Text is the concatenated output of all calls.
	Text string `json:"text"`

	// Replacements is the number of U+FFFD the decoder emitted.
	Replacements int64 `json:"replacements"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(encoding string) *Result {
	return &Result{
		Pass:     true,
		Encoding: encoding,
		Calls:    []CallTrace{},
		Errors:   []string{},
	}
}

// AddError adds an expectation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddCall appends a call to the trace and its output to Text.
func (r *Result) AddCall(stream bool, input []byte, output string, err error) {
	call := CallTrace{
		Stream: stream,
		Input:  input,
		Output: output,
	}
	if err != nil {
		call.Err = err.Error()
	}
	r.Calls = append(r.Calls, call)
	r.Text += output
}

// Failed returns the first failed call, or nil.
func (r *Result) Failed() *CallTrace {
	for i := range r.Calls {
		if r.Calls[i].Err != "" {
			return &r.Calls[i]
		}
	}
	return nil
}
