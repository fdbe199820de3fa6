package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/LynnKirby/charconv"
)

// Harness runs scenarios against charconv decoders.
type Harness struct {
	logger *slog.Logger
}

// New creates a Harness that hands logger to every decoder it builds.
// A nil logger discards diagnostics.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with diagnostics discarded.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run executes a scenario and returns the result.
//
// An error means the scenario could not be run at all (bad input or an
// unknown encoding). Unmet expectations are reported in the Result.
//
// Execution flow:
// 1. Stream each chunk through a fresh decoder
// 2. Pass the rest of the input to the final call
// 3. Check the expectations
// 4. Outside fatal mode, compare against a one-shot decode
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	input, err := scenario.InputBytes()
	if err != nil {
		return nil, err
	}

	logger := h.logger.With(slog.String("scenario", scenario.Name))
	opts := append(scenario.Options(), charconv.WithLogger(logger))

	dec, err := charconv.NewDecoder(scenario.Encoding, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	result := NewResult(dec.Encoding())
	h.execute(dec, input, scenario.Chunks, result)
	result.Replacements = dec.Stats().Replacements

	for _, msg := range EvaluateExpectations(result, scenario) {
		result.AddError(msg)
	}

	if !scenario.Fatal {
		oneShot, err := charconv.Decode(input, scenario.Encoding, scenario.Options()...)
		if err != nil {
			return nil, fmt.Errorf("one-shot decode: %w", err)
		}
		if err := assertChunkInvariance(result, oneShot); err != nil {
			result.AddError(err.Error())
		}
	}

	logger.Debug("scenario finished",
		slog.Bool("pass", result.Pass),
		slog.Int("calls", len(result.Calls)),
		slog.Int64("replacements", result.Replacements),
	)

	return result, nil
}

// execute feeds input through dec in the scenario's chunking.
// A failed call ends the run.
func (h *Harness) execute(dec *charconv.Decoder, input []byte, chunks []int, result *Result) {
	for _, size := range chunks {
		size = min(size, len(input))
		chunk := input[:size]
		input = input[size:]

		text, err := dec.Write(chunk)
		result.AddCall(true, chunk, text, err)
		if err != nil {
			return
		}
	}

	text, err := dec.End(input)
	result.AddCall(false, input, text, err)
}
