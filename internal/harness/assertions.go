package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an expectation fails.
// It includes the call trace to help debug the failure.
type AssertionError struct {
	Type     string      // Expectation type for categorization
	Expected string      // Human-readable expected outcome
	Actual   string      // Human-readable actual outcome
	Calls    []CallTrace // Full call trace for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Calls) > 0 {
		fmt.Fprintf(&buf, "\nCalls:\n")
		for i, call := range e.Calls {
			fmt.Fprintf(&buf, "  [%d] %s\n", i, formatCall(call))
		}
	}

	return buf.String()
}

// Expectation type constants.
const (
	ExpectText           = "text"
	ExpectReplacements   = "replacements"
	ExpectOutputs        = "outputs"
	ExpectError          = "error_contains"
	ExpectNoError        = "no_error"
	ExpectChunkInvariant = "chunk_invariance"
)

func assertText(result *Result, want string) error {
	if result.Text == want {
		return nil
	}
	return &AssertionError{
		Type:     ExpectText,
		Expected: fmt.Sprintf("%+q", want),
		Actual:   fmt.Sprintf("%+q", result.Text),
		Calls:    result.Calls,
	}
}

func assertReplacements(result *Result, want int64) error {
	if result.Replacements == want {
		return nil
	}
	return &AssertionError{
		Type:     ExpectReplacements,
		Expected: fmt.Sprintf("%d replacements", want),
		Actual:   fmt.Sprintf("%d replacements", result.Replacements),
		Calls:    result.Calls,
	}
}

// assertOutputs compares the per-call outputs.
func assertOutputs(result *Result, want []string) error {
	if len(result.Calls) != len(want) {
		return &AssertionError{
			Type:     ExpectOutputs,
			Expected: fmt.Sprintf("%d calls", len(want)),
			Actual:   fmt.Sprintf("%d calls", len(result.Calls)),
			Calls:    result.Calls,
		}
	}

	for i, call := range result.Calls {
		if call.Output != want[i] {
			return &AssertionError{
				Type:     ExpectOutputs,
				Expected: fmt.Sprintf("call %d output %+q", i, want[i]),
				Actual:   fmt.Sprintf("call %d output %+q", i, call.Output),
				Calls:    result.Calls,
			}
		}
	}
	return nil
}

// assertError checks that some call failed with a message containing want.
func assertError(result *Result, want string) error {
	failed := result.Failed()
	if failed == nil {
		return &AssertionError{
			Type:     ExpectError,
			Expected: fmt.Sprintf("error containing %q", want),
			Actual:   "no error",
			Calls:    result.Calls,
		}
	}
	if !strings.Contains(failed.Err, want) {
		return &AssertionError{
			Type:     ExpectError,
			Expected: fmt.Sprintf("error containing %q", want),
			Actual:   fmt.Sprintf("error %q", failed.Err),
			Calls:    result.Calls,
		}
	}
	return nil
}

func assertNoError(result *Result) error {
	failed := result.Failed()
	if failed == nil {
		return nil
	}
	return &AssertionError{
		Type:     ExpectNoError,
		Expected: "no error",
		Actual:   fmt.Sprintf("error %q", failed.Err),
		Calls:    result.Calls,
	}
}

// assertChunkInvariance checks the streamed text against a one-shot decode.
func assertChunkInvariance(result *Result, oneShot string) error {
	if result.Text == oneShot {
		return nil
	}
	return &AssertionError{
		Type:     ExpectChunkInvariant,
		Expected: fmt.Sprintf("one-shot text %+q", oneShot),
		Actual:   fmt.Sprintf("streamed text %+q", result.Text),
		Calls:    result.Calls,
	}
}

// EvaluateExpectations checks result against the scenario's expectations.
// Returns a slice of error messages for failed expectations.
func EvaluateExpectations(result *Result, scenario *Scenario) []string {
	var errs []string
	add := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	e := scenario.Expect
	if e.ErrorContains != "" {
		add(assertError(result, e.ErrorContains))
	} else {
		add(assertNoError(result))
	}
	if e.Text != nil {
		add(assertText(result, *e.Text))
	}
	if e.Replacements != nil {
		add(assertReplacements(result, *e.Replacements))
	}
	if e.Outputs != nil {
		add(assertOutputs(result, e.Outputs))
	}

	return errs
}
