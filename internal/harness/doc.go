// Package harness runs decoder conformance scenarios.
//
// A scenario names an encoding, a hex-encoded input, and how to split the
// input into streaming calls. The harness feeds the chunks through a
// charconv.Decoder, flushes, records every call, and checks the result
// against the scenario's expectations.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: lone_high_surrogate_le
//	description: "An unpaired high surrogate becomes one replacement"
//	encoding: utf-16le
//	input: "61 00 00 d8 62 00"
//	chunks: [1, 2]
//	fatal: false
//	strip_bom: false
//	expect:
//	  text: "a\uFFFDb"
//	  replacements: 1
//	  outputs: ["", "a", "\uFFFDb"]
//
// input is hex with any ASCII whitespace between digits. Quote it: an
// unquoted 00 is read as a YAML integer. Expected text uses YAML
// double-quoted escapes such as \uFFFD.
//
// chunks lists the sizes of the streaming calls. Whatever input remains is
// passed to the final, non-streaming call, so a scenario with N chunks makes
// N+1 calls and outputs has N+1 entries. Without chunks the input is decoded
// in one call.
//
// expect must set text or error_contains. error_contains only makes sense
// with fatal: true; the scenario passes when some call fails with an error
// whose message contains it.
//
// # Checks
//
// Besides the explicit expectations, every non-fatal scenario is checked for
// chunk invariance: the streamed text must equal a one-shot decode of the
// whole input.
//
// # Golden Files
//
// Snapshot renders a run as a deterministic text trace. Golden files live in
// a golden/ directory next to the scenarios, named after the scenario.
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/lone_high_surrogate_le.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
package harness
