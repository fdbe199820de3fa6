package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenDir is the golden directory used by package tests, relative to the
// package directory.
const GoldenDir = "testdata/scenarios/golden"

// Snapshot renders a scenario run as a deterministic text trace.
//
// Text is written as code points so invisible characters such as U+FEFF and
// U+0000 show up in diffs:
//
//	scenario: lone_high_surrogate_le
//	encoding: utf-16le
//	call 0 write in=[61] out=[]
//	call 1 write in=[00 00] out=[U+0061]
//	call 2 end in=[d8 62 00] out=[U+FFFD U+0062]
//	text: [U+0061 U+FFFD U+0062]
//	replacements: 1
func Snapshot(scenario *Scenario, result *Result) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "scenario: %s\n", scenario.Name)
	fmt.Fprintf(&buf, "encoding: %s\n", result.Encoding)
	for i, call := range result.Calls {
		fmt.Fprintf(&buf, "call %d %s\n", i, formatCall(call))
	}
	fmt.Fprintf(&buf, "text: %s\n", formatCodePoints(result.Text))
	fmt.Fprintf(&buf, "replacements: %d\n", result.Replacements)

	return buf.Bytes()
}

func formatCall(call CallTrace) string {
	kind := "write"
	if !call.Stream {
		kind = "end"
	}
	if call.Err != "" {
		return fmt.Sprintf("%s in=[% x] error=%q", kind, call.Input, call.Err)
	}
	return fmt.Sprintf("%s in=[% x] out=%s", kind, call.Input, formatCodePoints(call.Output))
}

func formatCodePoints(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// GoldenPath returns the golden file for a scenario name inside dir.
func GoldenPath(dir, name string) string {
	return filepath.Join(dir, name+".golden")
}

// RunWithGolden executes a scenario, fails t on unmet expectations, and
// compares the snapshot against testdata/scenarios/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Error(msg)
	}

	AssertGolden(t, scenario, result)
	return nil
}

// AssertGolden compares a result's snapshot against its golden file.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, Snapshot(scenario, result))
}

// WriteGolden writes the snapshot of a run into dir.
func WriteGolden(dir string, scenario *Scenario, result *Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}

	path := GoldenPath(dir, scenario.Name)
	if err := os.WriteFile(path, Snapshot(scenario, result), 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// CompareGolden reports whether the snapshot of a run matches its golden
// file in dir. found is false if there is no golden file.
func CompareGolden(dir string, scenario *Scenario, result *Result) (match, found bool, err error) {
	data, err := os.ReadFile(GoldenPath(dir, scenario.Name))
	if os.IsNotExist(err) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to read golden file: %w", err)
	}
	return bytes.Equal(data, Snapshot(scenario, result)), true, nil
}
