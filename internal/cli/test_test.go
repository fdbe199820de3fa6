package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureScenariosDir = "../harness/testdata/scenarios"

const passingScenario = `name: simple_le
description: "Two little-endian units"
encoding: utf-16le
input: "68 00 69 00"
expect:
  text: "hi"
  replacements: 0
`

const failingScenario = `name: wrong_text
description: "Expects the wrong text"
encoding: utf-16le
input: "68 00 69 00"
expect:
  text: "ho"
`

func writeScenarioFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func executeTest(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewTestCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTestCommandMissingArgs(t *testing.T) {
	_, err := executeTest(t, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentScenariosDir(t *testing.T) {
	_, err := executeTest(t, "text", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenarios directory not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandEmptyScenariosDir(t *testing.T) {
	out, err := executeTest(t, "text", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestTestCommandEmptyScenariosDirJSON(t *testing.T) {
	out, err := executeTest(t, "json", t.TempDir())
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestTestCommandFixtures(t *testing.T) {
	out, err := executeTest(t, "text", fixtureScenariosDir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ bom_little_endian")
	assert.Contains(t, out, "✓ fatal_lone_low_be")
	assert.Contains(t, out, "10 passed, 0 failed, 10 total")
	assert.Contains(t, out, "All scenarios passed")
}

func TestTestCommandFixturesJSON(t *testing.T) {
	out, err := executeTest(t, "json", fixtureScenariosDir)
	require.NoError(t, err, out)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 10, resp.Data.Total)
	assert.Equal(t, 10, resp.Data.Passed)
	assert.Equal(t, 0, resp.Data.Failed)
}

func TestTestCommandFilter(t *testing.T) {
	out, err := executeTest(t, "text", fixtureScenariosDir, "--filter", "fatal_*")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ fatal_lone_low_be")
	assert.Contains(t, out, "✓ fatal_truncated_le")
	assert.NotContains(t, out, "bom_little_endian")
	assert.Contains(t, out, "2 passed, 0 failed, 2 total")
}

func TestTestCommandInvalidFilter(t *testing.T) {
	_, err := executeTest(t, "text", fixtureScenariosDir, "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandFailingScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "wrong_text.yaml", failingScenario)

	out, err := executeTest(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong_text")
	assert.Contains(t, out, "Assertion failed: text")
	assert.Contains(t, out, "0 passed, 1 failed, 1 total")
}

func TestTestCommandFailingScenarioJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "wrong_text.yaml", failingScenario)
	writeScenarioFile(t, dir, "simple_le.yml", passingScenario)

	out, err := executeTest(t, "json", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)
}

func TestTestCommandInvalidScenarioFile(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "broken.yaml", "name: [unclosed\n")

	out, err := executeTest(t, "text", dir)
	require.Error(t, err)
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestTestCommandUpdateWritesGolden(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "simple_le.yaml", passingScenario)

	out, err := executeTest(t, "text", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ simple_le (golden updated)")

	golden, err := os.ReadFile(filepath.Join(dir, "golden", "simple_le.golden"))
	require.NoError(t, err)
	assert.Contains(t, string(golden), "scenario: simple_le")
	assert.Contains(t, string(golden), "out=[U+0068 U+0069]")

	out, err = executeTest(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ simple_le\n")
}

func TestTestCommandGoldenMismatch(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "simple_le.yaml", passingScenario)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "golden", "simple_le.golden"), []byte("stale\n"), 0644))

	out, err := executeTest(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "does not match golden file")
}

func TestFindScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "a.yaml", passingScenario)
	writeScenarioFile(t, dir, "b.yml", passingScenario)
	writeScenarioFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0755))
	writeScenarioFile(t, filepath.Join(dir, "golden"), "a.golden", "ignored")

	files, err := findScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml")}, files)

	files, err = findScenarioFiles(dir, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "b.yml")}, files)
}
