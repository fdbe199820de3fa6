package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: test_scenario
description: "Test scenario for validation"
encoding: UTF-16LE
input: "61 00 62 00"
chunks: [1, 3]
strip_bom: true
expect:
  text: "ab"
  replacements: 0
  outputs: ["", "ab", ""]
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	assert.Equal(t, "UTF-16LE", scenario.Encoding)
	assert.Equal(t, []int{1, 3}, scenario.Chunks)
	assert.True(t, scenario.StripBOM)
	assert.False(t, scenario.Fatal)
	require.NotNil(t, scenario.Expect.Text)
	assert.Equal(t, "ab", *scenario.Expect.Text)
	require.NotNil(t, scenario.Expect.Replacements)
	assert.Equal(t, int64(0), *scenario.Expect.Replacements)
	assert.Len(t, scenario.Options(), 1)

	input, err := scenario.InputBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x61, 0x00, 0x62, 0x00}, input)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "strip-bom is not a field"
encoding: utf-16
input: ""
strip-bom: true
expect:
  text: ""
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "strip-bom")
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing name",
			content: `
description: "no name"
encoding: utf-16
input: ""
expect: {text: ""}
`,
			wantErr: "name",
		},
		{
			name: "name with spaces",
			content: `
name: Bad Name
description: "names become file names"
encoding: utf-16
input: ""
expect: {text: ""}
`,
			wantErr: "schema",
		},
		{
			name: "missing description",
			content: `
name: no_description
encoding: utf-16
input: ""
expect: {text: ""}
`,
			wantErr: "description",
		},
		{
			name: "non-hex input",
			content: `
name: bad_hex
description: "zz is not hex"
encoding: utf-16
input: "zz"
expect: {text: ""}
`,
			wantErr: "schema",
		},
		{
			name: "odd hex digit count",
			content: `
name: odd_hex
description: "half a byte"
encoding: utf-16
input: "6"
expect: {text: ""}
`,
			wantErr: "input",
		},
		{
			name: "negative chunk",
			content: `
name: negative_chunk
description: "chunk sizes are non-negative"
encoding: utf-16
input: ""
chunks: [-1]
expect: {text: ""}
`,
			wantErr: "schema",
		},
		{
			name: "unsupported encoding",
			content: `
name: latin1
description: "not a UTF-16 label"
encoding: latin1
input: ""
expect: {text: ""}
`,
			wantErr: `encoding "latin1" is not supported`,
		},
		{
			name: "no expectation",
			content: `
name: nothing_expected
description: "expect needs text or error_contains"
encoding: utf-16
input: ""
expect: {}
`,
			wantErr: "text or error_contains is required",
		},
		{
			name: "error expectation without fatal",
			content: `
name: not_fatal
description: "replacement mode never errors"
encoding: utf-16
input: "00"
expect:
  error_contains: "truncated"
`,
			wantErr: "requires fatal: true",
		},
		{
			name: "outputs count mismatch",
			content: `
name: outputs_mismatch
description: "two chunks mean three calls"
encoding: utf-16
input: "00 61"
chunks: [1, 1]
expect:
  text: "a"
  outputs: ["", "a"]
`,
			wantErr: "want 3 entries",
		},
		{
			name: "wrong type",
			content: `
name: wrong_type
description: "fatal must be a bool"
encoding: utf-16
input: ""
fatal: "yes"
expect: {text: ""}
`,
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenario_InputBytesIgnoresWhitespace(t *testing.T) {
	s := &Scenario{Input: " 00\t61\r\n00 62 "}
	input, err := s.InputBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x61, 0x00, 0x62}, input)
}

func TestLoadScenario_Fixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		scenario, err := LoadScenario(file)
		require.NoError(t, err, file)

		base := filepath.Base(file)
		assert.Equal(t, base[:len(base)-len(".yaml")], scenario.Name, "scenario name must match its file name")
	}
}
