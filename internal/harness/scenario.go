package harness

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LynnKirby/charconv"
)

// Scenario defines a decoder conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Encoding is the label passed to charconv.NewDecoder.
	Encoding string `yaml:"encoding"`

	// Input is the hex-encoded byte stream.
	Input string `yaml:"input"`

	// Chunks are the sizes of the streaming calls before the final call.
	Chunks []int `yaml:"chunks,omitempty"`

	// Fatal creates the decoder WithFatal.
	Fatal bool `yaml:"fatal,omitempty"`

	// StripBOM creates the decoder WithStripBOM.
	StripBOM bool `yaml:"strip_bom,omitempty"`

	// Expect holds the expected outcome.
	Expect Expectation `yaml:"expect"`
}

// Expectation specifies the expected outcome of a scenario.
type Expectation struct {
	// Text is the expected concatenated output.
	Text *string `yaml:"text,omitempty"`

	// Replacements is the expected number of U+FFFD emitted.
	Replacements *int64 `yaml:"replacements,omitempty"`

	// Outputs are the expected per-call outputs, final call included.
	Outputs []string `yaml:"outputs,omitempty"`

	// ErrorContains is a substring of the expected fatal error.
	ErrorContains string `yaml:"error_contains,omitempty"`
}

// InputBytes decodes Input.
func (s *Scenario) InputBytes() ([]byte, error) {
	b, err := DecodeHex(s.Input)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return b, nil
}

// DecodeHex decodes hex digits, ignoring ASCII whitespace between them.
func DecodeHex(s string) ([]byte, error) {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(digits)
}

// Options returns the decoder options the scenario asks for.
func (s *Scenario) Options() []charconv.Option {
	var opts []charconv.Option
	if s.Fatal {
		opts = append(opts, charconv.WithFatal())
	}
	if s.StripBOM {
		opts = append(opts, charconv.WithStripBOM())
	}
	return opts
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "strip-bom:" vs "strip_bom:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks the rules the schema cannot express.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, ok := charconv.Lookup(s.Encoding); !ok {
		return fmt.Errorf("encoding %q is not supported", s.Encoding)
	}

	if _, err := s.InputBytes(); err != nil {
		return err
	}

	for i, size := range s.Chunks {
		if size < 0 {
			return fmt.Errorf("chunks[%d]: size must be non-negative", i)
		}
	}

	e := s.Expect
	if e.Text == nil && e.ErrorContains == "" {
		return fmt.Errorf("expect: text or error_contains is required")
	}
	if e.ErrorContains != "" && !s.Fatal {
		return fmt.Errorf("expect.error_contains requires fatal: true")
	}
	if e.Outputs != nil && len(e.Outputs) != len(s.Chunks)+1 {
		return fmt.Errorf("expect.outputs: want %d entries (one per chunk plus the final call), got %d",
			len(s.Chunks)+1, len(e.Outputs))
	}
	if e.Replacements != nil && *e.Replacements < 0 {
		return fmt.Errorf("expect.replacements must be non-negative")
	}

	return nil
}
