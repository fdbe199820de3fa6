package harness

import (
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// scenarioSchema is the shape of a scenario document.
const scenarioSchema = `
#Scenario: {
	name:        string & =~"^[a-z0-9_]+$"
	description: string & !=""
	encoding:    string & !=""
	input:       string & =~"^[0-9A-Fa-f \t\r\n]*$"
	chunks?: [...int & >=0]
	fatal?:     bool
	strip_bom?: bool
	expect: {
		text?:           string
		replacements?:   int & >=0
		outputs?: [...string]
		error_contains?: string
	}
}
`

// validateSchema checks a scenario document against scenarioSchema.
//
// The YAML is converted to JSON first, which CUE reads natively.
func validateSchema(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema).LookupPath(cue.ParsePath("#Scenario"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	value := ctx.CompileBytes(jsonData)
	if err := value.Err(); err != nil {
		return fmt.Errorf("schema: %w", err)
	}

	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return formatSchemaError(err)
	}
	return nil
}

// formatSchemaError reports the first CUE error with its field path.
func formatSchemaError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("schema: %w", err)
	}

	first := errs[0]
	format, args := first.Msg()
	msg := fmt.Sprintf(format, args...)
	if path := first.Path(); len(path) > 0 {
		return fmt.Errorf("schema: %s: %s", strings.Join(path, "."), msg)
	}
	return fmt.Errorf("schema: %s", msg)
}
