package chartspec

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed spec-schema.json
var specSchema string

// Result reports the outcome of schema validation.
type Result struct {
	Valid    bool
	Findings []string
}

// ValidateFile checks a YAML chart spec file against the embedded schema.
// The YAML document is decoded to a generic value first so the schema
// validator sees plain JSON-shaped data.
func ValidateFile(path string) (*Result, error) {
	raw, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("reading chart spec: %w", readErr)
	}

	return ValidateBytes(raw)
}

// ValidateBytes checks raw YAML chart spec content against the embedded
// schema.
func ValidateBytes(raw []byte) (*Result, error) {
	var doc any

	decodeErr := yaml.Unmarshal(raw, &doc)
	if decodeErr != nil {
		return nil, fmt.Errorf("invalid YAML: %w", decodeErr)
	}

	schemaLoader := gojsonschema.NewStringLoader(specSchema)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, validateErr := gojsonschema.Validate(schemaLoader, docLoader)
	if validateErr != nil {
		return nil, fmt.Errorf("schema validation: %w", validateErr)
	}

	out := &Result{Valid: result.Valid()}

	for _, desc := range result.Errors() {
		out.Findings = append(out.Findings, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}

	return out, nil
}
