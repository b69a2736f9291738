package payload

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRequestJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// export-request envelope as a generic map. It constrains formats to the
// given whitelist and leaves selection/options open for the engine.
func BuildRequestJSONSchema(allowedFormats []string) map[string]any {
	props := map[string]any{
		"document_id": map[string]any{
			"type":    "string",
			"pattern": `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`,
		},
		"selection": map[string]any{},
		"formats": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": "string"},
		},
		"options": map[string]any{"type": "object"},
	}
	if len(allowedFormats) > 0 {
		props["formats"].(map[string]any)["items"] = map[string]any{
			"type": "string",
			"enum": allowedFormats,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"document_id", "formats"},
	}
}

// CompileSchema compiles a schema map for repeated validation.
func CompileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// Validator returns a submission-time payload check for the scheduler,
// validating each payload against the compiled envelope schema.
func Validator(schema *jsonschema.Schema) func(json.RawMessage) error {
	return func(data json.RawMessage) error {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("unmarshal payload: %w", err)
		}
		if err := schema.Validate(v); err != nil {
			return fmt.Errorf("payload does not match schema: %w", err)
		}
		return nil
	}
}
