// Package schema compiles and applies JSON Schema documents used for
// function-tool parameters.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func compile(schemaJSON json.RawMessage) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("schema resource: %w", err)
	}
	s, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
}

// Compile reports whether schemaJSON is a usable JSON Schema document. An
// empty schema is accepted.
func Compile(schemaJSON json.RawMessage) error {
	if len(schemaJSON) == 0 {
		return nil
	}
	_, err := compile(schemaJSON)
	return err
}

// Validate checks raw against schemaJSON. An empty schema accepts any
// well-formed JSON document.
func Validate(schemaJSON json.RawMessage, raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("empty json")
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if len(schemaJSON) == 0 {
		return nil
	}

	s, err := compile(schemaJSON)
	if err != nil {
		return err
	}
	return s.Validate(doc)
}
