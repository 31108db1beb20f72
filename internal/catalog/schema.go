package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemaFiles embed.FS

const schemaURL = "https://speedbingo.dev/schemas/catalog.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	data, err := schemaFiles.ReadFile("schemas/catalog.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add catalog schema: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Schema returns the JSON Schema catalogs are checked against.
func Schema() []byte {
	data, _ := schemaFiles.ReadFile("schemas/catalog.json")
	return data
}

func validateSchema(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return malformed("", fmt.Sprintf("invalid JSON: %v", err))
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return malformed("", err.Error())
	}

	verr := &ValidationError{}
	collectLeaves(ve, verr)
	return verr
}

// collectLeaves keeps the innermost causes; the outer ones only say which
// subschema failed.
func collectLeaves(ve *jsonschema.ValidationError, out *ValidationError) {
	if len(ve.Causes) == 0 {
		out.Problems = append(out.Problems, Problem{Path: ve.InstanceLocation, Message: ve.Message})
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}
