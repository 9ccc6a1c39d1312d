package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Embedded schema names
const (
	SchemaCharacter = "character.schema.json"
	SchemaItem      = "item.schema.json"
	SchemaBio       = "bio.schema.json"
	SchemaWall      = "wall.schema.json"
)

const schemaBaseURL = "mem://roleplay/"

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrUnknownSchema is returned when a schema name was never registered.
var ErrUnknownSchema = errors.New("unknown schema")

// SchemaValidator validates uploaded JSON documents against the embedded schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schema string) error
	Validate(doc any, schema string) error
}

type validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator compiles every embedded schema. Compiled schemas are
// read-only, so the validator is safe for concurrent use.
func NewSchemaValidator() (SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()

	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		raw, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", entry.Name(), err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema JSON %s: %w", entry.Name(), err)
		}
		if err := compiler.AddResource(schemaBaseURL+entry.Name(), doc); err != nil {
			return nil, fmt.Errorf("failed to add schema resource %s: %w", entry.Name(), err)
		}
		names = append(names, entry.Name())
	}

	v := &validator{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		schema, err := compiler.Compile(schemaBaseURL + name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		v.schemas[name] = schema
	}
	return v, nil
}

// MustSchemaValidator is NewSchemaValidator for package initialisation and
// tests. The embedded schemas are fixed at build time.
func MustSchemaValidator() SchemaValidator {
	v, err := NewSchemaValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateBytes parses data and validates it against the named schema
func (v *validator) ValidateBytes(data []byte, schema string) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return v.Validate(doc, schema)
}

// Validate checks an already decoded document
func (v *validator) Validate(doc any, schema string) error {
	compiled, ok := v.schemas[schema]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, schema)
	}
	if err := compiled.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens the error tree into one line per cause
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var lines []string
		collectErrors(validationErr, &lines)
		return fmt.Errorf("schema validation failed: %s", strings.Join(lines, "; "))
	}
	return fmt.Errorf("validation error: %w", err)
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			return fmt.Sprintf("at %s: %s validation failed", location, strings.Join(keywordPath, "."))
		}
	}
	return fmt.Sprintf("at %s: validation failed", location)
}
