// Package schemas provides JSON Schema validation for stage response payloads.
// Schemas are embedded at compile time; every stage validates the cleaned LLM
// response against its schema before decoding.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names, one per stage response shape.
const (
	InterestProfile       = "interest_profile"
	SkillProfile          = "skill_profile"
	PersonalityProfile    = "personality_profile"
	MarketTrends          = "market_trends"
	CareerRecommendations = "career_recommendations"
	FormattedOutput       = "formatted_output"
)

var (
	schemaCache   = make(map[string]string)
	schemaCacheMu sync.RWMutex
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Get returns the embedded schema content by name (without the .schema.json suffix).
func Get(name string) (string, error) {
	schemaCacheMu.RLock()
	if content, ok := schemaCache[name]; ok {
		schemaCacheMu.RUnlock()
		return content, nil
	}
	schemaCacheMu.RUnlock()

	data, err := schemaFiles.ReadFile(name + ".schema.json")
	if err != nil {
		return "", &SchemaLoadError{Name: name, Message: "schema not found", Cause: err}
	}

	schemaCacheMu.Lock()
	schemaCache[name] = string(data)
	schemaCacheMu.Unlock()

	return string(data), nil
}

// Validate validates JSON content against the named embedded schema.
// A *ValidationError means the document does not match the schema; a
// *SchemaLoadError means the schema itself could not be loaded.
func Validate(name, jsonContent string) error {
	schemaContent, err := Get(name)
	if err != nil {
		return err
	}
	return ValidateJSONString(schemaContent, jsonContent)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Name:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
