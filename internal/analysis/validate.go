package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/glowpro/glowpro/internal/quiz"
)

const resultSchemaURL = "schema://analysis-result.json"

func percent() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0, "maximum": 100}
}

func nonEmptyString() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

// resultSchema describes a well-formed Result.
var resultSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"symmetry":           percent(),
		"aestheticPotential": percent(),
		"skinHydration":      percent(),
		"poresScore":         percent(),
		"textureScore":       percent(),
		"faceShape":          nonEmptyString(),
		"strengths":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"improvements":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"recommendations": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"haircut":  nonEmptyString(),
				"eyebrows": nonEmptyString(),
				"beard":    map[string]any{"type": "string"},
				"lighting": nonEmptyString(),
			},
			"required": []any{"haircut", "eyebrows", "lighting"},
		},
	},
	"required": []any{
		"symmetry", "aestheticPotential", "skinHydration", "poresScore",
		"textureScore", "faceShape", "strengths", "improvements", "recommendations",
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Validate checks r against the result schema.
// Returns *ErrInvalidResult on failure.
func Validate(r *Result) error {
	if r == nil {
		return &ErrInvalidResult{Err: fmt.Errorf("nil result")}
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return &ErrInvalidResult{Err: fmt.Errorf("marshal result: %w", err)}
	}
	return ValidateJSON(raw)
}

// ValidateJSON checks raw result JSON against the result schema.
func ValidateJSON(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResult{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	schema, err := compiledSchema()
	if err != nil {
		return &ErrInvalidResult{
			Content: raw,
			Err:     fmt.Errorf("compile schema: %w", err),
		}
	}

	if err := schema.Validate(parsed); err != nil {
		return &ErrInvalidResult{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the map.
		defBytes, err := json.Marshal(resultSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(resultSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(resultSchemaURL)
	})
	return compiled, compileErr
}

// validatingAnalyzer rejects results that fail Validate.
type validatingAnalyzer struct {
	inner FaceAnalyzer
}

// WithValidation wraps an analyzer so every result is schema-checked.
func WithValidation(a FaceAnalyzer) FaceAnalyzer {
	return &validatingAnalyzer{inner: a}
}

func (v *validatingAnalyzer) Analyze(ctx context.Context, photo *Photo, answers quiz.Answers) (*Result, error) {
	r, err := v.inner.Analyze(ctx, photo, answers)
	if err != nil {
		return nil, err
	}
	if err := Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (v *validatingAnalyzer) Name() string {
	return v.inner.Name()
}
