// Package schema validates user-supplied scoring overrides against embedded
// CUE schemas before they are handed to the scoring core.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator handles CUE validation of configuration data.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read schema %s: %w", entry.Name(), err)
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return nil, fmt.Errorf("invalid schema %s: %w", entry.Name(), instErr)
		}
		schemaName := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return nil, fmt.Errorf("no CUE schemas embedded")
	}

	return v, nil
}

// ValidateScoring validates the scoring tables against #Scoring.
func (v *Validator) ValidateScoring(data map[string]any) error {
	return v.validateAgainstSchema("scoring", "#Scoring", data)
}

// validateAgainstSchema unifies data with a schema definition and requires a
// concrete result, so missing fields surface as errors.
func (v *Validator) validateAgainstSchema(schemaName, defName string, data map[string]any) error {
	schema, ok := v.schemas[schemaName]
	if !ok {
		return fmt.Errorf("schema %s not loaded", schemaName)
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return fmt.Errorf("error encoding data: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath(defName))
	if !def.Exists() {
		return fmt.Errorf("definition %s not found in schema %s", defName, schemaName)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return fmt.Errorf("scoring config invalid: %v", err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("scoring config invalid: %v", err)
	}

	return nil
}
