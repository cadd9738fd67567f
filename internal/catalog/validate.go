package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("catalog.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("catalog.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateSchema checks raw YAML against the catalog JSON schema.
func validateSchema(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: parsing YAML: %v", ErrInvalidCatalog, err)
	}

	// Round-trip through JSON so the validator sees json.Number values.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: converting to JSON: %v", ErrInvalidCatalog, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("%w: preparing JSON for validation: %v", ErrInvalidCatalog, err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return nil
}

// validate enforces the rules the schema cannot express.
func (c *Catalog) validate() error {
	seenIDs := make(map[string]bool, len(c.categories))
	for _, cat := range c.categories {
		if seenIDs[cat.ID] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat.ID)
		}
		seenIDs[cat.ID] = true

		nones := 0
		seenValues := make(map[string]bool, len(cat.Choices))
		for _, ch := range cat.Choices {
			if seenValues[ch.Value] {
				return fmt.Errorf("%w: category %q: duplicate choice %q", ErrInvalidCatalog, cat.ID, ch.Value)
			}
			seenValues[ch.Value] = true

			if ch.IsNone() {
				nones++
				if len(ch.Packages) > 0 {
					return fmt.Errorf("%w: category %q: %s choice cannot add packages", ErrInvalidCatalog, cat.ID, NoneValue)
				}
			}
			for _, p := range ch.Packages {
				if _, err := semver.NewConstraint(p.Version); err != nil {
					return fmt.Errorf("%w: category %q: package %s: version %q: %v",
						ErrInvalidCatalog, cat.ID, p.Name, p.Version, err)
				}
			}
		}
		if nones != 1 {
			return fmt.Errorf("%w: category %q must have exactly one %s choice, found %d",
				ErrInvalidCatalog, cat.ID, NoneValue, nones)
		}
	}
	return nil
}
