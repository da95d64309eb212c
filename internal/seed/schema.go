package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "seed.schema.json"

// Validate checks an encoded seed document against the embedded JSON
// schema. Run before every write so a malformed export never reaches the
// output file.
func Validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("loading seed schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compiling seed schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing seed document: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("seed document failed schema validation: %w", err)
	}
	return nil
}
