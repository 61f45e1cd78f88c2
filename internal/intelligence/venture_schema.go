package intelligence

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/ventureos/internal/llm"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/venture.schema.json
var ventureSchemaJSON []byte

var (
	compiledVentureSchema *gojsonschema.Schema
	compileVentureOnce    sync.Once
	compileVentureErr     error
)

func ventureSchema() (*gojsonschema.Schema, error) {
	compileVentureOnce.Do(func() {
		compiledVentureSchema, compileVentureErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(ventureSchemaJSON))
	})
	return compiledVentureSchema, compileVentureErr
}

// ValidateVentureJSON checks a raw JSON document against the venture schema.
// Violations are reported as a single ErrInvalidOutput listing every failing field.
func ValidateVentureJSON(raw string) error {
	schema, err := ventureSchema()
	if err != nil {
		return fmt.Errorf("compiling venture schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", llm.ErrInvalidOutput, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: schema violations: %s", llm.ErrInvalidOutput, strings.Join(msgs, "; "))
}
