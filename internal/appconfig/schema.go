// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the accepted shape of a benchmark config file.
const configSchema = `{
  "type": "object",
  "properties": {
    "url": {"type": "string"},
    "runs": {"type": "integer", "minimum": 1},
    "target": {"type": "string"},
    "targetArgs": {"type": "array", "items": {"type": "string"}},
    "reference": {"type": "string"},
    "referenceArgs": {"type": "array", "items": {"type": "string"}},
    "noReference": {"type": "boolean"},
    "fetchCommand": {"type": "array", "items": {"type": "string"}},
    "manualTime": {"type": "number", "minimum": 0},
    "manualAvgSpeed": {"type": "number", "minimum": 0},
    "manualPeakSpeed": {"type": "number", "minimum": 0},
    "outputDir": {"type": "string"},
    "logFile": {"type": "string"},
    "debug": {"type": "boolean"}
  },
  "additionalProperties": false
}`

// Validate checks raw config JSON against the embedded schema.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
