// internal/appconfig/schema.go
package appconfig

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidConfig wraps every schema violation found in a config document.
var ErrInvalidConfig = eris.New("appconfig: config does not match schema")

const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "inputDir":   { "type": "string" },
    "outDir":     { "type": "string" },
    "logFile":    { "type": "string" },
    "logLevel":   { "type": "string", "enum": ["debug", "info", "warn", "error"] },
    "logFormat":  { "type": "string", "enum": ["console", "json"] },
    "nanLiteral": { "type": "string", "minLength": 1 },
    "xlsx":       { "type": "boolean" },
    "skipCharts": { "type": "boolean" },
    "rasterizer": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "enabled": { "type": "boolean" },
        "command": { "type": "string" }
      }
    },
    "chart": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "width":       { "type": "number", "exclusiveMinimum": 0 },
        "height":      { "type": "number", "exclusiveMinimum": 0 },
        "curveWidth":  { "type": "number", "exclusiveMinimum": 0 },
        "curveHeight": { "type": "number", "exclusiveMinimum": 0 }
      }
    },
    "highlight": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "primary":   { "type": "string", "pattern": "^(#([0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})|[A-Za-z]+)$" },
        "secondary": { "type": "string", "pattern": "^(#([0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})|[A-Za-z]+)$" }
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// Validate checks a JSON config document against the config schema.
func Validate(document []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(document))
	if err != nil {
		return eris.Wrap(err, "appconfig: validate")
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return eris.Wrapf(ErrInvalidConfig, "%s", strings.Join(problems, "; "))
}
