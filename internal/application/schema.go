package application

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema describes the stored progress document. Unknown fields are
// allowed so documents written by newer versions still load. Absent or null
// fields are treated as unset.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "title": {"type": ["string", "null"]},
      "items": {
        "type": ["array", "null"],
        "items": {
          "type": "object",
          "properties": {
            "title": {"type": ["string", "null"]},
            "difficulty": {"type": ["string", "null"]},
            "timeEstimate": {"type": ["string", "null"]},
            "completed": {"type": ["boolean", "null"]},
            "notes": {"type": ["string", "null"]},
            "actualTimeSpent": {"type": ["integer", "null"], "minimum": 0},
            "startedAt": {"type": ["string", "null"], "format": "date-time"},
            "completedAt": {"type": ["string", "null"], "format": "date-time"}
          }
        }
      }
    }
  }
}`

var compiledSchema = mustCompileSchema(documentSchema)

func mustCompileSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid document schema: %v", err))
	}
	return schema
}

// ValidateDocument checks that data has the shape of a progress document
func ValidateDocument(data []byte) error {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("invalid document: %s", strings.Join(msgs, "; "))
}
