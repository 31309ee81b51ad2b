package intent

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// intentSchema is the strict shape the model's output must satisfy before
// it is trusted as an Intent. The scraper enum is closed: a hallucinated
// name fails validation and maps to the "none" fallback.
const intentSchema = `{
	"type": "object",
	"required": ["scraper", "parameters", "confidence", "explanation"],
	"properties": {
		"scraper": {
			"type": "string",
			"enum": [
				"instagram_hashtag",
				"instagram_profile",
				"booking",
				"twitter",
				"website_content",
				"google_maps",
				"none"
			]
		},
		"parameters": {
			"type": "object"
		},
		"confidence": {
			"type": "number",
			"minimum": 0,
			"maximum": 1
		},
		"explanation": {
			"type": "string"
		}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(intentSchema)

func validateIntent(document string) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(document))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("schema validation: %s", errs[0].String())
		}
		return fmt.Errorf("schema validation failed")
	}
	return nil
}
