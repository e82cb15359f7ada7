// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// recommendBodySchema describes the POST /recommend body. Profile fields
// accept any shape; only the control fields are typed.
const recommendBodySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": ["object", "null"],
  "properties": {
    "top_k": {"type": "integer", "minimum": 0},
    "explain": {"type": "boolean"},
    "weights": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0}
    }
  }
}`

var (
	recommendSchema     *gojsonschema.Schema
	recommendSchemaErr  error
	recommendSchemaOnce sync.Once
)

func loadRecommendSchema() (*gojsonschema.Schema, error) {
	recommendSchemaOnce.Do(func() {
		recommendSchema, recommendSchemaErr = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(recommendBodySchema),
		)
	})
	return recommendSchema, recommendSchemaErr
}

// ValidateRecommendBody checks a raw request body against the recommend
// request schema. Malformed JSON is reported as a single "body" error.
func ValidateRecommendBody(body []byte) *RequestValidationError {
	schema, err := loadRecommendSchema()
	if err != nil {
		return newError("schema", "schema", fmt.Sprintf("schema unavailable: %v", err))
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return newError("body", "json", "request body must be valid JSON")
	}
	if result.Valid() {
		return nil
	}

	ve := &RequestValidationError{Fields: make([]FieldError, 0, len(result.Errors()))}
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "(root)" {
			field = "body"
		}
		ve.Fields = append(ve.Fields, FieldError{
			Field:   field,
			Rule:    re.Type(),
			Message: schemaMessage(field, re),
		})
	}
	return ve
}

func schemaMessage(field string, re gojsonschema.ResultError) string {
	if field == "body" && re.Type() == "invalid_type" {
		return "request body must be a JSON object"
	}
	return fmt.Sprintf("%s: %s", field, strings.TrimSpace(re.Description()))
}
