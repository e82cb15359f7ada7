// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecommendBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"profile only", `{"skills":"python","location":"pune"}`, ""},
		{"profile with list skills", `{"skills":["go",1],"interests":{"odd":true}}`, ""},
		{"null body", `null`, ""},
		{"control fields", `{"top_k":3,"explain":true,"weights":{"skills":0.7}}`, ""},
		{"array body", `[{"skills":"go"}]`, "body"},
		{"string body", `"python"`, "body"},
		{"fractional top_k", `{"top_k":2.5}`, "top_k"},
		{"negative top_k", `{"top_k":-1}`, "top_k"},
		{"string weight", `{"weights":{"skills":"high"}}`, "weights.skills"},
		{"negative weight", `{"weights":{"location":-0.1}}`, "weights.location"},
		{"malformed json", `{"skills":`, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecommendBody([]byte(tt.body))
			if tt.wantField == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			require.NotEmpty(t, err.Fields)
			assert.Equal(t, tt.wantField, err.Fields[0].Field)
		})
	}
}

func TestValidateRecommendBody_NonObjectMessage(t *testing.T) {
	err := ValidateRecommendBody([]byte(`[1,2,3]`))
	require.NotNil(t, err)
	assert.Equal(t, "request body must be a JSON object", err.Error())
}
