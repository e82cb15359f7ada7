// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/internmatch/internal/recommend"
)

// recommendBody is the decoded POST /recommend body. Profile fields sit at
// the top level next to the control fields.
type recommendBody struct {
	recommend.Profile

	TopK    int                `json:"top_k" validate:"gte=0"`
	Weights map[string]float64 `json:"weights" validate:"omitempty,dive,keys,oneof=skills interests education location,endkeys,gte=0"`
	Explain bool               `json:"explain"`
}

// queryBool reports whether a query parameter is set to a true value.
// Unparsable values are false.
func queryBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && v
}
