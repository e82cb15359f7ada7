// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package models

import (
	"time"

	"github.com/tomtom215/internmatch/internal/recommend"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope used for errors and for endpoints that do not
// have a fixed legacy shape.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "top_k: Must be greater than or equal to 0",
//	    "details": {"field": "top_k"}
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata is attached to every envelope response.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError carries a machine-readable code and a message for humans.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeUnavailable   = "SERVICE_UNAVAILABLE"
	ErrCodeRequestCancel = "REQUEST_CANCELED"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// RecommendResponse is returned by POST /recommend.
type RecommendResponse struct {
	Results []recommend.Recommendation `json:"results"`
}

// SampleResponse is returned by GET /sample.
type SampleResponse struct {
	Results []recommend.DisplayListing `json:"results"`
}
