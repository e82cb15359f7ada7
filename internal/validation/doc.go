// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package validation checks inbound request payloads.
//
// Two layers are applied to a recommendation request:
//
//   - ValidateRecommendBody checks the raw JSON document against a JSON
//     Schema (gojsonschema): the body must be an object, top_k must be a
//     non-negative integer and weights must map factor names to numbers.
//   - ValidateStruct runs go-playground/validator rules on the decoded
//     control fields.
//
// Both return *RequestValidationError; its Error text becomes the envelope
// message and Details the envelope details. Profile fields have no rules:
// malformed skills or interests degrade to empty rather than failing.
package validation
