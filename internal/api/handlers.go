// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/internmatch/internal/models"
	"github.com/tomtom215/internmatch/internal/recommend"
	"github.com/tomtom215/internmatch/internal/validation"
)

// maxBodyBytes caps the /recommend request body.
const maxBodyBytes = 1 << 20

// ListingSource provides the current listing snapshot. dataset.Store
// satisfies it.
type ListingSource interface {
	Listings() []recommend.Listing
	Len() int
	Sample(n int, rng *rand.Rand) []recommend.Listing
}

// Handler serves the API routes.
type Handler struct {
	engine     *recommend.Engine
	listings   ListingSource
	sampleSize int
}

// NewHandler creates a Handler. sampleSize below 1 is treated as 5.
func NewHandler(engine *recommend.Engine, listings ListingSource, sampleSize int) *Handler {
	if sampleSize < 1 {
		sampleSize = 5
	}
	return &Handler{
		engine:     engine,
		listings:   listings,
		sampleSize: sampleSize,
	}
}

// Health reports liveness and the number of loaded listings.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Count:  h.listings.Len(),
	})
}

// Recommend ranks the current listings against the posted profile.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, models.ErrCodeBadRequest, "request body too large", nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, models.ErrCodeBadRequest, "failed to read request body", err)
		return
	}

	if verr := validation.ValidateRecommendBody(body); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	var req recommendBody
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeBadRequest, "request body must be a JSON object", err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Profile:  req.Profile,
		Listings: h.listings.Listings(),
		K:        req.TopK,
		Weights:  req.Weights,
		Explain:  req.Explain || queryBool(r, "explain"),
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeRequestCancel, "request canceled", err)
			return
		}
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.RecommendResponse{Results: resp.Results})
}

// Sample returns a few random listings for the landing page.
func (h *Handler) Sample(w http.ResponseWriter, r *http.Request) {
	picked := h.listings.Sample(h.sampleSize, nil)
	results := make([]recommend.DisplayListing, len(picked))
	for i := range picked {
		results[i] = picked[i].Display()
	}
	writeJSON(w, r, http.StatusOK, models.SampleResponse{Results: results})
}
