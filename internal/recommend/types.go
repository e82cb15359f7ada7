// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Factor names, in tie-break order.
const (
	FactorSkills    = "skills"
	FactorInterests = "interests"
	FactorEducation = "education"
	FactorLocation  = "location"
)

// FlexList is a list-valued profile field that accepts either a JSON array of
// strings or a single comma-separated string.
//
// Non-string array elements are dropped. A number is read as its decimal
// text. Any other shape (object, boolean) decodes to an empty list rather
// than failing the whole profile.
type FlexList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *FlexList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*l = SplitTokens(s)
	case '[':
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return nil
		}
		values := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		*l = NormalizeTokens(values)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil || f == 0 {
			return nil
		}
		*l = SplitTokens(string(data))
	}
	return nil
}

// FlexString is a free-text profile field. Non-string JSON values decode to
// the empty string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	*s = ""
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*s = FlexString(v)
	return nil
}

// Profile describes the candidate being matched. Every field is optional.
type Profile struct {
	Skills    FlexList   `json:"skills,omitempty"`
	Interests FlexList   `json:"interests,omitempty"`
	Education FlexString `json:"education,omitempty"`
	Location  FlexString `json:"location,omitempty"`
}

// Listing is one internship record. Missing fields are the empty string.
type Listing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Skills      string `json:"skills"`
	Tags        string `json:"tags"`
	Education   string `json:"education"`
	Description string `json:"description"`
	Stipend     string `json:"stipend"`
}

// Display returns the listing without education and description, the shape
// returned by the sample endpoint.
func (l *Listing) Display() DisplayListing {
	return DisplayListing{
		ID:       l.ID,
		Title:    l.Title,
		Company:  l.Company,
		Location: l.Location,
		Skills:   l.Skills,
		Tags:     l.Tags,
		Stipend:  l.Stipend,
	}
}

// DisplayListing holds the listing fields shown to users.
type DisplayListing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Skills   string `json:"skills"`
	Tags     string `json:"tags"`
	Stipend  string `json:"stipend"`
}

// Weights is the contribution of each factor to the final score.
// They conventionally sum to 1.0; this is not enforced.
type Weights struct {
	Skills    float64 `json:"skills" koanf:"skills"`
	Interests float64 `json:"interests" koanf:"interests"`
	Education float64 `json:"education" koanf:"education"`
	Location  float64 `json:"location" koanf:"location"`
}

// DefaultWeights returns the baseline weighting.
func DefaultWeights() Weights {
	return Weights{
		Skills:    0.55,
		Interests: 0.15,
		Education: 0.10,
		Location:  0.20,
	}
}

// Merge returns a copy of w with the named factors replaced by overrides.
// Unknown names are ignored.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Merge(overrides map[string]float64) Weights {
	for name, v := range overrides {
		switch name {
		case FactorSkills:
			w.Skills = v
		case FactorInterests:
			w.Interests = v
		case FactorEducation:
			w.Education = v
		case FactorLocation:
			w.Location = v
		}
	}
	return w
}

// Sum returns the total of all four weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Sum() float64 {
	return w.Skills + w.Interests + w.Education + w.Location
}

// FactorScores holds the unweighted per-factor values for one listing.
// Skills is the effective value, max(overlap, fallback).
type FactorScores struct {
	Skills    float64 `json:"skills"`
	Interests float64 `json:"interests"`
	Education float64 `json:"education"`
	Location  float64 `json:"location"`

	// Fallback is the TF-IDF similarity, zero when it was not computed.
	Fallback float64 `json:"fallback"`

	// FallbackUsed reports whether the TF-IDF fallback was computed.
	FallbackUsed bool `json:"fallback_used"`
}

// Dominant returns the factor with the largest value. Ties keep the first
// factor in the order skills, interests, education, location.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (f FactorScores) Dominant() string {
	best, name := f.Skills, FactorSkills
	if f.Interests > best {
		best, name = f.Interests, FactorInterests
	}
	if f.Education > best {
		best, name = f.Education, FactorEducation
	}
	if f.Location > best {
		name = FactorLocation
	}
	return name
}

// Recommendation is one ranked listing.
type Recommendation struct {
	DisplayListing

	// Score is the weighted final score rounded to four decimal places.
	Score float64 `json:"score"`

	// MatchedBy names the dominant factor.
	MatchedBy string `json:"matched_by"`

	// Factors is populated only when explanations are requested.
	Factors *FactorScores `json:"factors,omitempty"`
}

// Request is a recommendation request handled by Engine.
type Request struct {
	Profile  Profile
	Listings []Listing

	// K is the number of results. Zero selects Config.DefaultTopK.
	K int

	// Weights overrides individual factor weights.
	Weights map[string]float64

	// Explain attaches per-factor scores to each result.
	Explain bool
}

// Response is the result of Engine.Recommend.
type Response struct {
	Results []Recommendation `json:"results"`

	// Candidates is the number of listings scored.
	Candidates int `json:"-"`
}
