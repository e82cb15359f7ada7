// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"math"
	"sort"
	"strings"
)

// DefaultFallbackThreshold is the skills overlap below which the TF-IDF
// fallback is computed.
const DefaultFallbackThreshold = 0.20

// preparedProfile is a profile normalized once per ranking call.
type preparedProfile struct {
	skills     []string
	interests  []string
	education  string
	location   string
	vectorizer *Vectorizer
}

func prepareProfile(p Profile) preparedProfile {
	pp := preparedProfile{
		skills:    ExpandAliases(NormalizeTokens(p.Skills)),
		interests: ExpandAliases(NormalizeTokens(p.Interests)),
		education: normalizeText(string(p.Education)),
		location:  normalizeText(string(p.Location)),
	}

	parts := make([]string, 0, len(pp.skills)+len(pp.interests)+2)
	parts = append(parts, pp.skills...)
	parts = append(parts, pp.interests...)
	parts = append(parts, pp.education, pp.location)
	pp.vectorizer = NewVectorizer(strings.Join(parts, " "))
	return pp
}

// scored pairs a listing with its final score and factor breakdown.
type scored struct {
	listing *Listing
	score   float64
	factors FactorScores
}

// Rank scores every listing against the profile and returns the topK best,
// highest score first. Equal scores keep their input order. A nil weights
// argument selects DefaultWeights. Rank never fails: malformed fields score
// zero for the affected factor.
func Rank(profile Profile, listings []Listing, topK int, weights *Weights) []Recommendation {
	w := DefaultWeights()
	if weights != nil {
		w = *weights
	}
	results, _ := rank(profile, listings, topK, w, DefaultFallbackThreshold, false)
	return results
}

// rank implements Rank and also reports how many listings needed the
// TF-IDF fallback.
func rank(profile Profile, listings []Listing, topK int, w Weights, threshold float64, explain bool) ([]Recommendation, int) {
	if topK <= 0 || len(listings) == 0 {
		return []Recommendation{}, 0
	}

	pp := prepareProfile(profile)
	all := make([]scored, len(listings))
	fallbacks := 0
	for i := range listings {
		f := scoreListing(&pp, &listings[i], threshold)
		if f.FallbackUsed {
			fallbacks++
		}
		all[i] = scored{
			listing: &listings[i],
			score:   w.Skills*f.Skills + w.Interests*f.Interests + w.Education*f.Education + w.Location*f.Location,
			factors: f,
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})

	if topK > len(all) {
		topK = len(all)
	}
	results := make([]Recommendation, topK)
	for i := range results {
		s := all[i]
		results[i] = Recommendation{
			DisplayListing: s.listing.Display(),
			Score:          roundScore(s.score),
			MatchedBy:      s.factors.Dominant(),
		}
		if explain {
			f := s.factors
			results[i].Factors = &f
		}
	}
	return results, fallbacks
}

// scoreListing computes the unweighted factor values for one listing.
func scoreListing(pp *preparedProfile, l *Listing, threshold float64) FactorScores {
	var f FactorScores

	skills := Jaccard(pp.skills, SplitTokens(l.Skills))
	f.Interests = Jaccard(pp.interests, SplitTokens(l.Tags))

	if pp.education != "" && strings.Contains(normalizeText(l.Education), pp.education) {
		f.Education = 1
	}
	f.Location = locationScore(pp.location, normalizeText(l.Location))

	if skills < threshold {
		f.FallbackUsed = true
		f.Fallback = fallbackScore(pp.vectorizer, l)
	}
	f.Skills = math.Max(skills, f.Fallback)
	return f
}

func locationScore(profileLoc, listingLoc string) (score float64) {
	if profileLoc == "" || listingLoc == "" {
		return 0
	}
	defer func() {
		if recover() != nil {
			score = 0
		}
	}()
	return TokenSetRatio(profileLoc, listingLoc)
}

func fallbackScore(v *Vectorizer, l *Listing) (score float64) {
	defer func() {
		if recover() != nil {
			score = 0
		}
	}()
	sim, err := v.Similarity(strings.Join([]string{l.Title, l.Tags, l.Description}, " "))
	if err != nil {
		return 0
	}
	return sim
}

func roundScore(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
