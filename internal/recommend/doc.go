// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package recommend ranks internship listings against a candidate profile.
//
// # Scoring
//
// Each listing is scored on four factors, every one in [0, 1]:
//
//   - skills:    Jaccard overlap of profile skills and listing skills
//   - interests: Jaccard overlap of profile interests and listing tags
//   - education: 1 when the profile education is a substring of the listing's
//   - location:  token-set fuzzy ratio of the two location strings
//
// When the skills overlap is below Config.FallbackThreshold, a TF-IDF cosine
// similarity between the listing text (title, tags, description) and the
// profile text is computed and the larger of the two values stands in for
// the skills factor. The final score is the weighted sum of the factors.
//
//	final = w.Skills*max(skills, fallback) + w.Interests*interests +
//	        w.Education*education + w.Location*location
//
// # Normalization
//
// List fields are split on commas, trimmed and lowercased. Profile skills and
// interests additionally pass through a small alias table (py -> python,
// js -> javascript, reactjs -> react, nodejs -> node). Listing tokens are not
// aliased, so a listing asking for "py" does not match a profile with
// "python".
//
// # Explanation
//
// Every result carries MatchedBy, the factor with the highest unweighted
// value. Ties resolve in the order skills, interests, education, location.
//
// # Usage
//
//	results := recommend.Rank(profile, listings, 5, nil)
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Profile:  profile,
//	    Listings: store.Listings(),
//	})
//
// # Thread Safety
//
// Rank is a pure function. The Engine holds no mutable state after
// construction and is safe for concurrent use over shared listings.
//
// # Performance
//
// Every call scores the full listing slice. Listings with low skills overlap
// each fit a fresh two-document TF-IDF vocabulary, which dominates the cost
// when most listings fall below the fallback threshold.
package recommend
