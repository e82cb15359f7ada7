// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package dataset loads internship listings from CSV and holds the active
// snapshot served to the recommender.
//
// The CSV must have a header row. Columns are matched by name
// (case-insensitive, surrounding whitespace ignored); unknown columns are
// skipped and missing ones leave the field empty:
//
//	id,title,company,location,skills,tags,education,description,stipend
//	1,ML Intern,Acme,Bengaluru,"python,django","ai,ml",B.Tech,Build models,10000
//
// Store swaps snapshots atomically, so readers never observe a partially
// loaded dataset and a failed reload leaves the previous snapshot in place.
package dataset
