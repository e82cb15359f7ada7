// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package api implements the InternMatch HTTP surface on chi.

Routes:

	GET  /health      {"status":"ok","count":N}
	POST /recommend   {"results":[...]}; ?explain=true adds per-factor scores
	GET  /sample      {"results":[...]} with a few random listings
	GET  /metrics     Prometheus exposition
	GET  /*           static frontend, when the directory exists

The /recommend body is the candidate profile plus optional control fields:

	{
	  "skills": ["python", "react"],
	  "interests": "web, ai",
	  "education": "B.Tech",
	  "location": "Bengaluru",
	  "top_k": 5,
	  "weights": {"location": 0.3}
	}

Bodies are checked twice: the raw JSON against a JSON schema
(validation.ValidateRecommendBody), then the decoded control fields with
go-playground/validator. Failures use the models.APIResponse error envelope.
Successful recommend and sample responses keep the bare {"results":[...]}
shape that the bundled frontend expects.

The recommend and sample routes are rate limited per client IP with httprate.
CORS is global so preflight requests are answered before routing.
*/
package api
