// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/internmatch/internal/models"
)

const separator = "--------------------------------------------------"

// LoadProfiles reads a JSON array of profile objects. Each element is kept
// as raw JSON so it is posted exactly as written.
func LoadProfiles(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	var profiles []json.RawMessage
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}
	return profiles, nil
}

// Outcome is the result of probing one profile.
type Outcome struct {
	Profile  json.RawMessage
	Response *models.RecommendResponse
	Err      error
}

// Run posts every profile with at most concurrency requests in flight and
// writes a report to w in input order. It returns an error only when ctx is
// canceled; per-profile failures are part of the report.
func Run(ctx context.Context, client *Client, profiles []json.RawMessage, concurrency int, w io.Writer) ([]Outcome, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]Outcome, len(profiles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, profile := range profiles {
		g.Go(func() error {
			resp, err := client.Recommend(gctx, profile)
			outcomes[i] = Outcome{Profile: profile, Response: resp, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return outcomes, err
	}

	for i := range outcomes {
		writeOutcome(w, &outcomes[i])
	}
	return outcomes, nil
}

func writeOutcome(w io.Writer, o *Outcome) {
	profile := compact(o.Profile)

	if o.Err != nil {
		var se *StatusError
		if errors.As(o.Err, &se) {
			fmt.Fprintf(w, "Error: %d %s\n", se.StatusCode, strings.TrimSpace(string(se.Body)))
			return
		}
		fmt.Fprintf(w, "Error: %v\n", o.Err)
		return
	}

	if o.Response == nil || len(o.Response.Results) == 0 {
		fmt.Fprintf(w, "Profile: %s => No results\n", profile)
		return
	}

	top := o.Response.Results[0]
	fmt.Fprintf(w, "Profile: %s\n", profile)
	fmt.Fprintf(w, "  Top Match: %s - %s\n", top.Title, top.Company)
	fmt.Fprintf(w, "  Location: %s  | Score: %v\n", top.Location, top.Score)
	fmt.Fprintln(w, separator)
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}
