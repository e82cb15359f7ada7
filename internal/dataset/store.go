// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package dataset

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/metrics"
	"github.com/tomtom215/internmatch/internal/recommend"
)

// snapshot is an immutable set of listings.
type snapshot struct {
	listings []recommend.Listing
	loadedAt time.Time
}

// Store holds the active listing snapshot. It is safe for concurrent use.
type Store struct {
	path    string
	current atomic.Pointer[snapshot]
}

// NewStore creates an empty store bound to a CSV file path.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.current.Store(&snapshot{})
	return s
}

// Open creates a store and performs the initial load. It fails if the file
// is missing or unreadable.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing CSV file path.
func (s *Store) Path() string {
	return s.path
}

// Listings returns the current snapshot. Callers must not modify it.
func (s *Store) Listings() []recommend.Listing {
	return s.current.Load().listings
}

// Len returns the number of listings in the current snapshot.
func (s *Store) Len() int {
	return len(s.current.Load().listings)
}

// LoadedAt returns when the current snapshot was loaded.
func (s *Store) LoadedAt() time.Time {
	return s.current.Load().loadedAt
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(listings []recommend.Listing) {
	s.current.Store(&snapshot{listings: listings, loadedAt: time.Now()})
}

// Reload re-reads the backing file. On error the current snapshot is kept.
func (s *Store) Reload() error {
	listings, err := LoadFile(s.path)
	metrics.RecordDatasetReload(len(listings), err)
	if err != nil {
		return err
	}

	previous := s.Len()
	s.Replace(listings)
	logging.Info().
		Str("path", s.path).
		Int("listings", len(listings)).
		Int("previous", previous).
		Msg("dataset loaded")
	return nil
}

// Sample returns up to n distinct listings in random order. A nil rng uses
// the global source.
func (s *Store) Sample(n int, rng *rand.Rand) []recommend.Listing {
	listings := s.Listings()
	if n > len(listings) {
		n = len(listings)
	}
	if n <= 0 {
		return []recommend.Listing{}
	}

	perm := randPerm(len(listings), rng)
	out := make([]recommend.Listing, n)
	for i := 0; i < n; i++ {
		out[i] = listings[perm[i]]
	}
	return out
}

func randPerm(n int, rng *rand.Rand) []int {
	if rng == nil {
		return rand.Perm(n) //nolint:gosec // sampling is not security sensitive
	}
	return rng.Perm(n)
}
