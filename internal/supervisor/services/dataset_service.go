// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"
)

// Reloader re-reads a data source in place. dataset.Store satisfies it.
type Reloader interface {
	Reload() error
}

// DatasetServiceConfig controls when the dataset is reloaded.
type DatasetServiceConfig struct {
	// Path is the file to watch. Required when Watch is set.
	Path string

	// Watch reloads when the file changes on disk.
	Watch bool

	// ReloadInterval reloads on a fixed schedule. Zero disables it.
	ReloadInterval time.Duration

	// Debounce collapses bursts of file events into one reload.
	// Default: 500ms
	Debounce time.Duration
}

// DatasetService keeps a Reloader in sync with its source file.
// A failed reload is logged and the previous snapshot stays in service.
type DatasetService struct {
	reloader Reloader
	config   DatasetServiceConfig
	logger   zerolog.Logger
	name     string
}

// NewDatasetService creates the reload service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewDatasetService(r Reloader, cfg DatasetServiceConfig, logger zerolog.Logger) *DatasetService {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	return &DatasetService{
		reloader: r,
		config:   cfg,
		logger:   logger.With().Str("service", "dataset").Logger(),
		name:     "dataset-service",
	}
}

// Serve implements suture.Service.
func (s *DatasetService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("path", s.config.Path).
		Bool("watch", s.config.Watch).
		Dur("reload_interval", s.config.ReloadInterval).
		Msg("dataset service starting")

	changed := make(chan struct{}, 1)
	if s.config.Watch {
		// A provider can only be watched once, so each Serve gets its own.
		provider := file.Provider(s.config.Path)
		err := provider.Watch(func(_ interface{}, err error) {
			if err != nil {
				s.logger.Warn().Err(err).Msg("dataset watcher stopped")
				return
			}
			select {
			case changed <- struct{}{}:
			default:
			}
		})
		if err != nil {
			return fmt.Errorf("watch dataset %s: %w", s.config.Path, err)
		}
		defer func() {
			if err := provider.Unwatch(); err != nil {
				s.logger.Debug().Err(err).Msg("unwatch dataset")
			}
		}()
	}

	var tick <-chan time.Time
	if s.config.ReloadInterval > 0 {
		ticker := time.NewTicker(s.config.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var debounce *time.Timer
	var debounceC <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("dataset service stopped")
			return ctx.Err()

		case <-changed:
			if debounce == nil {
				debounce = time.NewTimer(s.config.Debounce)
			} else {
				debounce.Reset(s.config.Debounce)
			}
			debounceC = debounce.C

		case <-debounceC:
			debounceC = nil
			s.reload("file_change")

		case <-tick:
			s.reload("interval")
		}
	}
}

func (s *DatasetService) reload(trigger string) {
	if err := s.reloader.Reload(); err != nil {
		s.logger.Warn().Err(err).Str("trigger", trigger).Msg("dataset reload failed, keeping previous listings")
		return
	}
	s.logger.Debug().Str("trigger", trigger).Msg("dataset reloaded")
}

// String implements fmt.Stringer.
func (s *DatasetService) String() string {
	return s.name
}
