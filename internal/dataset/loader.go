// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tomtom215/internmatch/internal/recommend"
)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("dataset: missing header row")

// utf8BOM is stripped from the first header cell.
const utf8BOM = "\ufeff"

// fieldSetters maps normalized column names to listing fields.
var fieldSetters = map[string]func(*recommend.Listing, string){
	"id":          func(l *recommend.Listing, v string) { l.ID = v },
	"title":       func(l *recommend.Listing, v string) { l.Title = v },
	"company":     func(l *recommend.Listing, v string) { l.Company = v },
	"location":    func(l *recommend.Listing, v string) { l.Location = v },
	"skills":      func(l *recommend.Listing, v string) { l.Skills = v },
	"tags":        func(l *recommend.Listing, v string) { l.Tags = v },
	"education":   func(l *recommend.Listing, v string) { l.Education = v },
	"description": func(l *recommend.Listing, v string) { l.Description = v },
	"stipend":     func(l *recommend.Listing, v string) { l.Stipend = v },
}

// LoadFile reads listings from the CSV file at path.
func LoadFile(path string) ([]recommend.Listing, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	listings, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return listings, nil
}

// LoadCSV parses listings from CSV with a header row. Rows shorter than the
// header leave the trailing fields empty.
func LoadCSV(r io.Reader) ([]recommend.Listing, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	setters := make([]func(*recommend.Listing, string), len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		setters[i] = fieldSetters[strings.ToLower(strings.TrimSpace(name))]
	}

	listings := make([]recommend.Listing, 0, 64)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(listings)+2, err)
		}

		var l recommend.Listing
		for i, value := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](&l, value)
			}
		}
		listings = append(listings, l)
	}
	return listings, nil
}
