// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/tomtom215/internmatch/internal/models"
)

// frontendHandler serves files from a directory. Directories resolve to
// their index.html and are never listed.
type frontendHandler struct {
	dir   string
	files http.Handler
}

func newFrontendHandler(dir string) (*frontendHandler, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &frontendHandler{
		dir:   dir,
		files: http.FileServer(http.Dir(dir)),
	}, nil
}

func (f *frontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	full := filepath.Join(f.dir, filepath.FromSlash(name))

	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		info, err = os.Stat(filepath.Join(full, "index.html"))
	}
	if err != nil || info.IsDir() {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "not found", nil)
		return
	}

	f.files.ServeHTTP(w, r)
}
