// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viamapa/viamapa/trip"
)

// SummaryFileName is the flat text export written next to the map.
const SummaryFileName = "route_summary.txt"

// ErrFileWrite marks export failures. They are reported as warnings and do
// not affect map generation or console output.
var ErrFileWrite = errors.New("writing summary file")

// Exporter writes the plain-text summary, overwriting silently. It only runs
// when the user opted in.
type Exporter struct {
	// Dir is the directory the summary is written to. Empty means the
	// current directory.
	Dir string
}

// Path returns the full path of the export file.
func (e *Exporter) Path() string {
	return filepath.Join(e.Dir, SummaryFileName)
}

// Save renders the export body and writes it.
func (e *Exporter) Save(s *trip.Summary, unit trip.Unit) error {
	if err := os.WriteFile(e.Path(), []byte(ExportBody(s, unit)), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}

	return nil
}
