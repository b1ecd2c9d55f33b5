// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input      string
		expected   Unit
		recognized bool
	}{
		{"km", UnitKm, true},
		{"KM", UnitKm, true},
		{"mi", UnitMi, true},
		{"miles", UnitMi, true},
		{"furlongs", UnitKm, false},
		{"", UnitKm, false},
		{"   ", UnitKm, false},
		{" mi ", UnitMi, true},
	}

	for _, test := range tests {
		unit, ok := ParseUnit(test.input)
		assert.Equal(t, test.expected, unit, "input %q", test.input)
		assert.Equal(t, test.recognized, ok, "input %q", test.input)
	}
}

func TestConvertRatio(t *testing.T) {
	// Kilometers and miles must agree on the underlying meters:
	// km == mi / 0.621371 within floating tolerance.
	for _, meters := range []float64{1, 500, 10_000, 110_000.5, 4_200_000} {
		km := UnitKm.Convert(meters)
		mi := UnitMi.Convert(meters)

		assert.InDelta(t, km, mi/0.621371, km*1e-5, "meters=%f", meters)
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "10.00 km", FormatDistance(10_000, UnitKm))
	assert.Equal(t, "6.21 miles", FormatDistance(10_000, UnitMi))
	assert.Equal(t, "0.00 km", FormatDistance(0, UnitKm))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{10 * time.Minute, "10 minutes"},
		{2 * time.Hour, "2h 0m"},
		{125 * time.Minute, "2h 5m"},
		{0, "0 minutes"},
		{59 * time.Minute, "59 minutes"},
		{61 * time.Minute, "1h 1m"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, FormatDuration(test.d), "duration %s", test.d)
	}
}
