// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viamapa/viamapa/graphhopper"
	"github.com/viamapa/viamapa/spatial"
	"github.com/viamapa/viamapa/trip"
	"github.com/viamapa/viamapa/weather"
)

func sampleSummary() *trip.Summary {
	return &trip.Summary{
		Start:      "Batangas, Philippines",
		End:        "Manila, Philippines",
		StartPoint: spatial.Point{Lat: 13.7565, Lng: 121.0583},
		EndPoint:   spatial.Point{Lat: 14.5995, Lng: 120.9842},
		Vehicle:    graphhopper.VehicleCar,
		Route: &graphhopper.Route{
			Distance: 110_000,
			Duration: 2*time.Hour + 5*time.Minute,
			Points: []spatial.Point{
				{Lat: 13.7565, Lng: 121.0583},
				{Lat: 14.5995, Lng: 120.9842},
			},
			Steps: []graphhopper.Step{
				{Text: "Head north", Distance: 50_000},
				{Text: "Turn left onto the highway", Distance: 60_000},
			},
		},
		StartWeather: trip.WeatherAt{Reading: &weather.Reading{
			Condition: "Clear sky", TempC: 30, Humidity: 70, WindSpeed: 2,
		}},
		EndWeather: trip.WeatherAt{Err: weather.ErrUnavailable},
	}
}

func TestSummaryTable(t *testing.T) {
	var buf bytes.Buffer

	opts := Options{Unit: trip.UnitKm}
	opts.Summary(&buf, sampleSummary())

	out := buf.String()
	assert.Contains(t, out, "=== ROUTE SUMMARY ===")
	assert.Contains(t, out, "Batangas, Philippines")
	assert.Contains(t, out, "110.00 km")
	assert.Contains(t, out, "2h 5m")
	assert.Contains(t, out, "Car")
	assert.Contains(t, out, "Clear sky, 30.0°C, 70% humidity, 2.0 m/s wind")
	// The failed endpoint is marked, the other one is not.
	assert.Contains(t, out, "weather unavailable")
	assert.NotContains(t, out, "\033[", "plain output must carry no ANSI escapes")

	// Box layout: every line after the header is framed.
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n")[1:] {
		assert.Contains(t, "╭├╰│", string([]rune(line)[0]), "line %q", line)
	}
}

func TestSummaryColorized(t *testing.T) {
	var buf bytes.Buffer

	opts := Options{Unit: trip.UnitKm, Color: true}
	opts.Summary(&buf, sampleSummary())

	assert.Contains(t, buf.String(), "\033[32m\033[1m=== ROUTE SUMMARY ===\033[0m")
}

func TestStepsTable(t *testing.T) {
	var buf bytes.Buffer

	opts := Options{Unit: trip.UnitMi}
	opts.Steps(&buf, sampleSummary())

	out := buf.String()
	assert.Contains(t, out, "Head north")
	assert.Contains(t, out, "31.07 miles")
	assert.Contains(t, out, "Turn left onto the highway")
	assert.Contains(t, out, "37.28 miles")
}

func TestStepsEmptyRoute(t *testing.T) {
	var buf bytes.Buffer

	s := sampleSummary()
	s.Route.Steps = nil

	Options{Unit: trip.UnitKm}.Steps(&buf, s)
	assert.Empty(t, buf.String())
}

func TestExportBodyDeterministic(t *testing.T) {
	s := sampleSummary()

	first := ExportBody(s, trip.UnitKm)
	second := ExportBody(s, trip.UnitKm)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "=== ROUTE SUMMARY ===")
	assert.Contains(t, first, "=== Step-by-Step Directions ===")
	assert.NotContains(t, first, "\033[")
}

func TestExporterSave(t *testing.T) {
	dir := t.TempDir()

	exporter := &Exporter{Dir: dir}
	require.NoError(t, exporter.Save(sampleSummary(), trip.UnitKm))

	data, err := readFile(exporter.Path())
	require.NoError(t, err)
	assert.Equal(t, ExportBody(sampleSummary(), trip.UnitKm), data)

	// Overwrites silently.
	require.NoError(t, exporter.Save(sampleSummary(), trip.UnitMi))

	data, err = readFile(exporter.Path())
	require.NoError(t, err)
	assert.Contains(t, data, "miles")
}

func TestExporterSaveFailure(t *testing.T) {
	exporter := &Exporter{Dir: "/nonexistent/dir/for/sure"}

	err := exporter.Save(sampleSummary(), trip.UnitKm)
	require.ErrorIs(t, err, ErrFileWrite)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)

	return string(data), err
}
