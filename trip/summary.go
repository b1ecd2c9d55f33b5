// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package trip

import (
	"github.com/viamapa/viamapa/graphhopper"
	"github.com/viamapa/viamapa/spatial"
	"github.com/viamapa/viamapa/weather"
)

// WeatherAt is the outcome of one weather lookup. A failed lookup keeps its
// error here so the summary can say "unavailable" for that endpoint only.
type WeatherAt struct {
	Reading *weather.Reading
	Err     error
}

// Available reports whether a reading was obtained.
func (w WeatherAt) Available() bool {
	return w.Err == nil && w.Reading != nil
}

// String renders the reading, or the unavailable marker.
func (w WeatherAt) String() string {
	if !w.Available() {
		return "weather unavailable"
	}

	return w.Reading.String()
}

// Summary aggregates everything one query produced: the route, the weather
// at both endpoints, and the place names as the user typed them. It lives
// for a single run; there is no history or storage behind it.
type Summary struct {
	Start string
	End   string

	StartPoint spatial.Point
	EndPoint   spatial.Point

	Vehicle graphhopper.Vehicle
	Route   *graphhopper.Route

	StartWeather WeatherAt
	EndWeather   WeatherAt
}
