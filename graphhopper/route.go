// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package graphhopper

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/viamapa/viamapa/spatial"
)

// Vehicle is the transportation profile used for routing.
type Vehicle string

// Routing profiles supported by the provider.
const (
	VehicleCar        Vehicle = "car"
	VehicleMotorcycle Vehicle = "motorcycle"
	VehicleFoot       Vehicle = "foot"
)

// ParseVehicle maps user input to a routing profile. Unrecognized input
// defaults to car, mirroring the prompt behaviour.
func ParseVehicle(s string) Vehicle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "motorcycle", "moto", "2":
		return VehicleMotorcycle
	case "foot", "walk", "3":
		return VehicleFoot
	default:
		return VehicleCar
	}
}

// Step is one turn-by-turn instruction. Text and distance come verbatim from
// the provider; unit conversion happens only at presentation time.
type Step struct {
	Text     string
	Distance float64 // meters
}

// Route is a computed path between two coordinates.
type Route struct {
	Distance float64 // meters
	Duration time.Duration
	Points   []spatial.Point // route geometry, in travel order
	Steps    []Step
}

type routeResponse struct {
	Paths []struct {
		Distance float64 `json:"distance"`
		Time     int64   `json:"time"` // milliseconds
		Points   struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat]
		} `json:"points"`
		Instructions []struct {
			Text     string  `json:"text"`
			Distance float64 `json:"distance"`
		} `json:"instructions"`
	} `json:"paths"`
}

// FetchRoute retrieves the route between two coordinates from the GraphHopper
// Routing API. Zero-step routes (start equals end) pass through unchanged;
// the provider decides what a degenerate route looks like.
func (c *Client) FetchRoute(ctx context.Context, from, to spatial.Point, vehicle Vehicle) (*Route, error) {
	if vehicle == "" {
		vehicle = VehicleCar
	}

	params := url.Values{}
	params.Add("point", from.String())
	params.Add("point", to.String())
	params.Set("vehicle", string(vehicle))
	params.Set("locale", "en")
	params.Set("points_encoded", "false")
	params.Set("calc_points", "true")

	var decoded routeResponse
	if err := c.get(ctx, "/api/1/route", params, &decoded); err != nil {
		// The provider answers 400 with a "Connection between locations not
		// found" or "Cannot find point N" message when no path exists.
		var provErr *ProviderError
		if errors.As(err, &provErr) && provErr.Type == ErrorTypeInvalidRequest &&
			(strings.Contains(strings.ToLower(provErr.Message), "not found") ||
				strings.Contains(strings.ToLower(provErr.Message), "cannot find point")) {
			return nil, &ProviderError{
				Type:    ErrorTypeNoRoute,
				Message: "no route found between the given locations",
				Err:     err,
			}
		}

		return nil, fmt.Errorf("fetching route: %w", err)
	}

	if len(decoded.Paths) == 0 {
		return nil, &ProviderError{
			Type:    ErrorTypeNoRoute,
			Message: "no route found between the given locations",
		}
	}

	path := decoded.Paths[0]

	route := &Route{
		Distance: path.Distance,
		Duration: time.Duration(path.Time) * time.Millisecond,
		Points:   make([]spatial.Point, 0, len(path.Points.Coordinates)),
		Steps:    make([]Step, 0, len(path.Instructions)),
	}

	for _, coord := range path.Points.Coordinates {
		if len(coord) < 2 {
			return nil, &ProviderError{
				Type:    ErrorTypeUnknown,
				Message: fmt.Sprintf("malformed coordinate in route geometry: %v", coord),
			}
		}

		// Provider geometry is [lng, lat].
		route.Points = append(route.Points, spatial.Point{Lat: coord[1], Lng: coord[0]})
	}

	for _, instr := range path.Instructions {
		route.Steps = append(route.Steps, Step{Text: instr.Text, Distance: instr.Distance})
	}

	return route, nil
}
