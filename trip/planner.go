// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package trip

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/viamapa/viamapa/graphhopper"
	"github.com/viamapa/viamapa/spatial"
	"github.com/viamapa/viamapa/weather"
)

// Geocoder resolves a place name into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (spatial.Point, error)
}

// Router computes a route between two coordinates.
type Router interface {
	FetchRoute(ctx context.Context, from, to spatial.Point, vehicle graphhopper.Vehicle) (*graphhopper.Route, error)
}

// WeatherProvider fetches current conditions at a coordinate.
type WeatherProvider interface {
	Current(ctx context.Context, p spatial.Point) (*weather.Reading, error)
}

// Planner runs the whole query: two geocodes, one route, two weather
// lookups. Geocoding and routing failures are fatal to the query; weather
// failures degrade the summary per endpoint.
type Planner struct {
	Geocoder Geocoder
	Router   Router
	Weather  WeatherProvider

	// Progress, when set, is called once before each provider call with a
	// short human-readable stage name.
	Progress func(stage string)
}

func (p *Planner) progress(stage string) {
	if p.Progress != nil {
		p.Progress(stage)
	}
}

// Plan executes the query for the given place names and vehicle profile.
func (p *Planner) Plan(ctx context.Context, start, end string, vehicle graphhopper.Vehicle) (*Summary, error) {
	p.progress("Locating " + start)

	startPoint, err := p.Geocoder.Geocode(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("resolving start location: %w", err)
	}

	p.progress("Locating " + end)

	endPoint, err := p.Geocoder.Geocode(ctx, end)
	if err != nil {
		return nil, fmt.Errorf("resolving destination: %w", err)
	}

	if startPoint.HaversineDistance(&endPoint) < 1 {
		// Degenerate route: both names resolve to the same coordinate. The
		// provider decides what to answer; we only leave a trace.
		log.Printf("Start and destination resolve to the same point %s", startPoint)
	}

	p.progress("Computing route")

	route, err := p.Router.FetchRoute(ctx, startPoint, endPoint, vehicle)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Start:      start,
		End:        end,
		StartPoint: startPoint,
		EndPoint:   endPoint,
		Vehicle:    vehicle,
		Route:      route,
	}

	// The two lookups are independent, so they fan out as a fixed pair.
	p.progress("Fetching weather")

	var wg sync.WaitGroup

	for _, slot := range []struct {
		point spatial.Point
		out   *WeatherAt
	}{
		{startPoint, &summary.StartWeather},
		{endPoint, &summary.EndWeather},
	} {
		wg.Add(1)

		go func(point spatial.Point, out *WeatherAt) {
			defer wg.Done()

			if p.Weather == nil {
				out.Err = weather.ErrUnavailable

				return
			}

			reading, err := p.Weather.Current(ctx, point)
			if err != nil {
				log.Printf("Weather lookup failed for %s - %s", point, err)
				out.Err = err

				return
			}

			out.Reading = reading
		}(slot.point, slot.out)
	}

	wg.Wait()

	return summary, nil
}
