// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/viamapa/viamapa/graphhopper"
	"github.com/viamapa/viamapa/trip"
	"github.com/viamapa/viamapa/weather"
)

// newPlanner wires the provider clients from the environment. A missing
// routing key is fatal; a missing weather key only downgrades the summary.
func newPlanner() (*trip.Planner, error) {
	routingKey := os.Getenv("GRAPHHOPPER_API_KEY")
	if routingKey == "" {
		return nil, fmt.Errorf("GRAPHHOPPER_API_KEY is not set - get a free key at https://graphhopper.com and export it or put it in .env")
	}

	userAgent := fmt.Sprintf("viamapa/%s (+https://github.com/viamapa/viamapa)", Version)

	// One client serves both geocoding and routing. The *_BASE_URL variables
	// exist so tests and self-hosted deployments can point elsewhere.
	gh := graphhopper.NewClient(&graphhopper.ClientOptions{
		APIKey:              routingKey,
		BaseURL:             os.Getenv("GRAPHHOPPER_BASE_URL"),
		UserAgent:           userAgent,
		EnableHTTPTrace:     traceHTTP,
		EnableHTTPBodyTrace: traceHTTPBody,
	})

	planner := &trip.Planner{
		Geocoder: gh,
		Router:   gh,
	}

	weatherKey := os.Getenv("OPENWEATHER_API_KEY")
	if weatherKey == "" {
		log.Println("OPENWEATHER_API_KEY is not set - summaries will report weather as unavailable")
	} else {
		planner.Weather = weather.NewClient(&weather.ClientOptions{
			APIKey:              weatherKey,
			BaseURL:             os.Getenv("OPENWEATHER_BASE_URL"),
			UserAgent:           userAgent,
			EnableHTTPTrace:     traceHTTP,
			EnableHTTPBodyTrace: traceHTTPBody,
		})
	}

	return planner, nil
}
