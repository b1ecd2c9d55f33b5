// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package graphhopper

import (
	"context"
	"fmt"
	"net/url"

	"github.com/viamapa/viamapa/spatial"
	"github.com/viamapa/viamapa/utils/textutils"
)

type geocodeResponse struct {
	Hits []struct {
		Point struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"point"`
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"hits"`
}

// Geocode resolves a place name into coordinates using the GraphHopper
// Geocoding API. The first hit is accepted unconditionally; zero hits yield
// a ProviderError of type ErrorTypeNotFound.
func (c *Client) Geocode(ctx context.Context, place string) (spatial.Point, error) {
	query := textutils.CollapseSpaces(textutils.LowerASCIIFolding(place))
	if query == "" {
		return spatial.Point{}, ErrEmptyPlace
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("locale", "en")
	params.Set("limit", "1")

	var decoded geocodeResponse
	if err := c.get(ctx, "/api/1/geocode", params, &decoded); err != nil {
		return spatial.Point{}, fmt.Errorf("geocoding %q: %w", place, err)
	}

	if len(decoded.Hits) == 0 {
		return spatial.Point{}, &ProviderError{
			Type:    ErrorTypeNotFound,
			Message: fmt.Sprintf("could not find location %q", place),
		}
	}

	hit := decoded.Hits[0]

	return spatial.Point{Lat: hit.Point.Lat, Lng: hit.Point.Lng}, nil
}
