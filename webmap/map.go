// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

// Package webmap renders a route onto a self-contained Leaflet HTML map.
package webmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/viamapa/viamapa/spatial"
	"github.com/viamapa/viamapa/trip"
)

// MapFileName is the interactive map written next to the summary export.
// Each render overwrites it; there is no versioning.
const MapFileName = "route_map.html"

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Route: {{.StartLabel}} → {{.EndLabel}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map', { scrollWheelZoom: true }).setView({{.CenterJSON}}, {{.Zoom}});
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

var path = {{.PathJSON}};
L.polyline(path, { color: 'blue', weight: 5, opacity: 0.8 })
  .bindTooltip('Route for {{.Vehicle}}')
  .addTo(map);

L.circleMarker({{.StartJSON}}, {
  radius: 8, color: 'green', fillColor: 'green', fillOpacity: 0.9
}).bindPopup('<b>Start:</b> {{.StartLabel}}<br><b>Weather:</b> {{.StartWeather}}').addTo(map);

L.circleMarker({{.EndJSON}}, {
  radius: 8, color: 'red', fillColor: 'red', fillOpacity: 0.9
}).bindPopup('<b>End:</b> {{.EndLabel}}<br><b>Weather:</b> {{.EndWeather}}').addTo(map);

if (path.length > 1) {
  map.fitBounds(L.polyline(path).getBounds());
}
</script>
</body>
</html>
`))

type mapData struct {
	Zoom                 int
	CenterJSON           template.JS
	StartJSON, EndJSON   template.JS
	StartLabel, EndLabel string
	StartWeather         string
	EndWeather           string
	Vehicle              string
	PathJSON             template.JS
}

func latLngJSON(p spatial.Point) (template.JS, error) {
	b, err := json.Marshal([2]float64{p.Lat, p.Lng})
	if err != nil {
		return "", fmt.Errorf("encoding coordinate: %w", err)
	}

	return template.JS(b), nil
}

// Render produces the map document for a summary. Output is deterministic
// for equal input, so re-rendering the same route yields identical bytes.
func Render(s *trip.Summary) ([]byte, error) {
	path := make([][2]float64, 0, len(s.Route.Points))
	for _, p := range s.Route.Points {
		path = append(path, [2]float64{p.Lat, p.Lng})
	}

	pathJSON, err := json.Marshal(path)
	if err != nil {
		return nil, fmt.Errorf("encoding route geometry: %w", err)
	}

	centerJSON, err := latLngJSON(s.StartPoint.Midpoint(s.EndPoint))
	if err != nil {
		return nil, err
	}

	startJSON, err := latLngJSON(s.StartPoint)
	if err != nil {
		return nil, err
	}

	endJSON, err := latLngJSON(s.EndPoint)
	if err != nil {
		return nil, err
	}

	data := mapData{
		Zoom:         6,
		CenterJSON:   centerJSON,
		StartJSON:    startJSON,
		EndJSON:      endJSON,
		StartLabel:   s.Start,
		EndLabel:     s.End,
		StartWeather: s.StartWeather.String(),
		EndWeather:   s.EndWeather.String(),
		Vehicle:      string(s.Vehicle),
		PathJSON:     template.JS(pathJSON),
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering map: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile renders the map and overwrites route_map.html in dir.
func WriteFile(dir string, s *trip.Summary) (string, error) {
	doc, err := Render(s)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, MapFileName)
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		return "", fmt.Errorf("writing map file: %w", err)
	}

	return path, nil
}
