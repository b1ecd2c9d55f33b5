// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package webmap

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/viamapa/viamapa/graphhopper"
	"github.com/viamapa/viamapa/trip"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>viamapa</title></head>
<body>
<h1>viamapa</h1>
<form action="/api/route" method="get">
  <label>Start <input name="from" placeholder="Batangas, Philippines" required></label>
  <label>Destination <input name="to" placeholder="Manila, Philippines" required></label>
  <label>Vehicle
    <select name="vehicle">
      <option value="car">Car</option>
      <option value="motorcycle">Motorcycle</option>
      <option value="foot">Foot</option>
    </select>
  </label>
  <label>Unit
    <select name="unit">
      <option value="km">km</option>
      <option value="mi">mi</option>
    </select>
  </label>
  <button type="submit">Plan route</button>
</form>
<p><a href="/map">Latest map</a></p>
</body>
</html>
`))

// Server exposes the planning workflow over a local HTTP interface, for
// people who would rather click than answer terminal prompts.
type Server struct {
	Planner *trip.Planner

	// OutDir is where rendered maps land, shared with the CLI flow.
	OutDir string
}

type stepDTO struct {
	Text     string `json:"text"`
	Distance string `json:"distance"`
}

type routeDTO struct {
	Start        string    `json:"start"`
	End          string    `json:"end"`
	Vehicle      string    `json:"vehicle"`
	Distance     string    `json:"distance"`
	Duration     string    `json:"duration"`
	Steps        []stepDTO `json:"steps"`
	StartWeather string    `json:"start_weather"`
	EndWeather   string    `json:"end_weather"`
	MapURL       string    `json:"map_url"`
}

// Router builds the gin engine. Split from Run so tests can drive it with
// httptest recorders.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(indexTemplate)

	r.GET("/", s.indexView)
	r.GET("/map", s.mapView)
	r.GET("/api/route", s.planRoute)

	return r
}

// Run serves on localhost only; this is a preview tool, not a public API.
func (s *Server) Run() error {
	return s.Router().Run("localhost:8080")
}

func (s *Server) indexView(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index", nil)
}

func (s *Server) mapView(ctx *gin.Context) {
	path := filepath.Join(s.OutDir, MapFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		ctx.String(http.StatusNotFound, "no map rendered yet - plan a route first")

		return
	}

	ctx.File(path)
}

func (s *Server) planRoute(ctx *gin.Context) {
	from := ctx.Query("from")
	to := ctx.Query("to")

	if from == "" || to == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})

		return
	}

	vehicle := graphhopper.ParseVehicle(ctx.DefaultQuery("vehicle", "car"))
	unit, _ := trip.ParseUnit(ctx.DefaultQuery("unit", "km"))

	summary, err := s.Planner.Plan(ctx.Request.Context(), from, to, vehicle)
	if err != nil {
		status := http.StatusBadGateway
		if graphhopper.IsNotFound(err) || graphhopper.IsNoRoute(err) {
			status = http.StatusNotFound
		}

		ctx.JSON(status, gin.H{"error": err.Error()})

		return
	}

	if _, err := WriteFile(s.OutDir, summary); err != nil {
		// Map write failure degrades the response, it does not fail it.
		ctx.Header("X-Map-Error", err.Error())
	}

	steps := make([]stepDTO, 0, len(summary.Route.Steps))
	for _, step := range summary.Route.Steps {
		steps = append(steps, stepDTO{
			Text:     step.Text,
			Distance: trip.FormatDistance(step.Distance, unit),
		})
	}

	ctx.JSON(http.StatusOK, routeDTO{
		Start:        summary.Start,
		End:          summary.End,
		Vehicle:      string(summary.Vehicle),
		Distance:     trip.FormatDistance(summary.Route.Distance, unit),
		Duration:     trip.FormatDuration(summary.Route.Duration),
		Steps:        steps,
		StartWeather: summary.StartWeather.String(),
		EndWeather:   summary.EndWeather.String(),
		MapURL:       "/map",
	})
}
