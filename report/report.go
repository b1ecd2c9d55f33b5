// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

// Package report formats a trip summary for the console and the text export.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/viamapa/viamapa/trip"
)

// ANSI escapes used for console headers. Never used in export bodies.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
)

// Options controls presentation. Formatting is pure: same summary and
// options, same output.
type Options struct {
	Unit  trip.Unit
	Color bool
}

func (o Options) paint(code, s string) string {
	if !o.Color {
		return s
	}

	return code + s + ansiReset
}

type row struct {
	property string
	value    string
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func summaryRows(s *trip.Summary, unit trip.Unit) []row {
	return []row{
		{"Start Location", s.Start},
		{"Destination", s.End},
		{"Vehicle Type", capitalize(string(s.Vehicle))},
		{"Total Distance", trip.FormatDistance(s.Route.Distance, unit)},
		{"Estimated Time", trip.FormatDuration(s.Route.Duration)},
		{"Start Weather", s.StartWeather.String()},
		{"End Weather", s.EndWeather.String()},
	}
}

// renderTable draws a two-column box table sized to its contents.
func renderTable(w io.Writer, propertyHeader, valueHeader string, rows []row) {
	propWidth := utf8.RuneCountInString(propertyHeader)
	valWidth := utf8.RuneCountInString(valueHeader)

	for _, r := range rows {
		if n := utf8.RuneCountInString(r.property); n > propWidth {
			propWidth = n
		}

		if n := utf8.RuneCountInString(r.value); n > valWidth {
			valWidth = n
		}
	}

	pad := func(s string, width int) string {
		return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
	}

	a, b := strings.Repeat("─", propWidth), strings.Repeat("─", valWidth)

	fmt.Fprintf(w, "╭─%s─┬─%s─╮\n", a, b)
	fmt.Fprintf(w, "│ %s │ %s │\n", pad(propertyHeader, propWidth), pad(valueHeader, valWidth))
	fmt.Fprintf(w, "├─%s─┼─%s─┤\n", a, b)

	for _, r := range rows {
		fmt.Fprintf(w, "│ %s │ %s │\n", pad(r.property, propWidth), pad(r.value, valWidth))
	}

	fmt.Fprintf(w, "╰─%s─┴─%s─╯\n", a, b)
}

// Summary writes the route summary table, with an optional colorized header.
func (o Options) Summary(w io.Writer, s *trip.Summary) {
	fmt.Fprintln(w, o.paint(ansiGreen+ansiBold, "=== ROUTE SUMMARY ==="))
	renderTable(w, "Property", "Value", summaryRows(s, o.Unit))
}

// Steps writes the turn-by-turn table with per-step distances in the chosen
// unit. Nothing is written for a zero-step route.
func (o Options) Steps(w io.Writer, s *trip.Summary) {
	if len(s.Route.Steps) == 0 {
		return
	}

	fmt.Fprintln(w, o.paint(ansiCyan+ansiBold, "=== Step-by-Step Directions ==="))

	rows := make([]row, 0, len(s.Route.Steps))
	for _, step := range s.Route.Steps {
		rows = append(rows, row{step.Text, trip.FormatDistance(step.Distance, o.Unit)})
	}

	renderTable(w, "Instruction", "Distance", rows)
}

// Warning writes a colorized warning line to the console.
func (o Options) Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, o.paint(ansiYellow, fmt.Sprintf(format, args...)))
}

// ExportBody builds the plain-text body written by the exporter: the summary
// table followed by the step table, never colorized.
func ExportBody(s *trip.Summary, unit trip.Unit) string {
	var sb strings.Builder

	plain := Options{Unit: unit, Color: false}
	plain.Summary(&sb, s)

	if len(s.Route.Steps) > 0 {
		sb.WriteString("\n")
		plain.Steps(&sb, s)
	}

	return sb.String()
}
