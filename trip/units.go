// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

// Package trip holds the route summary domain and the planning workflow.
package trip

import (
	"fmt"
	"strings"
	"time"
)

const metersPerMile = 1609.34

// Unit is the distance unit system chosen by the user.
type Unit string

// Supported unit systems.
const (
	UnitKm Unit = "km"
	UnitMi Unit = "mi"
)

// ParseUnit maps user input to a unit system. The second return value is
// false when the input was not recognized and kilometers were assumed.
func ParseUnit(s string) (Unit, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(s))

	switch trimmed {
	case "km", "kilometers", "":
		return UnitKm, trimmed != ""
	case "mi", "miles":
		return UnitMi, true
	default:
		return UnitKm, false
	}
}

// Convert turns meters into the unit's scale. Stored values are always
// meters; conversion happens only at presentation time.
func (u Unit) Convert(meters float64) float64 {
	if u == UnitMi {
		return meters / metersPerMile
	}

	return meters / 1000
}

// Label is the human-readable unit name used next to converted values.
func (u Unit) Label() string {
	if u == UnitMi {
		return "miles"
	}

	return "km"
}

// FormatDistance renders meters in the chosen unit with two decimals.
func FormatDistance(meters float64, u Unit) string {
	return fmt.Sprintf("%.2f %s", u.Convert(meters), u.Label())
}

// FormatDuration renders a duration as "2h 5m", or "12 minutes" under an hour.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	hours := minutes / 60
	mins := minutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}

	return fmt.Sprintf("%d minutes", mins)
}
