// Copyright 2025 The ViaMapa Authors
//
// SPDX-License-Identifier: Apache-2.0
package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointString(t *testing.T) {
	p := Point{Lat: -34.901113, Lng: -56.164531}
	assert.Equal(t, "-34.901113,-56.164531", p.String())
}

func TestMidpoint(t *testing.T) {
	a := Point{Lat: 10, Lng: 20}
	b := Point{Lat: 20, Lng: 40}

	m := a.Midpoint(b)
	assert.Equal(t, Point{Lat: 15, Lng: 30}, m)
}

func TestHaversineDistance(t *testing.T) {
	// Batangas to Manila, roughly 94 km as the crow flies.
	batangas := Point{Lat: 13.7565, Lng: 121.0583}
	manila := Point{Lat: 14.5995, Lng: 120.9842}

	d := batangas.HaversineDistance(&manila)
	assert.InDelta(t, 94_000, d, 2_000)

	// Symmetric, and zero against itself.
	assert.InDelta(t, d, manila.HaversineDistance(&batangas), 1e-6)
	assert.Zero(t, batangas.HaversineDistance(&batangas))
}
