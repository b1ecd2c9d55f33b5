// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterAsk(t *testing.T) {
	var out bytes.Buffer

	p := newPrompter(strings.NewReader("  Manila, Philippines \n"), &out)

	answer, err := p.ask("Enter destination")
	require.NoError(t, err)
	assert.Equal(t, "Manila, Philippines", answer)
	assert.Equal(t, "Enter destination: ", out.String())
}

func TestPrompterAskLastLineWithoutNewline(t *testing.T) {
	p := newPrompter(strings.NewReader("km"), new(bytes.Buffer))

	answer, err := p.ask("Choose unit system (km/mi)")
	require.NoError(t, err)
	assert.Equal(t, "km", answer)
}

func TestPrompterAskYesNo(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"maybe\n", false},
		{"\n", false},
	}

	for _, test := range tests {
		p := newPrompter(strings.NewReader(test.input), new(bytes.Buffer))

		answer, err := p.askYesNo("Save route summary to file?")
		require.NoError(t, err)
		assert.Equal(t, test.expected, answer, "input %q", test.input)
	}
}

func TestFillRouteOptionsPrompts(t *testing.T) {
	var out bytes.Buffer

	input := strings.NewReader("Batangas, Philippines\nManila, Philippines\n1\nkm\n")
	p := newPrompter(input, &out)

	opts := &routeOptions{}
	require.NoError(t, fillRouteOptions(routeCmd, p, opts))

	assert.Equal(t, "Batangas, Philippines", opts.From)
	assert.Equal(t, "Manila, Philippines", opts.To)
	assert.Equal(t, "1", opts.Vehicle)
	assert.Equal(t, "km", opts.Unit)
}

func TestFillRouteOptionsNoInputMissingFrom(t *testing.T) {
	p := newPrompter(strings.NewReader(""), new(bytes.Buffer))

	opts := &routeOptions{NoInput: true}
	err := fillRouteOptions(routeCmd, p, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--from")
}

func TestFillRouteOptionsFlagsSkipPrompts(t *testing.T) {
	// With everything flagged, no prompt should be issued at all.
	p := newPrompter(strings.NewReader(""), new(bytes.Buffer))

	opts := &routeOptions{
		From:    "Batangas, Philippines",
		To:      "Manila, Philippines",
		Vehicle: "car",
		Unit:    "mi",
	}
	require.NoError(t, fillRouteOptions(routeCmd, p, opts))
	assert.Equal(t, "mi", opts.Unit)
}
