// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package graphhopper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestIsRateLimitError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "rate limit error type",
			err: &ProviderError{
				Type:    ErrorTypeRateLimit,
				Message: "rate limit reached",
			},
			want: true,
		},
		{
			name: "error message contains rate limit",
			err:  errors.New("rate limit exceeded"),
			want: true,
		},
		{
			name: "error message contains 429",
			err:  errors.New("graphhopper returned status 429"),
			want: true,
		},
		{
			name: "other error type",
			err: &ProviderError{
				Type:    ErrorTypeNotFound,
				Message: "not found",
			},
			want: false,
		},
		{
			name: "unrelated error",
			err:  errors.New("some other error"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNotFoundWrapped(t *testing.T) {
	// The predicates must see through fmt.Errorf wrapping.
	err := fmt.Errorf("geocoding %q: %w", "atlantis", &ProviderError{
		Type:    ErrorTypeNotFound,
		Message: "could not find location",
	})

	if !IsNotFound(err) {
		t.Errorf("IsNotFound() = false, want true")
	}

	if IsNoRoute(err) {
		t.Errorf("IsNoRoute() = true, want false")
	}
}

func TestClassifyHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{http.StatusTooManyRequests, ErrorTypeRateLimit},
		{http.StatusUnauthorized, ErrorTypeQuotaExceeded},
		{http.StatusForbidden, ErrorTypeQuotaExceeded},
		{http.StatusBadRequest, ErrorTypeInvalidRequest},
		{http.StatusNotFound, ErrorTypeNotFound},
		{http.StatusBadGateway, ErrorTypeNetwork},
		{http.StatusTeapot, ErrorTypeUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyHTTPError(tt.status); got.Type != tt.want {
			t.Errorf("ClassifyHTTPError(%d).Type = %v, want %v", tt.status, got.Type, tt.want)
		}
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ProviderError{Type: ErrorTypeNetwork, Message: "request failed", Err: cause}

	if !errors.Is(err, cause) {
		t.Errorf("expected ProviderError to unwrap to its cause")
	}

	if err.Error() != "request failed: connection refused" {
		t.Errorf("unexpected Error() output: %s", err.Error())
	}
}
