// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

// Package graphhopper talks to the GraphHopper geocoding and routing APIs.
package graphhopper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/viamapa/viamapa/utils/httputils"
)

// DefaultBaseURL is the production GraphHopper endpoint.
const DefaultBaseURL = "https://graphhopper.com"

// ClientOptions configuration for the GraphHopper client.
type ClientOptions struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// BaseURL overrides the provider endpoint, mostly for tests.
	BaseURL string

	// UserAgent is the User-Agent header to use in HTTP requests
	UserAgent string

	// Enables light tracing of HTTP requests and responses
	EnableHTTPTrace bool

	// Enables full HTTP body tracing
	EnableHTTPBodyTrace bool

	// Timeout for a full request/response cycle. Zero means 30s.
	Timeout time.Duration
}

// Client issues geocoding and routing requests against one GraphHopper
// deployment. It is stateless and safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a new client with the provided options.
func NewClient(options *ClientOptions) *Client {
	if options == nil {
		options = &ClientOptions{}
	}

	var httpLogWriter io.Writer
	if options.EnableHTTPTrace {
		httpLogWriter = os.Stderr
	}

	transport := &http.Transport{
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   4,
		MaxConnsPerHost:       4,
		IdleConnTimeout:       30 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableKeepAlives:     false,
		DisableCompression:    false,
	}

	loggingTransport := &httputils.LoggingRoundTripper{
		Writer:    httpLogWriter,
		DumpBody:  options.EnableHTTPBodyTrace,
		Transport: transport,
	}

	userAgent := "viamapa/unknown"
	if options.UserAgent != "" {
		userAgent = options.UserAgent
	}

	headerTransport := &httputils.AppendRequestHeadersRoundTripper{
		Headers: map[string]string{
			"User-Agent": userAgent,
			"Accept":     "application/json",
		},
		Transport: loggingTransport,
	}

	timeout := options.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  options.APIKey,
		client: &http.Client{
			Timeout:   timeout,
			Transport: headerTransport,
		},
	}
}

// get issues a GET request against path with the given query parameters and
// decodes the JSON body into out. Non-2xx statuses become ProviderErrors.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return &ProviderError{Type: ErrorTypeTimeout, Message: "request cancelled", Err: err}
		}

		return &ProviderError{Type: ErrorTypeNetwork, Message: "request failed", Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		provErr := ClassifyHTTPError(resp.StatusCode)
		// GraphHopper ships a JSON message alongside error statuses. Attach
		// it when available so the user sees the provider's own words.
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil && body.Message != "" {
			provErr.Message = fmt.Sprintf("%s: %s", provErr.Message, body.Message)
		}

		return provErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Type: ErrorTypeUnknown, Message: "decoding response", Err: err}
	}

	return nil
}
