// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

// Package weather fetches current conditions from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
	"unicode"

	"github.com/viamapa/viamapa/spatial"
	"github.com/viamapa/viamapa/utils/httputils"
)

// DefaultBaseURL is the production OpenWeatherMap endpoint.
const DefaultBaseURL = "https://api.openweathermap.org"

// ErrUnavailable wraps every failure of this client. Callers treat weather
// as a best-effort decoration: a failed lookup degrades the summary, it
// never aborts the run.
var ErrUnavailable = errors.New("weather data unavailable")

// Reading is the current weather at one coordinate at one point in time.
type Reading struct {
	Condition string  // short textual description, capitalized
	TempC     float64 // celsius
	Humidity  int     // percentage, 0-100
	WindSpeed float64 // m/s
}

// String renders the reading the way it appears in tables and map popups.
func (r *Reading) String() string {
	return fmt.Sprintf("%s, %.1f°C, %d%% humidity, %.1f m/s wind",
		r.Condition, r.TempC, r.Humidity, r.WindSpeed)
}

// ClientOptions configuration for the weather client.
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

	// Timeout for a full request/response cycle. Zero means 15s.
	Timeout time.Duration
}

// Client issues current-weather requests. Stateless, safe for concurrent use.
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

	userAgent := "viamapa/unknown"
	if options.UserAgent != "" {
		userAgent = options.UserAgent
	}

	timeout := options.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
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

	return &Client{
		baseURL: baseURL,
		apiKey:  options.APIKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &httputils.AppendRequestHeadersRoundTripper{
				Headers: map[string]string{
					"User-Agent": userAgent,
					"Accept":     "application/json",
				},
				Transport: &httputils.LoggingRoundTripper{
					Writer:    httpLogWriter,
					DumpBody:  options.EnableHTTPBodyTrace,
					Transport: transport,
				},
			},
		},
	}
}

type currentResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches the current weather at p in metric units.
func (c *Client) Current(ctx context.Context, p spatial.Point) (*Reading, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/data/2.5/weather?"+params.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var decoded currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrUnavailable, err)
	}

	if len(decoded.Weather) == 0 {
		return nil, fmt.Errorf("%w: response missing condition", ErrUnavailable)
	}

	if decoded.Main.Humidity < 0 || decoded.Main.Humidity > 100 {
		return nil, fmt.Errorf("%w: implausible humidity %d%%", ErrUnavailable, decoded.Main.Humidity)
	}

	return &Reading{
		Condition: capitalize(decoded.Weather[0].Description),
		TempC:     decoded.Main.Temp,
		Humidity:  decoded.Main.Humidity,
		WindSpeed: decoded.Wind.Speed,
	}, nil
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
