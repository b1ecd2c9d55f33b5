// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var (
	traceHTTP     bool
	traceHTTPBody bool
	noColor       bool
)

var rootCmd = &cobra.Command{
	Use:   "viamapa",
	Short: "route and weather finder for two place names",
	Long: `
viamapa resolves two place names, fetches the driving route between them with
turn-by-turn directions, decorates both endpoints with the current weather,
and renders the route onto an interactive HTML map.

Credentials are read from GRAPHHOPPER_API_KEY and OPENWEATHER_API_KEY, either
from the environment or from a local .env file.
`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := godotenv.Load(); err != nil {
			// No .env file is the normal case; keys come from the environment.
			log.Println("No .env file found, using environment variables as-is")
		}
	},
}

var Version = "dev"

func Execute(version string) {
	Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(
		&traceHTTP,
		"trace-http",
		false,
		"Display HTTP requests-responses",
	)
	rootCmd.PersistentFlags().BoolVar(
		&traceHTTPBody,
		"trace-http-body",
		false,
		"Display HTTP requests-responses bodies",
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColor,
		"no-color",
		false,
		"Disable colorized console output",
	)
}
