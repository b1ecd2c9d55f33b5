// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viamapa/viamapa/webmap"
)

var serveOutDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the route planning web view (local only)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		planner, err := newPlanner()
		if err != nil {
			return err
		}

		server := &webmap.Server{
			Planner: planner,
			OutDir:  serveOutDir,
		}

		fmt.Println("🗺️  Route planning server starting...")
		fmt.Println("📍 Open http://localhost:8080 in your browser")
		fmt.Println("🔒 Local only - not exposed to internet")

		return server.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveOutDir, "out-dir", "", "Directory for rendered map files")
}
