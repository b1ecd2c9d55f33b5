// Copyright 2025 The ViaMapa Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/viamapa/viamapa/graphhopper"
	"github.com/viamapa/viamapa/report"
	"github.com/viamapa/viamapa/trip"
	"github.com/viamapa/viamapa/webmap"
)

// routeOptions collects flag values. Flags pre-answer the interactive
// prompts so the command also works in scripts.
type routeOptions struct {
	From      string
	To        string
	Vehicle   string
	Unit      string
	ShowSteps bool
	Save      bool
	NoInput   bool
	OutDir    string
}

var routeOpts = &routeOptions{}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find a route between two places, with weather and a map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRoute(cmd, os.Stdin, os.Stdout)
	},
}

// fetchStages is how many times the planner reports progress: two geocodes,
// the route, and the weather pair.
const fetchStages = 4

func runRoute(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)

	if err := fillRouteOptions(cmd, p, routeOpts); err != nil {
		return err
	}

	unit, recognized := trip.ParseUnit(routeOpts.Unit)
	if !recognized && routeOpts.Unit != "" {
		fmt.Fprintf(out, "Invalid unit %q. Defaulting to kilometers.\n", routeOpts.Unit)
	}

	vehicle := graphhopper.ParseVehicle(routeOpts.Vehicle)

	planner, err := newPlanner()
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(fetchStages,
			progressbar.OptionSetDescription("Planning route"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	planner.Progress = func(stage string) {
		if bar == nil {
			log.Println(stage)

			return
		}

		bar.Describe(stage)

		if err := bar.Add(1); err != nil {
			log.Printf("Updating progress bar: %s", err)
		}
	}

	summary, err := planner.Plan(cmd.Context(), routeOpts.From, routeOpts.To, vehicle)

	if bar != nil {
		_ = bar.Finish()
	}

	if err != nil {
		return err
	}

	opts := report.Options{
		Unit:  unit,
		Color: !noColor && isatty.IsTerminal(os.Stdout.Fd()),
	}

	fmt.Fprintln(out)
	opts.Summary(out, summary)

	if err := askUnlessFlagged(cmd, p, "steps", &routeOpts.ShowSteps,
		"Would you like to see step-by-step directions?"); err != nil {
		return err
	}

	if routeOpts.ShowSteps {
		fmt.Fprintln(out)
		opts.Steps(out, summary)
	}

	renderMap(out, opts, summary)

	if err := askUnlessFlagged(cmd, p, "save", &routeOpts.Save,
		"Save route summary to file?"); err != nil {
		return err
	}

	if routeOpts.Save {
		exporter := &report.Exporter{Dir: routeOpts.OutDir}
		if err := exporter.Save(summary, unit); err != nil {
			opts.Warning(out, "Could not save the summary: %s", err)
		} else {
			fmt.Fprintf(out, "✅ Route summary saved as %q\n", exporter.Path())
		}
	}

	return nil
}

// fillRouteOptions prompts for whatever the flags did not provide.
func fillRouteOptions(cmd *cobra.Command, p *prompter, opts *routeOptions) error {
	var err error

	if opts.From == "" {
		if opts.NoInput {
			return fmt.Errorf("missing start location (use --from)")
		}

		if opts.From, err = p.ask("Enter start location (e.g., Batangas, Philippines)"); err != nil {
			return err
		}
	}

	if opts.To == "" {
		if opts.NoInput {
			return fmt.Errorf("missing destination (use --to)")
		}

		if opts.To, err = p.ask("Enter destination (e.g., Manila, Philippines)"); err != nil {
			return err
		}
	}

	if opts.Vehicle == "" && !opts.NoInput {
		fmt.Fprintln(p.out, "Choose your mode of transportation:")
		fmt.Fprintln(p.out, "1. Car\n2. Motorcycle\n3. Foot")

		if opts.Vehicle, err = p.ask("Enter choice (1/2/3)"); err != nil {
			return err
		}
	}

	if opts.Unit == "" && !opts.NoInput {
		if opts.Unit, err = p.ask("Choose unit system (km/mi)"); err != nil {
			return err
		}
	}

	return nil
}

// askUnlessFlagged asks a yes/no question when the corresponding flag was
// not set explicitly and prompting is allowed.
func askUnlessFlagged(cmd *cobra.Command, p *prompter, flag string, value *bool, question string) error {
	if routeOpts.NoInput || cmd.Flags().Changed(flag) {
		return nil
	}

	answer, err := p.askYesNo(question)
	if err != nil {
		return err
	}

	*value = answer

	return nil
}

func renderMap(out io.Writer, opts report.Options, summary *trip.Summary) {
	path, err := webmap.WriteFile(routeOpts.OutDir, summary)
	if err != nil {
		// A broken map never blocks the console summary or the export.
		opts.Warning(out, "Could not render the map: %s", err)

		return
	}

	fmt.Fprintf(out, "🗺️  Map created successfully! Open %q to view your route.\n", path)
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.Flags().StringVar(&routeOpts.From, "from", "", "Start location")
	routeCmd.Flags().StringVar(&routeOpts.To, "to", "", "Destination")
	routeCmd.Flags().StringVar(&routeOpts.Vehicle, "vehicle", "", "Vehicle profile: car, motorcycle or foot")
	routeCmd.Flags().StringVar(&routeOpts.Unit, "unit", "", "Unit system: km or mi")
	routeCmd.Flags().BoolVar(&routeOpts.ShowSteps, "steps", false, "Show step-by-step directions")
	routeCmd.Flags().BoolVar(&routeOpts.Save, "save", false, "Save the summary to route_summary.txt")
	routeCmd.Flags().BoolVar(&routeOpts.NoInput, "no-input", false, "Never prompt; fail when a required value is missing")
	routeCmd.Flags().StringVar(&routeOpts.OutDir, "out-dir", "", "Directory for the map and summary files")
}
