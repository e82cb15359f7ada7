// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/internmatch/internal/probe"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Post every profile in a file to /recommend",
	Long:  "Reads a JSON array of profiles, posts each one to /recommend and prints the top match, 'No results', or the error status and body.",
	RunE:  runProbe,
}

var (
	runProfiles    string
	runConcurrency int
	runRPS         float64
)

func init() {
	runCmd.Flags().StringVarP(&runProfiles, "profiles", "p", "test_profiles.json", "Path to a JSON array of profiles")
	runCmd.Flags().IntVarP(&runConcurrency, "concurrency", "c", 4, "Maximum requests in flight")
	runCmd.Flags().Float64Var(&runRPS, "rps", 0, "Requests per second limit (0 = unlimited)")

	rootCmd.AddCommand(runCmd)
}

func runProbe(cmd *cobra.Command, _ []string) error {
	profiles, err := probe.LoadProfiles(runProfiles)
	if err != nil {
		return err
	}

	client, err := probe.NewClient(probe.Config{
		BaseURL: probeURL,
		Timeout: probeTimeout,
		RPS:     runRPS,
	})
	if err != nil {
		return err
	}

	outcomes, err := probe.Run(cmd.Context(), client, profiles, runConcurrency, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("probe run: %w", err)
	}

	failed := 0
	for i := range outcomes {
		if outcomes[i].Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d profiles failed", failed, len(outcomes))
	}
	return nil
}
