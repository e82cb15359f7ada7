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

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check /health and print the listing count",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	client, err := probe.NewClient(probe.Config{
		BaseURL: probeURL,
		Timeout: probeTimeout,
	})
	if err != nil {
		return err
	}

	health, err := client.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nlistings: %d\n", health.Status, health.Count)
	return nil
}
