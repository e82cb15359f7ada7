// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package main is the probe CLI, a smoke tester for a running InternMatch
// server.
//
//	probe run --profiles test_profiles.json --url http://127.0.0.1:5000
//	probe health --url http://127.0.0.1:5000
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tomtom215/internmatch/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "probe",
	Short:         "Smoke test an InternMatch server",
	Long:          "probe posts candidate profiles to a running InternMatch server and prints the top match for each one.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	probeURL     string
	probeTimeout time.Duration
	probeVerbose bool
)

func init() {
	defaultURL := os.Getenv("INTERNMATCH_URL")
	if defaultURL == "" {
		defaultURL = "http://127.0.0.1:5000"
	}

	rootCmd.PersistentFlags().StringVarP(&probeURL, "url", "u", defaultURL, "Server base URL (env INTERNMATCH_URL)")
	rootCmd.PersistentFlags().DurationVar(&probeTimeout, "timeout", 10*time.Second, "Per-request timeout")
	rootCmd.PersistentFlags().BoolVarP(&probeVerbose, "verbose", "v", false, "Log circuit breaker and debug events to stderr")

	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		cfg := logging.DefaultConfig()
		cfg.Format = "console"
		cfg.Service = "probe"
		cfg.Level = "warn"
		if probeVerbose {
			cfg.Level = "debug"
		}
		logging.Init(cfg)
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
