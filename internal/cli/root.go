// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-fips-indicator.
//
// go-fips-indicator is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package cli implements the fips-indicator command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Persistent flags (available to all commands)
	configFile   string
	debugLogging bool
	outputJSON   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fips-indicator",
	Short: "FIPS 140-3 service indicator tooling",
	Long: `fips-indicator inspects and exercises the FIPS 140-3 service
indicator library: report the build mode, run a live selfcheck across
every algorithm family, or serve health and metrics endpoints.

The indicator itself is observational: it reports whether completed
cryptographic operations used approved parameter sets, and never blocks
an operation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is built-in defaults plus FIPS_INDICATOR_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&debugLogging, "debug", "d", false,
		"enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false,
		"emit JSON instead of text")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(selfcheckCmd)
	rootCmd.AddCommand(serveCmd)
}
