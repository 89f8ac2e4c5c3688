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

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-fips-indicator/pkg/indicator"
)

// buildMode names the compiled indicator variant.
func buildMode() string {
	if indicator.IsFIPSBuild() {
		return "validated"
	}
	return "stub"
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build mode",
	Long:  `Print the library version, indicator build mode, and runtime details`,
	Run: func(cmd *cobra.Command, args []string) {
		if outputJSON {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]any{
				"version":    indicator.Version(),
				"fips_build": indicator.IsFIPSBuild(),
				"build_mode": buildMode(),
				"go_version": runtime.Version(),
				"os":         runtime.GOOS,
				"arch":       runtime.GOARCH,
			})
			return
		}
		fmt.Printf("fips-indicator version %s\n", indicator.Version())
		fmt.Printf("Build mode: %s\n", buildMode())
		fmt.Printf("Go version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
