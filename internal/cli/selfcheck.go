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

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-fips-indicator/pkg/correlation"
	"github.com/jeremyhahn/go-fips-indicator/pkg/logging"
	"github.com/jeremyhahn/go-fips-indicator/pkg/selfcheck"
)

var selfcheckStrict bool

// selfcheckCmd represents the selfcheck command
var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Run live operations through the service indicator",
	Long: `Perform one live cryptographic operation per algorithm family and
report the service indicator verdict for each. Not-approved verdicts are
informational unless --strict is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.NewLogger(debugLogging).With("run_id", correlation.NewID())
		log.Debug("running selfcheck", "build_mode", buildMode())

		results, err := selfcheck.Run()
		if err != nil {
			return err
		}

		if outputJSON {
			if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
				return err
			}
		} else {
			for _, r := range results {
				verdict := "not approved"
				if r.Approved {
					verdict = "approved"
				}
				fmt.Printf("%-50s %s\n", r.Name, verdict)
			}
		}

		if selfcheckStrict {
			for _, r := range results {
				if !r.Approved {
					return fmt.Errorf("selfcheck: %s is not approved", r.Name)
				}
			}
		}
		return nil
	},
}

func init() {
	selfcheckCmd.Flags().BoolVar(&selfcheckStrict, "strict", false,
		"exit non-zero if any operation is not approved")
}
