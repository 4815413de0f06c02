// Fmt command normalizes a compressed abbreviation.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/zillionlab/fourchain/pnum"
)

var flagFmtInt bool

var fmtCmd = &cobra.Command{
	Use:   "fmt ABBREV",
	Short: "Parse and normalize a compressed abbreviation",
	Long: `Fmt parses ABBREV, merges adjacent equal periods, strips leading
zero periods, and prints the canonical form.

With --int the exact decimal expansion is printed instead; above the
configured materialize_threshold a period-count warning goes to stderr
first, since the expansion can dwarf the abbreviation.

Example:
  four fmt "001[373]{2}373"
  1[373]{3}`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&flagFmtInt, "int", false, "print the exact decimal expansion")
}

func runFmt(cmd *cobra.Command, args []string) error {
	n, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	if !flagFmtInt {
		fmt.Println(n.String())

		return nil
	}

	opts := pnum.MaterializeOptions{
		PeriodThreshold: cfgMaterializeThreshold,
		OnAdvisory: func(np *big.Int) {
			fmt.Fprintf(os.Stderr, "warning: expanding %s periods\n", np)
		},
	}
	fmt.Println(n.Int(&opts))

	return nil
}
