// Smallest and largest commands invert the name-length function.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zillionlab/fourchain/pnum"
	"github.com/zillionlab/fourchain/search"
)

var smallestCmd = &cobra.Command{
	Use:   "smallest TARGET",
	Short: "Find the smallest number with TARGET letters in its name",
	Long: `Smallest finds the minimal nonnegative integer whose spelled-out name
has exactly TARGET letters. TARGET itself may be a compressed
abbreviation.

Example:
  four smallest 323
  1103323[373]{8}`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch(search.Smallest),
}

var largestCmd = &cobra.Command{
	Use:   "largest TARGET",
	Short: "Find the largest number with TARGET letters in its name",
	Long: `Largest finds the maximal nonnegative integer whose spelled-out name
has exactly TARGET letters.

Example:
  four largest 23
  10[000]{100002003}`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch(search.Largest),
}

func runSearch(find func(*pnum.PNumber) (*pnum.PNumber, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		target, err := parseNumber(args[0])
		if err != nil {
			return err
		}

		spin := startSpinner()
		n, err := find(target)
		spin.stop()
		if err != nil {
			return fmt.Errorf("target %s: %w", target, err)
		}

		fmt.Println(styled(numberStyle, n.String()))

		return nil
	}
}
