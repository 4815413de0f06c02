// Chain command prints four-chains of target lengths.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zillionlab/fourchain/chain"
)

var (
	flagChainLength int
	flagChainRank   int
	flagChainRoot   string
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print four-chains of target lengths",
	Long: `Chain prints an inverse 4-chain: each element is the smallest number
whose spelled-out name has as many letters as the previous element.

With --chain > 1 the breadth-first ranked enumeration applies instead
and --root is ignored.

Example:
  four chain -l 3 -r 21
  21 <- 123 <- 1113[373]{3}`,
	Args: cobra.NoArgs,
	RunE: runChain,
}

func init() {
	chainCmd.Flags().IntVarP(&flagChainLength, "length", "l", 1, "length of the target chain")
	chainCmd.Flags().IntVarP(&flagChainRank, "chain", "c", 1, "the target chain (by 1-based rank)")
	chainCmd.Flags().StringVarP(&flagChainRoot, "root", "r", "4", "number the chain starts from")
}

func runChain(cmd *cobra.Command, args []string) error {
	spin := startSpinner()

	if flagChainRank == 1 {
		root, err := parseNumber(flagChainRoot)
		if err != nil {
			spin.stop()
			return err
		}

		c, err := chain.First(flagChainLength, root)
		spin.stop()
		if err != nil {
			return fmt.Errorf("first chain: %w", err)
		}
		printChain(c)

		return nil
	}

	c, err := chain.Ranked(flagChainLength, flagChainRank)
	spin.stop()
	if err != nil {
		return fmt.Errorf("ranked chain: %w", err)
	}
	printChain(c)

	return nil
}
