// Name command reports the letter count of a number's numeral.
package main

import (
	"github.com/spf13/cobra"

	"github.com/zillionlab/fourchain/letters"
)

var nameCmd = &cobra.Command{
	Use:   "name NUMBER",
	Short: "Count the letters in a number's spelled-out name",
	Long: `Name counts the letters in the fully spelled-out English numeral of
NUMBER without building the numeral itself, so NUMBER may be a
compressed abbreviation far beyond machine-integer range.

Example:
  four name "10[000]{100002003}"
  There are 23 letters in 10[000]{100002003}`,
	Args: cobra.ExactArgs(1),
	RunE: runName,
}

func runName(cmd *cobra.Command, args []string) error {
	n, err := parseNumber(args[0])
	if err != nil {
		return err
	}

	printStatus(letters.InName(n).String(), n.String())

	return nil
}
