// Package main provides the four CLI: name-length chains, letter
// counts, and inverse searches over compressed big integers.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/zillionlab/fourchain/chain"
	"github.com/zillionlab/fourchain/pnum"
	"github.com/zillionlab/fourchain/search"
)

const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps recognized input errors to exitUserError; anything
// else is treated as internal.
func exitCode(err error) int {
	userErrors := []error{
		pnum.ErrBadAbbreviation,
		pnum.ErrNegative,
		pnum.ErrPeriodValue,
		pnum.ErrPeriodRepeat,
		search.ErrTargetTooShort,
		search.ErrTargetTooLarge,
		search.ErrNoSuccessor,
		chain.ErrChainRank,
		chain.ErrChainLength,
	}
	for _, user := range userErrors {
		if errors.Is(err, user) {
			return exitUserError
		}
	}

	return exitSysError
}
