// Shared argument parsing and output helpers.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zillionlab/fourchain/pnum"
)

var (
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	arrowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// parseNumber reads a CLI number argument: plain decimal or a
// compressed abbreviation such as 1103323[373]{8}.
func parseNumber(arg string) (*pnum.PNumber, error) {
	n, err := pnum.Parse(arg)
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", arg, err)
	}

	return n, nil
}

// printChain writes a chain as "a <- b <- c".
func printChain(elems []*pnum.PNumber) {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = styled(numberStyle, e.String())
	}
	fmt.Println(strings.Join(parts, styled(arrowStyle, " <- ")))
}

// printStatus writes the letter-count report line.
func printStatus(letters, number string) {
	fmt.Printf("There are %s letters in %s\n",
		styled(numberStyle, letters), styled(numberStyle, number))
}

func styled(style lipgloss.Style, s string) string {
	if cfgNoColor {
		return s
	}

	return style.Render(s)
}
