// Root command for the four CLI.
package main

import (
	"time"

	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigFile string
	flagNoColor    bool
)

// Settings resolved from config by PersistentPreRunE; flags override.
var (
	cfgMaterializeThreshold int64
	cfgNoColor              bool
	cfgSpinnerDelay         time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "four",
	Short: "generate 4-chains",
	Long: `four computes name-length chains: replace a number with the count of
letters in its fully spelled-out English numeral and repeat. Every chain
ends at the fixed point 4. Numbers are held run-length compressed, so
inverse chains may grow beyond any machine integer.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		cfg, err := loadConfig(flagConfigFile)
		if err != nil {
			return err
		}

		cfgMaterializeThreshold = cfg.GetInt64(cfgKeyMaterializeThreshold)
		cfgNoColor = cfg.GetBool(cfgKeyNoColor) || flagNoColor
		cfgSpinnerDelay = time.Duration(cfg.GetInt64(cfgKeySpinnerDelayMS)) * time.Millisecond

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ~/.config/four/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(smallestCmd)
	rootCmd.AddCommand(largestCmd)
	rootCmd.AddCommand(fmtCmd)
}
