// Config loading for the four CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyMaterializeThreshold = "materialize_threshold"
	cfgKeyNoColor              = "no_color"
	cfgKeySpinnerDelayMS       = "spinner_delay_ms"

	defaultMaterializeThreshold = 100000
	defaultSpinnerDelayMS       = 100
)

// loadConfig reads the config file with Viper. With an empty path the
// default location ~/.config/four/config.yaml applies; a missing file
// is not an error.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyMaterializeThreshold, defaultMaterializeThreshold)
	v.SetDefault(cfgKeyNoColor, false)
	v.SetDefault(cfgKeySpinnerDelayMS, defaultSpinnerDelayMS)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}

		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory means no default config; run on defaults.
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(filepath.Join(home, ".config", "four"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}

		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
