// internal/cli/root.go
package dlbench

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/boltdm/dlbench/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "dlbench",
	Short: "dlbench — comparative benchmark harness for download tools",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If the user did NOT set a flag, copy the config value into the
		//    flag so both pflags and viper reflect the same, final value.
		for _, name := range []string{"debug", "no-reference"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(viperKey(name))
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}

		// 3) Materialize the fully merged configuration (flags > config >
		//    defaults) into a stable snapshot for the other packages.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		currentConfig = &cfg

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().String("url", appconfig.DefaultURL, "URL to download for benchmarking")
	rootCmd.PersistentFlags().Int("runs", appconfig.DefaultRunCount, "number of trials per tool")
	rootCmd.PersistentFlags().String("target", appconfig.DefaultTargetPath, "path to the download manager under test")
	rootCmd.PersistentFlags().String("reference", "", "path to the reference downloader executable")
	rootCmd.PersistentFlags().Bool("no-reference", false, "skip the reference downloader")
	rootCmd.PersistentFlags().Float64("manual-time", 0, "manually measured reference time in seconds")
	rootCmd.PersistentFlags().Float64("manual-avg", 0, "manually measured reference average speed in MB/s")
	rootCmd.PersistentFlags().Float64("manual-peak", 0, "manually measured reference peak speed in MB/s")
	rootCmd.PersistentFlags().String("output-dir", appconfig.DefaultOutputDir, "output directory for chart and CSV")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Bind flags to Viper keys (flags override config)
	for flag, key := range map[string]string{
		"url":          "url",
		"runs":         "runs",
		"target":       "target",
		"reference":    "reference",
		"no-reference": "noReference",
		"manual-time":  "manualTime",
		"manual-avg":   "manualAvgSpeed",
		"manual-peak":  "manualPeakSpeed",
		"output-dir":   "outputDir",
		"debug":        "debug",
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}
}

func viperKey(flag string) string {
	switch flag {
	case "no-reference":
		return "noReference"
	default:
		return flag
	}
}

// ensureConfigLoaded loads and schema-validates the config file through
// appconfig.Load, feeding the document into viper. A missing file is fine;
// defaults and flags apply.
func ensureConfigLoaded() error {
	viper.SetDefault("debug", false)
	viper.SetDefault("runs", appconfig.DefaultRunCount)
	viper.SetDefault("outputDir", appconfig.DefaultOutputDir)

	cfg, err := appconfig.Load(cfgFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return err
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	viper.SetConfigType("json")
	if err := viper.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded benchmark configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}
