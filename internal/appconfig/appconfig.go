// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting benchmark configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the benchmark configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultURL is the file downloaded when no URL is configured.
	DefaultURL = "https://testfileorg.netwet.net/500MB-CZIPtestfile.org.zip"
	// DefaultRunCount is how many trials each tool gets when the config omits the value.
	DefaultRunCount = 3
	// DefaultOutputDir receives the chart and CSV outputs.
	DefaultOutputDir = "docs"
	// DefaultTargetPath is where a local build of the tool under test usually lives.
	DefaultTargetPath = "build/bin/boltdm"
	// defaultPollInterval is how often the reference tool's output file is re-checked.
	defaultPollInterval = 100 * time.Millisecond
	// defaultPollTimeout bounds the reference tool's poll loop.
	defaultPollTimeout = 300 * time.Second
)

// Config represents the top-level benchmark configuration.
type Config struct {
	URL             string   `json:"url"`
	Runs            int      `json:"runs"`
	Target          string   `json:"target"`
	TargetArgs      []string `json:"targetArgs,omitempty"`
	Reference       string   `json:"reference,omitempty"`
	ReferenceArgs   []string `json:"referenceArgs,omitempty"`
	NoReference     bool     `json:"noReference"`
	FetchCommand    []string `json:"fetchCommand,omitempty"`
	ManualTime      float64  `json:"manualTime,omitempty"`
	ManualAvgSpeed  float64  `json:"manualAvgSpeed,omitempty"`
	ManualPeakSpeed float64  `json:"manualPeakSpeed,omitempty"`
	OutputDir       string   `json:"outputDir,omitempty"`
	LogFile         string   `json:"logFile,omitempty"`
	Debug           bool     `json:"debug"`
	ConfigPath      string   `json:"-"`
}

// TargetURL returns the configured download URL, falling back to the default test file.
func (c Config) TargetURL() string {
	if u := strings.TrimSpace(c.URL); u != "" {
		return u
	}
	return DefaultURL
}

// RunCount returns how many trials each tool gets, applying the default when unset.
func (c Config) RunCount() int {
	if c.Runs <= 0 {
		return DefaultRunCount
	}
	return c.Runs
}

// TargetPath returns the path to the download manager under test.
func (c Config) TargetPath() string {
	if p := strings.TrimSpace(c.Target); p != "" {
		return p
	}
	return DefaultTargetPath
}

// TargetArgTemplate returns the argument convention for the tool under test.
// "{url}" and "{out}" placeholders are substituted per run.
func (c Config) TargetArgTemplate() []string {
	if len(c.TargetArgs) > 0 {
		return c.TargetArgs
	}
	return []string{"{url}", "-o", "{out}", "-q"}
}

// ReferenceArgTemplate returns the silent-mode argument convention for the
// reference downloader. "{url}", "{dir}" and "{file}" are substituted per run.
func (c Config) ReferenceArgTemplate() []string {
	if len(c.ReferenceArgs) > 0 {
		return c.ReferenceArgs
	}
	return []string{"/n", "/q", "/d", "{url}", "/p", "{dir}", "/f", "{file}"}
}

// FetchCommandArgs returns the plain HTTP-client baseline command. The first
// element is the executable; "{url}" and "{out}" are substituted per run.
func (c Config) FetchCommandArgs() []string {
	if len(c.FetchCommand) > 0 {
		return c.FetchCommand
	}
	return []string{"curl", "-sS", "-L", "-o", "{out}", "{url}"}
}

// OutputDirPath returns the directory for chart and CSV outputs.
func (c Config) OutputDirPath() string {
	if d := strings.TrimSpace(c.OutputDir); d != "" {
		return d
	}
	return DefaultOutputDir
}

// LogFilePath returns the path to the benchmark log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "dlbench.log"
}

// PollInterval returns how often the reference tool's output file is polled.
func (c Config) PollInterval() time.Duration { return defaultPollInterval }

// PollTimeout returns the ceiling on the reference tool's poll loop.
func (c Config) PollTimeout() time.Duration { return defaultPollTimeout }

// HasManual reports whether the reference tool's numbers were supplied by the
// operator instead of being measured live.
func (c Config) HasManual() bool {
	return c.ManualTime > 0
}

// ManualAvg returns the operator-supplied average speed, or nil when it should
// be derived from the transfer size.
func (c Config) ManualAvg() *float64 {
	if c.ManualAvgSpeed > 0 {
		v := c.ManualAvgSpeed
		return &v
	}
	return nil
}

// ManualPeak returns the operator-supplied peak speed, or nil when unobserved.
func (c Config) ManualPeak() *float64 {
	if c.ManualPeakSpeed > 0 {
		v := c.ManualPeakSpeed
		return &v
	}
	return nil
}

// Load reads and validates the benchmark configuration at the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q: %w", path, err)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := Validate(data); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path

	return config, nil
}
