package appconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `{
	  "url": "https://example.com/1GB.bin",
	  "runs": 5,
	  "target": "dist/boltdm",
	  "manualTime": 120.5,
	  "debug": true
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetURL() != "https://example.com/1GB.bin" {
		t.Errorf("TargetURL = %q", cfg.TargetURL())
	}
	if cfg.RunCount() != 5 {
		t.Errorf("RunCount = %d, want 5", cfg.RunCount())
	}
	if cfg.TargetPath() != "dist/boltdm" {
		t.Errorf("TargetPath = %q", cfg.TargetPath())
	}
	if !cfg.HasManual() {
		t.Errorf("HasManual = false with manualTime set")
	}
	if !cfg.Debug {
		t.Errorf("Debug not carried through")
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil || !strings.Contains(err.Error(), "no configuration file") {
		t.Fatalf("err = %v, want a missing-file message", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist wrapped for callers that treat a missing file as optional", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `{"url": "https://example.com/f.zip", "speed": 9000}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected Load to reject an unknown key")
	}
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	path := writeConfig(t, `{"runs": "three"}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected Load to reject a non-integer run count")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config

	if cfg.TargetURL() != DefaultURL {
		t.Errorf("TargetURL = %q", cfg.TargetURL())
	}
	if cfg.RunCount() != DefaultRunCount {
		t.Errorf("RunCount = %d", cfg.RunCount())
	}
	if cfg.TargetPath() != DefaultTargetPath {
		t.Errorf("TargetPath = %q", cfg.TargetPath())
	}
	if cfg.OutputDirPath() != DefaultOutputDir {
		t.Errorf("OutputDirPath = %q", cfg.OutputDirPath())
	}
	if cfg.LogFilePath() != "dlbench.log" {
		t.Errorf("LogFilePath = %q", cfg.LogFilePath())
	}
	if got := cfg.TargetArgTemplate(); got[0] != "{url}" {
		t.Errorf("TargetArgTemplate = %v", got)
	}
	if got := cfg.FetchCommandArgs(); got[0] != "curl" {
		t.Errorf("FetchCommandArgs = %v", got)
	}
	if cfg.HasManual() {
		t.Errorf("HasManual true on an empty config")
	}
	if cfg.ManualAvg() != nil || cfg.ManualPeak() != nil {
		t.Errorf("manual speeds should be nil when unset")
	}
}

func TestManualSpeedAccessors(t *testing.T) {
	cfg := Config{ManualTime: 120, ManualAvgSpeed: 6.5, ManualPeakSpeed: 9.0}
	if avg := cfg.ManualAvg(); avg == nil || *avg != 6.5 {
		t.Fatalf("ManualAvg = %v", avg)
	}
	if peak := cfg.ManualPeak(); peak == nil || *peak != 9.0 {
		t.Fatalf("ManualPeak = %v", peak)
	}
}

func TestValidateAcceptsMinimalConfig(t *testing.T) {
	if err := Validate([]byte(`{}`)); err != nil {
		t.Fatalf("empty object should validate: %v", err)
	}
}
