// Copyright (c) 2025 The AgriLot developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config holds the settings shared by tools built on this
// library: where the lot database lives, how to reach the external
// ledger, and where the oracle program is published.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all runtime settings.
type Config struct {
	// DataDir is the directory holding the lot registry database.
	DataDir string

	// LedgerAddr is the host:port of the external token ledger service.
	LedgerAddr string

	// OracleDomain is the DNS domain publishing the external data
	// program ("" disables discovery).
	OracleDomain string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFile is the log output path ("" means stderr).
	LogFile string
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:    filepath.Join(home, ".agrilot"),
		LedgerAddr: "localhost:7450",
		LogLevel:   "info",
	}
}

// LoadConfig reads a key=value config file. Blank lines and lines
// starting with '#' are ignored. Unknown keys are an error so typos
// do not silently fall back to defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Config{}, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "ledgeraddr":
			cfg.LedgerAddr = value
		case "oracledomain":
			cfg.OracleDomain = value
		case "loglevel":
			cfg.LogLevel = value
		case "logfile":
			cfg.LogFile = value
		default:
			return Config{}, fmt.Errorf("%w: line %d: unknown key %q", ErrInvalidConfigLine, lineNo, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the config as a key=value file, creating the
// parent directory if needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "datadir=%s\n", cfg.DataDir)
	fmt.Fprintf(&b, "ledgeraddr=%s\n", cfg.LedgerAddr)
	fmt.Fprintf(&b, "oracledomain=%s\n", cfg.OracleDomain)
	fmt.Fprintf(&b, "loglevel=%s\n", cfg.LogLevel)
	fmt.Fprintf(&b, "logfile=%s\n", cfg.LogFile)

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
