// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package main

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config holds CLI configuration, merged from defaults, an optional YAML
// config file, and command-line flags (highest precedence).
type Config struct {
	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`

	Metrics struct {
		// Addr enables the metrics/health endpoint when non-empty,
		// e.g. "127.0.0.1:9100".
		Addr string `koanf:"addr"`
	} `koanf:"metrics"`

	// Output is the snapshot file written by the demo command.
	Output string `koanf:"output"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.Output = "demo_online_store.yaml"
	return cfg
}

// LoadConfig merges the config file at path (if any) and the given flag
// set over the defaults. Flag names map to config keys by replacing
// dashes with dots: --log-level sets log.level.
func LoadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := defaultConfig()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, oops.With("path", path).Wrapf(err, "load config file")
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithValue(flags, ".", k, func(key, value string) (string, any) {
			return strings.ReplaceAll(key, "-", "."), value
		})
		if err := k.Load(provider, nil); err != nil {
			return cfg, oops.Wrapf(err, "load flags")
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, oops.Wrapf(err, "unmarshal config")
	}
	return cfg, nil
}
