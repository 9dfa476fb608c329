// Package config loads the optional .matlangc.yaml file that overrides the
// compiler's non-semantic output knobs. The original compiler hardcodes
// these as C++ constants (_examples/original_source/src/definitions.hpp's
// sibling generator constants); externalizing them to YAML is a
// behavior-preserving generalization, the defaults below match the
// original exactly.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Output holds the code generator's formatting knobs.
type Output struct {
	Indent     string `yaml:"indent"`
	TempPrefix string `yaml:"tempPrefix"`
}

// Config is the root of .matlangc.yaml. UnitSearchPaths is reserved for a
// future multi-file MatLang program and is not consulted by any component
// yet.
type Config struct {
	Output          Output   `yaml:"output"`
	UnitSearchPaths []string `yaml:"unitSearchPaths"`
}

// Default returns the configuration the compiler uses when no
// .matlangc.yaml is present, matching the original's hardcoded constants.
func Default() *Config {
	return &Config{
		Output: Output{
			Indent:     "\t",
			TempPrefix: "_E4_",
		},
	}
}

// Load reads and parses path. A missing file is not an error: Load returns
// Default() unchanged, since .matlangc.yaml is opt-in.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Output.Indent == "" {
		cfg.Output.Indent = "\t"
	}
	if cfg.Output.TempPrefix == "" {
		cfg.Output.TempPrefix = "_E4_"
	}
	return cfg, nil
}
