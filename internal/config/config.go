// Package config loads cxxprops' optional .cxxprops.yaml file: default CLI
// flag values so a project doesn't have to repeat --format/--hint-file on
// every invocation.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the decoded shape of .cxxprops.yaml. Every field is optional;
// the zero value means "use the CLI's built-in default".
type Config struct {
	// OutputFormat is the default `synthesize` output format: "json" or
	// "pretty".
	OutputFormat string `yaml:"outputFormat"`

	// HintFile, if set, is patched into every class document before
	// synthesis, letting a project keep its hint annotations out of the
	// class description files under version control.
	HintFile string `yaml:"hintFile"`

	// Verbose turns on the --verbose kr/pretty trace by default.
	Verbose bool `yaml:"verbose"`
}

// Load reads and parses path. A missing file is not an error; it returns
// the zero Config, meaning every CLI default stays in effect.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath is the conventional config file name, searched for in the
// current working directory.
const DefaultPath = ".cxxprops.yaml"
