// Package config loads the workspace paths for a run from an optional YAML
// file, falling back to the conventional layout the deployment scripts
// expect.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "iicgen.yaml"

// Settings hold the filesystem layout of one run.
type Settings struct {
	// Input is the directory holding layout images and the network JSON.
	Input string `yaml:"input"`
	// Output is the directory the documents are generated into; the
	// deployment archive is named after it.
	Output string `yaml:"output"`
	// Base is the path of the static iic_chkbase.xvr template.
	Base string `yaml:"base"`
}

// Default returns the conventional layout.
func Default() Settings {
	return Settings{
		Input:  "images",
		Output: "OLP_NET1",
		Base:   filepath.Join("base", "iic_chkbase.xvr"),
	}
}

// Load reads settings from path. A missing file yields the defaults; fields
// left empty in the file keep their default values.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	settings.fillDefaults()
	return settings, nil
}

func (s *Settings) fillDefaults() {
	defaults := Default()
	if s.Input == "" {
		s.Input = defaults.Input
	}
	if s.Output == "" {
		s.Output = defaults.Output
	}
	if s.Base == "" {
		s.Base = defaults.Base
	}
}
