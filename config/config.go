// Package config reads and writes the module information file of a
// toucan package.
package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// FileName is where `toucanc init` writes the configuration.
const FileName = "Toucan Module Information"

const DefaultMaxDepth = 512

type Config struct {
	Package string `yaml:"Package"`
	// MaxDepth bounds how deeply a tree may nest before a pass refuses it.
	MaxDepth int `yaml:"MaxDepth"`
	// Natives registers the compiler-known native classes in the prelude.
	Natives bool `yaml:"Natives"`
	// Verbose logs each resolution error as it is found.
	Verbose bool `yaml:"Verbose"`
}

func Default(name string) Config {
	return Config{
		Package:  name,
		MaxDepth: DefaultMaxDepth,
		Natives:  true,
	}
}

// Parse decodes a configuration. Keys that are absent keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default("")
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := ioutil.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	return nil
}
