package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("config: unknown file format")

type fileConfig struct {
	Seed       uint64 `toml:"seed" yaml:"seed"`
	Symbols    int    `toml:"symbols" yaml:"symbols"`
	States     int    `toml:"states" yaml:"states"`
	Movements  int    `toml:"movements" yaml:"movements"`
	Steps      int    `toml:"steps" yaml:"steps"`
	BlindSteps int    `toml:"blind_steps" yaml:"blind_steps"`
	Mutations  int    `toml:"mutations" yaml:"mutations"`
	Variant    string `toml:"variant" yaml:"variant"`
	Extents    []int  `toml:"extents" yaml:"extents"`
	Repair     bool   `toml:"repair" yaml:"repair"`
}

// LoadFile overlays the keys present in a .toml, .yaml or .yml file onto r.
func (r *Run) LoadFile(path string) error {
	var (
		raw     fileConfig
		defined func(key string) bool
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return fmt.Errorf("load run config: %w", err)
		}
		defined = func(key string) bool { return meta.IsDefined(key) }
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("load run config: %w", err)
		}
		keys := map[string]any{}
		if err := yaml.Unmarshal(data, &keys); err != nil {
			return fmt.Errorf("parse run config (%s): %w", path, err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse run config (%s): %w", path, err)
		}
		defined = func(key string) bool { _, ok := keys[key]; return ok }
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	r.apply(raw, defined)
	return nil
}

func (r *Run) apply(raw fileConfig, defined func(string) bool) {
	if defined("seed") {
		r.Seed = raw.Seed
	}
	if defined("symbols") {
		r.Symbols = raw.Symbols
	}
	if defined("states") {
		r.States = raw.States
	}
	if defined("movements") {
		r.Movements = raw.Movements
	}
	if defined("steps") {
		r.Steps = raw.Steps
	}
	if defined("blind_steps") {
		r.BlindSteps = raw.BlindSteps
	}
	if defined("mutations") {
		r.Mutations = raw.Mutations
	}
	if defined("variant") {
		r.Variant = strings.TrimSpace(raw.Variant)
	}
	if defined("extents") {
		r.Extents = append(Extents(nil), raw.Extents...)
	}
	if defined("repair") {
		r.Repair = raw.Repair
	}
}
