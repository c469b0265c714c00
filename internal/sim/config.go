package sim

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunable thresholds and densities for the wator world.
type Params struct {
	FishDensity  float64 `yaml:"fish_density"`
	SharkDensity float64 `yaml:"shark_density"`

	FishBirthAge       int `yaml:"fish_birth_age"`
	SharkBirthAge      int `yaml:"shark_birth_age"`
	SharkEnergyPerFish int `yaml:"shark_energy_per_fish"`
}

// Config controls the world dimensions, seeding and element tunables.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Params: Params{
			FishDensity:        0.3,
			SharkDensity:       0.05,
			FishBirthAge:       20,
			SharkBirthAge:      16,
			SharkEnergyPerFish: 8,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing or
// malformed file is a recoverable error; the caller decides whether to abort
// or fall back.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fish_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FishDensity = parsed
		}
	}
	if v, ok := cfg["shark_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SharkDensity = parsed
		}
	}
	if v, ok := cfg["fish_birth_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FishBirthAge = parsed
		}
	}
	if v, ok := cfg["shark_birth_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SharkBirthAge = parsed
		}
	}
	if v, ok := cfg["shark_energy_per_fish"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SharkEnergyPerFish = parsed
		}
	}
	return c
}
