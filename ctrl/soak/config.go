package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config drives the soak harness: how many rounds of random round
// trips to run and at which buffer sizes.
type Config struct {
	Seed   int64 `toml:"seed"` // 0 means seed from the clock
	Rounds int   `toml:"rounds"`
	Sizes  []int `toml:"sizes"`
}

func DefaultConfig() Config {
	return Config{
		Seed:   0,
		Rounds: 8,
		Sizes:  []int{1, 16, 4096},
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if cfg.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", cfg.Rounds)
	}
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("at least one buffer size is required")
	}
	for _, size := range cfg.Sizes {
		if size < 0 {
			return fmt.Errorf("negative buffer size %d", size)
		}
	}
	return nil
}
