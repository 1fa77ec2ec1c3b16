package recoverer

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ethereumspace/ic-eth-recover/params"
)

type Config struct {
	LogLevel string             `toml:"log_level"`
	Workers  int                `toml:"workers"` // max concurrent recoveries in RecoverBatch
	Chain    params.ChainConfig `toml:"chain"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Workers:  4,
		Chain:    *params.MainnetChainConfig(),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("config workers must be positive, got %d", c.Workers)
	}
	return nil
}
