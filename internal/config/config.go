package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server"`
	RNG      RNGConfig      `yaml:"rng" json:"rng"`
	Recorder RecorderConfig `yaml:"recorder" json:"recorder"`

	// Balance is optional; when absent the env/difficulty defaults apply.
	Balance *Balance `yaml:"balance" json:"balance,omitempty"`
}

type ServerConfig struct {
	Port           string  `yaml:"port" json:"port"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps" json:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst" json:"rate_limit_burst"`
}

type RNGConfig struct {
	// Seed of 0 means "seed from the clock" (every run different).
	Seed int64 `yaml:"seed" json:"seed"`
}

type RecorderConfig struct {
	// SQLitePath enables the SQLite day-outcome recorder when non-empty.
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.RateLimitRPS == 0 {
		c.Server.RateLimitRPS = 20
	}
	if c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = 40
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}
