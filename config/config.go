package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/sirupsen/logrus"
)

// Config holds the defaults of the equity command line. Every field can be
// set from the environment or a YAML file, flags override both.
type Config struct {
	Trials    int    `yaml:"trials" env:"EQUITY_TRIALS" env-default:"10000" env-description:"Monte Carlo trials per run"`
	Opponents int    `yaml:"opponents" env:"EQUITY_OPPONENTS" env-default:"1" env-description:"number of opponents"`
	Workers   int    `yaml:"workers" env:"EQUITY_WORKERS" env-default:"0" env-description:"worker goroutines, 0 uses every logical CPU"`
	Seed      uint64 `yaml:"seed" env:"EQUITY_SEED" env-default:"0" env-description:"random seed, 0 picks one from the clock"`
	CachePath string `yaml:"cache" env:"EQUITY_CACHE" env-description:"file keeping the last result"`
	LogLevel  string `yaml:"log_level" env:"EQUITY_LOG_LEVEL" env-default:"info" env-description:"logrus level"`
}

// Load reads the environment, and the YAML file at path first when path is
// not empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Usage lists the environment variables understood by Load.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}

func (c *Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("config: trials must be positive, got %d", c.Trials)
	}
	if c.Opponents < 1 {
		return fmt.Errorf("config: opponents must be positive, got %d", c.Opponents)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// WorkerCount resolves Workers, 0 meaning the number of logical CPUs.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ResolveSeed returns Seed, or a seed derived from now when Seed is 0. The
// second value reports whether the seed was generated.
func (c *Config) ResolveSeed(now time.Time) (uint64, bool) {
	if c.Seed != 0 {
		return c.Seed, false
	}
	return uint64(now.UnixNano()), true
}

func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
