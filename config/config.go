package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Data        DataConfig        `yaml:"data"`
	Circulation CirculationConfig `yaml:"circulation"`
	Log         LogConfig         `yaml:"log"`
}

// DataConfig locates the flat data files
type DataConfig struct {
	BooksFile        string `yaml:"books_file"`
	TransactionsFile string `yaml:"transactions_file"`
}

// CirculationConfig contains lending policy settings. The fine rate is not
// configurable; it is a fixed constant in the library package.
type CirculationConfig struct {
	LoanPeriodDays int `yaml:"loan_period_days"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			BooksFile:        "books.csv",
			TransactionsFile: "transactions.csv",
		},
		Circulation: CirculationConfig{LoanPeriodDays: 14},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a YAML file. Omitted fields keep their
// defaults, and a missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config file")
	}
	if cfg.Circulation.LoanPeriodDays <= 0 {
		cfg.Circulation.LoanPeriodDays = Default().Circulation.LoanPeriodDays
	}
	return cfg, nil
}
