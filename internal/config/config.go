package config

import (
	"blackjack-server/internal/util"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	} `yaml:"jwt"`
	Ledger struct {
		// Driver is either "memory" or "postgres"
		Driver string `yaml:"driver"`
		// StartingBalance is the balance, in base units, of an account the first time it is seen
		StartingBalance int64 `yaml:"startingBalance" envconfig:"starting_balance"`
		// AllowDeposits enables POST /deposit, which credits an account without a confirmed transfer
		AllowDeposits bool `yaml:"allowDeposits" envconfig:"allow_deposits"`
	} `yaml:"ledger"`
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// ledger drivers
const (
	LedgerDriverMemory   = "memory"
	LedgerDriverPostgres = "postgres"
)

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	cfg.MigrationsPath = "./sql"
	cfg.JWT.PublicKey = ".keys/public.pem"
	cfg.JWT.PrivateKey = ".keys/private.key"
	cfg.Ledger.Driver = LedgerDriverMemory
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and environment are used instead
// Variables in a .env file are added to the environment but never override it
func Load() error {
	cfg := DefaultConfig()

	if err := godotenv.Load(util.Getenv("BJ_ENV_FILE", ".env")); err != nil && !os.IsNotExist(err) {
		return err
	}

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	config = cfg
	config.loaded = true
	return nil
}
