package main

import (
	"blackjack-server/internal/config"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

var format = flag.String("format", "yaml", "output format, yaml for config.yaml or env for a .env file")

func main() {
	flag.Parse()

	if err := write(os.Stdout, *format, config.DefaultConfig()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func write(w io.Writer, format string, cfg config.Config) error {
	switch format {
	case "yaml":
		return yaml.NewEncoder(w).Encode(cfg)
	case "env":
		return writeEnv(w, cfg)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeEnv writes the BJ_ variables read by config.Load
func writeEnv(w io.Writer, cfg config.Config) error {
	vars := []struct {
		name  string
		value interface{}
	}{
		{"BJ_PG_DSN", cfg.PGDSN},
		{"BJ_MIGRATIONS_PATH", cfg.MigrationsPath},
		{"BJ_JWT_PUBLIC_KEY", cfg.JWT.PublicKey},
		{"BJ_JWT_PRIVATE_KEY", cfg.JWT.PrivateKey},
		{"BJ_LEDGER_DRIVER", cfg.Ledger.Driver},
		{"BJ_LEDGER_STARTING_BALANCE", cfg.Ledger.StartingBalance},
		{"BJ_LEDGER_ALLOW_DEPOSITS", cfg.Ledger.AllowDeposits},
		{"BJ_LOG_LEVEL", cfg.Log.Level},
		{"BJ_LOG_DISABLE_ACCESS_LOGS", cfg.Log.DisableAccessLogs},
	}

	for _, v := range vars {
		if _, err := fmt.Fprintf(w, "%s=%v\n", v.name, v.value); err != nil {
			return err
		}
	}

	return nil
}
