package main

import (
	"blackjack-server/internal/config"
	"blackjack-server/pkg/db"
	"database/sql"
	"errors"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
)

var wait = flag.Duration("wait", time.Second*10, "how long to wait for the database to accept connections")

var errDBUnavailable = errors.New("could not connect to database")

func main() {
	flag.Parse()

	// the memory ledger keeps balances in process, there is no schema to apply
	if driver := config.Instance().Ledger.Driver; driver != config.LedgerDriverPostgres {
		logrus.WithField("driver", driver).Info("ledger does not use postgres, nothing to migrate")
		return
	}

	if err := waitForDB(*wait, openDB); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	db.Migrate()
	logrus.Info("ledger migrations complete")
}

// openDB returns nil until the database accepts connections
func openDB() *sql.DB {
	defer func() { _ = recover() }()
	return db.Instance()
}

func waitForDB(timeout time.Duration, open func() *sql.DB) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		if open() != nil {
			return nil
		}

		select {
		case <-deadline.C:
			return errDBUnavailable
		case <-time.After(time.Millisecond * 500):
		}
	}
}
