package ledger

import (
	"context"
	"database/sql"

	"blackjack-server/pkg/db"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Postgres is a ledger backed by the balances and ledger_entries tables
type Postgres struct {
	db              *sql.DB
	startingBalance int64
}

// NewPostgres returns a ledger that uses the database handle
func NewPostgres(dbh *sql.DB, startingBalance int64) *Postgres {
	return &Postgres{
		db:              dbh,
		startingBalance: startingBalance,
	}
}

func scanBalance(row db.Scanner) (int64, error) {
	var balance int64
	if err := row.Scan(&balance); err != nil {
		return 0, err
	}

	return balance, nil
}

// Balance returns the current balance of the account
func (p *Postgres) Balance(ctx context.Context, account string) (int64, error) {
	if account == "" {
		return 0, ErrInvalidAccount
	}

	const query = `
SELECT balance
FROM balances
WHERE account = $1`

	balance, err := scanBalance(p.db.QueryRowContext(ctx, query, account))
	if err == sql.ErrNoRows {
		return p.startingBalance, nil
	}

	return balance, err
}

// Credit adds amount to the account
func (p *Postgres) Credit(ctx context.Context, account string, amount int64, reason string) (int64, error) {
	if err := validate(account, amount); err != nil {
		return 0, err
	}

	return p.adjust(ctx, account, amount, reason)
}

// Debit removes amount from the account
func (p *Postgres) Debit(ctx context.Context, account string, amount int64, reason string) (int64, error) {
	if err := validate(account, amount); err != nil {
		return 0, err
	}

	return p.adjust(ctx, account, -amount, reason)
}

func (p *Postgres) adjust(ctx context.Context, account string, delta int64, reason string) (int64, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	const ensure = `
INSERT INTO balances (account, balance)
VALUES ($1, $2)
ON CONFLICT (account) DO NOTHING`
	if _, err := tx.ExecContext(ctx, ensure, account, p.startingBalance); err != nil {
		rollback(tx)
		return 0, err
	}

	const lock = `
SELECT balance
FROM balances
WHERE account = $1
FOR UPDATE`
	balance, err := scanBalance(tx.QueryRowContext(ctx, lock, account))
	if err != nil {
		rollback(tx)
		return 0, err
	}

	if delta < 0 {
		if balance+delta < 0 {
			rollback(tx)
			return balance, ErrInsufficientFunds
		}

		balance += delta
	} else if balance, err = credit(balance, delta); err != nil {
		rollback(tx)
		return balance, err
	}

	const update = `
UPDATE balances
SET balance = $1, updated = (NOW() AT TIME ZONE 'UTC')
WHERE account = $2`
	if _, err := tx.ExecContext(ctx, update, balance, account); err != nil {
		rollback(tx)
		return 0, err
	}

	const entry = `
INSERT INTO ledger_entries (uuid, account, delta, balance, reason)
VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, entry, uuid.New().String(), account, delta, balance, reason); err != nil {
		rollback(tx)
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return balance, nil
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
