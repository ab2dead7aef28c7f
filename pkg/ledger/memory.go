package ledger

import (
	"context"
	"sync"
)

// Memory is an in-process ledger
// New accounts start with the configured starting balance
type Memory struct {
	lock            sync.Mutex
	balances        map[string]int64
	startingBalance int64
}

// NewMemory returns a new in-memory ledger
func NewMemory(startingBalance int64) *Memory {
	return &Memory{
		balances:        make(map[string]int64),
		startingBalance: startingBalance,
	}
}

// NOTE: lock must be held
func (m *Memory) balance(account string) int64 {
	balance, ok := m.balances[account]
	if !ok {
		balance = m.startingBalance
		m.balances[account] = balance
	}

	return balance
}

// Balance returns the current balance of the account
func (m *Memory) Balance(ctx context.Context, account string) (int64, error) {
	if account == "" {
		return 0, ErrInvalidAccount
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	return m.balance(account), nil
}

// Credit adds amount to the account
func (m *Memory) Credit(ctx context.Context, account string, amount int64, reason string) (int64, error) {
	if err := validate(account, amount); err != nil {
		return 0, err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	balance, err := credit(m.balance(account), amount)
	if err != nil {
		return balance, err
	}

	m.balances[account] = balance
	return balance, nil
}

// Debit removes amount from the account
func (m *Memory) Debit(ctx context.Context, account string, amount int64, reason string) (int64, error) {
	if err := validate(account, amount); err != nil {
		return 0, err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	balance := m.balance(account)
	if balance < amount {
		return balance, ErrInsufficientFunds
	}

	balance -= amount
	m.balances[account] = balance
	return balance, nil
}
