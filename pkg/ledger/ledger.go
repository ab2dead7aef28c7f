package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// TokenDecimals is the number of decimal places of the betting token
const TokenDecimals = 9

// TokenSymbol is the display symbol of the betting token
const TokenSymbol = "$HOUSE"

// unitsPerToken is how many base units make up one whole token
const unitsPerToken int64 = 1_000_000_000

// ErrInsufficientFunds is returned when a debit would overdraw an account
var ErrInsufficientFunds = errors.New("insufficient balance")

// ErrInvalidAmount is returned for amounts <= 0
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// ErrBalanceOverflow is returned when a credit would take a balance past the largest representable amount
var ErrBalanceOverflow = errors.New("balance would exceed the maximum amount")

// ErrInvalidAccount is returned for an empty account
var ErrInvalidAccount = errors.New("account is required")

// Ledger holds player balances in base units of the token
// Implementations must be safe for concurrent use
type Ledger interface {
	// Balance returns the current balance of the account
	Balance(ctx context.Context, account string) (int64, error)

	// Credit adds amount to the account and returns the new balance
	Credit(ctx context.Context, account string, amount int64, reason string) (int64, error)

	// Debit removes amount from the account and returns the new balance
	// If the account does not hold enough, ErrInsufficientFunds is returned and nothing changes
	Debit(ctx context.Context, account string, amount int64, reason string) (int64, error)
}

// Tokens converts whole tokens to base units
func Tokens(n int64) int64 {
	return n * unitsPerToken
}

// FormatAmount renders base units as a token amount, e.g. 12.5 $HOUSE
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := amount / unitsPerToken
	frac := amount % unitsPerToken
	if frac == 0 {
		return fmt.Sprintf("%s%d %s", sign, whole, TokenSymbol)
	}

	fracStr := strings.TrimRight(fmt.Sprintf("%0*d", TokenDecimals, frac), "0")
	return fmt.Sprintf("%s%d.%s %s", sign, whole, fracStr, TokenSymbol)
}

// credit returns balance + amount, or ErrBalanceOverflow if the sum does not fit
func credit(balance, amount int64) (int64, error) {
	if balance > math.MaxInt64-amount {
		return balance, ErrBalanceOverflow
	}

	return balance + amount, nil
}

func validate(account string, amount int64) error {
	if account == "" {
		return ErrInvalidAccount
	}

	if amount <= 0 {
		return ErrInvalidAmount
	}

	return nil
}
