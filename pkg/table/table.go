package table

import (
	"blackjack-server/internal/rng"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/ledger"
	"blackjack-server/pkg/playable"
	"context"
	"fmt"
	"sync"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// seat is the per-account state at the table
// Only the goroutine that claimed the seat may change it
type seat struct {
	// wager is a bet that has been collected but not dealt yet
	wager int64
	round *Round
	busy  bool
}

// Table deals blackjack to any number of accounts, one round per account at a time
// Bets are collected from the ledger when placed and payouts are credited when a round ends
type Table struct {
	logger  logrus.FieldLogger
	ledger  ledger.Ledger
	logChan chan []*playable.LogMessage
	clock   quartz.Clock

	lock  sync.Mutex
	seats map[string]*seat

	// rngLock guards rng, generators are not required to be safe for concurrent use
	rngLock sync.Mutex
	rng     rng.Generator
}

// NewTable returns a new table
func NewTable(logger logrus.FieldLogger, l ledger.Ledger, r rng.Generator) *Table {
	return &Table{
		logger:  logger,
		ledger:  l,
		logChan: make(chan []*playable.LogMessage, 256),
		clock:   quartz.NewReal(),
		seats:   make(map[string]*seat),
		rng:     r,
	}
}

// LogChan returns a channel the table sends log messages to
func (t *Table) LogChan() <-chan []*playable.LogMessage {
	return t.logChan
}

// Balance returns the ledger balance for the account
func (t *Table) Balance(ctx context.Context, account string) (int64, error) {
	return t.ledger.Balance(ctx, account)
}

// Deposit credits the account with tokens transferred in
func (t *Table) Deposit(ctx context.Context, account string, amount int64) (int64, error) {
	balance, err := t.ledger.Credit(ctx, account, amount, "deposit")
	if err != nil {
		return 0, err
	}

	t.log(account).WithField("amount", amount).Info("deposit")
	return balance, nil
}

// Withdraw debits the account for tokens transferred out
// A bet that was placed but not dealt is already held by the house and can not be withdrawn
func (t *Table) Withdraw(ctx context.Context, account string, amount int64) (int64, error) {
	balance, err := t.ledger.Debit(ctx, account, amount, "withdraw")
	if err != nil {
		return balance, err
	}

	t.log(account).WithField("amount", amount).Info("withdraw")
	return balance, nil
}

// Round returns a snapshot of the account's current or most recent round
func (t *Table) Round(account string) (*Round, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()

	s, ok := t.seats[account]
	if !ok || s.round == nil {
		return nil, false
	}

	return s.round.clone(), true
}

// ActiveRounds returns how many accounts have a bet waiting to be dealt or a round not yet settled
func (t *Table) ActiveRounds() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	count := 0
	for _, s := range t.seats {
		if s.wager > 0 || (s.round != nil && !s.round.Settled) {
			count++
		}
	}

	return count
}

// PlaceBet collects the wager from the ledger and holds it for the next deal
func (t *Table) PlaceBet(ctx context.Context, account string, wager int64) (int64, error) {
	if wager <= 0 {
		return 0, ErrInvalidWager
	}

	if wager > blackjack.MaxWager {
		return 0, blackjack.ErrWagerTooLarge
	}

	s, err := t.claim(account)
	if err != nil {
		return 0, err
	}
	defer t.release(s)

	if s.round != nil && !s.round.Settled {
		return 0, ErrRoundInProgress
	}

	if s.wager > 0 {
		return 0, ErrBetAlreadyPlaced
	}

	balance, err := t.ledger.Debit(ctx, account, wager, "bet")
	if err != nil {
		return balance, err
	}

	t.commit(func() {
		s.wager = wager
	})

	t.log(account).WithField("wager", wager).Info("bet placed")
	t.sendLogs(playable.SimpleLogMessage(account, "placed a bet of %s", ledger.FormatAmount(wager)))
	return balance, nil
}

// Deal starts a new round for the placed bet
func (t *Table) Deal(ctx context.Context, account string) (*Round, error) {
	s, err := t.claim(account)
	if err != nil {
		return nil, err
	}
	defer t.release(s)

	if s.round != nil && !s.round.Settled {
		return nil, ErrRoundInProgress
	}

	if s.wager <= 0 {
		return nil, ErrNoBet
	}

	t.rngLock.Lock()
	state := blackjack.InitializeGame(t.rng)
	t.rngLock.Unlock()

	round := &Round{
		UUID:    uuid.New().String(),
		Account: account,
		Wager:   s.wager,
		State:   state,
		Started: t.clock.Now(),
	}

	t.commit(func() {
		s.round = round
		s.wager = 0
	})

	t.log(account).WithField("round", round.UUID).Debug("dealt")
	t.sendLogs(
		playable.CardsLogMessage(account, state.PlayerHand.Cards, "was dealt %d", state.PlayerHand.Score),
		playable.CardsLogMessage("", state.DealerHand.Cards, "dealer shows %d", state.DealerHand.Score),
	)

	return round.clone(), nil
}

// Hit draws a card for the account's hand
func (t *Table) Hit(ctx context.Context, account string) (*Round, error) {
	return t.act(ctx, account, "hit", blackjack.Hit)
}

// Stand ends the account's turn and plays out the dealer
func (t *Table) Stand(ctx context.Context, account string) (*Round, error) {
	return t.act(ctx, account, "stand", blackjack.Stand)
}

func (t *Table) act(ctx context.Context, account, action string, transition func(*blackjack.GameState) *blackjack.GameState) (*Round, error) {
	s, err := t.claim(account)
	if err != nil {
		return nil, err
	}
	defer t.release(s)

	if s.round == nil || s.round.Settled {
		return nil, ErrNoRound
	}

	round := s.round.clone()
	round.State = transition(round.State)
	if round.State != s.round.State {
		t.sendLogs(playable.CardsLogMessage(account, round.State.PlayerHand.Cards, "chose to %s with %d", action, round.State.PlayerHand.Score))
	}

	// a failed settlement is retried on the next action
	var settleErr error
	if round.IsOver() {
		settleErr = t.settle(ctx, round)
	}

	t.commit(func() {
		s.round = round
	})

	if settleErr != nil {
		return round.clone(), settleErr
	}

	return round.clone(), nil
}

// settle credits the payout for a finished round
func (t *Table) settle(ctx context.Context, round *Round) error {
	status := round.State.Status
	payout, err := blackjack.Payout(status, round.Wager)
	if err != nil {
		return err
	}

	if payout > 0 {
		if _, err := t.ledger.Credit(ctx, round.Account, payout, fmt.Sprintf("payout %s", status)); err != nil {
			t.log(round.Account).WithError(err).WithField("round", round.UUID).Error("could not credit payout")
			return err
		}
	}

	round.Payout = payout
	round.Settled = true

	t.log(round.Account).WithFields(logrus.Fields{
		"round":    round.UUID,
		"status":   status.String(),
		"wager":    round.Wager,
		"payout":   payout,
		"started":  round.Started,
		"duration": t.clock.Since(round.Started).String(),
	}).Info("round settled")

	t.sendLogs(playable.CardsLogMessage("", round.State.DealerHand.Cards, "%s (%d to %d), paid %s",
		status.Message(), round.State.PlayerHand.Score, round.State.DealerHand.Score, ledger.FormatAmount(payout)))

	return nil
}

// claim marks the seat busy so no other action for the account can run until release
func (t *Table) claim(account string) (*seat, error) {
	if account == "" {
		return nil, ledger.ErrInvalidAccount
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	s, ok := t.seats[account]
	if !ok {
		s = &seat{}
		t.seats[account] = s
	}

	if s.busy {
		return nil, ErrActionInProgress
	}

	s.busy = true
	return s, nil
}

func (t *Table) release(s *seat) {
	t.lock.Lock()
	s.busy = false
	t.lock.Unlock()
}

// commit applies seat changes so readers never see a partial update
func (t *Table) commit(fn func()) {
	t.lock.Lock()
	fn()
	t.lock.Unlock()
}

func (t *Table) log(account string) logrus.FieldLogger {
	return t.logger.WithField("account", account)
}

func (t *Table) sendLogs(messages ...*playable.LogMessage) {
	select {
	case t.logChan <- messages:
	default:
		t.logger.WithField("messages", len(messages)).Warn("log channel is full, dropping messages")
	}
}
