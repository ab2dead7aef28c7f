package room

import (
	"blackjack-server/pkg/playable"
	"blackjack-server/pkg/table"
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Dealer relays websocket actions to the table and table logs to every connected client
type Dealer struct {
	table       *table.Table
	clients     map[*Client]bool
	lock        sync.RWMutex
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer object
func NewDealer(tbl *table.Table) *Dealer {
	return &Dealer{
		table:         tbl,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift stops the run loop
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) runLoop() {
	logrus.Debug("creating dealer run loop")
	for {
		select {
		case messages := <-d.table.LogChan():
			d.addLogMessages(messages)
			d.broadcast(newLogsResponse(messages))
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			logrus.Debug("terminating dealer run loop")
			return
		}
	}
}

func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		if !client.Send(msg) {
			logrus.WithField("account", client.String()).Warn("client is not keeping up, dropped message")
		}
	}
}

// AddClient adds a client and sends it the recent table log
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	client.setDealer(d)

	d.lock.Lock()
	d.clients[client] = true
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		if messages := d.recentLogMessages(); len(messages) > 0 {
			client.Send(newLogsResponse(messages))
		}

		if round, ok := d.table.Round(client.Account()); ok {
			client.Send(newRoundResponse("", round))
		}
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	defer d.lock.Unlock()

	delete(d.clients, client)
	return len(d.clients) == 0
}

// ReceivedMessage performs the client's action against the table and sends the result back to that client only
func (d *Dealer) ReceivedMessage(ctx context.Context, c *Client, msg *playable.PayloadIn) {
	logrus.WithFields(logrus.Fields{
		"account": c.String(),
		"action":  msg.Action,
	}).Trace("received message")

	account := c.Account()

	var round *table.Round
	var err error
	switch msg.Action {
	case "ping":
		c.Send(playable.OK(msg.Context))
		return
	case "bet":
		var balance int64
		if balance, err = d.table.PlaceBet(ctx, account, msg.Amount); err == nil {
			c.Send(newBalanceResponse(msg.Context, balance))
			return
		}
	case "balance":
		var balance int64
		if balance, err = d.table.Balance(ctx, account); err == nil {
			c.Send(newBalanceResponse(msg.Context, balance))
			return
		}
	case "deal":
		round, err = d.table.Deal(ctx, account)
	case "hit":
		round, err = d.table.Hit(ctx, account)
	case "stand":
		round, err = d.table.Stand(ctx, account)
	case "round":
		var ok bool
		if round, ok = d.table.Round(account); !ok {
			err = table.ErrNoRound
		}
	default:
		err = table.UserError(fmt.Sprintf("unknown action: %s", msg.Action))
	}

	if round != nil {
		c.Send(newRoundResponse(msg.Context, round))
	}

	if err != nil {
		if !table.IsUserError(err) {
			logrus.WithError(err).WithField("account", account).Error("could not perform action")
		}

		c.Send(newErrorResponse(msg.Context, err))
	}
}
