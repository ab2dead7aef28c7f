package playable

import (
	"blackjack-server/pkg/deck"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogMessage is the format a table should send log messages in
// If Account is empty, assume it's a general statement, otherwise the message will be sent like "{account} did X, Y, Z"
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Account string       `json:"account,omitempty"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

// Response is the envelope for every message sent to a websocket client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	// Action is one of bet, deal, hit, stand, round, balance or ping
	Action string `json:"action"`
	// Amount is the wager in base units, only used by bet
	Amount int64 `json:"amount"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(account string, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Account: account,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// CardsLogMessage returns a new LogMessage that shows the cards involved
func CardsLogMessage(account string, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(account, format, a...)
	lm.Cards = cards
	return lm
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(account string, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(account, format, a...)}
}
