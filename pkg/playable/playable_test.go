package playable

import (
	"blackjack-server/pkg/deck"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage("", "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Equal(t, "", lm.Account)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.Equal(t, 36, len(lm.UUID))
}

func TestSimpleLogMessage_withAccount(t *testing.T) {
	lm := SimpleLogMessage("alice", "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, "alice", lm.Account)
}

func TestSimpleLogMessageSlice(t *testing.T) {
	lms := SimpleLogMessageSlice("", "test %d", 38)
	assert.Equal(t, 1, len(lms))
	assert.Equal(t, "test 38", lms[0].Message)
}

func TestCardsLogMessage(t *testing.T) {
	lm := CardsLogMessage("alice", deck.CardsFromString("14s,?10h"), "dealt")
	assert.Equal(t, "14s,?10h", deck.CardsToString(lm.Cards))

	b, err := json.Marshal(lm.Cards)
	assert.NoError(t, err)
	assert.Equal(t, `[{"rank":14,"symbol":"A","suit":"spades","hidden":false},{"hidden":true}]`, string(b))
}

func TestOK(t *testing.T) {
	assert.Equal(t, &Response{Key: "status", Value: "OK"}, OK())
	assert.Equal(t, "ctx", OK("ctx").Context)
}

func TestPayloadIn(t *testing.T) {
	var p PayloadIn
	assert.NoError(t, json.Unmarshal([]byte(`{"action":"bet","amount":25,"context":"abc"}`), &p))
	assert.Equal(t, PayloadIn{Action: "bet", Amount: 25, Context: "abc"}, p)
}
