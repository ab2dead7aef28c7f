package room

import (
	"blackjack-server/pkg/playable"
)

// logMessageLimit is how much table history a newly seated client is sent
const logMessageLimit = 25

// addLogMessages appends table log messages, dropping the oldest beyond logMessageLimit
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	d.logMessages = append(d.logMessages, messages...)
	if extra := len(d.logMessages) - logMessageLimit; extra > 0 {
		d.logMessages = append(d.logMessages[:0:0], d.logMessages[extra:]...)
	}
}

// recentLogMessages returns a copy of the retained history, oldest first
// Note: this must only be called from within the run loop
func (d *Dealer) recentLogMessages() []*playable.LogMessage {
	if len(d.logMessages) == 0 {
		return nil
	}

	messages := make([]*playable.LogMessage, len(d.logMessages))
	copy(messages, d.logMessages)
	return messages
}
