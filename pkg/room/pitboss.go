package room

import (
	"blackjack-server/pkg/table"

	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for handing connected clients to the dealer
type PitBoss struct {
	dealer     *Dealer
	connect    chan *Client
	disconnect chan *Client
	close      chan bool
}

// NewPitBoss returns a new dispatch object for the table
func NewPitBoss(tbl *table.Table) *PitBoss {
	return &PitBoss{
		dealer:     NewDealer(tbl),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
		close:      make(chan bool),
	}
}

// StartShift starts the PitBoss and dealer run loops
func (p *PitBoss) StartShift() {
	p.dealer.StartShift()
	go p.runLoop()
}

// EndShift stops the run loops
func (p *PitBoss) EndShift() {
	close(p.close)
	p.dealer.EndShift()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("account", client.String()).Debug("client connected")
			p.dealer.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("account", client.String()).Debug("client disconnected")
			p.dealer.RemoveClient(client)
		case <-p.close:
			return
		}
	}
}

// ClientConnected is called when a client connects to the server
// The client can send actions as soon as this returns, before the dealer has seated it
func (p *PitBoss) ClientConnected(client *Client) {
	client.setDealer(p.dealer)
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
