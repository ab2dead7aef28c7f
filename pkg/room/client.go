package room

import (
	"blackjack-server/pkg/playable"
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// dealerLock guards dealer, which is set by the PitBoss and read by the websocket read loop
	dealerLock sync.RWMutex
	dealer     *Dealer
	account    string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, account string) *Client {
	return &Client{
		send:    make(chan interface{}, 256),
		Close:   make(chan string),
		Conn:    conn,
		account: account,
	}
}

// Send send a message to the web client
// If the client is not keeping up, the message is dropped and false is returned
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Account returns the wallet account the client authenticated as
func (c *Client) Account() string {
	return c.account
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return c.account
}

func (c *Client) setDealer(d *Dealer) {
	c.dealerLock.Lock()
	defer c.dealerLock.Unlock()

	c.dealer = d
}

func (c *Client) getDealer() *Dealer {
	c.dealerLock.RLock()
	defer c.dealerLock.RUnlock()

	return c.dealer
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(ctx context.Context, msg *playable.PayloadIn) {
	d := c.getDealer()
	if d == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	d.ReceivedMessage(ctx, c, msg)
}
