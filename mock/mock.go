package mock

import (
	"context"

	"github.com/stevegt/gemchat/client"
)

// Reply is one scripted answer: either text or an error.
type Reply struct {
	Text string
	Err  error
}

// Client is a mock LLM provider for testing.
// It implements the ChatClient interface, returns queued replies in
// order, and records the turns it was sent on each call.
type Client struct {
	Replies []Reply
	Calls   [][]client.Turn
}

// NewClient creates a new mock client with the given replies queued.
func NewClient(replies ...Reply) *Client {
	return &Client{Replies: replies}
}

// Push queues a text reply.
func (c *Client) Push(text string) {
	c.Replies = append(c.Replies, Reply{Text: text})
}

// PushError queues an error reply.
func (c *Client) PushError(err error) {
	c.Replies = append(c.Replies, Reply{Err: err})
}

// CompleteChat records turns and returns the next queued reply.  Once
// the queue is empty it returns a default response.
// This method implements the ChatClient interface.
func (c *Client) CompleteChat(ctx context.Context, turns []client.Turn) (string, error) {
	sent := make([]client.Turn, len(turns))
	copy(sent, turns)
	c.Calls = append(c.Calls, sent)
	if len(c.Replies) == 0 {
		return "default mock response", nil
	}
	reply := c.Replies[0]
	c.Replies = c.Replies[1:]
	return reply.Text, reply.Err
}

// Assert that Client implements client.ChatClient.
var _ client.ChatClient = (*Client)(nil)
