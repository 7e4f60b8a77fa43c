package client

import "context"

// ChatClient defines the interface for chat operations.
// Implementations (such as the gemini Client and the mock Client) send
// the whole conversation so far and return the generated reply.
type ChatClient interface {
	CompleteChat(ctx context.Context, turns []Turn) (string, error)
}

// Roles as spelled on the wire.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn represents a single message in a conversation.
type Turn struct {
	Role string
	Text string
}
