// Package llm provides chat completion clients with a pluggable provider,
// selected by configuration.
package llm

import "context"

// Message is one turn of a chat conversation. Role is "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the chat completion interface. The entire reply is returned
// as one string; there is no streaming and no function calling.
type Client interface {
	// Complete sends the system prompt and the running message list and
	// returns the assistant's text reply.
	Complete(ctx context.Context, system string, messages []Message) (string, error)
}
