// Package provider holds the types shared between completion-provider
// adapters and the services that call them.
package provider

import "github.com/heartmarshall/linguacourse-backend/internal/domain"

// Message is one role-tagged turn in a completion request.
type Message struct {
	Role domain.ChatRole
	Text string
}

// Request is a single, stateless text-completion round trip. The provider
// returns one text string; the caller owns all parsing and validation.
type Request struct {
	// System is an optional instruction prepended out-of-band of Messages.
	System      string
	Messages    []Message
	MaxTokens   int64
	Temperature float64
}

// UserRequest builds the common single-turn request.
func UserRequest(prompt string, maxTokens int64, temperature float64) Request {
	return Request{
		Messages:    []Message{{Role: domain.RoleUser, Text: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
