// Package chat posts sheet activity to the shared chat log
package chat

import (
	"context"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

//go:generate mockgen -destination=mock/mock_service.go -package=chatmock github.com/KirkDiggler/bh2e-sheets/internal/services/chat Service

// EventChatMessage is published on the event bus for every posted message
const EventChatMessage = "chat.message"

// Service is the message sink for dice results and narration
type Service interface {
	// Post appends a message to the log and announces it on the event bus
	Post(ctx context.Context, input *PostInput) (*PostOutput, error)

	// List returns the most recent messages, oldest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// PostInput contains a message to post. Roll is optional.
type PostInput struct {
	Speaker string
	Content string
	Roll    *engine.RollResult
}

// PostOutput contains the stored message
type PostOutput struct {
	Message *bh2e.ChatMessage
}

// ListInput contains chat log paging parameters
type ListInput struct {
	Limit int
}

// ListOutput contains chat log entries
type ListOutput struct {
	Messages []*bh2e.ChatMessage
}
