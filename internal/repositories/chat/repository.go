// Package chat provides persistence for the shared chat log
package chat

//go:generate mockgen -destination=mock/mock_repository.go -package=chatrepomock github.com/KirkDiggler/bh2e-sheets/internal/repositories/chat Repository

import (
	"context"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

// Repository stores chat messages in posting order
type Repository interface {
	// Append adds a message to the end of the log, trimming the oldest entries
	// beyond the configured limit
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the most recent messages, oldest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AppendInput defines the input for appending a message
type AppendInput struct {
	Message *bh2e.ChatMessage
}

// AppendOutput defines the output for appending a message
type AppendOutput struct {
	// Length of the log after the append and trim
	Length int64
}

// ListInput defines the input for listing messages
type ListInput struct {
	// Limit caps the number of messages returned. Zero returns the whole log.
	Limit int
}

// ListOutput defines the output for listing messages
type ListOutput struct {
	Messages []*bh2e.ChatMessage
}
