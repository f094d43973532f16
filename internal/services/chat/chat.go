package chat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/metrics"
	"github.com/KirkDiggler/bh2e-sheets/internal/pkg/clock"
	"github.com/KirkDiggler/bh2e-sheets/internal/pkg/idgen"
	chatrepo "github.com/KirkDiggler/bh2e-sheets/internal/repositories/chat"
)

// Config holds the dependencies for the chat service
type Config struct {
	Repository  chatrepo.Repository
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type service struct {
	repo     chatrepo.Repository
	eventBus events.EventBus
	idGen    idgen.Generator
	clock    clock.Clock
}

// NewService creates a chat service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &service{
		repo:     cfg.Repository,
		eventBus: cfg.EventBus,
		idGen:    cfg.IDGenerator,
		clock:    clk,
	}, nil
}

func (s *service) Post(ctx context.Context, input *PostInput) (*PostOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Content == "" && input.Roll == nil {
		return nil, errors.InvalidArgument("message needs content or a roll")
	}

	msg := &bh2e.ChatMessage{
		ID:        s.idGen.Generate(),
		Speaker:   input.Speaker,
		Content:   input.Content,
		CreatedAt: s.clock.Now().UTC(),
	}
	if input.Roll != nil {
		if msg.Content == "" {
			msg.Content = input.Roll.String()
		}
		msg.Roll = &bh2e.RollRecord{
			Formula: input.Roll.Formula,
			Total:   input.Roll.Total,
			Results: input.Roll.Results,
		}
	}

	if _, err := s.repo.Append(ctx, chatrepo.AppendInput{Message: msg}); err != nil {
		slog.Error("Failed to store chat message", "speaker", msg.Speaker, "error", err)
		return nil, errors.Wrap(err, "failed to post chat message")
	}
	metrics.ChatMessages.Inc()

	event := events.NewGameEvent(EventChatMessage, rpgtoolkit.WrapMessage(msg), nil)
	if err := s.eventBus.Publish(ctx, event); err != nil {
		// The message is already in the log; listeners missing it is not fatal
		slog.Warn("Failed to publish chat message event",
			"message_id", msg.ID,
			"error", err,
		)
	}

	return &PostOutput{Message: msg}, nil
}

func (s *service) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}

	out, err := s.repo.List(ctx, chatrepo.ListInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	return &ListOutput{Messages: out.Messages}, nil
}
