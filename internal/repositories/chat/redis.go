package chat

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	redisclient "github.com/KirkDiggler/bh2e-sheets/internal/redis"
)

const (
	chatLogKey = "chat:log"

	// DefaultLogLimit is how many messages are retained when no limit is configured
	DefaultLogLimit = 500
)

type redisRepository struct {
	client redisclient.Client
	limit  int
}

// RedisConfig contains configuration for the Redis chat repository.
type RedisConfig struct {
	Client redisclient.Client

	// LogLimit is the number of messages retained. Zero uses DefaultLogLimit.
	LogLimit int
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.LogLimit < 0 {
		vb.Field("LogLimit", "cannot be negative")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed chat repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limit := cfg.LogLimit
	if limit == 0 {
		limit = DefaultLogLimit
	}

	return &redisRepository{
		client: cfg.Client,
		limit:  limit,
	}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Message == nil {
		return nil, errors.InvalidArgument("message cannot be nil")
	}
	if input.Message.ID == "" {
		return nil, errors.InvalidArgument("message ID cannot be empty")
	}

	data, err := json.Marshal(input.Message)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal chat message")
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, chatLogKey, data)
	pipe.LTrim(ctx, chatLogKey, int64(-r.limit), -1)
	length := pipe.LLen(ctx, chatLogKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append chat message")
	}

	return &AppendOutput{Length: length.Val()}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	start := int64(0)
	if input.Limit > 0 {
		start = int64(-input.Limit)
	}

	entries, err := r.client.LRange(ctx, chatLogKey, start, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list chat messages")
	}

	messages := make([]*bh2e.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var msg bh2e.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			// Skip corrupt entries rather than failing the whole log
			slog.Warn("Skipping unreadable chat message", "error", err)
			continue
		}
		messages = append(messages, &msg)
	}

	return &ListOutput{Messages: messages}, nil
}

// GetKey returns the Redis key holding the chat log
// Exposed for testing purposes
func GetKey() string {
	return chatLogKey
}
