package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories rely on. Any
// redis.UniversalClient satisfies it.
type Client interface {
	redis.UniversalClient
}

// Sentinel errors re-exported for callers that only import this package
var (
	// Nil is returned by Redis when a key does not exist
	Nil = redis.Nil

	// TxFailedErr is returned when a WATCHed key changed before EXEC
	TxFailedErr = redis.TxFailedErr
)
