// Package idgen generates chat message IDs
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Sequence numbers IDs 1, 2, 3... after a prefix. Safe for concurrent use.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequential creates a sequence, e.g. NewSequential("msg") yields msg_1, msg_2
func NewSequential(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Generate returns the next ID in the sequence
func (g *Sequence) Generate() string {
	return join(g.prefix, fmt.Sprint(g.n.Add(1)))
}

// TimeOrdered generates UUIDv7 IDs, which sort in creation order
type TimeOrdered struct {
	prefix string
}

// NewUUID creates a time-ordered UUID generator with an optional prefix
func NewUUID(prefix string) *TimeOrdered {
	return &TimeOrdered{prefix: prefix}
}

// Generate returns a fresh UUIDv7, falling back to a random UUID if the clock source fails
func (g *TimeOrdered) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return join(g.prefix, id.String())
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
