// Package actor provides the item store: actors and the items they own
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/bh2e-sheets/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

// Repository defines the interface for actor and owned item persistence
type Repository interface {
	// Create stores a new actor and indexes its items
	// Returns errors.AlreadyExists if the actor or one of its item IDs is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an actor with its items
	// Returns errors.NotFound if the actor does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// FindOwner resolves the actor owning an item through the item index
	// Returns errors.NotFound if the item is not owned by any actor
	FindOwner(ctx context.Context, input FindOwnerInput) (*FindOwnerOutput, error)

	// UpdateItem applies a partial update to one owned item atomically
	// Returns errors.NotFound if the actor or item does not exist
	// Returns errors.InvalidArgument if the patch fails validation
	// Returns errors.Aborted if the actor changed concurrently
	UpdateItem(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error)

	// DeleteItem removes an owned item
	// Returns errors.NotFound if the actor or item does not exist
	DeleteItem(ctx context.Context, input DeleteItemInput) (*DeleteItemOutput, error)

	// Delete removes an actor and its item index entries
	// Returns errors.NotFound if the actor does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Reindex rebuilds the item index from the stored actors and reports actors that
	// cannot be decoded. With DeleteCorrupted set, those actors are removed.
	Reindex(ctx context.Context, input ReindexInput) (*ReindexOutput, error)
}

// CreateInput defines the input for creating an actor
type CreateInput struct {
	Actor *bh2e.Actor
}

// CreateOutput defines the output for creating an actor
type CreateOutput struct {
	Actor *bh2e.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ActorID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *bh2e.Actor
}

// FindOwnerInput defines the input for resolving an item's owner
type FindOwnerInput struct {
	ItemID string
}

// FindOwnerOutput carries the owner and the owned item, which points into Actor.Items
type FindOwnerOutput struct {
	Actor *bh2e.Actor
	Item  *bh2e.Item
}

// UpdateItemInput defines the input for patching an item
type UpdateItemInput struct {
	ActorID string
	Patch   *bh2e.ItemPatch
}

// UpdateItemOutput returns the item as stored after the patch
type UpdateItemOutput struct {
	Item *bh2e.Item
}

// DeleteItemInput defines the input for deleting an item
type DeleteItemInput struct {
	ActorID string
	ItemID  string
}

// DeleteItemOutput defines the output for deleting an item
type DeleteItemOutput struct {
	Item *bh2e.Item
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ActorID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct {
	ItemsDeleted int
}

// ReindexInput defines the input for rebuilding the item index
type ReindexInput struct {
	DeleteCorrupted bool
}

// ReindexOutput reports what a reindex found
type ReindexOutput struct {
	ActorsScanned int
	ItemsIndexed  int

	// Corrupted lists the actor keys whose data could not be decoded
	Corrupted []string

	// Deleted is true when the corrupted keys were removed
	Deleted bool
}
