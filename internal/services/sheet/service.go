// Package sheet defines the interface for character and creature sheet operations
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/bh2e-sheets/internal/services/sheet Service

import (
	"context"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

// Service defines the interface for sheet operations
type Service interface {
	// Usage dice
	RollUsageDie(ctx context.Context, input *RollUsageDieInput) (*RollUsageDieOutput, error)
	ResetUsageDie(ctx context.Context, input *ItemActionInput) (*ItemActionOutput, error)
	ResetAllUsageDice(ctx context.Context, input *ActorActionInput) (*ActorActionOutput, error)

	// Armour dice
	BreakArmourDie(ctx context.Context, input *ItemActionInput) (*ItemActionOutput, error)
	RepairArmourDie(ctx context.Context, input *ItemActionInput) (*ItemActionOutput, error)
	RepairAllArmourDice(ctx context.Context, input *ActorActionInput) (*ActorActionOutput, error)

	// Equipment quantity
	IncrementQuantity(ctx context.Context, input *ItemActionInput) (*ItemActionOutput, error)
	DecrementQuantity(ctx context.Context, input *ItemActionInput) (*ItemActionOutput, error)

	// Magic
	PrepareMagic(ctx context.Context, input *ItemActionInput) (*ItemActionOutput, error)
	UnprepareMagic(ctx context.Context, input *ItemActionInput) (*ItemActionOutput, error)
	CastMagic(ctx context.Context, input *CastMagicInput) (*ItemActionOutput, error)

	// Rolls
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	AttributeTest(ctx context.Context, input *AttributeTestInput) (*AttributeTestOutput, error)

	// Items and views
	DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error)
	GetCharacterSheet(ctx context.Context, input *GetCharacterSheetInput) (*GetCharacterSheetOutput, error)
	GetCreatureSheet(ctx context.Context, input *GetCreatureSheetInput) (*GetCreatureSheetOutput, error)
}

// Item action types

// ItemActionInput names the item an action targets. The owner is resolved by the service.
type ItemActionInput struct {
	ItemID string
}

// ItemActionOutput reports what an item action did
type ItemActionOutput struct {
	ActorID string

	// Applied is false when the action was a no-op; Reason then says why
	Applied bool
	Reason  string

	// Item is the item state after the action
	Item *bh2e.Item
}

// RollUsageDieInput defines the request for rolling an item's usage die
type RollUsageDieInput struct {
	ItemID string
}

// RollUsageDieOutput defines the response for rolling an item's usage die
type RollUsageDieOutput struct {
	ItemActionOutput

	// Outcome is empty when no roll took place
	Outcome engine.UsageDieOutcome
	Roll    *engine.RollResult
}

// ActorActionInput names the actor a bulk action targets
type ActorActionInput struct {
	ActorID string
}

// ActorActionOutput lists the items a bulk action changed
type ActorActionOutput struct {
	UpdatedItemIDs []string
}

// CastMagicInput defines the request for casting a spell or prayer
type CastMagicInput struct {
	ItemID string

	// AsRitual casts without needing the magic prepared
	AsRitual bool
}

// Roll types

// AttackInput defines an attack with a weapon item
type AttackInput struct {
	ItemID string

	// Attribute rolled under, e.g. "strength" for melee or "dexterity" for ranged
	Attribute string
	Kind      engine.FormulaKind
}

// AttackOutput defines the result of an attack
type AttackOutput struct {
	// Reason is set when the attack could not be made and nothing was rolled
	Reason string

	Hit      bool
	Critical bool

	AttackRoll *engine.RollResult

	// DamageRoll is nil on a miss
	DamageRoll *engine.RollResult
}

// AttributeTestInput defines an attribute test for an actor
type AttributeTestInput struct {
	ActorID   string
	Attribute string
	Kind      engine.FormulaKind
}

// AttributeTestOutput defines the result of an attribute test
type AttributeTestOutput struct {
	// Reason is set when the test could not be made and nothing was rolled
	Reason string

	Passed bool
	Roll   *engine.RollResult
}

// Item and view types

// DeleteItemInput defines the request for deleting an owned item
type DeleteItemInput struct {
	ItemID string
}

// DeleteItemOutput defines the response for deleting an owned item
type DeleteItemOutput struct {
	ActorID string
	Item    *bh2e.Item
}

// GetCharacterSheetInput defines the request for a character sheet
type GetCharacterSheetInput struct {
	ActorID string
}

// GetCharacterSheetOutput defines the response for a character sheet
type GetCharacterSheetOutput struct {
	Sheet *CharacterSheet
}

// GetCreatureSheetInput defines the request for a creature sheet
type GetCreatureSheetInput struct {
	ActorID string
}

// GetCreatureSheetOutput defines the response for a creature sheet
type GetCreatureSheetOutput struct {
	Sheet *CreatureSheet
}

// MagicSlot keys the magic items of a sheet by kind and level
type MagicSlot struct {
	Kind  bh2e.MagicKind
	Level int
}

// CharacterSheet is a character's items grouped the way the sheet shows them
type CharacterSheet struct {
	Actor *bh2e.Actor

	// Abilities are sorted by name; every other group keeps ownership order
	Abilities []*bh2e.Item
	Armour    []*bh2e.Item
	Classes   []*bh2e.Item
	Equipment []*bh2e.Item
	Weapons   []*bh2e.Item
	Magic     map[MagicSlot][]*bh2e.Item
}

// MagicAt returns the magic items of kind at level, in ownership order
func (s *CharacterSheet) MagicAt(kind bh2e.MagicKind, level int) []*bh2e.Item {
	return s.Magic[MagicSlot{Kind: kind, Level: level}]
}

// HasMagic reports whether the sheet has any magic of kind at level
func (s *CharacterSheet) HasMagic(kind bh2e.MagicKind, level int) bool {
	return len(s.MagicAt(kind, level)) > 0
}

// CreatureSheet is a creature's items grouped the way the sheet shows them
type CreatureSheet struct {
	Actor   *bh2e.Actor
	Actions []*bh2e.Item
}
