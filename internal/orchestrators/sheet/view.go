package sheet

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/metrics"
	actorrepo "github.com/KirkDiggler/bh2e-sheets/internal/repositories/actor"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// Reasons an item is left off a sheet
const (
	dropInvalidLevel   = "invalid_level"
	dropUnknownVariant = "unknown_variant"
)

// GetCharacterSheet groups a character's items for display. Items that cannot be
// placed are logged and left out; they never fail the sheet.
func (o *Orchestrator) GetCharacterSheet(ctx context.Context, input *sheet.GetCharacterSheetInput) (*sheet.GetCharacterSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, "get_character_sheet", input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Type != bh2e.ActorTypeCharacter {
		return nil, errors.InvalidArgumentf("actor %s is a %s, not a character", actor.ID, actor.Type)
	}

	return &sheet.GetCharacterSheetOutput{Sheet: BuildCharacterSheet(actor)}, nil
}

// BuildCharacterSheet sorts an actor's items into the character sheet groups
func BuildCharacterSheet(actor *bh2e.Actor) *sheet.CharacterSheet {
	cs := &sheet.CharacterSheet{
		Actor: actor,
		Magic: make(map[sheet.MagicSlot][]*bh2e.Item),
	}

	for i := range actor.Items {
		item := &actor.Items[i]

		switch item.Type {
		case bh2e.ItemTypeAbility:
			cs.Abilities = append(cs.Abilities, item)
		case bh2e.ItemTypeArmour:
			cs.Armour = append(cs.Armour, item)
		case bh2e.ItemTypeClass:
			cs.Classes = append(cs.Classes, item)
		case bh2e.ItemTypeEquipment:
			cs.Equipment = append(cs.Equipment, item)
		case bh2e.ItemTypeWeapon:
			cs.Weapons = append(cs.Weapons, item)
		case bh2e.ItemTypeMagic:
			slot, err := magicSlot(item)
			if err != nil {
				dropItem(actor, item, err)
				continue
			}
			cs.Magic[slot] = append(cs.Magic[slot], item)
		default:
			dropItem(actor, item, errors.UnknownVariant("item type", string(item.Type)))
		}
	}

	sort.SliceStable(cs.Abilities, func(i, j int) bool {
		return cs.Abilities[i].Name < cs.Abilities[j].Name
	})

	return cs
}

func magicSlot(item *bh2e.Item) (sheet.MagicSlot, error) {
	if item.Level < bh2e.MinMagicLevel || item.Level > bh2e.MaxMagicLevel {
		return sheet.MagicSlot{}, errors.InvalidLevel(item.Level, bh2e.MinMagicLevel, bh2e.MaxMagicLevel)
	}

	switch item.Kind {
	case bh2e.MagicKindSpell, bh2e.MagicKindPrayer:
		return sheet.MagicSlot{Kind: item.Kind, Level: item.Level}, nil
	}
	return sheet.MagicSlot{}, errors.UnknownVariant("magic kind", string(item.Kind))
}

// dropItem logs an item left off a sheet. Bad levels are data errors; unknown variants
// are only warnings.
func dropItem(actor *bh2e.Actor, item *bh2e.Item, err error) {
	attrs := []any{
		"actor_id", actor.ID,
		"item_id", item.ID,
		"item_name", item.Name,
	}

	if errors.IsInvalidLevel(err) {
		slog.Error(errors.GetMessage(err), attrs...)
		metrics.SheetItemsDropped.WithLabelValues(dropInvalidLevel).Inc()
		return
	}

	slog.Warn(errors.GetMessage(err), attrs...)
	metrics.SheetItemsDropped.WithLabelValues(dropUnknownVariant).Inc()
}

// GetCreatureSheet lists a creature's attacks
func (o *Orchestrator) GetCreatureSheet(ctx context.Context, input *sheet.GetCreatureSheetInput) (*sheet.GetCreatureSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, "get_creature_sheet", input.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Type != bh2e.ActorTypeCreature {
		return nil, errors.InvalidArgumentf("actor %s is a %s, not a creature", actor.ID, actor.Type)
	}

	return &sheet.GetCreatureSheetOutput{
		Sheet: &sheet.CreatureSheet{
			Actor:   actor,
			Actions: actor.ItemsOfType(bh2e.ItemTypeCreatureAttack),
		},
	}, nil
}

// DeleteItem removes an item from whichever actor owns it
func (o *Orchestrator) DeleteItem(ctx context.Context, input *sheet.DeleteItemInput) (*sheet.DeleteItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, item, err := o.resolve(ctx, "delete_item", input.ItemID)
	if err != nil {
		return nil, err
	}

	out, err := o.actorRepo.DeleteItem(ctx, actorrepo.DeleteItemInput{ActorID: actor.ID, ItemID: item.ID})
	if err != nil {
		slog.Error("Failed to delete item",
			"actor_id", actor.ID,
			"item_id", item.ID,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to delete item %s", item.ID)
	}

	slog.Info("Item deleted",
		"actor_id", actor.ID,
		"item_id", item.ID,
	)

	return &sheet.DeleteItemOutput{ActorID: actor.ID, Item: out.Item}, nil
}
