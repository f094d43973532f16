// Package sheet implements the sheet orchestrator: it resolves item owners, applies the
// engine rules and persists the resulting patches, and narrates rolls to the chat log.
package sheet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/i18n"
	"github.com/KirkDiggler/bh2e-sheets/internal/metrics"
	actorrepo "github.com/KirkDiggler/bh2e-sheets/internal/repositories/actor"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/chat"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// Action names used in logs and metrics
const (
	ActionRollUsageDie      = "roll_usage_die"
	ActionResetUsageDie     = "reset_usage_die"
	ActionResetAllUsageDice = "reset_all_usage_dice"
	ActionBreakArmourDie    = "break_armour_die"
	ActionRepairArmourDie   = "repair_armour_die"
	ActionRepairAllArmour   = "repair_all_armour_dice"
	ActionIncrementQuantity = "increment_quantity"
	ActionDecrementQuantity = "decrement_quantity"
	ActionAttack            = "attack"
	ActionAttributeTest     = "attribute_test"
	ActionPrepareMagic      = "prepare_magic"
	ActionUnprepareMagic    = "unprepare_magic"
	ActionCastMagic         = "cast_magic"
	ActionCastMagicAsRitual = "cast_magic_as_ritual"
)

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	ActorRepo   actorrepo.Repository
	DiceRoller  engine.DiceRoller
	ChatService chat.Service
	Translator  *i18n.Translator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.ChatService == nil {
		vb.RequiredField("ChatService")
	}
	if c.Translator == nil {
		vb.RequiredField("Translator")
	}

	return vb.Build()
}

// Orchestrator implements the sheet.Service interface
type Orchestrator struct {
	actorRepo actorrepo.Repository
	roller    engine.DiceRoller
	chat      chat.Service
	text      *i18n.Translator
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		actorRepo: cfg.ActorRepo,
		roller:    cfg.DiceRoller,
		chat:      cfg.ChatService,
		text:      cfg.Translator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheet.Service = (*Orchestrator)(nil)

// resolve finds the owner of itemID and the owned item
func (o *Orchestrator) resolve(ctx context.Context, action, itemID string) (*bh2e.Actor, *bh2e.Item, error) {
	if itemID == "" {
		return nil, nil, errors.InvalidArgument("item ID is required")
	}

	out, err := o.actorRepo.FindOwner(ctx, actorrepo.FindOwnerInput{ItemID: itemID})
	if err != nil {
		slog.Error("Failed to find the actor that owns item",
			"action", action,
			"item_id", itemID,
			"error", err,
		)
		return nil, nil, errors.Wrapf(err, "failed to resolve owner of item %s", itemID)
	}

	return out.Actor, out.Item, nil
}

// loadActor reads an actor by ID
func (o *Orchestrator) loadActor(ctx context.Context, action, actorID string) (*bh2e.Actor, error) {
	if actorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	out, err := o.actorRepo.Get(ctx, actorrepo.GetInput{ActorID: actorID})
	if err != nil {
		slog.Error("Failed to load actor",
			"action", action,
			"actor_id", actorID,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to load actor %s", actorID)
	}

	return out.Actor, nil
}

// refuse logs and counts a not-eligible action, returning its reason. Any other error
// is returned unchanged for the caller to surface.
func refuse(action string, actor *bh2e.Actor, itemID string, err error) (string, error) {
	if !errors.IsNotEligible(err) {
		return "", err
	}

	reason := fmt.Sprint(errors.GetMeta(err)[errors.MetaReason])
	slog.Warn(errors.GetMessage(err),
		"action", action,
		"actor_id", actor.ID,
		"item_id", itemID,
		"reason", reason,
	)
	metrics.NotEligible.WithLabelValues(action, reason).Inc()

	return reason, nil
}

// applyPatch writes patch to the owner's item and returns the stored item
func (o *Orchestrator) applyPatch(ctx context.Context, action string, actor *bh2e.Actor, patch *bh2e.ItemPatch) (*bh2e.Item, error) {
	out, err := o.actorRepo.UpdateItem(ctx, actorrepo.UpdateItemInput{
		ActorID: actor.ID,
		Patch:   patch,
	})
	if err != nil {
		slog.Error("Failed to update item",
			"action", action,
			"actor_id", actor.ID,
			"item_id", patch.ItemID,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to update item %s", patch.ItemID)
	}

	return out.Item, nil
}

// post sends a narration line or a roll to the chat log as the actor
func (o *Orchestrator) post(ctx context.Context, actor *bh2e.Actor, content string, roll *engine.RollResult) error {
	_, err := o.chat.Post(ctx, &chat.PostInput{
		Speaker: actor.Name,
		Content: content,
		Roll:    roll,
	})
	if err != nil {
		slog.Error("Failed to post chat message",
			"actor_id", actor.ID,
			"error", err,
		)
		return errors.Wrap(err, "failed to post chat message")
	}
	return nil
}

// roll evaluates formula with the dice roller
func (o *Orchestrator) roll(ctx context.Context, action string, actor *bh2e.Actor, formula string) (*engine.RollResult, error) {
	result, err := o.roller.Roll(ctx, formula)
	if err != nil {
		slog.Error("Failed to roll dice",
			"action", action,
			"actor_id", actor.ID,
			"formula", formula,
			"error", err,
		)
		return nil, errors.Wrapf(err, "failed to roll %s", formula)
	}
	return result, nil
}

// itemAction runs a single-item rule end to end: resolve the owner, compute the patch,
// and persist it. A not-eligible rule result is a no-op, not an error.
func (o *Orchestrator) itemAction(
	ctx context.Context,
	action string,
	input *sheet.ItemActionInput,
	rule func(*bh2e.Item) (*bh2e.ItemPatch, error),
) (*sheet.ItemActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, item, err := o.resolve(ctx, action, input.ItemID)
	if err != nil {
		return nil, err
	}

	patch, err := rule(item)
	if err != nil {
		reason, err := refuse(action, actor, item.ID, err)
		if err != nil {
			return nil, err
		}
		return &sheet.ItemActionOutput{ActorID: actor.ID, Reason: reason, Item: item}, nil
	}

	updated, err := o.applyPatch(ctx, action, actor, patch)
	if err != nil {
		return nil, err
	}

	slog.Info("Item updated",
		"action", action,
		"actor_id", actor.ID,
		"item_id", item.ID,
	)

	return &sheet.ItemActionOutput{ActorID: actor.ID, Applied: true, Item: updated}, nil
}

// actorAction applies every patch a bulk rule produces for an actor. Patches are
// written one item at a time; the first failed write stops the run.
func (o *Orchestrator) actorAction(
	ctx context.Context,
	action string,
	input *sheet.ActorActionInput,
	rule func(*bh2e.Actor) []*bh2e.ItemPatch,
) (*sheet.ActorActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.loadActor(ctx, action, input.ActorID)
	if err != nil {
		return nil, err
	}

	patches := rule(actor)
	updated := make([]string, 0, len(patches))
	for _, patch := range patches {
		if _, err := o.applyPatch(ctx, action, actor, patch); err != nil {
			return nil, err
		}
		updated = append(updated, patch.ItemID)
	}

	slog.Info("Bulk item update finished",
		"action", action,
		"actor_id", actor.ID,
		"items_updated", len(updated),
	)

	return &sheet.ActorActionOutput{UpdatedItemIDs: updated}, nil
}
