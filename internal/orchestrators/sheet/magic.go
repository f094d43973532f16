package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/metrics"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// PrepareMagic readies a spell or prayer
func (o *Orchestrator) PrepareMagic(ctx context.Context, input *sheet.ItemActionInput) (*sheet.ItemActionOutput, error) {
	out, err := o.itemAction(ctx, ActionPrepareMagic, input, engine.PrepareMagic)
	if err == nil && out.Applied {
		metrics.MagicActions.WithLabelValues(metrics.OutcomePrepared).Inc()
	}
	return out, err
}

// UnprepareMagic clears a prepared spell or prayer
func (o *Orchestrator) UnprepareMagic(ctx context.Context, input *sheet.ItemActionInput) (*sheet.ItemActionOutput, error) {
	out, err := o.itemAction(ctx, ActionUnprepareMagic, input, engine.UnprepareMagic)
	if err == nil && out.Applied {
		metrics.MagicActions.WithLabelValues(metrics.OutcomeUnprepared).Inc()
	}
	return out, err
}

// CastMagic casts a spell or prayer and narrates it to the chat log. A normal cast
// spends the preparation before anything is posted; a ritual cast stores nothing.
func (o *Orchestrator) CastMagic(ctx context.Context, input *sheet.CastMagicInput) (*sheet.ItemActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	action, outcome := ActionCastMagic, metrics.OutcomeCast
	if input.AsRitual {
		action, outcome = ActionCastMagicAsRitual, metrics.OutcomeRitual
	}

	actor, item, err := o.resolve(ctx, action, input.ItemID)
	if err != nil {
		return nil, err
	}

	patch, err := engine.CastMagic(item, input.AsRitual)
	if err != nil {
		reason, err := refuse(action, actor, item.ID, err)
		if err != nil {
			return nil, err
		}
		return &sheet.ItemActionOutput{ActorID: actor.ID, Reason: reason, Item: item}, nil
	}

	if patch != nil {
		item, err = o.applyPatch(ctx, action, actor, patch)
		if err != nil {
			return nil, err
		}
	}

	content := o.text.CastingMagic(actor.Name, item.Name)
	if input.AsRitual {
		content = o.text.CastingRitual(actor.Name, item.Name)
	}
	if err := o.post(ctx, actor, content, nil); err != nil {
		return nil, err
	}

	metrics.MagicActions.WithLabelValues(outcome).Inc()
	slog.Info("Magic cast",
		"action", action,
		"actor_id", actor.ID,
		"item_id", item.ID,
	)

	return &sheet.ItemActionOutput{ActorID: actor.ID, Applied: true, Item: item}, nil
}
