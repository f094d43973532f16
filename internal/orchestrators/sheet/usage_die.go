package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/metrics"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// RollUsageDie rolls an item's active usage die and degrades it on a roll under the
// threshold. An exhausted die is left alone and nothing is rolled.
func (o *Orchestrator) RollUsageDie(ctx context.Context, input *sheet.RollUsageDieInput) (*sheet.RollUsageDieOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, item, err := o.resolve(ctx, ActionRollUsageDie, input.ItemID)
	if err != nil {
		return nil, err
	}

	die, err := engine.UsageDieToRoll(item)
	if err != nil {
		reason, err := refuse(ActionRollUsageDie, actor, item.ID, err)
		if err != nil {
			return nil, err
		}
		return &sheet.RollUsageDieOutput{
			ItemActionOutput: sheet.ItemActionOutput{ActorID: actor.ID, Reason: reason, Item: item},
		}, nil
	}
	if die == bh2e.DieExhausted {
		slog.Debug("Usage die already exhausted",
			"actor_id", actor.ID,
			"item_id", item.ID,
		)
		return &sheet.RollUsageDieOutput{
			ItemActionOutput: sheet.ItemActionOutput{ActorID: actor.ID, Reason: engine.ReasonExhausted, Item: item},
		}, nil
	}

	if err := o.post(ctx, actor, o.text.RollingUsageDie(item.Name), nil); err != nil {
		return nil, err
	}

	roll, err := o.roll(ctx, ActionRollUsageDie, actor, engine.GenerateFormula(engine.FormulaPlain, die))
	if err != nil {
		return nil, err
	}
	if err := o.post(ctx, actor, "", roll); err != nil {
		return nil, err
	}

	transition := engine.NextUsageDie(item, roll.Total)
	metrics.UsageDieRolls.WithLabelValues(string(transition.Outcome)).Inc()

	output := &sheet.RollUsageDieOutput{
		ItemActionOutput: sheet.ItemActionOutput{ActorID: actor.ID, Item: item},
		Outcome:          transition.Outcome,
		Roll:             roll,
	}
	if transition.Patch == nil {
		return output, nil
	}

	updated, err := o.applyPatch(ctx, ActionRollUsageDie, actor, transition.Patch)
	if err != nil {
		return nil, err
	}
	output.Applied = true
	output.Item = updated

	slog.Info("Usage die degraded",
		"actor_id", actor.ID,
		"item_id", item.ID,
		"from", transition.From,
		"to", transition.To,
		"roll", roll.Total,
	)

	content := o.text.ReducingUsageDie(engine.GenerateFormula(engine.FormulaPlain, transition.To))
	if transition.Outcome == engine.UsageDieExhausted {
		content = o.text.UsageDieExhausted(item.Name)
	}
	if err := o.post(ctx, actor, content, nil); err != nil {
		return nil, err
	}

	return output, nil
}

// ResetUsageDie restores an item's usage die to its maximum
func (o *Orchestrator) ResetUsageDie(ctx context.Context, input *sheet.ItemActionInput) (*sheet.ItemActionOutput, error) {
	return o.itemAction(ctx, ActionResetUsageDie, input, engine.ResetUsageDie)
}

// ResetAllUsageDice resets every eligible usage die the actor owns
func (o *Orchestrator) ResetAllUsageDice(ctx context.Context, input *sheet.ActorActionInput) (*sheet.ActorActionOutput, error) {
	return o.actorAction(ctx, ActionResetAllUsageDice, input, engine.ResetAllUsageDice)
}
