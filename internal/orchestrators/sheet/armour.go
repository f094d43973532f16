package sheet

import (
	"context"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/metrics"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// BreakArmourDie marks one more of an armour item's dice as broken
func (o *Orchestrator) BreakArmourDie(ctx context.Context, input *sheet.ItemActionInput) (*sheet.ItemActionOutput, error) {
	out, err := o.itemAction(ctx, ActionBreakArmourDie, input, engine.BreakArmourDie)
	if err == nil && out.Applied {
		metrics.ArmourDiceChanges.WithLabelValues(metrics.OutcomeBroken).Inc()
	}
	return out, err
}

// RepairArmourDie repairs one of an armour item's broken dice
func (o *Orchestrator) RepairArmourDie(ctx context.Context, input *sheet.ItemActionInput) (*sheet.ItemActionOutput, error) {
	out, err := o.itemAction(ctx, ActionRepairArmourDie, input, engine.RepairArmourDie)
	if err == nil && out.Applied {
		metrics.ArmourDiceChanges.WithLabelValues(metrics.OutcomeRepaired).Inc()
	}
	return out, err
}

// RepairAllArmourDice repairs every broken armour die the actor owns
func (o *Orchestrator) RepairAllArmourDice(ctx context.Context, input *sheet.ActorActionInput) (*sheet.ActorActionOutput, error) {
	out, err := o.actorAction(ctx, ActionRepairAllArmour, input, engine.RepairAllArmour)
	if err == nil {
		metrics.ArmourDiceChanges.WithLabelValues(metrics.OutcomeRepaired).Add(float64(len(out.UpdatedItemIDs)))
	}
	return out, err
}
