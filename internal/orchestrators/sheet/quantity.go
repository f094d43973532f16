package sheet

import (
	"context"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/metrics"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// IncrementQuantity adds one to a stocked item's quantity
func (o *Orchestrator) IncrementQuantity(ctx context.Context, input *sheet.ItemActionInput) (*sheet.ItemActionOutput, error) {
	out, err := o.itemAction(ctx, ActionIncrementQuantity, input, engine.IncrementQuantity)
	if err == nil && out.Applied {
		metrics.QuantityChanges.WithLabelValues(metrics.OutcomeIncrement).Inc()
	}
	return out, err
}

// DecrementQuantity removes one from a stocked item's quantity
func (o *Orchestrator) DecrementQuantity(ctx context.Context, input *sheet.ItemActionInput) (*sheet.ItemActionOutput, error) {
	out, err := o.itemAction(ctx, ActionDecrementQuantity, input, engine.DecrementQuantity)
	if err == nil && out.Applied {
		metrics.QuantityChanges.WithLabelValues(metrics.OutcomeDecrement).Inc()
	}
	return out, err
}
