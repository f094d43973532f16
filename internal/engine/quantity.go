package engine

import (
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

// only stocked equipment, i.e. equipment with a usage die, tracks quantity
func checkStocked(item *bh2e.Item) error {
	if item.Type != bh2e.ItemTypeEquipment {
		return errors.NotEligiblef(ReasonNotEquipment,
			"unable to change quantity for %s (%s) as it is not equipment", item.Name, item.ID)
	}
	if !item.HasUsageDie() {
		return errors.NotEligiblef(ReasonNoUsageDie,
			"unable to change quantity for %s (%s) as it does not have a usage die", item.Name, item.ID)
	}
	return nil
}

// IncrementQuantity adds one to a stocked item's quantity
func IncrementQuantity(item *bh2e.Item) (*bh2e.ItemPatch, error) {
	if err := checkStocked(item); err != nil {
		return nil, err
	}

	quantity := item.Quantity + 1
	return &bh2e.ItemPatch{ItemID: item.ID, Quantity: &quantity}, nil
}

// DecrementQuantity removes one from a stocked item's quantity, never below zero
func DecrementQuantity(item *bh2e.Item) (*bh2e.ItemPatch, error) {
	if err := checkStocked(item); err != nil {
		return nil, err
	}
	if item.Quantity <= 0 {
		return nil, errors.NotEligiblef(ReasonQuantityZero,
			"unable to decrease quantity for %s (%s) as it is already at zero", item.Name, item.ID)
	}

	quantity := item.Quantity - 1
	return &bh2e.ItemPatch{ItemID: item.ID, Quantity: &quantity}, nil
}
