package engine

import (
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

func armourValue(item *bh2e.Item) (*bh2e.ArmourValue, error) {
	if item.Type != bh2e.ItemTypeArmour || item.ArmourValue == nil {
		return nil, errors.NotEligiblef(ReasonNoArmourValue,
			"item %s (%s) has no armour dice", item.Name, item.ID)
	}
	return item.ArmourValue, nil
}

// BreakArmourDie marks one more armour die as broken
func BreakArmourDie(item *bh2e.Item) (*bh2e.ItemPatch, error) {
	av, err := armourValue(item)
	if err != nil {
		return nil, err
	}
	if av.Broken >= av.Total {
		return nil, errors.NotEligiblef(ReasonAllBroken,
			"all %d armour dice of %s (%s) are already broken", av.Total, item.Name, item.ID)
	}

	return &bh2e.ItemPatch{
		ItemID:      item.ID,
		ArmourValue: &bh2e.ArmourValuePatch{Broken: av.Broken + 1},
	}, nil
}

// RepairArmourDie repairs one broken armour die
func RepairArmourDie(item *bh2e.Item) (*bh2e.ItemPatch, error) {
	av, err := armourValue(item)
	if err != nil {
		return nil, err
	}
	if av.Broken <= 0 {
		return nil, errors.NotEligiblef(ReasonNoneBroken,
			"no armour dice of %s (%s) are broken", item.Name, item.ID)
	}

	return &bh2e.ItemPatch{
		ItemID:      item.ID,
		ArmourValue: &bh2e.ArmourValuePatch{Broken: av.Broken - 1},
	}, nil
}

// RepairAllArmour returns a patch clearing broken dice for each armour item that has any
func RepairAllArmour(actor *bh2e.Actor) []*bh2e.ItemPatch {
	var patches []*bh2e.ItemPatch
	for _, item := range actor.ItemsOfType(bh2e.ItemTypeArmour) {
		if item.ArmourValue == nil || item.ArmourValue.Broken <= 0 {
			continue
		}
		patches = append(patches, &bh2e.ItemPatch{
			ItemID:      item.ID,
			ArmourValue: &bh2e.ArmourValuePatch{Broken: 0},
		})
	}
	return patches
}
