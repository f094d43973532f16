package engine

import (
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

// UsageDieThreshold is the lowest roll that keeps a usage die at its size
const UsageDieThreshold = 3

// Reasons reported with NotEligible errors
const (
	ReasonNoUsageDie       = "no_usage_die"
	ReasonNotEquipment     = "not_equipment"
	ReasonSupplyDepleted   = "supply_depleted"
	ReasonAtMaximum        = "at_maximum"
	ReasonNoArmourValue    = "no_armour_value"
	ReasonAllBroken        = "all_broken"
	ReasonNoneBroken       = "none_broken"
	ReasonQuantityZero     = "quantity_zero"
	ReasonNotWeapon        = "not_weapon"
	ReasonUnknownAttribute = "unknown_attribute"
	ReasonNoDamageDie      = "no_damage_die"
	ReasonExhausted        = "exhausted"
)

var degradeLadder = map[bh2e.DieType]bh2e.DieType{
	bh2e.DieD20: bh2e.DieD12,
	bh2e.DieD12: bh2e.DieD10,
	bh2e.DieD10: bh2e.DieD8,
	bh2e.DieD8:  bh2e.DieD6,
	bh2e.DieD6:  bh2e.DieD4,
	bh2e.DieD4:  bh2e.DieExhausted,
}

// StepDown returns the next die on the ladder d20→d12→d10→d8→d6→d4→exhausted.
// Anything off the ladder stays where it is.
func StepDown(die bh2e.DieType) bh2e.DieType {
	if next, ok := degradeLadder[die]; ok {
		return next
	}
	return die
}

// UsageDieToRoll returns the die a usage die roll should use. An exhausted die is
// reported as DieExhausted without error; the caller treats that as a no-op. A die
// off the ladder is refused before anything is rolled.
func UsageDieToRoll(item *bh2e.Item) (bh2e.DieType, error) {
	if !item.HasUsageDie() {
		return "", errors.NotEligiblef(ReasonNoUsageDie,
			"item %s (%s) does not have a usage die", item.Name, item.ID)
	}
	if item.UsageDie.Current == bh2e.DieExhausted {
		return bh2e.DieExhausted, nil
	}

	active := item.UsageDie.Active()
	if !active.IsStandard() {
		return "", errors.UnknownVariant("usage die", string(active))
	}
	return active, nil
}

// NextUsageDie computes the usage die state after rolling total on the active die.
// Rolling under the threshold on a d4 exhausts the die and costs one unit of quantity,
// floored at zero; any other die steps one rung down the ladder. A die off the ladder
// holds, since there is no rung to step to.
func NextUsageDie(item *bh2e.Item, total int) *UsageDieTransition {
	from := item.UsageDie.Active()
	if total >= UsageDieThreshold || !from.IsStandard() {
		return &UsageDieTransition{Outcome: UsageDieHeld, From: from, To: from}
	}

	to := StepDown(from)
	patch := &bh2e.ItemPatch{
		ItemID:   item.ID,
		UsageDie: &bh2e.UsageDiePatch{Current: to},
	}

	if to == bh2e.DieExhausted {
		quantity := item.Quantity - 1
		if quantity < 0 {
			quantity = 0
		}
		patch.Quantity = &quantity
		return &UsageDieTransition{Outcome: UsageDieExhausted, From: from, To: to, Patch: patch}
	}

	return &UsageDieTransition{Outcome: UsageDieDegraded, From: from, To: to, Patch: patch}
}

// ResetUsageDie restores the current die to its maximum
func ResetUsageDie(item *bh2e.Item) (*bh2e.ItemPatch, error) {
	if item.Type != bh2e.ItemTypeEquipment {
		return nil, errors.NotEligiblef(ReasonNotEquipment,
			"item %s (%s) is not equipment", item.Name, item.ID)
	}
	if !item.HasUsageDie() {
		return nil, errors.NotEligiblef(ReasonNoUsageDie,
			"unable to reset the usage die for item %s (%s) as it does not have a usage die", item.Name, item.ID)
	}
	if item.Quantity <= 0 {
		return nil, errors.NotEligiblef(ReasonSupplyDepleted,
			"unable to reset the usage die for item %s (%s) as its supply is depleted", item.Name, item.ID)
	}
	if item.UsageDie.Current == item.UsageDie.Maximum {
		return nil, errors.NotEligiblef(ReasonAtMaximum,
			"unable to reset the usage die for item %s (%s) as it is at its maximum", item.Name, item.ID)
	}

	return &bh2e.ItemPatch{
		ItemID:   item.ID,
		UsageDie: &bh2e.UsageDiePatch{Current: item.UsageDie.Maximum},
	}, nil
}

// ResetAllUsageDice returns a reset patch for every equipment item that can be reset.
// Ineligible items are skipped.
func ResetAllUsageDice(actor *bh2e.Actor) []*bh2e.ItemPatch {
	var patches []*bh2e.ItemPatch
	for _, item := range actor.ItemsOfType(bh2e.ItemTypeEquipment) {
		patch, err := ResetUsageDie(item)
		if err != nil {
			continue
		}
		patches = append(patches, patch)
	}
	return patches
}
