package bh2e

import (
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

// UsageDiePatch changes the current usage die
type UsageDiePatch struct {
	Current DieType `json:"current" validate:"required,oneof=none d4 d6 d8 d10 d12 d20 exhausted"`
}

// ArmourValuePatch changes the broken armour die count
type ArmourValuePatch struct {
	Broken int `json:"broken" validate:"min=0"`
}

// ItemPatch is a partial update to one owned item. Nil fields are left untouched.
type ItemPatch struct {
	ItemID      string            `json:"item_id" validate:"required"`
	UsageDie    *UsageDiePatch    `json:"usage_die,omitempty"`
	ArmourValue *ArmourValuePatch `json:"armour_value,omitempty"`
	Quantity    *int              `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Prepared    *bool             `json:"prepared,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p *ItemPatch) IsEmpty() bool {
	return p.UsageDie == nil && p.ArmourValue == nil && p.Quantity == nil && p.Prepared == nil
}

// Validate checks field constraints before the patch is handed to a store
func (p *ItemPatch) Validate() error {
	if p == nil {
		return errors.InvalidArgument("patch cannot be nil")
	}
	if p.IsEmpty() {
		return errors.InvalidArgumentf("patch for item %s changes nothing", p.ItemID)
	}

	return checkStruct(p, "patch")
}

// Apply writes the patch onto item. The item must be the one the patch names.
func (p *ItemPatch) Apply(item *Item) {
	if p.UsageDie != nil {
		if item.UsageDie == nil {
			item.UsageDie = &UsageDie{Maximum: DieNone}
		}
		item.UsageDie.Current = p.UsageDie.Current
	}
	if p.ArmourValue != nil {
		if item.ArmourValue == nil {
			item.ArmourValue = &ArmourValue{}
		}
		item.ArmourValue.Broken = p.ArmourValue.Broken
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Prepared != nil {
		item.Prepared = *p.Prepared
	}
}
