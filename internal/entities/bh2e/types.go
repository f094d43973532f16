// Package bh2e holds the Black Hack 2e actor and item model read and written by the sheet service
package bh2e

// DieType names a die size, or one of the two usage die sentinels
type DieType string

// Die types
const (
	DieNone      DieType = "none"
	DieD4        DieType = "d4"
	DieD6        DieType = "d6"
	DieD8        DieType = "d8"
	DieD10       DieType = "d10"
	DieD12       DieType = "d12"
	DieD20       DieType = "d20"
	DieExhausted DieType = "exhausted"
)

// IsStandard reports whether d is a rollable die size
func (d DieType) IsStandard() bool {
	switch d {
	case DieD4, DieD6, DieD8, DieD10, DieD12, DieD20:
		return true
	}
	return false
}

// ItemType tags what an owned item is
type ItemType string

// Item types
const (
	ItemTypeAbility        ItemType = "ability"
	ItemTypeArmour         ItemType = "armour"
	ItemTypeClass          ItemType = "class"
	ItemTypeEquipment      ItemType = "equipment"
	ItemTypeMagic          ItemType = "magic"
	ItemTypeWeapon         ItemType = "weapon"
	ItemTypeCreatureAttack ItemType = "creature-attack"
)

// MagicKind distinguishes spells from prayers
type MagicKind string

// Magic kinds
const (
	MagicKindSpell  MagicKind = "spell"
	MagicKindPrayer MagicKind = "prayer"
)

// Magic level tier range
const (
	MinMagicLevel = 1
	MaxMagicLevel = 10
)

// WeaponKind selects which damage die an attack uses
type WeaponKind string

// Weapon kinds
const (
	WeaponKindArmed   WeaponKind = "armed"
	WeaponKindUnarmed WeaponKind = "unarmed"
)

// WeaponSize marks large weapons, which add 1d4 to attack and damage
type WeaponSize string

// Weapon sizes
const (
	WeaponSizeStandard WeaponSize = "standard"
	WeaponSizeLarge    WeaponSize = "large"
)

// ActorType distinguishes player characters from creatures
type ActorType string

// Actor types
const (
	ActorTypeCharacter ActorType = "character"
	ActorTypeCreature  ActorType = "creature"
)

// Attribute names
const (
	AttributeStrength     = "strength"
	AttributeDexterity    = "dexterity"
	AttributeConstitution = "constitution"
	AttributeIntelligence = "intelligence"
	AttributeWisdom       = "wisdom"
	AttributeCharisma     = "charisma"
)

// UsageDie tracks a depletable resource. Current is DieNone until first rolled.
type UsageDie struct {
	Maximum DieType `json:"maximum" validate:"omitempty,oneof=none d4 d6 d8 d10 d12 d20"`
	Current DieType `json:"current" validate:"omitempty,oneof=none d4 d6 d8 d10 d12 d20 exhausted"`
}

// Active returns the die that would be rolled next
func (u *UsageDie) Active() DieType {
	if u.Current == DieNone || u.Current == "" {
		return u.Maximum
	}
	return u.Current
}

// ArmourValue is the armour die pool of an armour item
type ArmourValue struct {
	Total  int `json:"total" validate:"min=0"`
	Broken int `json:"broken" validate:"min=0,ltefield=Total"`
}

// DamageDice are the actor's damage dice, by weapon kind
type DamageDice struct {
	Armed   DieType `json:"armed" validate:"omitempty,oneof=none d4 d6 d8 d10 d12 d20"`
	Unarmed DieType `json:"unarmed" validate:"omitempty,oneof=none d4 d6 d8 d10 d12 d20"`
}

// Item is something owned by an actor
type Item struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name"`
	Type        ItemType     `json:"type" validate:"required"`
	Description string       `json:"description,omitempty"`
	UsageDie    *UsageDie    `json:"usage_die,omitempty"`
	ArmourValue *ArmourValue `json:"armour_value,omitempty"`
	Quantity    int          `json:"quantity" validate:"min=0"`
	Level       int          `json:"level,omitempty"`
	Kind        MagicKind    `json:"kind,omitempty"`
	Prepared    bool         `json:"prepared,omitempty"`
	WeaponKind  WeaponKind   `json:"weapon_kind,omitempty"`
	WeaponSize  WeaponSize   `json:"weapon_size,omitempty"`
	Attack      string       `json:"attack,omitempty"`
	Damage      string       `json:"damage,omitempty"`
}

// HasUsageDie reports whether the item tracks a usage die at all
func (i *Item) HasUsageDie() bool {
	return i.UsageDie != nil && i.UsageDie.Maximum != DieNone && i.UsageDie.Maximum != ""
}

// Actor owns items and carries the attributes that attacks and tests roll under
type Actor struct {
	ID         string         `json:"id" validate:"required"`
	Name       string         `json:"name"`
	Type       ActorType      `json:"type" validate:"required,oneof=character creature"`
	Attributes map[string]int `json:"attributes,omitempty"`
	DamageDice DamageDice     `json:"damage_dice"`
	Items      []Item         `json:"items,omitempty" validate:"dive"`
}

// FindItem returns the owned item with the given ID, or nil
func (a *Actor) FindItem(itemID string) *Item {
	for i := range a.Items {
		if a.Items[i].ID == itemID {
			return &a.Items[i]
		}
	}
	return nil
}

// ItemsOfType returns the owned items of type t in ownership order
func (a *Actor) ItemsOfType(t ItemType) []*Item {
	var out []*Item
	for i := range a.Items {
		if a.Items[i].Type == t {
			out = append(out, &a.Items[i])
		}
	}
	return out
}
