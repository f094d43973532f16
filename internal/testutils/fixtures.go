package testutils

import (
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

// Fixture item IDs. Each fixture actor prefixes these with its own ID so several
// fixtures can share one store.
const (
	ItemTorch     = "torch"
	ItemRations   = "rations"
	ItemRope      = "rope"
	ItemChainmail = "chainmail"
	ItemShield    = "shield"
	ItemSword     = "sword"
	ItemGreataxe  = "greataxe"
	ItemFists     = "fists"
	ItemMagicBolt = "magic-bolt"
	ItemSleep     = "sleep"
	ItemBless     = "bless"
	ItemSneak     = "sneak-attack"
	ItemClass     = "class"

	ItemBite = "bite"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Wren Ashdown"
)

// FixtureItemID returns the ID a fixture actor gives one of its items
func FixtureItemID(actorID, item string) string {
	return actorID + "-" + item
}

// CreateTestCharacter creates a character with one item of every kind the sheet tracks
func CreateTestCharacter(actorID string) *bh2e.Actor {
	id := func(item string) string { return FixtureItemID(actorID, item) }

	return &bh2e.Actor{
		ID:   actorID,
		Name: TestCharacterName,
		Type: bh2e.ActorTypeCharacter,
		Attributes: map[string]int{
			bh2e.AttributeStrength:     12,
			bh2e.AttributeDexterity:    14,
			bh2e.AttributeConstitution: 10,
			bh2e.AttributeIntelligence: 9,
			bh2e.AttributeWisdom:       13,
			bh2e.AttributeCharisma:     8,
		},
		DamageDice: bh2e.DamageDice{Armed: bh2e.DieD8, Unarmed: bh2e.DieD4},
		Items: []bh2e.Item{
			{ID: id(ItemClass), Name: "Warrior", Type: bh2e.ItemTypeClass},
			{
				ID:       id(ItemTorch),
				Name:     "Torches",
				Type:     bh2e.ItemTypeEquipment,
				UsageDie: &bh2e.UsageDie{Maximum: bh2e.DieD6, Current: bh2e.DieNone},
				Quantity: 3,
			},
			{
				ID:       id(ItemRations),
				Name:     "Rations",
				Type:     bh2e.ItemTypeEquipment,
				UsageDie: &bh2e.UsageDie{Maximum: bh2e.DieD8, Current: bh2e.DieD4},
				Quantity: 2,
			},
			{ID: id(ItemRope), Name: "Rope", Type: bh2e.ItemTypeEquipment, Quantity: 1},
			{
				ID:          id(ItemChainmail),
				Name:        "Chainmail",
				Type:        bh2e.ItemTypeArmour,
				ArmourValue: &bh2e.ArmourValue{Total: 3, Broken: 1},
			},
			{
				ID:          id(ItemShield),
				Name:        "Shield",
				Type:        bh2e.ItemTypeArmour,
				ArmourValue: &bh2e.ArmourValue{Total: 1, Broken: 0},
			},
			{
				ID:         id(ItemSword),
				Name:       "Longsword",
				Type:       bh2e.ItemTypeWeapon,
				WeaponKind: bh2e.WeaponKindArmed,
				WeaponSize: bh2e.WeaponSizeStandard,
			},
			{
				ID:         id(ItemGreataxe),
				Name:       "Greataxe",
				Type:       bh2e.ItemTypeWeapon,
				WeaponKind: bh2e.WeaponKindArmed,
				WeaponSize: bh2e.WeaponSizeLarge,
			},
			{
				ID:         id(ItemFists),
				Name:       "Fists",
				Type:       bh2e.ItemTypeWeapon,
				WeaponKind: bh2e.WeaponKindUnarmed,
				WeaponSize: bh2e.WeaponSizeStandard,
			},
			{ID: id(ItemMagicBolt), Name: "Magic Bolt", Type: bh2e.ItemTypeMagic, Kind: bh2e.MagicKindSpell, Level: 1},
			{ID: id(ItemSleep), Name: "Sleep", Type: bh2e.ItemTypeMagic, Kind: bh2e.MagicKindSpell, Level: 2},
			{ID: id(ItemBless), Name: "Bless", Type: bh2e.ItemTypeMagic, Kind: bh2e.MagicKindPrayer, Level: 1},
			{ID: id(ItemSneak), Name: "Sneak Attack", Type: bh2e.ItemTypeAbility},
		},
	}
}

// CreateTestCreature creates a creature with a single natural attack
func CreateTestCreature(actorID string) *bh2e.Actor {
	return &bh2e.Actor{
		ID:   actorID,
		Name: "Cave Wolf",
		Type: bh2e.ActorTypeCreature,
		Items: []bh2e.Item{
			{
				ID:     FixtureItemID(actorID, ItemBite),
				Name:   "Bite",
				Type:   bh2e.ItemTypeCreatureAttack,
				Attack: "1d20",
				Damage: "1d6",
			},
		},
	}
}
