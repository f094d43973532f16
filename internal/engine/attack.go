package engine

import (
	"fmt"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

// NaturalOne is the die face that always hits and always crits
const NaturalOne = 1

// AttackFormula builds the attack roll. Large weapons add a flat 1d4.
func AttackFormula(kind FormulaKind, size bh2e.WeaponSize) string {
	formula := GenerateFormula(kind, "")
	if size == bh2e.WeaponSizeLarge {
		formula += "+" + GenerateFormula(kind, bh2e.DieD4)
	}
	return formula
}

// ResolveAttack decides hit and critical for an attack roll against attributeValue.
// A natural one on the first rolled die is both a hit and a critical, whatever the
// total; otherwise the attack hits when the total rolls under the attribute.
func ResolveAttack(roll *RollResult, attributeValue int) AttackOutcome {
	natural := roll.FirstDie() == NaturalOne
	hit := natural || roll.Total == NaturalOne || roll.Total < attributeValue

	return AttackOutcome{
		Hit:      hit,
		Critical: hit && natural,
	}
}

// DamageFormula builds the damage roll for a hit. Large weapons add 1d4 and a critical
// doubles the whole expression.
func DamageFormula(dice bh2e.DamageDice, kind bh2e.WeaponKind, size bh2e.WeaponSize, critical bool) string {
	die := dice.Armed
	if kind == bh2e.WeaponKindUnarmed {
		die = dice.Unarmed
	}

	formula := GenerateFormula(FormulaPlain, die)
	if size == bh2e.WeaponSizeLarge {
		formula = fmt.Sprintf("%s+%s", formula, GenerateFormula(FormulaPlain, bh2e.DieD4))
	}
	if critical {
		formula = fmt.Sprintf("(%s)*2", formula)
	}
	return formula
}

// AttributeTestPassed reports whether a test total rolls under the attribute
func AttributeTestPassed(roll *RollResult, attributeValue int) bool {
	return roll.Total < attributeValue
}
