package engine

import (
	"fmt"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

// GenerateFormula builds a single-term formula. With a die type it rolls one of that
// die; without one it rolls the d20 test for kind.
func GenerateFormula(kind FormulaKind, die bh2e.DieType) string {
	if die != "" {
		return fmt.Sprintf("1%s", die)
	}

	switch kind {
	case FormulaAdvantage:
		return "2d20kl"
	case FormulaDisadvantage:
		return "2d20kh"
	default:
		return "1d20"
	}
}

// FormulaKindFromModifiers maps the modifier flags onto a formula kind. Advantage wins
// when both are set.
func FormulaKindFromModifiers(advantage, disadvantage bool) FormulaKind {
	switch {
	case advantage:
		return FormulaAdvantage
	case disadvantage:
		return FormulaDisadvantage
	default:
		return FormulaPlain
	}
}

// ParseFormulaKind converts a wire value, defaulting to plain for empty input
func ParseFormulaKind(value string) (FormulaKind, bool) {
	switch FormulaKind(value) {
	case "", FormulaPlain:
		return FormulaPlain, true
	case FormulaAdvantage:
		return FormulaAdvantage, true
	case FormulaDisadvantage:
		return FormulaDisadvantage, true
	}
	return "", false
}
