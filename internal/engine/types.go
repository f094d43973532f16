package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

// RollResult is the outcome of one formula evaluation
type RollResult struct {
	// Formula that was rolled, e.g. "2d20kl+1d4"
	Formula string

	// Total after keep/drop and multipliers
	Total int

	// Results holds every die rolled, dropped dice included, in roll order
	Results []int
}

// FirstDie returns the raw result of the first die rolled, or 0 for an empty roll
func (r *RollResult) FirstDie() int {
	if r == nil || len(r.Results) == 0 {
		return 0
	}
	return r.Results[0]
}

// String renders the roll for the chat log, e.g. "2d20kl [4, 17] = 4"
func (r *RollResult) String() string {
	parts := make([]string, len(r.Results))
	for i, v := range r.Results {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%s [%s] = %d", r.Formula, strings.Join(parts, ", "), r.Total)
}

// FormulaKind selects how a d20 test is rolled
type FormulaKind string

// Formula kinds. Black Hack tests roll under, so advantage keeps the lower die.
const (
	FormulaPlain        FormulaKind = "plain"
	FormulaAdvantage    FormulaKind = "advantage"
	FormulaDisadvantage FormulaKind = "disadvantage"
)

// UsageDieOutcome describes what a usage die roll did to the die
type UsageDieOutcome string

// Usage die outcomes
const (
	UsageDieHeld      UsageDieOutcome = "held"
	UsageDieDegraded  UsageDieOutcome = "degraded"
	UsageDieExhausted UsageDieOutcome = "exhausted"
)

// UsageDieTransition is the next state computed from a usage die roll
type UsageDieTransition struct {
	Outcome UsageDieOutcome
	From    bh2e.DieType
	To      bh2e.DieType

	// Patch is nil when the die held
	Patch *bh2e.ItemPatch
}

// AttackOutcome is the hit/critical decision for an attack roll
type AttackOutcome struct {
	Hit      bool
	Critical bool
}
