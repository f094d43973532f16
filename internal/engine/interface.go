// Package engine holds the Black Hack rules for depletable item resources and attacks.
//
// Every rule here is a pure function of the current item state and a dice outcome. Rules
// return a typed patch describing the next state, or nil when nothing changes; they never
// touch storage.
package engine

//go:generate mockgen -destination=mock/mock_roller.go -package=enginemock github.com/KirkDiggler/bh2e-sheets/internal/engine DiceRoller

import (
	"context"
)

// DiceRoller evaluates a dice formula produced by GenerateFormula and the attack helpers
type DiceRoller interface {
	// Roll rolls formula and returns the total and every individual die result in roll order
	Roll(ctx context.Context, formula string) (*RollResult, error)
}
