// Package rpgtoolkit implements the engine capabilities on top of rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

var (
	// "(1d8+1d4)*2"
	multiplierRegex = regexp.MustCompile(`^\((.+)\)\*(\d+)$`)

	// "2d20kl", "1d6", "d4"
	termRegex = regexp.MustCompile(`^(\d*)d(\d+)(kl|kh)?(\d*)$`)

	// "3"
	constantRegex = regexp.MustCompile(`^\d+$`)
)

// RollerConfig holds the dependencies for the dice roller
type RollerConfig struct {
	// Roller is the toolkit randomness source. Defaults to dice.DefaultRoller.
	Roller dice.Roller
}

// Roller evaluates the formulas the engine generates using rpg-toolkit dice
type Roller struct {
	roller dice.Roller
}

// NewRoller creates a new formula roller
func NewRoller(cfg *RollerConfig) *Roller {
	r := dice.DefaultRoller
	if cfg != nil && cfg.Roller != nil {
		r = cfg.Roller
	}
	return &Roller{roller: r}
}

// Verify that Roller implements engine.DiceRoller
var _ engine.DiceRoller = (*Roller)(nil)

// Roll evaluates formula. Supported syntax is a sum of NdS terms, optionally with a
// kl/kh keep suffix, flat constants, and an outer "(expr)*N" multiplier.
func (r *Roller) Roll(_ context.Context, formula string) (*engine.RollResult, error) {
	expr := strings.ReplaceAll(strings.ToLower(formula), " ", "")
	if expr == "" {
		return nil, errors.InvalidArgument("dice formula is required")
	}

	multiplier := 1
	if matches := multiplierRegex.FindStringSubmatch(expr); matches != nil {
		expr = matches[1]
		m, err := strconv.Atoi(matches[2])
		if err != nil || m <= 0 {
			return nil, errors.InvalidArgumentf("invalid multiplier in formula: %s", formula)
		}
		multiplier = m
	}

	result := &engine.RollResult{Formula: formula}
	sum := 0
	for _, term := range strings.Split(expr, "+") {
		kept, rolled, err := r.rollTerm(term)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", formula)
		}
		sum += kept
		result.Results = append(result.Results, rolled...)
	}
	result.Total = sum * multiplier

	slog.Debug("Formula rolled",
		"formula", formula,
		"results", result.Results,
		"total", result.Total,
	)

	return result, nil
}

// rollTerm returns the kept value of a single term and every die rolled for it
func (r *Roller) rollTerm(term string) (int, []int, error) {
	if constantRegex.MatchString(term) {
		v, err := strconv.Atoi(term)
		if err != nil {
			return 0, nil, errors.InvalidArgumentf("invalid constant: %s", term)
		}
		return v, nil, nil
	}

	matches := termRegex.FindStringSubmatch(term)
	if matches == nil {
		return 0, nil, errors.InvalidArgumentf("invalid dice term: %s (expected format: XdY)", term)
	}

	count := 1
	if matches[1] != "" {
		count, _ = strconv.Atoi(matches[1])
	}
	size, _ := strconv.Atoi(matches[2])
	if count <= 0 || size <= 0 {
		return 0, nil, errors.InvalidArgumentf("dice count and size must be positive: %s", term)
	}

	rolled, err := r.roller.RollN(count, size)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "failed to roll %dd%d", count, size)
	}

	keep := count
	if matches[3] != "" {
		keep = 1
		if matches[4] != "" {
			keep, _ = strconv.Atoi(matches[4])
		}
		if keep <= 0 || keep > count {
			return 0, nil, errors.InvalidArgumentf("cannot keep %d of %d dice: %s", keep, count, term)
		}
	}

	sorted := append([]int(nil), rolled...)
	sort.Ints(sorted)
	if matches[3] == "kh" {
		sorted = sorted[len(sorted)-keep:]
	} else {
		sorted = sorted[:keep]
	}

	total := 0
	for _, v := range sorted {
		total += v
	}

	return total, rolled, nil
}
