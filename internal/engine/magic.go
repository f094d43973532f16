package engine

import (
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

// Magic refusal reasons
const (
	ReasonNotMagic        = "not_magic"
	ReasonAlreadyPrepared = "already_prepared"
	ReasonNotPrepared     = "not_prepared"
)

func checkMagic(item *bh2e.Item) error {
	if item.Type != bh2e.ItemTypeMagic {
		return errors.NotEligiblef(ReasonNotMagic,
			"item %s (%s) is not a spell or prayer", item.Name, item.ID)
	}
	return nil
}

func preparedPatch(item *bh2e.Item, prepared bool) *bh2e.ItemPatch {
	return &bh2e.ItemPatch{ItemID: item.ID, Prepared: &prepared}
}

// PrepareMagic readies a spell or prayer for casting
func PrepareMagic(item *bh2e.Item) (*bh2e.ItemPatch, error) {
	if err := checkMagic(item); err != nil {
		return nil, err
	}
	if item.Prepared {
		return nil, errors.NotEligiblef(ReasonAlreadyPrepared,
			"%s (%s) is already prepared", item.Name, item.ID)
	}
	return preparedPatch(item, true), nil
}

// UnprepareMagic clears a prepared spell or prayer
func UnprepareMagic(item *bh2e.Item) (*bh2e.ItemPatch, error) {
	if err := checkMagic(item); err != nil {
		return nil, err
	}
	if !item.Prepared {
		return nil, errors.NotEligiblef(ReasonNotPrepared,
			"%s (%s) is not prepared", item.Name, item.ID)
	}
	return preparedPatch(item, false), nil
}

// CastMagic checks that item can be cast and returns the state change the cast causes.
// A normal cast needs the magic prepared and spends the preparation. A ritual needs no
// preparation and changes nothing, so the patch is nil.
func CastMagic(item *bh2e.Item, asRitual bool) (*bh2e.ItemPatch, error) {
	if err := checkMagic(item); err != nil {
		return nil, err
	}
	if asRitual {
		return nil, nil
	}
	if !item.Prepared {
		return nil, errors.NotEligiblef(ReasonNotPrepared,
			"%s (%s) must be prepared before it can be cast", item.Name, item.ID)
	}
	return preparedPatch(item, false), nil
}
