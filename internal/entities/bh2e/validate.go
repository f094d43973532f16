package bh2e

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

var validate = validator.New()

// checkStruct runs the struct tag rules on v and reports each failed field
func checkStruct(v interface{}, context string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, context+" validation failed")
	}

	vb := errors.NewValidationBuilder()
	for _, fe := range fieldErrs {
		vb.Fieldf(strings.ToLower(fe.Namespace()), "failed %s", fe.Tag())
	}
	return vb.Build()
}

// Validate checks the stored shape of an actor and every item it owns. Broken armour
// dice may not exceed the item's total.
func (a *Actor) Validate() error {
	if a == nil {
		return errors.InvalidArgument("actor cannot be nil")
	}
	return checkStruct(a, "actor")
}

// Validate checks a single item the same way Actor.Validate checks each owned item
func (i *Item) Validate() error {
	if i == nil {
		return errors.InvalidArgument("item cannot be nil")
	}
	return checkStruct(i, "item")
}
