package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/metrics"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// DefaultAttackAttribute is rolled under when an attack names no attribute
const DefaultAttackAttribute = bh2e.AttributeStrength

func formulaKind(kind engine.FormulaKind) (engine.FormulaKind, error) {
	parsed, ok := engine.ParseFormulaKind(string(kind))
	if !ok {
		err := errors.UnknownVariant("formula kind", string(kind))
		slog.Warn(errors.GetMessage(err), "kind", kind)
		return "", err
	}
	return parsed, nil
}

func attributeValue(actor *bh2e.Actor, attribute string) (int, error) {
	value, ok := actor.Attributes[attribute]
	if !ok {
		return 0, errors.NotEligiblef(engine.ReasonUnknownAttribute,
			"actor %s (%s) has no %q attribute", actor.Name, actor.ID, attribute)
	}
	return value, nil
}

// Attack rolls an attack with a weapon against one of its owner's attributes. A hit
// rolls damage; a miss does not.
func (o *Orchestrator) Attack(ctx context.Context, input *sheet.AttackInput) (*sheet.AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	kind, err := formulaKind(input.Kind)
	if err != nil {
		return nil, err
	}

	actor, weapon, err := o.resolve(ctx, ActionAttack, input.ItemID)
	if err != nil {
		return nil, err
	}

	attribute := input.Attribute
	if attribute == "" {
		attribute = DefaultAttackAttribute
	}

	target, err := o.attackTarget(actor, weapon, attribute)
	if err != nil {
		reason, err := refuse(ActionAttack, actor, weapon.ID, err)
		if err != nil {
			return nil, err
		}
		return &sheet.AttackOutput{Reason: reason}, nil
	}

	if err := o.post(ctx, actor, o.text.Attacking(actor.Name, weapon.Name), nil); err != nil {
		return nil, err
	}

	attackRoll, err := o.roll(ctx, ActionAttack, actor, engine.AttackFormula(kind, weapon.WeaponSize))
	if err != nil {
		return nil, err
	}
	if err := o.post(ctx, actor, "", attackRoll); err != nil {
		return nil, err
	}

	outcome := engine.ResolveAttack(attackRoll, target)
	output := &sheet.AttackOutput{
		Hit:        outcome.Hit,
		Critical:   outcome.Critical,
		AttackRoll: attackRoll,
	}

	slog.Info("Attack resolved",
		"actor_id", actor.ID,
		"item_id", weapon.ID,
		"attribute", attribute,
		"target", target,
		"total", attackRoll.Total,
		"first_die", attackRoll.FirstDie(),
		"hit", outcome.Hit,
		"critical", outcome.Critical,
	)

	if !outcome.Hit {
		metrics.Attacks.WithLabelValues(metrics.OutcomeMiss).Inc()
		if err := o.post(ctx, actor, o.text.AttackMiss(), nil); err != nil {
			return nil, err
		}
		return output, nil
	}

	damageFormula := engine.DamageFormula(actor.DamageDice, weapon.WeaponKind, weapon.WeaponSize, outcome.Critical)
	damageRoll, err := o.roll(ctx, ActionAttack, actor, damageFormula)
	if err != nil {
		return nil, err
	}
	output.DamageRoll = damageRoll

	hitMessage := o.text.NormalHit()
	if outcome.Critical {
		metrics.Attacks.WithLabelValues(metrics.OutcomeCritical).Inc()
		hitMessage = o.text.CriticalHit()
	} else {
		metrics.Attacks.WithLabelValues(metrics.OutcomeHit).Inc()
	}
	if err := o.post(ctx, actor, hitMessage, nil); err != nil {
		return nil, err
	}
	if err := o.post(ctx, actor, "", damageRoll); err != nil {
		return nil, err
	}

	return output, nil
}

// attackTarget checks the weapon can be used and returns the attribute value to roll under
func (o *Orchestrator) attackTarget(actor *bh2e.Actor, weapon *bh2e.Item, attribute string) (int, error) {
	if weapon.Type != bh2e.ItemTypeWeapon {
		return 0, errors.NotEligiblef(engine.ReasonNotWeapon,
			"item %s (%s) is not a weapon", weapon.Name, weapon.ID)
	}

	die := actor.DamageDice.Armed
	if weapon.WeaponKind == bh2e.WeaponKindUnarmed {
		die = actor.DamageDice.Unarmed
	}
	if !die.IsStandard() {
		return 0, errors.NotEligiblef(engine.ReasonNoDamageDie,
			"actor %s (%s) has no damage die for %s", actor.Name, actor.ID, weapon.Name)
	}

	return attributeValue(actor, attribute)
}

// AttributeTest rolls a d20 under one of an actor's attributes
func (o *Orchestrator) AttributeTest(ctx context.Context, input *sheet.AttributeTestInput) (*sheet.AttributeTestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actorID", input.ActorID, vb)
	errors.ValidateRequired("attribute", input.Attribute, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	kind, err := formulaKind(input.Kind)
	if err != nil {
		return nil, err
	}

	actor, err := o.loadActor(ctx, ActionAttributeTest, input.ActorID)
	if err != nil {
		return nil, err
	}

	target, err := attributeValue(actor, input.Attribute)
	if err != nil {
		reason, err := refuse(ActionAttributeTest, actor, "", err)
		if err != nil {
			return nil, err
		}
		return &sheet.AttributeTestOutput{Reason: reason}, nil
	}

	if err := o.post(ctx, actor, o.text.RollingAttributeTest(actor.Name, input.Attribute), nil); err != nil {
		return nil, err
	}

	roll, err := o.roll(ctx, ActionAttributeTest, actor, engine.GenerateFormula(kind, ""))
	if err != nil {
		return nil, err
	}
	if err := o.post(ctx, actor, "", roll); err != nil {
		return nil, err
	}

	passed := engine.AttributeTestPassed(roll, target)
	result := o.text.AttributeTestFailed()
	if passed {
		metrics.AttributeTests.WithLabelValues(metrics.OutcomePassed).Inc()
		result = o.text.AttributeTestSuccess()
	} else {
		metrics.AttributeTests.WithLabelValues(metrics.OutcomeFailed).Inc()
	}
	if err := o.post(ctx, actor, result, nil); err != nil {
		return nil, err
	}

	return &sheet.AttributeTestOutput{Passed: passed, Roll: roll}, nil
}
