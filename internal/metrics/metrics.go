// Package metrics defines the Prometheus metrics exported by the sheet service
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names
const (
	namespace = "bh2e"

	MetricNameUsageDieRolls   = "usage_die_rolls_total"
	MetricNameArmourDice      = "armour_dice_changes_total"
	MetricNameQuantityChanges = "quantity_changes_total"
	MetricNameAttacks         = "attacks_total"
	MetricNameAttributeTests  = "attribute_tests_total"
	MetricNameMagicActions    = "magic_actions_total"
	MetricNameNotEligible     = "not_eligible_actions_total"
	MetricNameSheetItems      = "sheet_items_dropped_total"
	MetricNameChatMessages    = "chat_messages_total"
)

// Labels
const (
	LabelOutcome = "outcome"
	LabelAction  = "action"
	LabelReason  = "reason"
)

// Outcome label values
const (
	OutcomeHeld       = "held"
	OutcomeDegraded   = "degraded"
	OutcomeExhausted  = "exhausted"
	OutcomeBroken     = "broken"
	OutcomeRepaired   = "repaired"
	OutcomeIncrement  = "increment"
	OutcomeDecrement  = "decrement"
	OutcomeHit        = "hit"
	OutcomeCritical   = "critical"
	OutcomeMiss       = "miss"
	OutcomePassed     = "passed"
	OutcomeFailed     = "failed"
	OutcomePrepared   = "prepared"
	OutcomeUnprepared = "unprepared"
	OutcomeCast       = "cast"
	OutcomeRitual     = "ritual"
)

// Resource metrics
var (
	UsageDieRolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameUsageDieRolls,
			Help:      "Usage die rolls by outcome",
		},
		[]string{LabelOutcome},
	)

	ArmourDiceChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameArmourDice,
			Help:      "Armour dice broken or repaired",
		},
		[]string{LabelOutcome},
	)

	QuantityChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameQuantityChanges,
			Help:      "Equipment quantity changes by direction",
		},
		[]string{LabelOutcome},
	)
)

// Roll metrics
var (
	Attacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameAttacks,
			Help:      "Attack rolls by outcome",
		},
		[]string{LabelOutcome},
	)

	AttributeTests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameAttributeTests,
			Help:      "Attribute tests by outcome",
		},
		[]string{LabelOutcome},
	)

	MagicActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameMagicActions,
			Help:      "Spells and prayers prepared, unprepared or cast",
		},
		[]string{LabelOutcome},
	)
)

// Operational metrics
var (
	NotEligible = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameNotEligible,
			Help:      "Actions refused because the item was not eligible",
		},
		[]string{LabelAction, LabelReason},
	)

	SheetItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameSheetItems,
			Help:      "Items left off a sheet view because they could not be categorised",
		},
		[]string{LabelReason},
	)

	ChatMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricNameChatMessages,
			Help:      "Messages posted to the chat log",
		},
	)
)
