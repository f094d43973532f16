// Package i18n renders the chat log messages posted by the sheet service
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
)

// Message keys
const (
	KeyAttacking            = "bh2e.messages.attacking"
	KeyCriticalHit          = "bh2e.messages.criticalHit"
	KeyNormalHit            = "bh2e.messages.normalHit"
	KeyAttackMiss           = "bh2e.messages.attackMiss"
	KeyRollingAttributeTest = "bh2e.messages.rollingAttributeTest"
	KeyAttributeTestSuccess = "bh2e.messages.attributeTestSuccess"
	KeyAttributeTestFailed  = "bh2e.messages.attributeTestFailed"
	KeyRollingUsageDie      = "bh2e.messages.rollingUsageDie"
	KeyUsageDieExhausted    = "bh2e.messages.usageDieExhausted"
	KeyReducingUsageDie     = "bh2e.messages.reducingUsageDie"
	KeyCastingMagic         = "bh2e.messages.castingMagic"
	KeyCastingRitual        = "bh2e.messages.castingRitual"

	attributeKeyPrefix = "bh2e.fields.labels.attributes."
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en"

var english = map[string]string{
	KeyAttacking:            "%[1]s attacks with %[2]s.",
	KeyCriticalHit:          "Critical hit!",
	KeyNormalHit:            "Hit!",
	KeyAttackMiss:           "The attack misses.",
	KeyRollingAttributeTest: "%[1]s makes a %[2]s test.",
	KeyAttributeTestSuccess: "The test succeeds.",
	KeyAttributeTestFailed:  "The test fails.",
	KeyRollingUsageDie:      "Rolling the usage die for %[1]s.",
	KeyUsageDieExhausted:    "%[1]s has been used up.",
	KeyReducingUsageDie:     "The usage die is reduced to %[1]s.",
	KeyCastingMagic:         "%[1]s casts %[2]s.",
	KeyCastingRitual:        "%[1]s casts %[2]s as a ritual.",

	attributeKeyPrefix + "strength":     "Strength",
	attributeKeyPrefix + "dexterity":    "Dexterity",
	attributeKeyPrefix + "constitution": "Constitution",
	attributeKeyPrefix + "intelligence": "Intelligence",
	attributeKeyPrefix + "wisdom":       "Wisdom",
	attributeKeyPrefix + "charisma":     "Charisma",
}

var catalogs = map[language.Tag]map[string]string{
	language.English: english,
}

// Translator renders chat messages for a single locale
type Translator struct {
	printer *message.Printer
}

// New builds a translator for locale. Locales without their own messages fall back
// to English.
func New(locale string) (*Translator, error) {
	if locale == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid locale %q", locale)
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, messages := range catalogs {
		for key, msg := range messages {
			if err := builder.SetString(lang, key, msg); err != nil {
				return nil, errors.Wrapf(err, "failed to register message %s", key)
			}
		}
	}

	matcher := language.NewMatcher(builder.Languages())
	_, index, _ := matcher.Match(tag)

	return &Translator{
		printer: message.NewPrinter(builder.Languages()[index], message.Catalog(builder)),
	}, nil
}

// Attacking announces an attack with a weapon
func (t *Translator) Attacking(actorName, weaponName string) string {
	return t.printer.Sprintf(KeyAttacking, actorName, weaponName)
}

func (t *Translator) CriticalHit() string { return t.printer.Sprintf(KeyCriticalHit) }
func (t *Translator) NormalHit() string   { return t.printer.Sprintf(KeyNormalHit) }
func (t *Translator) AttackMiss() string  { return t.printer.Sprintf(KeyAttackMiss) }

// RollingAttributeTest announces an attribute test. Unknown attributes are shown by name.
func (t *Translator) RollingAttributeTest(actorName, attribute string) string {
	return t.printer.Sprintf(KeyRollingAttributeTest, actorName, t.AttributeName(attribute))
}

func (t *Translator) AttributeTestSuccess() string { return t.printer.Sprintf(KeyAttributeTestSuccess) }
func (t *Translator) AttributeTestFailed() string  { return t.printer.Sprintf(KeyAttributeTestFailed) }

// RollingUsageDie announces a usage die roll for an item
func (t *Translator) RollingUsageDie(itemName string) string {
	return t.printer.Sprintf(KeyRollingUsageDie, itemName)
}

// UsageDieExhausted reports that an item's usage die ran out
func (t *Translator) UsageDieExhausted(itemName string) string {
	return t.printer.Sprintf(KeyUsageDieExhausted, itemName)
}

// ReducingUsageDie reports the die an item's usage die dropped to, e.g. "1d4"
func (t *Translator) ReducingUsageDie(die string) string {
	return t.printer.Sprintf(KeyReducingUsageDie, die)
}

// CastingMagic announces a prepared spell or prayer being cast
func (t *Translator) CastingMagic(actorName, itemName string) string {
	return t.printer.Sprintf(KeyCastingMagic, actorName, itemName)
}

func (t *Translator) CastingRitual(actorName, itemName string) string {
	return t.printer.Sprintf(KeyCastingRitual, actorName, itemName)
}

// AttributeName returns the long display name of an attribute
func (t *Translator) AttributeName(attribute string) string {
	key := attributeKeyPrefix + attribute
	if _, ok := english[key]; !ok {
		return attribute
	}
	return t.printer.Sprintf(key)
}
