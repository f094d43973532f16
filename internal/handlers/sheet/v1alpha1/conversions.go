package v1alpha1

import (
	"encoding/json"
	"sort"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// Request field names
const (
	FieldItemID    = "item_id"
	FieldActorID   = "actor_id"
	FieldAttribute = "attribute"
	FieldKind      = "kind"
	FieldAsRitual  = "as_ritual"
)

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func boolField(req *structpb.Struct, name string) bool {
	return req.GetFields()[name].GetBoolValue()
}

func requireField(req *structpb.Struct, name string) (string, error) {
	value := stringField(req, name)
	if value == "" {
		return "", errors.InvalidArgumentf("%s is required", name)
	}
	return value, nil
}

type rollPayload struct {
	Formula string `json:"formula"`
	Total   int    `json:"total"`
	Results []int  `json:"results"`
}

type itemActionPayload struct {
	ActorID string     `json:"actor_id"`
	Applied bool       `json:"applied"`
	Reason  string     `json:"reason,omitempty"`
	Item    *bh2e.Item `json:"item,omitempty"`
}

type rollUsageDiePayload struct {
	itemActionPayload
	Outcome string       `json:"outcome,omitempty"`
	Roll    *rollPayload `json:"roll,omitempty"`
}

type actorActionPayload struct {
	UpdatedItemIDs []string `json:"updated_item_ids"`
}

type attackPayload struct {
	Reason     string       `json:"reason,omitempty"`
	Hit        bool         `json:"hit"`
	Critical   bool         `json:"critical"`
	AttackRoll *rollPayload `json:"attack_roll,omitempty"`
	DamageRoll *rollPayload `json:"damage_roll,omitempty"`
}

type attributeTestPayload struct {
	Reason string       `json:"reason,omitempty"`
	Passed bool         `json:"passed"`
	Roll   *rollPayload `json:"roll,omitempty"`
}

type deleteItemPayload struct {
	ActorID string     `json:"actor_id"`
	Item    *bh2e.Item `json:"item"`
}

type actorPayload struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       bh2e.ActorType  `json:"type"`
	Attributes map[string]int  `json:"attributes,omitempty"`
	DamageDice bh2e.DamageDice `json:"damage_dice"`
}

type magicPayload struct {
	Kind  bh2e.MagicKind `json:"kind"`
	Level int            `json:"level"`
	Items []*bh2e.Item   `json:"items"`
}

type characterSheetPayload struct {
	Actor     actorPayload   `json:"actor"`
	Abilities []*bh2e.Item   `json:"abilities"`
	Armour    []*bh2e.Item   `json:"armour"`
	Classes   []*bh2e.Item   `json:"classes"`
	Equipment []*bh2e.Item   `json:"equipment"`
	Weapons   []*bh2e.Item   `json:"weapons"`
	Magic     []magicPayload `json:"magic"`
}

type creatureSheetPayload struct {
	Actor   actorPayload `json:"actor"`
	Actions []*bh2e.Item `json:"actions"`
}

// toStruct renders a payload as a google.protobuf.Struct through its JSON form
func toStruct(payload any) (*structpb.Struct, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build response struct")
	}
	return out, nil
}

func convertRoll(roll *engine.RollResult) *rollPayload {
	if roll == nil {
		return nil
	}
	return &rollPayload{
		Formula: roll.Formula,
		Total:   roll.Total,
		Results: roll.Results,
	}
}

func convertItemAction(out *sheet.ItemActionOutput) itemActionPayload {
	return itemActionPayload{
		ActorID: out.ActorID,
		Applied: out.Applied,
		Reason:  out.Reason,
		Item:    out.Item,
	}
}

func convertActor(actor *bh2e.Actor) actorPayload {
	return actorPayload{
		ID:         actor.ID,
		Name:       actor.Name,
		Type:       actor.Type,
		Attributes: actor.Attributes,
		DamageDice: actor.DamageDice,
	}
}

// convertMagic flattens the magic map into kind then level order
func convertMagic(magic map[sheet.MagicSlot][]*bh2e.Item) []magicPayload {
	out := make([]magicPayload, 0, len(magic))
	for slot, items := range magic {
		out = append(out, magicPayload{Kind: slot.Kind, Level: slot.Level, Items: items})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Level < out[j].Level
	})
	return out
}

func convertCharacterSheet(cs *sheet.CharacterSheet) characterSheetPayload {
	return characterSheetPayload{
		Actor:     convertActor(cs.Actor),
		Abilities: cs.Abilities,
		Armour:    cs.Armour,
		Classes:   cs.Classes,
		Equipment: cs.Equipment,
		Weapons:   cs.Weapons,
		Magic:     convertMagic(cs.Magic),
	}
}
