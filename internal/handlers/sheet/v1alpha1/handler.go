// Package v1alpha1 handles the sheet gRPC service interface
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
)

// HandlerConfig holds dependencies for the sheet handler
type HandlerConfig struct {
	SheetService sheet.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.SheetService == nil {
		return errors.InvalidArgument("sheet service is required")
	}
	return nil
}

// Handler implements SheetServiceServer on top of the sheet service
type Handler struct {
	sheetService sheet.Service
}

// NewHandler creates a new sheet handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService: cfg.SheetService,
	}, nil
}

var _ SheetServiceServer = (*Handler)(nil)

// respond converts a payload, mapping any error onto a gRPC status
func respond(payload any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := toStruct(payload)
	if err != nil {
		slog.Error("Failed to build response", "error", err)
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

type itemActionFunc func(context.Context, *sheet.ItemActionInput) (*sheet.ItemActionOutput, error)

func (h *Handler) itemAction(ctx context.Context, req *structpb.Struct, action itemActionFunc) (*structpb.Struct, error) {
	itemID, err := requireField(req, FieldItemID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := action(ctx, &sheet.ItemActionInput{ItemID: itemID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(convertItemAction(out), nil)
}

type actorActionFunc func(context.Context, *sheet.ActorActionInput) (*sheet.ActorActionOutput, error)

func (h *Handler) actorAction(ctx context.Context, req *structpb.Struct, action actorActionFunc) (*structpb.Struct, error) {
	actorID, err := requireField(req, FieldActorID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := action(ctx, &sheet.ActorActionInput{ActorID: actorID})
	if err != nil {
		return respond(nil, err)
	}

	ids := out.UpdatedItemIDs
	if ids == nil {
		ids = []string{}
	}
	return respond(actorActionPayload{UpdatedItemIDs: ids}, nil)
}

// RollUsageDie rolls the usage die of the item named by item_id
func (h *Handler) RollUsageDie(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	itemID, err := requireField(req, FieldItemID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.RollUsageDie(ctx, &sheet.RollUsageDieInput{ItemID: itemID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(rollUsageDiePayload{
		itemActionPayload: convertItemAction(&out.ItemActionOutput),
		Outcome:           string(out.Outcome),
		Roll:              convertRoll(out.Roll),
	}, nil)
}

// ResetUsageDie restores the usage die of the item named by item_id
func (h *Handler) ResetUsageDie(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.itemAction(ctx, req, h.sheetService.ResetUsageDie)
}

// ResetAllUsageDice restores every usage die of the actor named by actor_id
func (h *Handler) ResetAllUsageDice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.actorAction(ctx, req, h.sheetService.ResetAllUsageDice)
}

// BreakArmourDie breaks one armour die of the item named by item_id
func (h *Handler) BreakArmourDie(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.itemAction(ctx, req, h.sheetService.BreakArmourDie)
}

// RepairArmourDie repairs one armour die of the item named by item_id
func (h *Handler) RepairArmourDie(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.itemAction(ctx, req, h.sheetService.RepairArmourDie)
}

// RepairAllArmourDice repairs every armour die of the actor named by actor_id
func (h *Handler) RepairAllArmourDice(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.actorAction(ctx, req, h.sheetService.RepairAllArmourDice)
}

// IncrementQuantity adds one to the quantity of the item named by item_id
func (h *Handler) IncrementQuantity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.itemAction(ctx, req, h.sheetService.IncrementQuantity)
}

// DecrementQuantity removes one from the quantity of the item named by item_id
func (h *Handler) DecrementQuantity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.itemAction(ctx, req, h.sheetService.DecrementQuantity)
}

// PrepareMagic prepares the spell or prayer named by item_id
func (h *Handler) PrepareMagic(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.itemAction(ctx, req, h.sheetService.PrepareMagic)
}

// UnprepareMagic clears the preparation of the spell or prayer named by item_id
func (h *Handler) UnprepareMagic(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.itemAction(ctx, req, h.sheetService.UnprepareMagic)
}

// CastMagic casts the spell or prayer named by item_id, as a ritual when as_ritual is set
func (h *Handler) CastMagic(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	itemID, err := requireField(req, FieldItemID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.CastMagic(ctx, &sheet.CastMagicInput{
		ItemID:   itemID,
		AsRitual: boolField(req, FieldAsRitual),
	})
	if err != nil {
		return respond(nil, err)
	}
	return respond(convertItemAction(out), nil)
}

// Attack rolls an attack with the weapon named by item_id
func (h *Handler) Attack(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	itemID, err := requireField(req, FieldItemID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.Attack(ctx, &sheet.AttackInput{
		ItemID:    itemID,
		Attribute: stringField(req, FieldAttribute),
		Kind:      engine.FormulaKind(stringField(req, FieldKind)),
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(attackPayload{
		Reason:     out.Reason,
		Hit:        out.Hit,
		Critical:   out.Critical,
		AttackRoll: convertRoll(out.AttackRoll),
		DamageRoll: convertRoll(out.DamageRoll),
	}, nil)
}

// AttributeTest rolls a test under an attribute of the actor named by actor_id
func (h *Handler) AttributeTest(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actorID, err := requireField(req, FieldActorID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	attribute, err := requireField(req, FieldAttribute)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.AttributeTest(ctx, &sheet.AttributeTestInput{
		ActorID:   actorID,
		Attribute: attribute,
		Kind:      engine.FormulaKind(stringField(req, FieldKind)),
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(attributeTestPayload{
		Reason: out.Reason,
		Passed: out.Passed,
		Roll:   convertRoll(out.Roll),
	}, nil)
}

// DeleteItem removes the item named by item_id from its owner
func (h *Handler) DeleteItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	itemID, err := requireField(req, FieldItemID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.DeleteItem(ctx, &sheet.DeleteItemInput{ItemID: itemID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(deleteItemPayload{ActorID: out.ActorID, Item: out.Item}, nil)
}

// GetCharacterSheet returns the grouped sheet of the character named by actor_id
func (h *Handler) GetCharacterSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actorID, err := requireField(req, FieldActorID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.GetCharacterSheet(ctx, &sheet.GetCharacterSheetInput{ActorID: actorID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(convertCharacterSheet(out.Sheet), nil)
}

// GetCreatureSheet returns the sheet of the creature named by actor_id
func (h *Handler) GetCreatureSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actorID, err := requireField(req, FieldActorID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.GetCreatureSheet(ctx, &sheet.GetCreatureSheetInput{ActorID: actorID})
	if err != nil {
		return respond(nil, err)
	}
	return respond(creatureSheetPayload{
		Actor:   convertActor(out.Sheet.Actor),
		Actions: out.Sheet.Actions,
	}, nil)
}
