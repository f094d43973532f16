package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/bh2e-sheets/internal/services/sheet"
	sheetmock "github.com/KirkDiggler/bh2e-sheets/internal/services/sheet/mock"
	"github.com/KirkDiggler/bh2e-sheets/internal/testutils"
)

const testActorID = "act_wren"

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockSheet *sheetmock.MockService
	handler   *v1alpha1.Handler
	ctx       context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSheet = sheetmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SheetService: s.mockSheet})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestRollUsageDie() {
	torch := &bh2e.Item{
		ID:       "itm_torch",
		Name:     "Torches",
		Type:     bh2e.ItemTypeEquipment,
		UsageDie: &bh2e.UsageDie{Maximum: bh2e.DieD6, Current: bh2e.DieD4},
		Quantity: 3,
	}
	s.mockSheet.EXPECT().
		RollUsageDie(s.ctx, &sheet.RollUsageDieInput{ItemID: "itm_torch"}).
		Return(&sheet.RollUsageDieOutput{
			ItemActionOutput: sheet.ItemActionOutput{ActorID: testActorID, Applied: true, Item: torch},
			Outcome:          engine.UsageDieDegraded,
			Roll:             &engine.RollResult{Formula: "1d6", Total: 2, Results: []int{2}},
		}, nil)

	resp, err := s.handler.RollUsageDie(s.ctx, s.request(map[string]any{"item_id": "itm_torch"}))

	s.Require().NoError(err)
	got := resp.AsMap()
	s.Equal(testActorID, got["actor_id"])
	s.Equal(true, got["applied"])
	s.Equal("degraded", got["outcome"])

	item := got["item"].(map[string]any)
	s.Equal("d4", item["usage_die"].(map[string]any)["current"])
	s.Equal(float64(3), item["quantity"])

	roll := got["roll"].(map[string]any)
	s.Equal("1d6", roll["formula"])
	s.Equal([]any{float64(2)}, roll["results"])
}

func (s *HandlerTestSuite) TestItemActionNoOpReportsReason() {
	s.mockSheet.EXPECT().
		BreakArmourDie(s.ctx, &sheet.ItemActionInput{ItemID: "itm_chain"}).
		Return(&sheet.ItemActionOutput{ActorID: testActorID, Reason: engine.ReasonAllBroken}, nil)

	resp, err := s.handler.BreakArmourDie(s.ctx, s.request(map[string]any{"item_id": "itm_chain"}))

	s.Require().NoError(err)
	s.Equal(false, resp.AsMap()["applied"])
	s.Equal(engine.ReasonAllBroken, resp.AsMap()["reason"])
}

func (s *HandlerTestSuite) TestItemActionsRequireItemID() {
	calls := map[string]func(context.Context, *structpb.Struct) (*structpb.Struct, error){
		"roll":      s.handler.RollUsageDie,
		"reset":     s.handler.ResetUsageDie,
		"break":     s.handler.BreakArmourDie,
		"repair":    s.handler.RepairArmourDie,
		"increment": s.handler.IncrementQuantity,
		"decrement": s.handler.DecrementQuantity,
		"prepare":   s.handler.PrepareMagic,
		"unprepare": s.handler.UnprepareMagic,
		"cast":      s.handler.CastMagic,
		"attack":    s.handler.Attack,
		"delete":    s.handler.DeleteItem,
	}

	for name, call := range calls {
		s.Run(name, func() {
			_, err := call(s.ctx, s.request(map[string]any{}))
			s.requireCode(err, codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestActorActionsRequireActorID() {
	calls := map[string]func(context.Context, *structpb.Struct) (*structpb.Struct, error){
		"reset all":       s.handler.ResetAllUsageDice,
		"repair all":      s.handler.RepairAllArmourDice,
		"attribute test":  s.handler.AttributeTest,
		"character sheet": s.handler.GetCharacterSheet,
		"creature sheet":  s.handler.GetCreatureSheet,
	}

	for name, call := range calls {
		s.Run(name, func() {
			_, err := call(s.ctx, s.request(map[string]any{"attribute": "strength"}))
			s.requireCode(err, codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestResetAllWithNothingToReset() {
	s.mockSheet.EXPECT().
		ResetAllUsageDice(s.ctx, &sheet.ActorActionInput{ActorID: testActorID}).
		Return(&sheet.ActorActionOutput{}, nil)

	resp, err := s.handler.ResetAllUsageDice(s.ctx, s.request(map[string]any{"actor_id": testActorID}))

	s.Require().NoError(err)
	s.Equal([]any{}, resp.AsMap()["updated_item_ids"])
}

func (s *HandlerTestSuite) TestPrepareMagic() {
	sleep := &bh2e.Item{ID: "itm_sleep", Name: "Sleep", Type: bh2e.ItemTypeMagic, Level: 2, Prepared: true}
	s.mockSheet.EXPECT().
		PrepareMagic(s.ctx, &sheet.ItemActionInput{ItemID: "itm_sleep"}).
		Return(&sheet.ItemActionOutput{ActorID: testActorID, Applied: true, Item: sleep}, nil)

	resp, err := s.handler.PrepareMagic(s.ctx, s.request(map[string]any{"item_id": "itm_sleep"}))

	s.Require().NoError(err)
	s.Equal(true, resp.AsMap()["applied"])
	s.Equal(true, resp.AsMap()["item"].(map[string]any)["prepared"])
}

func (s *HandlerTestSuite) TestCastMagicPassesRitualFlag() {
	testCases := []struct {
		name     string
		fields   map[string]any
		asRitual bool
	}{
		{name: "prepared cast", fields: map[string]any{"item_id": "itm_sleep"}},
		{name: "ritual", fields: map[string]any{"item_id": "itm_sleep", "as_ritual": true}, asRitual: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockSheet.EXPECT().
				CastMagic(s.ctx, &sheet.CastMagicInput{ItemID: "itm_sleep", AsRitual: tc.asRitual}).
				Return(&sheet.ItemActionOutput{ActorID: testActorID, Applied: true}, nil)

			resp, err := s.handler.CastMagic(s.ctx, s.request(tc.fields))

			s.Require().NoError(err)
			s.Equal(true, resp.AsMap()["applied"])
		})
	}
}

func (s *HandlerTestSuite) TestCastUnpreparedMagicReportsReason() {
	s.mockSheet.EXPECT().
		CastMagic(s.ctx, &sheet.CastMagicInput{ItemID: "itm_sleep"}).
		Return(&sheet.ItemActionOutput{ActorID: testActorID, Reason: engine.ReasonNotPrepared}, nil)

	resp, err := s.handler.CastMagic(s.ctx, s.request(map[string]any{"item_id": "itm_sleep"}))

	s.Require().NoError(err)
	s.Equal(false, resp.AsMap()["applied"])
	s.Equal(engine.ReasonNotPrepared, resp.AsMap()["reason"])
}

func (s *HandlerTestSuite) TestAttack() {
	s.mockSheet.EXPECT().
		Attack(s.ctx, &sheet.AttackInput{
			ItemID:    "itm_sword",
			Attribute: bh2e.AttributeDexterity,
			Kind:      engine.FormulaAdvantage,
		}).
		Return(&sheet.AttackOutput{
			Hit:        true,
			Critical:   true,
			AttackRoll: &engine.RollResult{Formula: "2d20kl", Total: 1, Results: []int{1, 9}},
			DamageRoll: &engine.RollResult{Formula: "(1d8)*2", Total: 10, Results: []int{5}},
		}, nil)

	resp, err := s.handler.Attack(s.ctx, s.request(map[string]any{
		"item_id":   "itm_sword",
		"attribute": "dexterity",
		"kind":      "advantage",
	}))

	s.Require().NoError(err)
	got := resp.AsMap()
	s.Equal(true, got["hit"])
	s.Equal(true, got["critical"])
	s.Equal(float64(10), got["damage_roll"].(map[string]any)["total"])
}

func (s *HandlerTestSuite) TestAttackMissHasNoDamageRoll() {
	s.mockSheet.EXPECT().
		Attack(s.ctx, gomock.Any()).
		Return(&sheet.AttackOutput{
			AttackRoll: &engine.RollResult{Formula: "1d20", Total: 17, Results: []int{17}},
		}, nil)

	resp, err := s.handler.Attack(s.ctx, s.request(map[string]any{"item_id": "itm_sword"}))

	s.Require().NoError(err)
	_, ok := resp.AsMap()["damage_roll"]
	s.False(ok)
}

func (s *HandlerTestSuite) TestAttributeTest() {
	s.mockSheet.EXPECT().
		AttributeTest(s.ctx, &sheet.AttributeTestInput{
			ActorID:   testActorID,
			Attribute: bh2e.AttributeWisdom,
			Kind:      engine.FormulaKind(""),
		}).
		Return(&sheet.AttributeTestOutput{
			Passed: true,
			Roll:   &engine.RollResult{Formula: "1d20", Total: 4, Results: []int{4}},
		}, nil)

	resp, err := s.handler.AttributeTest(s.ctx, s.request(map[string]any{
		"actor_id":  testActorID,
		"attribute": "wisdom",
	}))

	s.Require().NoError(err)
	s.Equal(true, resp.AsMap()["passed"])
}

func (s *HandlerTestSuite) TestErrorMapping() {
	testCases := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{name: "not found", err: errors.NotFound("no owner for item"), expected: codes.NotFound},
		{name: "not eligible", err: errors.NotEligiblef(engine.ReasonNoUsageDie, "no usage die"), expected: codes.FailedPrecondition},
		{name: "invalid level", err: errors.InvalidLevel(11, 1, 10), expected: codes.OutOfRange},
		{name: "unknown variant", err: errors.UnknownVariant("formula kind", "lucky"), expected: codes.InvalidArgument},
		{name: "aborted", err: errors.Abortedf("actor %s changed", testActorID), expected: codes.Aborted},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockSheet.EXPECT().
				DecrementQuantity(s.ctx, gomock.Any()).
				Return(nil, tc.err)

			_, err := s.handler.DecrementQuantity(s.ctx, s.request(map[string]any{"item_id": "itm_torch"}))
			s.requireCode(err, tc.expected)
		})
	}
}

func (s *HandlerTestSuite) TestGetCharacterSheet() {
	actor := testutils.CreateTestCharacter(testActorID)
	bolt := actor.FindItem(testutils.FixtureItemID(testActorID, testutils.ItemMagicBolt))
	sleep := actor.FindItem(testutils.FixtureItemID(testActorID, testutils.ItemSleep))
	bless := actor.FindItem(testutils.FixtureItemID(testActorID, testutils.ItemBless))

	s.mockSheet.EXPECT().
		GetCharacterSheet(s.ctx, &sheet.GetCharacterSheetInput{ActorID: testActorID}).
		Return(&sheet.GetCharacterSheetOutput{Sheet: &sheet.CharacterSheet{
			Actor: actor,
			Magic: map[sheet.MagicSlot][]*bh2e.Item{
				{Kind: bh2e.MagicKindSpell, Level: 2}:  {sleep},
				{Kind: bh2e.MagicKindSpell, Level: 1}:  {bolt},
				{Kind: bh2e.MagicKindPrayer, Level: 1}: {bless},
			},
		}}, nil)

	resp, err := s.handler.GetCharacterSheet(s.ctx, s.request(map[string]any{"actor_id": testActorID}))

	s.Require().NoError(err)
	got := resp.AsMap()
	s.Equal(testutils.TestCharacterName, got["actor"].(map[string]any)["name"])
	_, hasItems := got["actor"].(map[string]any)["items"]
	s.False(hasItems, "items are only listed in their groups")

	magic := got["magic"].([]any)
	s.Require().Len(magic, 3)
	order := make([]string, len(magic))
	for i, m := range magic {
		slot := m.(map[string]any)
		order[i] = slot["kind"].(string) + "/" + slot["items"].([]any)[0].(map[string]any)["name"].(string)
	}
	s.Equal([]string{"prayer/Bless", "spell/Magic Bolt", "spell/Sleep"}, order)
}

func (s *HandlerTestSuite) TestGetCreatureSheet() {
	creature := testutils.CreateTestCreature("act_wolf")
	s.mockSheet.EXPECT().
		GetCreatureSheet(s.ctx, &sheet.GetCreatureSheetInput{ActorID: "act_wolf"}).
		Return(&sheet.GetCreatureSheetOutput{Sheet: &sheet.CreatureSheet{
			Actor:   creature,
			Actions: creature.ItemsOfType(bh2e.ItemTypeCreatureAttack),
		}}, nil)

	resp, err := s.handler.GetCreatureSheet(s.ctx, s.request(map[string]any{"actor_id": "act_wolf"}))

	s.Require().NoError(err)
	actions := resp.AsMap()["actions"].([]any)
	s.Require().Len(actions, 1)
	s.Equal("1d6", actions[0].(map[string]any)["damage"])
}

// TestServiceOverGRPC drives the registered service through a real client connection
func (s *HandlerTestSuite) TestServiceOverGRPC() {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	v1alpha1.RegisterSheetServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := v1alpha1.NewSheetServiceClient(conn)

	s.mockSheet.EXPECT().
		IncrementQuantity(gomock.Any(), &sheet.ItemActionInput{ItemID: "itm_torch"}).
		Return(&sheet.ItemActionOutput{
			ActorID: testActorID,
			Applied: true,
			Item:    &bh2e.Item{ID: "itm_torch", Name: "Torches", Quantity: 4},
		}, nil)

	resp, err := client.Call(s.ctx, v1alpha1.MethodIncrementQuantity, s.request(map[string]any{"item_id": "itm_torch"}))
	s.Require().NoError(err)
	s.Equal(float64(4), resp.AsMap()["item"].(map[string]any)["quantity"])

	s.mockSheet.EXPECT().
		DeleteItem(gomock.Any(), &sheet.DeleteItemInput{ItemID: "itm_gone"}).
		Return(nil, errors.NotFound("no owner for item itm_gone"))

	_, err = client.Call(s.ctx, v1alpha1.MethodDeleteItem, s.request(map[string]any{"item_id": "itm_gone"}))
	s.requireCode(err, codes.NotFound)
}
