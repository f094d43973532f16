package actor_test

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	redisclient "github.com/KirkDiggler/bh2e-sheets/internal/redis"
	"github.com/KirkDiggler/bh2e-sheets/internal/repositories/actor"
	"github.com/KirkDiggler/bh2e-sheets/internal/testutils"
)

const testActorID = "act_wren"

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	cleanup   func()
	repo      actor.Repository
	ctx       context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.miniRedis, s.cleanup = testutils.CreateTestRedisServer(s.T())

	repo, err := actor.NewRedis(&actor.RedisConfig{Client: s.client, OwnerCacheSize: 8})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) itemID(item string) string {
	return testutils.FixtureItemID(testActorID, item)
}

func (s *RedisRepositoryTestSuite) createCharacter() *bh2e.Actor {
	a := testutils.CreateTestCharacter(testActorID)
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: a})
	s.Require().NoError(err)
	return a
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *actor.RedisConfig
		wantErr bool
	}{
		{name: "valid config", config: &actor.RedisConfig{Client: s.client}},
		{name: "nil config", config: nil, wantErr: true},
		{name: "missing client", config: &actor.RedisConfig{}, wantErr: true},
		{name: "negative cache size", config: &actor.RedisConfig{Client: s.client, OwnerCacheSize: -1}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := actor.NewRedis(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created := s.createCharacter()

	s.True(s.miniRedis.Exists(actor.GetKey(testActorID)))

	out, err := s.repo.Get(s.ctx, actor.GetInput{ActorID: testActorID})
	s.Require().NoError(err)
	s.Equal(created, out.Actor)
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsDuplicates() {
	s.createCharacter()

	s.Run("same actor ID", func() {
		_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: testutils.CreateTestCharacter(testActorID)})
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("item owned by another actor", func() {
		other := testutils.CreateTestCreature("act_wolf")
		other.Items[0].ID = s.itemID(testutils.ItemTorch)

		_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: other})
		s.True(errors.IsAlreadyExists(err))
		s.False(s.miniRedis.Exists(actor.GetKey("act_wolf")))
	})

	s.Run("repeated item ID", func() {
		other := testutils.CreateTestCreature("act_bat")
		other.Items = append(other.Items, other.Items[0])

		_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: other})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, actor.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, actor.CreateInput{Actor: &bh2e.Actor{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, actor.CreateInput{Actor: &bh2e.Actor{ID: "act_1", Items: []bh2e.Item{{Name: "Nameless"}}}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateRejectsBrokenItemState() {
	testCases := []struct {
		name   string
		mutate func(a *bh2e.Actor)
		field  string
	}{
		{
			name: "more broken armour dice than total",
			mutate: func(a *bh2e.Actor) {
				a.FindItem(s.itemID(testutils.ItemChainmail)).ArmourValue = &bh2e.ArmourValue{Total: 3, Broken: 5}
			},
			field: "armourvalue.broken",
		},
		{
			name: "negative quantity",
			mutate: func(a *bh2e.Actor) {
				a.FindItem(s.itemID(testutils.ItemTorch)).Quantity = -2
			},
			field: "quantity",
		},
		{
			name: "usage die off the ladder",
			mutate: func(a *bh2e.Actor) {
				a.FindItem(s.itemID(testutils.ItemRations)).UsageDie = &bh2e.UsageDie{Maximum: "d100", Current: bh2e.DieNone}
			},
			field: "usagedie.maximum",
		},
		{
			name: "unknown actor type",
			mutate: func(a *bh2e.Actor) {
				a.Type = "npc"
			},
			field: "actor.type",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			a := testutils.CreateTestCharacter(testActorID)
			tc.mutate(a)

			_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: a})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
			s.False(s.miniRedis.Exists(actor.GetKey(testActorID)))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestArmourStoredAtTotalCanBeRepaired() {
	a := testutils.CreateTestCharacter(testActorID)
	a.FindItem(s.itemID(testutils.ItemChainmail)).ArmourValue = &bh2e.ArmourValue{Total: 3, Broken: 3}
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: a})
	s.Require().NoError(err)

	owner, err := s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: s.itemID(testutils.ItemChainmail)})
	s.Require().NoError(err)
	patch, err := engine.RepairArmourDie(owner.Item)
	s.Require().NoError(err)

	out, err := s.repo.UpdateItem(s.ctx, actor.UpdateItemInput{ActorID: testActorID, Patch: patch})
	s.Require().NoError(err)
	s.Equal(2, out.Item.ArmourValue.Broken)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, actor.GetInput{ActorID: "act_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestFindOwner() {
	s.createCharacter()

	s.Run("owned item", func() {
		out, err := s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: s.itemID(testutils.ItemChainmail)})
		s.Require().NoError(err)
		s.Equal(testActorID, out.Actor.ID)
		s.Equal("Chainmail", out.Item.Name)
	})

	s.Run("item resolved from the index after a restart", func() {
		fresh, err := actor.NewRedis(&actor.RedisConfig{Client: s.client})
		s.Require().NoError(err)

		out, err := fresh.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: s.itemID(testutils.ItemSword)})
		s.Require().NoError(err)
		s.Equal(testActorID, out.Actor.ID)
	})

	s.Run("unowned item", func() {
		_, err := s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: "itm_nobody"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty item ID", func() {
		_, err := s.repo.FindOwner(s.ctx, actor.FindOwnerInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestFindOwnerFollowsItemMovedElsewhere() {
	s.createCharacter()
	torchID := s.itemID(testutils.ItemTorch)

	out, err := s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: torchID})
	s.Require().NoError(err)
	s.Equal(testActorID, out.Actor.ID)

	// a second process hands the torch to another actor behind this repository's cache
	other, err := actor.NewRedis(&actor.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	moved, err := other.DeleteItem(s.ctx, actor.DeleteItemInput{ActorID: testActorID, ItemID: torchID})
	s.Require().NoError(err)
	wolf := testutils.CreateTestCreature("act_wolf")
	wolf.Items = append(wolf.Items, *moved.Item)
	_, err = other.Create(s.ctx, actor.CreateInput{Actor: wolf})
	s.Require().NoError(err)

	out, err = s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: torchID})
	s.Require().NoError(err)
	s.Equal("act_wolf", out.Actor.ID)
	s.Equal("Torches", out.Item.Name)
}

func (s *RedisRepositoryTestSuite) TestFindOwnerStaleCacheForDeletedItem() {
	s.createCharacter()
	torchID := s.itemID(testutils.ItemTorch)

	_, err := s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: torchID})
	s.Require().NoError(err)

	other, err := actor.NewRedis(&actor.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	_, err = other.DeleteItem(s.ctx, actor.DeleteItemInput{ActorID: testActorID, ItemID: torchID})
	s.Require().NoError(err)

	_, err = s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: torchID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateItem() {
	s.createCharacter()
	quantity := 1

	out, err := s.repo.UpdateItem(s.ctx, actor.UpdateItemInput{
		ActorID: testActorID,
		Patch: &bh2e.ItemPatch{
			ItemID:   s.itemID(testutils.ItemTorch),
			UsageDie: &bh2e.UsageDiePatch{Current: bh2e.DieD4},
			Quantity: &quantity,
		},
	})
	s.Require().NoError(err)
	s.Equal(bh2e.DieD4, out.Item.UsageDie.Current)
	s.Equal(bh2e.DieD6, out.Item.UsageDie.Maximum)
	s.Equal(1, out.Item.Quantity)

	got, err := s.repo.Get(s.ctx, actor.GetInput{ActorID: testActorID})
	s.Require().NoError(err)
	torch := got.Actor.FindItem(s.itemID(testutils.ItemTorch))
	s.Equal(bh2e.DieD4, torch.UsageDie.Current)
	s.Equal(1, torch.Quantity)

	rations := got.Actor.FindItem(s.itemID(testutils.ItemRations))
	s.Equal(bh2e.DieD4, rations.UsageDie.Current, "other items are untouched")
	s.Equal(2, rations.Quantity)
}

func (s *RedisRepositoryTestSuite) TestUpdateItemRejectsBadPatches() {
	s.createCharacter()
	negative := -1

	testCases := []struct {
		name  string
		input actor.UpdateItemInput
		check func(error) bool
	}{
		{
			name:  "nil patch",
			input: actor.UpdateItemInput{ActorID: testActorID},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "negative quantity",
			input: actor.UpdateItemInput{ActorID: testActorID, Patch: &bh2e.ItemPatch{ItemID: s.itemID(testutils.ItemTorch), Quantity: &negative}},
			check: errors.IsInvalidArgument,
		},
		{
			name: "broken beyond total",
			input: actor.UpdateItemInput{ActorID: testActorID, Patch: &bh2e.ItemPatch{
				ItemID:      s.itemID(testutils.ItemShield),
				ArmourValue: &bh2e.ArmourValuePatch{Broken: 2},
			}},
			check: errors.IsInvalidArgument,
		},
		{
			name: "item owned by nobody",
			input: actor.UpdateItemInput{ActorID: testActorID, Patch: &bh2e.ItemPatch{
				ItemID:   "itm_other",
				UsageDie: &bh2e.UsageDiePatch{Current: bh2e.DieD4},
			}},
			check: errors.IsNotFound,
		},
		{
			name: "missing actor",
			input: actor.UpdateItemInput{ActorID: "act_missing", Patch: &bh2e.ItemPatch{
				ItemID:   s.itemID(testutils.ItemTorch),
				UsageDie: &bh2e.UsageDiePatch{Current: bh2e.DieD4},
			}},
			check: errors.IsNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.UpdateItem(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}

	got, err := s.repo.Get(s.ctx, actor.GetInput{ActorID: testActorID})
	s.Require().NoError(err)
	s.Equal(0, got.Actor.FindItem(s.itemID(testutils.ItemShield)).ArmourValue.Broken)
}

func (s *RedisRepositoryTestSuite) TestConcurrentUpdatesNeverLoseItems() {
	s.createCharacter()

	var wg sync.WaitGroup
	for _, item := range []string{testutils.ItemChainmail, testutils.ItemShield} {
		wg.Add(1)
		go func(itemID string) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				_, err := s.repo.UpdateItem(s.ctx, actor.UpdateItemInput{
					ActorID: testActorID,
					Patch:   &bh2e.ItemPatch{ItemID: itemID, ArmourValue: &bh2e.ArmourValuePatch{Broken: 0}},
				})
				if err != nil && !errors.IsAborted(err) {
					s.Fail("unexpected error", err.Error())
				}
			}
		}(s.itemID(item))
	}
	wg.Wait()

	got, err := s.repo.Get(s.ctx, actor.GetInput{ActorID: testActorID})
	s.Require().NoError(err)
	s.Len(got.Actor.Items, len(testutils.CreateTestCharacter(testActorID).Items))
}

func (s *RedisRepositoryTestSuite) TestDeleteItem() {
	s.createCharacter()
	ropeID := s.itemID(testutils.ItemRope)

	_, err := s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: ropeID})
	s.Require().NoError(err)

	out, err := s.repo.DeleteItem(s.ctx, actor.DeleteItemInput{ActorID: testActorID, ItemID: ropeID})
	s.Require().NoError(err)
	s.Equal("Rope", out.Item.Name)

	_, err = s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: ropeID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.DeleteItem(s.ctx, actor.DeleteItemInput{ActorID: testActorID, ItemID: ropeID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	created := s.createCharacter()

	out, err := s.repo.Delete(s.ctx, actor.DeleteInput{ActorID: testActorID})
	s.Require().NoError(err)
	s.Equal(len(created.Items), out.ItemsDeleted)

	_, err = s.repo.Get(s.ctx, actor.GetInput{ActorID: testActorID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: s.itemID(testutils.ItemTorch)})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, actor.DeleteInput{ActorID: testActorID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestReindex() {
	created := s.createCharacter()
	wolf := testutils.CreateTestCreature("act_wolf")
	_, err := s.repo.Create(s.ctx, actor.CreateInput{Actor: wolf})
	s.Require().NoError(err)

	s.miniRedis.Del("actor:item_owners")
	s.Require().NoError(s.miniRedis.Set(actor.GetKey("act_broken"), "{not json"))

	out, err := s.repo.Reindex(s.ctx, actor.ReindexInput{})
	s.Require().NoError(err)
	s.Equal(3, out.ActorsScanned)
	s.Equal(len(created.Items)+len(wolf.Items), out.ItemsIndexed)
	s.Equal([]string{actor.GetKey("act_broken")}, out.Corrupted)
	s.False(out.Deleted)
	s.True(s.miniRedis.Exists(actor.GetKey("act_broken")))

	fresh, err := actor.NewRedis(&actor.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	owner, err := fresh.FindOwner(s.ctx, actor.FindOwnerInput{ItemID: testutils.FixtureItemID("act_wolf", testutils.ItemBite)})
	s.Require().NoError(err)
	s.Equal("act_wolf", owner.Actor.ID)

	out, err = s.repo.Reindex(s.ctx, actor.ReindexInput{DeleteCorrupted: true})
	s.Require().NoError(err)
	s.True(out.Deleted)
	s.False(s.miniRedis.Exists(actor.GetKey("act_broken")))
}

func (s *RedisRepositoryTestSuite) TestReindexEmptyStore() {
	out, err := s.repo.Reindex(s.ctx, actor.ReindexInput{DeleteCorrupted: true})
	s.Require().NoError(err)
	s.Zero(out.ActorsScanned)
	s.Zero(out.ItemsIndexed)
	s.False(out.Deleted)
}
