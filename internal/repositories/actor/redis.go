package actor

import (
	"context"
	"encoding/json"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	redisclient "github.com/KirkDiggler/bh2e-sheets/internal/redis"
)

const (
	actorKeyPrefix = "actor:"
	itemOwnerKey   = "actor:item_owners"

	// DefaultOwnerCacheSize bounds the item→owner cache when none is configured
	DefaultOwnerCacheSize = 1024

	// Error messages
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
	errItemIDEmpty  = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	owners *lru.Cache[string, string]
}

// RedisConfig contains configuration for the Redis actor repository.
type RedisConfig struct {
	Client redisclient.Client

	// OwnerCacheSize bounds the in-process item→owner cache
	OwnerCacheSize int
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.OwnerCacheSize < 0 {
		return errors.InvalidArgument("owner cache size cannot be negative")
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	size := cfg.OwnerCacheSize
	if size == 0 {
		size = DefaultOwnerCacheSize
	}
	owners, err := lru.New[string, string](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create owner cache")
	}

	return &redisRepository{
		client: cfg.Client,
		owners: owners,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	itemIDs := make([]string, 0, len(input.Actor.Items))
	seen := make(map[string]bool, len(input.Actor.Items))
	for _, item := range input.Actor.Items {
		if item.ID == "" {
			return nil, errors.InvalidArgumentf("item %q of actor %s has no ID", item.Name, input.Actor.ID)
		}
		if seen[item.ID] {
			return nil, errors.InvalidArgumentf("item ID %s appears twice on actor %s", item.ID, input.Actor.ID)
		}
		seen[item.ID] = true
		itemIDs = append(itemIDs, item.ID)
	}
	if err := input.Actor.Validate(); err != nil {
		return nil, err
	}

	key := actorKeyPrefix + input.Actor.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID)
	}

	if len(itemIDs) > 0 {
		owners, err := r.client.HMGet(ctx, itemOwnerKey, itemIDs...).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check item ownership")
		}
		for i, owner := range owners {
			if owner != nil {
				return nil, errors.AlreadyExistsf("item %s is already owned by actor %v", itemIDs[i], owner)
			}
		}
	}

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	for _, id := range itemIDs {
		pipe.HSet(ctx, itemOwnerKey, id, input.Actor.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	for _, id := range itemIDs {
		r.owners.Add(id, input.Actor.ID)
	}

	return &CreateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor, err := r.load(ctx, r.client, input.ActorID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Actor: actor}, nil
}

func (r *redisRepository) FindOwner(ctx context.Context, input FindOwnerInput) (*FindOwnerOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	actorID, cached := r.owners.Get(input.ItemID)
	if !cached {
		owner, err := r.lookupOwner(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		actorID = owner
	}

	out, err := r.loadOwned(ctx, actorID, input.ItemID)
	if err == nil || !cached {
		return out, err
	}

	// the cached owner is stale; the index may have moved the item to another actor
	r.owners.Remove(input.ItemID)
	owner, lookupErr := r.lookupOwner(ctx, input.ItemID)
	if lookupErr != nil {
		return nil, lookupErr
	}
	return r.loadOwned(ctx, owner, input.ItemID)
}

// lookupOwner reads the owning actor ID from the item index and caches it
func (r *redisRepository) lookupOwner(ctx context.Context, itemID string) (string, error) {
	owner, err := r.client.HGet(ctx, itemOwnerKey, itemID).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.NotFoundf("failed to find an actor that owns item id %s", itemID)
		}
		return "", errors.Wrapf(err, "failed to look up owner of item %s", itemID)
	}

	r.owners.Add(itemID, owner)
	return owner, nil
}

// loadOwned loads actorID and the item it owns, evicting the cached owner on a miss
func (r *redisRepository) loadOwned(ctx context.Context, actorID, itemID string) (*FindOwnerOutput, error) {
	actor, err := r.load(ctx, r.client, actorID)
	if err != nil {
		r.owners.Remove(itemID)
		return nil, errors.Wrapf(err, "failed to load owner of item %s", itemID)
	}

	item := actor.FindItem(itemID)
	if item == nil {
		r.owners.Remove(itemID)
		return nil, errors.NotFoundf("actor %s does not own item id %s", actorID, itemID)
	}

	return &FindOwnerOutput{Actor: actor, Item: item}, nil
}

func (r *redisRepository) UpdateItem(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if err := input.Patch.Validate(); err != nil {
		return nil, err
	}

	key := actorKeyPrefix + input.ActorID
	var updated bh2e.Item

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		actor, err := r.load(ctx, tx, input.ActorID)
		if err != nil {
			return err
		}

		item := actor.FindItem(input.Patch.ItemID)
		if item == nil {
			return errors.NotFoundf("actor %s does not own item id %s", input.ActorID, input.Patch.ItemID)
		}

		input.Patch.Apply(item)
		if err := item.Validate(); err != nil {
			return err
		}

		data, err := json.Marshal(actor)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal actor")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = *item
		return nil
	}, key)
	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("actor %s changed while updating item %s", input.ActorID, input.Patch.ItemID)
		}
		return nil, errors.Wrapf(err, "failed to update item %s", input.Patch.ItemID)
	}

	slog.Debug("Item updated",
		"actor_id", input.ActorID,
		"item_id", input.Patch.ItemID,
	)

	return &UpdateItemOutput{Item: &updated}, nil
}

func (r *redisRepository) DeleteItem(ctx context.Context, input DeleteItemInput) (*DeleteItemOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := actorKeyPrefix + input.ActorID
	var removed bh2e.Item

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		actor, err := r.load(ctx, tx, input.ActorID)
		if err != nil {
			return err
		}

		idx := -1
		for i := range actor.Items {
			if actor.Items[i].ID == input.ItemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errors.NotFoundf("actor %s does not own item id %s", input.ActorID, input.ItemID)
		}
		removed = actor.Items[idx]
		actor.Items = append(actor.Items[:idx], actor.Items[idx+1:]...)

		data, err := json.Marshal(actor)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal actor")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.HDel(ctx, itemOwnerKey, input.ItemID)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("actor %s changed while deleting item %s", input.ActorID, input.ItemID)
		}
		return nil, errors.Wrapf(err, "failed to delete item %s", input.ItemID)
	}

	r.owners.Remove(input.ItemID)

	return &DeleteItemOutput{Item: &removed}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor, err := r.load(ctx, r.client, input.ActorID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ActorID)
	for _, item := range actor.Items {
		pipe.HDel(ctx, itemOwnerKey, item.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor %s", input.ActorID)
	}

	for _, item := range actor.Items {
		r.owners.Remove(item.ID)
	}

	return &DeleteOutput{ItemsDeleted: len(actor.Items)}, nil
}

func (r *redisRepository) Reindex(ctx context.Context, input ReindexInput) (*ReindexOutput, error) {
	output := &ReindexOutput{}
	owners := make(map[string]interface{})

	iter := r.client.Scan(ctx, 0, actorKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == itemOwnerKey {
			continue
		}
		output.ActorsScanned++

		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var actor bh2e.Actor
		if err := json.Unmarshal([]byte(data), &actor); err != nil {
			slog.Warn("Corrupted actor data",
				"key", key,
				"error", err,
			)
			output.Corrupted = append(output.Corrupted, key)
			continue
		}

		for _, item := range actor.Items {
			if owner, taken := owners[item.ID]; taken {
				slog.Warn("Item claimed by more than one actor",
					"item_id", item.ID,
					"kept_actor_id", owner,
					"actor_id", actor.ID,
				)
				continue
			}
			owners[item.ID] = actor.ID
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan actors")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, itemOwnerKey)
	if len(owners) > 0 {
		pipe.HSet(ctx, itemOwnerKey, owners)
	}
	if input.DeleteCorrupted && len(output.Corrupted) > 0 {
		pipe.Del(ctx, output.Corrupted...)
		output.Deleted = true
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to rebuild item index")
	}

	r.owners.Purge()
	output.ItemsIndexed = len(owners)

	slog.Info("Item index rebuilt",
		"actors_scanned", output.ActorsScanned,
		"items_indexed", output.ItemsIndexed,
		"corrupted", len(output.Corrupted),
	)

	return output, nil
}

// load reads and decodes an actor through any command issuer, including a WATCH transaction
func (r *redisRepository) load(ctx context.Context, cmd redis.Cmdable, actorID string) (*bh2e.Actor, error) {
	result, err := cmd.Get(ctx, actorKeyPrefix+actorID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", actorID)
		}
		return nil, errors.Wrapf(err, "failed to get actor %s", actorID)
	}

	var actor bh2e.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor %s", actorID)
	}

	return &actor, nil
}

// GetKey returns the Redis key for an actor
// Exposed for testing purposes
func GetKey(actorID string) string {
	return actorKeyPrefix + actorID
}
