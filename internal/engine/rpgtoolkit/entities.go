package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
)

// EntityTypeChatMessage is the toolkit entity type of a chat message
const EntityTypeChatMessage = "chat_message"

// ActorEntity wraps bh2e.Actor to implement core.Entity
type ActorEntity struct {
	*bh2e.Actor
}

// GetID returns the actor's ID
func (a *ActorEntity) GetID() string {
	return a.ID
}

// GetType returns the entity type for rpg-toolkit
func (a *ActorEntity) GetType() string {
	return string(a.Type)
}

// ItemEntity wraps bh2e.Item to implement core.Entity
type ItemEntity struct {
	*bh2e.Item
}

// GetID returns the item's ID
func (i *ItemEntity) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *ItemEntity) GetType() string {
	return string(i.Type)
}

// WrapActor converts a bh2e.Actor to an ActorEntity
func WrapActor(actor *bh2e.Actor) *ActorEntity {
	return &ActorEntity{Actor: actor}
}

// WrapItem converts a bh2e.Item to an ItemEntity
func WrapItem(item *bh2e.Item) *ItemEntity {
	return &ItemEntity{Item: item}
}

// Compile-time check that our entity wrappers implement core.Entity
var (
	_ core.Entity = (*ActorEntity)(nil)
	_ core.Entity = (*ItemEntity)(nil)
)

// MessageEntity wraps bh2e.ChatMessage so it can travel as the source of a toolkit event
type MessageEntity struct {
	*bh2e.ChatMessage
}

// GetID returns the message ID
func (m *MessageEntity) GetID() string {
	return m.ID
}

// GetType returns the entity type for rpg-toolkit
func (m *MessageEntity) GetType() string {
	return EntityTypeChatMessage
}

// WrapMessage converts a bh2e.ChatMessage to a MessageEntity
func WrapMessage(msg *bh2e.ChatMessage) *MessageEntity {
	return &MessageEntity{ChatMessage: msg}
}

var _ core.Entity = (*MessageEntity)(nil)
