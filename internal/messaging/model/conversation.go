package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Conversation struct {
	bun.BaseModel `bun:"table:conversations,alias:conv"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Participant1ID uuid.UUID `bun:",notnull,type:uuid"`
	Participant2ID uuid.UUID `bun:",notnull,type:uuid"`

	LastMessageID uuid.UUID `bun:",nullzero,type:uuid"`
	LastMessage   *Message  `bun:"rel:belongs-to,join:last_message_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Exactly one conversation per unordered participant pair, regardless of
	// which user occupies which slot. Unique index in migration:
	// CREATE UNIQUE INDEX idx_conversation_pair
	//   ON conversations(least(participant1_id, participant2_id),
	//                    greatest(participant1_id, participant2_id));

	// Listing read-model field, populated by aggregate queries only.
	UnreadCount int `bun:",scanonly"`
}
