package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Message struct {
	bun.BaseModel `bun:"table:messages,alias:msg"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ConversationID uuid.UUID `bun:",notnull,type:uuid"`

	SenderID   uuid.UUID `bun:",notnull,type:uuid"`
	ReceiverID uuid.UUID `bun:",notnull,type:uuid"`

	Text string `bun:",notnull"`

	// IsRead flips false -> true when the receiver views the thread. The
	// rest of the record is immutable.
	IsRead bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
