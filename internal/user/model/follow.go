package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Follow struct {
	bun.BaseModel `bun:"table:follows,alias:f"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	FollowerID  uuid.UUID `bun:",notnull,type:uuid"` // who is doing the follow
	FollowingID uuid.UUID `bun:",notnull,type:uuid"` // who is being followed

	Follower  *User `bun:"rel:belongs-to,join:follower_id=id"`
	Following *User `bun:"rel:belongs-to,join:following_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_follow_pair ON follows(follower_id, following_id);
}
