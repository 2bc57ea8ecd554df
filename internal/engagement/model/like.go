package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Like struct {
	bun.BaseModel `bun:"table:likes,alias:l"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserID uuid.UUID `bun:",notnull,type:uuid"`
	PostID uuid.UUID `bun:",notnull,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_like_user_post ON likes(user_id, post_id);
}
