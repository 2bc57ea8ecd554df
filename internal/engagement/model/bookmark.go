package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Bookmark struct {
	bun.BaseModel `bun:"table:bookmarks,alias:b"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserID uuid.UUID `bun:",notnull,type:uuid"`
	PostID uuid.UUID `bun:",notnull,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_bookmark_user_post ON bookmarks(user_id, post_id);
}
