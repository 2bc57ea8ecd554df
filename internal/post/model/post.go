package models

import (
	"time"

	"github.com/google/uuid"
	user "github.com/sumitdoescode/Clicks/internal/user/model"
	"github.com/uptrace/bun"
)

type Post struct {
	bun.BaseModel `bun:"table:posts,alias:post"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" json:"_id"`

	UserID uuid.UUID  `bun:",notnull,type:uuid" json:"-"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`

	Caption string `bun:",nullzero,default:''" json:"caption"`
	Image   string `bun:",notnull" json:"image"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updatedAt"`

	// Feed read-model fields, populated by aggregate queries only.
	LikesCount    int  `bun:",scanonly" json:"likesCount"`
	CommentsCount int  `bun:",scanonly" json:"commentsCount"`
	IsLiked       bool `bun:",scanonly" json:"isLiked"`
	IsBookmarked  bool `bun:",scanonly" json:"isBookmarked"`
}
