package models

import (
	"time"

	"github.com/google/uuid"
	user "github.com/sumitdoescode/Clicks/internal/user/model"
	"github.com/uptrace/bun"
)

type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:c"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" json:"_id"`

	UserID uuid.UUID  `bun:",notnull,type:uuid" json:"-"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`

	PostID uuid.UUID `bun:",notnull,type:uuid" json:"-"`

	Text string `bun:",notnull" json:"text"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`

	// True when the comment author owns the post; query-time only, used to
	// float the owner's comments to the top.
	IsPostOwner bool `bun:",scanonly" json:"isPostOwner"`
}
