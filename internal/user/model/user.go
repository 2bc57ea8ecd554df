package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" json:"_id"`

	// Name = display name, changeable; Username = unique @handle
	Name     string `bun:",notnull" json:"name"`
	Username string `bun:",unique,notnull" json:"username"`
	Email    string `bun:",unique,notnull" json:"email"`

	PasswordHash string `bun:",notnull" json:"-"`

	Bio   string `bun:",nullzero,default:''" json:"bio"`
	Image string `bun:",nullzero,default:''" json:"image"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updatedAt"`

	// Profile read-model fields, populated by aggregate queries only.
	PostsCount     int  `bun:",scanonly" json:"postsCount"`
	FollowersCount int  `bun:",scanonly" json:"followersCount"`
	FollowingCount int  `bun:",scanonly" json:"followingCount"`
	IsFollowing    bool `bun:",scanonly" json:"isFollowing"`
}
