package post

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/sumitdoescode/Clicks/internal/user"
)

type CreatePostCommand struct {
	Caption string
	Image   *multipart.FileHeader
}

type PostDTO struct {
	ID            uuid.UUID        `json:"_id"`
	Caption       string           `json:"caption"`
	Image         string           `json:"image"`
	User          user.UserCardDTO `json:"user"`
	LikesCount    int              `json:"likesCount"`
	CommentsCount int              `json:"commentsCount"`
	IsLiked       bool             `json:"isLiked"`
	IsBookmarked  bool             `json:"isBookmarked"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}
