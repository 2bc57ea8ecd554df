package engagement

import (
	"time"

	"github.com/google/uuid"
	"github.com/sumitdoescode/Clicks/internal/user"
)

type CommentDTO struct {
	ID          uuid.UUID        `json:"_id"`
	Text        string           `json:"text"`
	User        user.UserCardDTO `json:"user"`
	IsPostOwner bool             `json:"isPostOwner"`
	CreatedAt   time.Time        `json:"createdAt"`
}
