package engagement

import (
	"context"

	"github.com/google/uuid"
	"github.com/sumitdoescode/Clicks/internal/post"
)

type EngagementUsecase interface {
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	ToggleBookmark(ctx context.Context, userID, postID uuid.UUID) (bool, error)

	AddComment(ctx context.Context, userID, postID uuid.UUID, text string) error
	GetComments(ctx context.Context, postID uuid.UUID) ([]CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error

	LikedPosts(ctx context.Context, userID uuid.UUID) ([]post.PostDTO, error)
	BookmarkedPosts(ctx context.Context, userID uuid.UUID) ([]post.PostDTO, error)
}
