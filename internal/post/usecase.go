package post

import (
	"context"

	"github.com/google/uuid"
)

type PostUsecase interface {
	CreatePost(ctx context.Context, userID uuid.UUID, cmd CreatePostCommand) (*PostDTO, error)
	GetFeed(ctx context.Context, viewerID uuid.UUID) ([]PostDTO, error)
	GetPostsByUsername(ctx context.Context, viewerID uuid.UUID, username string) ([]PostDTO, error)
	GetPostByID(ctx context.Context, viewerID, postID uuid.UUID) (*PostDTO, error)

	// UpdateCaption and DeletePost are owner-only.
	UpdateCaption(ctx context.Context, userID, postID uuid.UUID, caption string) error
	DeletePost(ctx context.Context, userID, postID uuid.UUID) error
}
