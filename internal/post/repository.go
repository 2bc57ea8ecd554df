package post

import (
	"context"

	"github.com/google/uuid"
	Post "github.com/sumitdoescode/Clicks/internal/post/model"
)

type PostRepository interface {
	CreatePost(ctx context.Context, post *Post.Post) error
	GetPostByID(ctx context.Context, id uuid.UUID) (*Post.Post, error)

	// Read models: posts enriched with author card, like/comment counts and
	// viewer-relative isLiked/isBookmarked flags.
	GetPostWithMeta(ctx context.Context, id, viewerID uuid.UUID) (*Post.Post, error)
	ListFeed(ctx context.Context, viewerID uuid.UUID) ([]Post.Post, error)
	ListByAuthor(ctx context.Context, authorID, viewerID uuid.UUID) ([]Post.Post, error)

	UpdateCaption(ctx context.Context, postID uuid.UUID, caption string) error

	// DeletePostCascade removes the post and its likes, bookmarks and
	// comments in one transaction.
	DeletePostCascade(ctx context.Context, postID uuid.UUID) error
}
