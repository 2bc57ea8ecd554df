package engagement

import (
	"context"

	"github.com/google/uuid"
	Engagement "github.com/sumitdoescode/Clicks/internal/engagement/model"
	Post "github.com/sumitdoescode/Clicks/internal/post/model"
)

type EngagementRepository interface {
	// Toggles report the resulting state: true when the record now exists.
	// The unique (user, post) index is the backstop under concurrency.
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	ToggleBookmark(ctx context.Context, userID, postID uuid.UUID) (bool, error)

	CreateComment(ctx context.Context, comment *Engagement.Comment) error
	// ListComments orders the post owner's comments first, then newest first.
	ListComments(ctx context.Context, postID, postOwnerID uuid.UUID) ([]Engagement.Comment, error)
	// DeleteComment is scoped to the comment's owner; reports whether a row
	// was removed.
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (bool, error)

	LikedPosts(ctx context.Context, userID uuid.UUID) ([]Post.Post, error)
	BookmarkedPosts(ctx context.Context, userID uuid.UUID) ([]Post.Post, error)
}
