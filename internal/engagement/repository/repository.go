package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	Engagement "github.com/sumitdoescode/Clicks/internal/engagement/model"
	Post "github.com/sumitdoescode/Clicks/internal/post/model"
	"github.com/sumitdoescode/Clicks/pkg/logger"
)

type EngagementRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewEngagementRepository(db *bun.DB, logger *logger.Logger) *EngagementRepository {
	return &EngagementRepository{db: db, logger: logger}
}

func (r *EngagementRepository) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*Engagement.Like)(nil)).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "engagementRepo.ToggleLike.Delete")
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return false, nil
	}

	// nothing to remove, so this toggle is a like; a concurrent like loses
	// the conflict race and the record still exists, which is the state we
	// report either way
	_, err = r.db.NewInsert().
		Model(&Engagement.Like{UserID: userID, PostID: postID}).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "engagementRepo.ToggleLike.Insert")
	}
	return true, nil
}

func (r *EngagementRepository) ToggleBookmark(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*Engagement.Bookmark)(nil)).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "engagementRepo.ToggleBookmark.Delete")
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return false, nil
	}

	_, err = r.db.NewInsert().
		Model(&Engagement.Bookmark{UserID: userID, PostID: postID}).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "engagementRepo.ToggleBookmark.Insert")
	}
	return true, nil
}

func (r *EngagementRepository) CreateComment(ctx context.Context, comment *Engagement.Comment) error {
	_, err := r.db.NewInsert().Model(comment).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "engagementRepo.CreateComment.Insert")
	}
	return nil
}

func (r *EngagementRepository) ListComments(ctx context.Context, postID, postOwnerID uuid.UUID) ([]Engagement.Comment, error) {
	var comments []Engagement.Comment
	err := r.db.NewSelect().
		Model(&comments).
		Relation("User").
		ColumnExpr("c.*").
		ColumnExpr("(c.user_id = ?) AS is_post_owner", postOwnerID).
		Where("c.post_id = ?", postID).
		OrderExpr("(c.user_id = ?) DESC, c.created_at DESC", postOwnerID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "engagementRepo.ListComments.Scan")
	}
	return comments, nil
}

func (r *EngagementRepository) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	// ownership folded into the match, fewer db queries
	res, err := r.db.NewDelete().
		Model((*Engagement.Comment)(nil)).
		Where("id = ? AND user_id = ?", commentID, userID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "engagementRepo.DeleteComment.Exec")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "engagementRepo.DeleteComment.RowsAffected")
	}
	return n > 0, nil
}

func (r *EngagementRepository) LikedPosts(ctx context.Context, userID uuid.UUID) ([]Post.Post, error) {
	posts, err := r.postsJoined(ctx, "likes", userID)
	if err != nil {
		return nil, errors.Wrap(err, "engagementRepo.LikedPosts.Scan")
	}
	return posts, nil
}

func (r *EngagementRepository) BookmarkedPosts(ctx context.Context, userID uuid.UUID) ([]Post.Post, error) {
	posts, err := r.postsJoined(ctx, "bookmarks", userID)
	if err != nil {
		return nil, errors.Wrap(err, "engagementRepo.BookmarkedPosts.Scan")
	}
	return posts, nil
}

// postsJoined returns the user's liked or bookmarked posts enriched the same
// way the feed is, newest engagement first.
func (r *EngagementRepository) postsJoined(ctx context.Context, table string, userID uuid.UUID) ([]Post.Post, error) {
	var posts []Post.Post
	err := r.db.NewSelect().
		Model(&posts).
		Relation("User").
		ColumnExpr("post.*").
		ColumnExpr("(SELECT count(*) FROM likes WHERE post_id = post.id) AS likes_count").
		ColumnExpr("(SELECT count(*) FROM comments WHERE post_id = post.id) AS comments_count").
		ColumnExpr("EXISTS(SELECT 1 FROM likes WHERE post_id = post.id AND user_id = ?) AS is_liked", userID).
		ColumnExpr("EXISTS(SELECT 1 FROM bookmarks WHERE post_id = post.id AND user_id = ?) AS is_bookmarked", userID).
		Join("JOIN ? AS rec ON rec.post_id = post.id", bun.Ident(table)).
		Where("rec.user_id = ?", userID).
		OrderExpr("rec.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return posts, nil
}
