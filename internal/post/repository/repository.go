package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	engagement "github.com/sumitdoescode/Clicks/internal/engagement/model"
	Post "github.com/sumitdoescode/Clicks/internal/post/model"
	appErrors "github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
)

type PostRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewPostRepository(db *bun.DB, logger *logger.Logger) *PostRepository {
	return &PostRepository{db: db, logger: logger}
}

func (r *PostRepository) CreatePost(ctx context.Context, post *Post.Post) error {
	_, err := r.db.NewInsert().Model(post).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "postRepo.CreatePost.Insert")
	}
	return nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*Post.Post, error) {
	post := new(Post.Post)
	err := r.db.NewSelect().Model(post).Where("post.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrPostNotFound
		}
		return nil, errors.Wrap(err, "postRepo.GetPostByID.Scan")
	}
	return post, nil
}

// withMeta attaches the author card, counts and viewer flags to a select.
func withMeta(q *bun.SelectQuery, viewerID uuid.UUID) *bun.SelectQuery {
	return q.
		Relation("User").
		ColumnExpr("post.*").
		ColumnExpr("(SELECT count(*) FROM likes WHERE post_id = post.id) AS likes_count").
		ColumnExpr("(SELECT count(*) FROM comments WHERE post_id = post.id) AS comments_count").
		ColumnExpr("EXISTS(SELECT 1 FROM likes WHERE post_id = post.id AND user_id = ?) AS is_liked", viewerID).
		ColumnExpr("EXISTS(SELECT 1 FROM bookmarks WHERE post_id = post.id AND user_id = ?) AS is_bookmarked", viewerID)
}

func (r *PostRepository) GetPostWithMeta(ctx context.Context, id, viewerID uuid.UUID) (*Post.Post, error) {
	post := new(Post.Post)
	err := withMeta(r.db.NewSelect().Model(post), viewerID).
		Where("post.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrPostNotFound
		}
		return nil, errors.Wrap(err, "postRepo.GetPostWithMeta.Scan")
	}
	return post, nil
}

func (r *PostRepository) ListFeed(ctx context.Context, viewerID uuid.UUID) ([]Post.Post, error) {
	var posts []Post.Post
	err := withMeta(r.db.NewSelect().Model(&posts), viewerID).
		OrderExpr("post.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "postRepo.ListFeed.Scan")
	}
	return posts, nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID, viewerID uuid.UUID) ([]Post.Post, error) {
	var posts []Post.Post
	err := withMeta(r.db.NewSelect().Model(&posts), viewerID).
		Where("post.user_id = ?", authorID).
		OrderExpr("post.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "postRepo.ListByAuthor.Scan")
	}
	return posts, nil
}

func (r *PostRepository) UpdateCaption(ctx context.Context, postID uuid.UUID, caption string) error {
	_, err := r.db.NewUpdate().
		Model((*Post.Post)(nil)).
		Set("caption = ?", caption).
		Set("updated_at = current_timestamp").
		Where("id = ?", postID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "postRepo.UpdateCaption.Exec")
	}
	return nil
}

func (r *PostRepository) DeletePostCascade(ctx context.Context, postID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, m := range []any{
			(*engagement.Like)(nil),
			(*engagement.Bookmark)(nil),
			(*engagement.Comment)(nil),
		} {
			if _, err := tx.NewDelete().Model(m).Where("post_id = ?", postID).Exec(ctx); err != nil {
				return errors.Wrap(err, "postRepo.DeletePostCascade.DeleteEngagement")
			}
		}

		res, err := tx.NewDelete().
			Model((*Post.Post)(nil)).
			Where("id = ?", postID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "postRepo.DeletePostCascade.DeletePost")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "postRepo.DeletePostCascade.RowsAffected")
		}
		if n == 0 {
			return appErrors.ErrPostNotFound
		}
		return nil
	})
}
