package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sumitdoescode/Clicks/internal/engagement"
	models "github.com/sumitdoescode/Clicks/internal/engagement/model"
	"github.com/sumitdoescode/Clicks/internal/post"
	"github.com/sumitdoescode/Clicks/internal/user"
	"github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
)

const maxCommentLen = 300

type EngagementUsecase struct {
	repo     engagement.EngagementRepository
	postRepo post.PostRepository
	logger   *logger.Logger
}

func NewEngagementUsecase(repo engagement.EngagementRepository, postRepo post.PostRepository, logger *logger.Logger) *EngagementUsecase {
	return &EngagementUsecase{repo: repo, postRepo: postRepo, logger: logger}
}

func (uc *EngagementUsecase) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	if _, err := uc.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return false, err
		}
		uc.logger.Error("database error fetching post", "post_id", postID, "err", err)
		return false, errors.Internal("internal server error")
	}

	liked, err := uc.repo.ToggleLike(ctx, userID, postID)
	if err != nil {
		uc.logger.Error("database error toggling like", "err", err)
		return false, errors.Internal("internal server error")
	}
	return liked, nil
}

func (uc *EngagementUsecase) ToggleBookmark(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	if _, err := uc.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return false, err
		}
		uc.logger.Error("database error fetching post", "post_id", postID, "err", err)
		return false, errors.Internal("internal server error")
	}

	bookmarked, err := uc.repo.ToggleBookmark(ctx, userID, postID)
	if err != nil {
		uc.logger.Error("database error toggling bookmark", "err", err)
		return false, errors.Internal("internal server error")
	}
	return bookmarked, nil
}

func (uc *EngagementUsecase) AddComment(ctx context.Context, userID, postID uuid.UUID, text string) error {
	if text == "" {
		return errors.InvalidArg("comment cannot be empty")
	}
	if utf8.RuneCountInString(text) > maxCommentLen {
		return errors.ErrCommentTooLong
	}

	if _, err := uc.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return err
		}
		uc.logger.Error("database error fetching post", "post_id", postID, "err", err)
		return errors.Internal("internal server error")
	}

	c := &models.Comment{UserID: userID, PostID: postID, Text: text}
	if err := uc.repo.CreateComment(ctx, c); err != nil {
		uc.logger.Error("database error creating comment", "err", err)
		return errors.Internal("failed to create comment")
	}
	return nil
}

func (uc *EngagementUsecase) GetComments(ctx context.Context, postID uuid.UUID) ([]engagement.CommentDTO, error) {
	p, err := uc.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error fetching post", "post_id", postID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	comments, err := uc.repo.ListComments(ctx, postID, p.UserID)
	if err != nil {
		uc.logger.Error("database error listing comments", "err", err)
		return nil, errors.Internal("failed to fetch comments")
	}

	dtos := make([]engagement.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dto := engagement.CommentDTO{
			ID:          c.ID,
			Text:        c.Text,
			IsPostOwner: c.IsPostOwner,
			CreatedAt:   c.CreatedAt,
		}
		if c.User != nil {
			dto.User = user.UserCardDTO{
				ID:       c.User.ID,
				Name:     c.User.Name,
				Username: c.User.Username,
				Image:    c.User.Image,
			}
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (uc *EngagementUsecase) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	deleted, err := uc.repo.DeleteComment(ctx, commentID, userID)
	if err != nil {
		uc.logger.Error("database error deleting comment", "err", err)
		return errors.Internal("internal server error")
	}
	if !deleted {
		// someone else's comment is reported as not found, not forbidden
		return errors.ErrCommentNotFound
	}
	return nil
}

func (uc *EngagementUsecase) LikedPosts(ctx context.Context, userID uuid.UUID) ([]post.PostDTO, error) {
	posts, err := uc.repo.LikedPosts(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing liked posts", "err", err)
		return nil, errors.Internal("failed to fetch liked posts")
	}
	return toPostDTOs(posts), nil
}

func (uc *EngagementUsecase) BookmarkedPosts(ctx context.Context, userID uuid.UUID) ([]post.PostDTO, error) {
	posts, err := uc.repo.BookmarkedPosts(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing bookmarks", "err", err)
		return nil, errors.Internal("failed to fetch bookmarks")
	}
	return toPostDTOs(posts), nil
}
