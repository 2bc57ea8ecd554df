package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sumitdoescode/Clicks/internal/post"
	models "github.com/sumitdoescode/Clicks/internal/post/model"
	"github.com/sumitdoescode/Clicks/internal/user"
	usermodels "github.com/sumitdoescode/Clicks/internal/user/model"
	"github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
	"github.com/sumitdoescode/Clicks/pkg/storage"
)

const maxCaptionLen = 300

type PostUsecase struct {
	repo     post.PostRepository
	userRepo user.UserRepository
	store    storage.Store
	logger   *logger.Logger
}

func NewPostUsecase(repo post.PostRepository, userRepo user.UserRepository, store storage.Store, logger *logger.Logger) *PostUsecase {
	return &PostUsecase{repo: repo, userRepo: userRepo, store: store, logger: logger}
}

func (uc *PostUsecase) CreatePost(ctx context.Context, userID uuid.UUID, cmd post.CreatePostCommand) (*post.PostDTO, error) {
	if cmd.Image == nil {
		return nil, errors.ErrImageRequired
	}
	if utf8.RuneCountInString(cmd.Caption) > maxCaptionLen {
		return nil, errors.ErrCaptionTooLong
	}

	url, err := uc.store.Save(cmd.Image)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeInvalidArgument {
			return nil, err
		}
		uc.logger.Error("failed to store image", "err", err)
		return nil, errors.Internal("failed to store image")
	}

	p := &models.Post{
		UserID:  userID,
		Caption: cmd.Caption,
		Image:   url,
	}
	if err := uc.repo.CreatePost(ctx, p); err != nil {
		uc.logger.Error("database error creating post", "err", err)
		if rmErr := uc.store.Remove(url); rmErr != nil {
			uc.logger.Warn("failed to remove orphaned image", "url", url, "err", rmErr)
		}
		return nil, errors.Internal("failed to create post")
	}

	return toPostDTO(p), nil
}

func (uc *PostUsecase) GetFeed(ctx context.Context, viewerID uuid.UUID) ([]post.PostDTO, error) {
	posts, err := uc.repo.ListFeed(ctx, viewerID)
	if err != nil {
		uc.logger.Error("database error fetching feed", "err", err)
		return nil, errors.Internal("failed to fetch posts")
	}
	return toPostDTOs(posts), nil
}

func (uc *PostUsecase) GetPostsByUsername(ctx context.Context, viewerID uuid.UUID, username string) ([]post.PostDTO, error) {
	author, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error resolving user", "username", username, "err", err)
		return nil, errors.Internal("internal server error")
	}

	posts, err := uc.repo.ListByAuthor(ctx, author.ID, viewerID)
	if err != nil {
		uc.logger.Error("database error fetching user posts", "err", err)
		return nil, errors.Internal("failed to fetch posts")
	}
	return toPostDTOs(posts), nil
}

func (uc *PostUsecase) GetPostByID(ctx context.Context, viewerID, postID uuid.UUID) (*post.PostDTO, error) {
	p, err := uc.repo.GetPostWithMeta(ctx, postID, viewerID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error fetching post", "post_id", postID, "err", err)
		return nil, errors.Internal("failed to fetch post")
	}
	return toPostDTO(p), nil
}

func (uc *PostUsecase) UpdateCaption(ctx context.Context, userID, postID uuid.UUID, caption string) error {
	if caption == "" {
		return errors.InvalidArg("caption cannot be empty")
	}
	if utf8.RuneCountInString(caption) > maxCaptionLen {
		return errors.ErrCaptionTooLong
	}

	p, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return err
		}
		uc.logger.Error("database error fetching post", "post_id", postID, "err", err)
		return errors.Internal("internal server error")
	}
	if p.UserID != userID {
		return errors.Forbidden("you can only update your own posts")
	}

	if err := uc.repo.UpdateCaption(ctx, postID, caption); err != nil {
		uc.logger.Error("database error updating caption", "err", err)
		return errors.Internal("failed to update post")
	}
	return nil
}

func (uc *PostUsecase) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	p, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return err
		}
		uc.logger.Error("database error fetching post", "post_id", postID, "err", err)
		return errors.Internal("internal server error")
	}
	if p.UserID != userID {
		return errors.Forbidden("you can only delete your own posts")
	}

	if err := uc.repo.DeletePostCascade(ctx, postID); err != nil {
		uc.logger.Error("database error deleting post", "post_id", postID, "err", err)
		return errors.Internal("failed to delete post")
	}

	// image removal is best-effort once the transaction committed
	if p.Image != "" {
		if err := uc.store.Remove(p.Image); err != nil {
			uc.logger.Warn("failed to remove post image", "url", p.Image, "err", err)
		}
	}
	return nil
}

func toPostDTO(p *models.Post) *post.PostDTO {
	dto := &post.PostDTO{
		ID:            p.ID,
		Caption:       p.Caption,
		Image:         p.Image,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		IsLiked:       p.IsLiked,
		IsBookmarked:  p.IsBookmarked,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.User != nil {
		dto.User = toUserCard(p.User)
	}
	return dto
}

func toPostDTOs(posts []models.Post) []post.PostDTO {
	dtos := make([]post.PostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, *toPostDTO(&posts[i]))
	}
	return dtos
}

func toUserCard(u *usermodels.User) user.UserCardDTO {
	return user.UserCardDTO{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Image:    u.Image,
	}
}
