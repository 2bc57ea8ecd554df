package usecase

import (
	"context"
	"net/mail"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sumitdoescode/Clicks/config"
	"github.com/sumitdoescode/Clicks/internal/user"
	models "github.com/sumitdoescode/Clicks/internal/user/model"
	"github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
	"github.com/sumitdoescode/Clicks/pkg/storage"
	"github.com/sumitdoescode/Clicks/pkg/utils"
)

type UserUsecase struct {
	repo   user.UserRepository
	store  storage.Store
	logger *logger.Logger
	config *config.Config
}

func NewUserUsecase(repo user.UserRepository, store storage.Store, logger *logger.Logger, config *config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, store: store, logger: logger, config: config}
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if err := validateUsername(cmd.Username); err != nil {
		return nil, err
	}
	if n := utf8.RuneCountInString(cmd.Name); n < 3 || n > 25 {
		return nil, errors.InvalidArg("name must be between 3 and 25 characters")
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return nil, errors.InvalidArg("invalid email")
	}
	if len(cmd.Password) < 8 || len(cmd.Password) > 30 {
		return nil, errors.InvalidArg("password must be between 8 and 30 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	}

	u := &models.User{
		Name:         cmd.Name,
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: string(hash),
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if errors.CodeOf(err) == errors.CodeAlreadyExists {
			return nil, err
		}
		uc.logger.Error("database error creating user", "err", err)
		return nil, errors.Internal("internal server error")
	}

	return toUserDTO(u), nil
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.AuthDTO, error) {
	u, err := uc.repo.GetUserByEmail(ctx, cmd.Email)
	if err != nil {
		// do not reveal whether the email exists
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(u.ID, uc.config.JWT)
	if err != nil {
		uc.logger.Error("failed to sign token", "err", err)
		return nil, errors.Internal("error while creating token")
	}

	return &user.AuthDTO{
		AccessToken: token,
		ExpiresIn:   uc.config.JWT.ExpiredIn * 3600,
		TokenType:   "Bearer",
		User:        *toUserDTO(u),
	}, nil
}

func (uc *UserUsecase) GetProfileByUsername(ctx context.Context, viewerID uuid.UUID, username string) (*user.ProfileDTO, error) {
	u, err := uc.repo.GetProfileByUsername(ctx, username, viewerID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error fetching profile", "username", username, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &user.ProfileDTO{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Bio:            u.Bio,
		Image:          u.Image,
		PostsCount:     u.PostsCount,
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FollowingCount,
		IsFollowing:    u.IsFollowing,
		CreatedAt:      u.CreatedAt,
	}, nil
}

func (uc *UserUsecase) ListUsers(ctx context.Context) ([]user.UserDTO, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.logger.Error("database error listing users", "err", err)
		return nil, errors.Internal("failed to fetch users")
	}
	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *toUserDTO(&users[i]))
	}
	return dtos, nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, cmd user.UpdateProfileCommand) (*user.UserDTO, error) {
	if n := utf8.RuneCountInString(cmd.Name); cmd.Name != "" && (n < 3 || n > 25) {
		return nil, errors.InvalidArg("name must be between 3 and 25 characters")
	}
	if cmd.Bio != nil && utf8.RuneCountInString(*cmd.Bio) > 100 {
		return nil, errors.InvalidArg("bio can't be more than 100 characters")
	}

	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.Unauthorized("unauthorized")
	}

	oldImage, newImage := "", ""
	if cmd.Name != "" {
		u.Name = cmd.Name
	}
	if cmd.Bio != nil {
		u.Bio = *cmd.Bio
	}
	if cmd.Image != nil {
		url, err := uc.store.Save(cmd.Image)
		if err != nil {
			return nil, err
		}
		oldImage, newImage = u.Image, url
		u.Image = url
	}

	if err := uc.repo.SaveProfile(ctx, u); err != nil {
		if newImage != "" {
			if rmErr := uc.store.Remove(newImage); rmErr != nil {
				uc.logger.Warn("failed to remove orphaned image", "url", newImage, "err", rmErr)
			}
		}
		uc.logger.Error("database error updating profile", "err", err)
		return nil, errors.Internal("error while updating profile")
	}

	if oldImage != "" {
		if err := uc.store.Remove(oldImage); err != nil {
			uc.logger.Warn("failed to remove old profile image", "url", oldImage, "err", err)
		}
	}

	return toUserDTO(u), nil
}

func (uc *UserUsecase) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return errors.Unauthorized("unauthorized")
	}

	images, err := uc.repo.DeleteUserCascade(ctx, userID)
	if err != nil {
		uc.logger.Error("database error deleting account", "user_id", userID, "err", err)
		return errors.Internal("failed to delete account")
	}

	// image removal is best-effort once the transaction committed
	if u.Image != "" {
		images = append(images, u.Image)
	}
	for _, img := range images {
		if img == "" {
			continue
		}
		if err := uc.store.Remove(img); err != nil {
			uc.logger.Warn("failed to remove stored image", "url", img, "err", err)
		}
	}
	return nil
}

func (uc *UserUsecase) ToggleFollow(ctx context.Context, followerID uuid.UUID, username string) (bool, error) {
	target, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return false, err
		}
		uc.logger.Error("database error resolving user", "username", username, "err", err)
		return false, errors.Internal("internal server error")
	}

	if target.ID == followerID {
		return false, errors.ErrSelfFollow
	}

	removed, err := uc.repo.DeleteFollow(ctx, followerID, target.ID)
	if err != nil {
		uc.logger.Error("database error unfollowing", "err", err)
		return false, errors.Internal("internal server error")
	}
	if removed {
		return false, nil
	}

	if err := uc.repo.CreateFollow(ctx, &models.Follow{FollowerID: followerID, FollowingID: target.ID}); err != nil {
		uc.logger.Error("database error following", "err", err)
		return false, errors.Internal("internal server error")
	}
	return true, nil
}

func (uc *UserUsecase) Followers(ctx context.Context, username string) ([]user.UserCardDTO, error) {
	target, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error resolving user", "username", username, "err", err)
		return nil, errors.Internal("internal server error")
	}

	users, err := uc.repo.Followers(ctx, target.ID)
	if err != nil {
		uc.logger.Error("database error listing followers", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toUserCards(users), nil
}

func (uc *UserUsecase) Following(ctx context.Context, username string) ([]user.UserCardDTO, error) {
	target, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error resolving user", "username", username, "err", err)
		return nil, errors.Internal("internal server error")
	}

	users, err := uc.repo.Following(ctx, target.ID)
	if err != nil {
		uc.logger.Error("database error listing following", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toUserCards(users), nil
}

func toUserDTO(u *models.User) *user.UserDTO {
	return &user.UserDTO{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}

func toUserCards(users []models.User) []user.UserCardDTO {
	cards := make([]user.UserCardDTO, 0, len(users))
	for _, u := range users {
		cards = append(cards, user.UserCardDTO{
			ID:       u.ID,
			Name:     u.Name,
			Username: u.Username,
			Image:    u.Image,
		})
	}
	return cards
}
