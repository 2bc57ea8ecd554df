package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register creates the account record the profile endpoints serve.
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)
	Login(ctx context.Context, cmd LoginCommand) (*AuthDTO, error)

	GetProfileByUsername(ctx context.Context, viewerID uuid.UUID, username string) (*ProfileDTO, error)
	ListUsers(ctx context.Context) ([]UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, cmd UpdateProfileCommand) (*UserDTO, error)

	// DeleteAccount removes the user and cascades to posts, engagement
	// records, follow edges, conversations and stored images.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// ToggleFollow follows when no edge exists and unfollows otherwise;
	// reports the resulting state.
	ToggleFollow(ctx context.Context, followerID uuid.UUID, username string) (bool, error)
	Followers(ctx context.Context, username string) ([]UserCardDTO, error)
	Following(ctx context.Context, username string) ([]UserCardDTO, error)
}
