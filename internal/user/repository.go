package user

import (
	"context"

	"github.com/google/uuid"
	User "github.com/sumitdoescode/Clicks/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *User.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)
	GetUserByUsername(ctx context.Context, username string) (*User.User, error)
	GetUserByEmail(ctx context.Context, email string) (*User.User, error)
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]User.User, error)
	ListUsers(ctx context.Context) ([]User.User, error)
	SaveProfile(ctx context.Context, user *User.User) error

	// GetProfileByUsername returns the profile read model: post/follower/
	// following counts plus the viewer-relative isFollowing flag.
	GetProfileByUsername(ctx context.Context, username string, viewerID uuid.UUID) (*User.User, error)

	CreateFollow(ctx context.Context, follow *User.Follow) error
	// DeleteFollow reports whether an edge was actually removed.
	DeleteFollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]User.User, error)
	Following(ctx context.Context, userID uuid.UUID) ([]User.User, error)

	// DeleteUserCascade removes the account and everything it owns in one
	// transaction and returns the stored image URLs for cleanup.
	DeleteUserCascade(ctx context.Context, userID uuid.UUID) ([]string, error)
}
