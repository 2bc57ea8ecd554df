package user

import (
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase, DTOs travel back out.

type RegisterCommand struct {
	Name     string
	Username string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}

type UpdateProfileCommand struct {
	Name  string // empty = unchanged
	Bio   *string
	Image *multipart.FileHeader // nil = unchanged
}

type UserDTO struct {
	ID       uuid.UUID `json:"_id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Bio      string    `json:"bio"`
	Image    string    `json:"image"`
}

type AuthDTO struct {
	AccessToken string  `json:"access_token"`
	ExpiresIn   int     `json:"expires_in"`
	TokenType   string  `json:"token_type"`
	User        UserDTO `json:"user"`
}

// UserCardDTO is the compact profile shape embedded in lists.
type UserCardDTO struct {
	ID       uuid.UUID `json:"_id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Image    string    `json:"image"`
}

type ProfileDTO struct {
	ID             uuid.UUID `json:"_id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	Image          string    `json:"image"`
	PostsCount     int       `json:"postsCount"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	IsFollowing    bool      `json:"isFollowing"`
	CreatedAt      time.Time `json:"createdAt"`
}
