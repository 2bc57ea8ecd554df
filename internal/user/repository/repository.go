package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	engagement "github.com/sumitdoescode/Clicks/internal/engagement/model"
	messaging "github.com/sumitdoescode/Clicks/internal/messaging/model"
	post "github.com/sumitdoescode/Clicks/internal/post/model"
	User "github.com/sumitdoescode/Clicks/internal/user/model"
	appErrors "github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			if strings.Contains(pgErr.Field('n'), "email") {
				return appErrors.ErrEmailTaken
			}
			return appErrors.ErrUsernameTaken
		}
		return errors.Wrap(err, "userRepo.CreateUser.Insert")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("u.username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan")
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().Model(user).Where("u.email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByEmail.Scan")
	}
	return user, nil
}

func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]User.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []User.User
	err := r.db.NewSelect().Model(&users).Where("u.id IN (?)", bun.In(ids)).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetUsersByIDs.Scan")
	}
	return users, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]User.User, error) {
	var users []User.User
	err := r.db.NewSelect().Model(&users).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListUsers.Scan")
	}
	return users, nil
}

func (r *UserRepository) SaveProfile(ctx context.Context, user *User.User) error {
	_, err := r.db.NewUpdate().
		Model(user).
		Column("name", "bio", "image").
		Set("updated_at = current_timestamp").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.SaveProfile.Update")
	}
	return nil
}

func (r *UserRepository) GetProfileByUsername(ctx context.Context, username string, viewerID uuid.UUID) (*User.User, error) {
	user := new(User.User)
	err := r.db.NewSelect().
		Model(user).
		ColumnExpr("u.*").
		ColumnExpr("(SELECT count(*) FROM posts WHERE user_id = u.id) AS posts_count").
		ColumnExpr("(SELECT count(*) FROM follows WHERE following_id = u.id) AS followers_count").
		ColumnExpr("(SELECT count(*) FROM follows WHERE follower_id = u.id) AS following_count").
		ColumnExpr("EXISTS(SELECT 1 FROM follows WHERE follower_id = ? AND following_id = u.id) AS is_following", viewerID).
		Where("u.username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetProfileByUsername.Scan")
	}
	return user, nil
}

func (r *UserRepository) CreateFollow(ctx context.Context, follow *User.Follow) error {
	// the unique pair index is the backstop against concurrent double-follow
	_, err := r.db.NewInsert().Model(follow).On("CONFLICT DO NOTHING").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.CreateFollow.Insert")
	}
	return nil
}

func (r *UserRepository) DeleteFollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*User.Follow)(nil)).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.DeleteFollow.Exec")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "userRepo.DeleteFollow.RowsAffected")
	}
	return n > 0, nil
}

func (r *UserRepository) Followers(ctx context.Context, userID uuid.UUID) ([]User.User, error) {
	var users []User.User
	err := r.db.NewSelect().
		Model(&users).
		Join("JOIN follows AS f ON f.follower_id = u.id").
		Where("f.following_id = ?", userID).
		Order("f.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.Followers.Scan")
	}
	return users, nil
}

func (r *UserRepository) Following(ctx context.Context, userID uuid.UUID) ([]User.User, error) {
	var users []User.User
	err := r.db.NewSelect().
		Model(&users).
		Join("JOIN follows AS f ON f.following_id = u.id").
		Where("f.follower_id = ?", userID).
		Order("f.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.Following.Scan")
	}
	return users, nil
}

func (r *UserRepository) DeleteUserCascade(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var images []string

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().
			Model((*post.Post)(nil)).
			Column("image").
			Where("user_id = ?", userID).
			Scan(ctx, &images); err != nil {
			return errors.Wrap(err, "userRepo.DeleteUserCascade.SelectImages")
		}

		var postIDs []uuid.UUID
		if err := tx.NewSelect().
			Model((*post.Post)(nil)).
			Column("id").
			Where("user_id = ?", userID).
			Scan(ctx, &postIDs); err != nil {
			return errors.Wrap(err, "userRepo.DeleteUserCascade.SelectPosts")
		}

		// engagement rows the user authored anywhere, plus every row on the
		// user's own posts
		for _, m := range []any{
			(*engagement.Like)(nil),
			(*engagement.Bookmark)(nil),
			(*engagement.Comment)(nil),
		} {
			q := tx.NewDelete().Model(m).Where("user_id = ?", userID)
			if len(postIDs) > 0 {
				q = q.WhereOr("post_id IN (?)", bun.In(postIDs))
			}
			if _, err := q.Exec(ctx); err != nil {
				return errors.Wrap(err, "userRepo.DeleteUserCascade.DeleteEngagement")
			}
		}

		if _, err := tx.NewDelete().
			Model((*post.Post)(nil)).
			Where("user_id = ?", userID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.DeleteUserCascade.DeletePosts")
		}

		if _, err := tx.NewDelete().
			Model((*User.Follow)(nil)).
			Where("follower_id = ?", userID).
			WhereOr("following_id = ?", userID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.DeleteUserCascade.DeleteFollows")
		}

		var convIDs []uuid.UUID
		if err := tx.NewSelect().
			Model((*messaging.Conversation)(nil)).
			Column("id").
			Where("participant1_id = ?", userID).
			WhereOr("participant2_id = ?", userID).
			Scan(ctx, &convIDs); err != nil {
			return errors.Wrap(err, "userRepo.DeleteUserCascade.SelectConversations")
		}
		if len(convIDs) > 0 {
			if _, err := tx.NewDelete().
				Model((*messaging.Message)(nil)).
				Where("conversation_id IN (?)", bun.In(convIDs)).
				Exec(ctx); err != nil {
				return errors.Wrap(err, "userRepo.DeleteUserCascade.DeleteMessages")
			}
			if _, err := tx.NewDelete().
				Model((*messaging.Conversation)(nil)).
				Where("id IN (?)", bun.In(convIDs)).
				Exec(ctx); err != nil {
				return errors.Wrap(err, "userRepo.DeleteUserCascade.DeleteConversations")
			}
		}

		res, err := tx.NewDelete().
			Model((*User.User)(nil)).
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "userRepo.DeleteUserCascade.DeleteUser")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "userRepo.DeleteUserCascade.RowsAffected")
		}
		if n == 0 {
			return appErrors.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}
