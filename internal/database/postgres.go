package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/sumitdoescode/Clicks/config"
	engagement "github.com/sumitdoescode/Clicks/internal/engagement/model"
	messaging "github.com/sumitdoescode/Clicks/internal/messaging/model"
	post "github.com/sumitdoescode/Clicks/internal/post/model"
	user "github.com/sumitdoescode/Clicks/internal/user/model"
)

// NewPostgres builds the single process-wide connection pool. It is
// constructed once in main and injected into the repositories.
func NewPostgres(cfg *config.Config) (*bun.DB, error) {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	db := bun.NewDB(sqlDB, pgdialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

var indexDDL = []string{
	// one conversation per unordered participant pair
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_conversation_pair
		ON conversations (least(participant1_id, participant2_id), greatest(participant1_id, participant2_id))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_follow_pair ON follows (follower_id, following_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_like_user_post ON likes (user_id, post_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookmark_user_post ON bookmarks (user_id, post_id)`,
	`CREATE INDEX IF NOT EXISTS idx_post_author ON posts (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_comment_post ON comments (post_id)`,
	`CREATE INDEX IF NOT EXISTS idx_message_thread ON messages (conversation_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_message_unread ON messages (conversation_id, receiver_id) WHERE NOT is_read`,
}

// Migrate creates tables and indexes that are missing. It is idempotent and
// runs on every startup.
func Migrate(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*user.User)(nil),
		(*user.Follow)(nil),
		(*post.Post)(nil),
		(*engagement.Like)(nil),
		(*engagement.Bookmark)(nil),
		(*engagement.Comment)(nil),
		(*messaging.Conversation)(nil),
		(*messaging.Message)(nil),
	}

	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	for _, ddl := range indexDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}

	return nil
}
