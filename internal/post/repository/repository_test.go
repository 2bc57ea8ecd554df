package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/sumitdoescode/Clicks/internal/database"
	engagementModels "github.com/sumitdoescode/Clicks/internal/engagement/model"
	models "github.com/sumitdoescode/Clicks/internal/post/model"
	userModels "github.com/sumitdoescode/Clicks/internal/user/model"
	appErrors "github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("clicks"),
		postgres.WithUsername("clicks"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if err := database.Migrate(ctx, testDB); err != nil {
		testDB.Close()
		log.Fatalf("failed to migrate: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE users, posts, likes, bookmarks, comments`)
		require.NoError(t, err)
	})
}

func mkUser(t *testing.T, username string) *userModels.User {
	t.Helper()
	u := &userModels.User{
		Name:         "Test " + username,
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "hash",
	}
	_, err := testDB.NewInsert().Model(u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u
}

func Test_CreatePost(t *testing.T) {
	truncateAll(t)

	repo := NewPostRepository(testDB, &logger.Logger{})
	author := mkUser(t, "author")

	p := &models.Post{UserID: author.ID, Caption: "hello", Image: "/uploads/a.png"}
	require.NoError(t, repo.CreatePost(context.Background(), p))
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	fetched, err := repo.GetPostByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", fetched.Caption)

	_, err = repo.GetPostByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, appErrors.ErrPostNotFound)
}

func Test_ListFeed(t *testing.T) {
	truncateAll(t)

	repo := NewPostRepository(testDB, &logger.Logger{})
	author := mkUser(t, "author")
	viewer := mkUser(t, "viewer")

	older := &models.Post{UserID: author.ID, Caption: "older", Image: "/uploads/1.png"}
	newer := &models.Post{UserID: author.ID, Caption: "newer", Image: "/uploads/2.png"}
	require.NoError(t, repo.CreatePost(context.Background(), older))
	require.NoError(t, repo.CreatePost(context.Background(), newer))

	for _, m := range []any{
		&engagementModels.Like{UserID: viewer.ID, PostID: older.ID},
		&engagementModels.Like{UserID: author.ID, PostID: older.ID},
		&engagementModels.Comment{UserID: viewer.ID, PostID: older.ID, Text: "nice"},
		&engagementModels.Bookmark{UserID: viewer.ID, PostID: newer.ID},
	} {
		_, err := testDB.NewInsert().Model(m).Exec(context.Background())
		require.NoError(t, err)
	}

	feed, err := repo.ListFeed(context.Background(), viewer.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// newest first
	assert.Equal(t, "newer", feed[0].Caption)
	assert.False(t, feed[0].IsLiked)
	assert.True(t, feed[0].IsBookmarked)
	assert.Equal(t, 0, feed[0].LikesCount)

	assert.Equal(t, "older", feed[1].Caption)
	assert.True(t, feed[1].IsLiked)
	assert.False(t, feed[1].IsBookmarked)
	assert.Equal(t, 2, feed[1].LikesCount)
	assert.Equal(t, 1, feed[1].CommentsCount)

	require.NotNil(t, feed[0].User)
	assert.Equal(t, "author", feed[0].User.Username)
}

func Test_ListByAuthor(t *testing.T) {
	truncateAll(t)

	repo := NewPostRepository(testDB, &logger.Logger{})
	author := mkUser(t, "author")
	other := mkUser(t, "other")

	require.NoError(t, repo.CreatePost(context.Background(), &models.Post{UserID: author.ID, Caption: "mine", Image: "/uploads/1.png"}))
	require.NoError(t, repo.CreatePost(context.Background(), &models.Post{UserID: other.ID, Caption: "theirs", Image: "/uploads/2.png"}))

	posts, err := repo.ListByAuthor(context.Background(), author.ID, author.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "mine", posts[0].Caption)
}

func Test_UpdateCaption(t *testing.T) {
	truncateAll(t)

	repo := NewPostRepository(testDB, &logger.Logger{})
	author := mkUser(t, "author")

	p := &models.Post{UserID: author.ID, Caption: "before", Image: "/uploads/1.png"}
	require.NoError(t, repo.CreatePost(context.Background(), p))

	require.NoError(t, repo.UpdateCaption(context.Background(), p.ID, "after"))

	fetched, err := repo.GetPostByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", fetched.Caption)
}

func Test_DeletePostCascade(t *testing.T) {
	truncateAll(t)

	repo := NewPostRepository(testDB, &logger.Logger{})
	author := mkUser(t, "author")
	fan := mkUser(t, "fan")

	p := &models.Post{UserID: author.ID, Caption: "doomed", Image: "/uploads/1.png"}
	survivor := &models.Post{UserID: author.ID, Caption: "kept", Image: "/uploads/2.png"}
	require.NoError(t, repo.CreatePost(context.Background(), p))
	require.NoError(t, repo.CreatePost(context.Background(), survivor))

	for _, m := range []any{
		&engagementModels.Like{UserID: fan.ID, PostID: p.ID},
		&engagementModels.Bookmark{UserID: fan.ID, PostID: p.ID},
		&engagementModels.Comment{UserID: fan.ID, PostID: p.ID, Text: "bye"},
		&engagementModels.Like{UserID: fan.ID, PostID: survivor.ID},
	} {
		_, err := testDB.NewInsert().Model(m).Exec(context.Background())
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeletePostCascade(context.Background(), p.ID))

	_, err := repo.GetPostByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, appErrors.ErrPostNotFound)

	for table, want := range map[string]int{
		"likes":     1, // the survivor's like is untouched
		"bookmarks": 0,
		"comments":  0,
		"posts":     1,
	} {
		count, err := testDB.NewSelect().Table(table).Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, count, "table %s", table)
	}

	err = repo.DeletePostCascade(context.Background(), p.ID)
	assert.ErrorIs(t, err, appErrors.ErrPostNotFound)
}
