package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/sumitdoescode/Clicks/internal/database"
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

func truncateMessaging(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE conversations, messages`)
		require.NoError(t, err)
	})
}

func Test_AppendMessage_FirstContact(t *testing.T) {
	truncateMessaging(t)

	repo := NewMessagingRepository(testDB, &logger.Logger{})
	alice, bob := uuid.New(), uuid.New()

	msg, err := repo.AppendMessage(context.Background(), alice, bob, "hey")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.NotEqual(t, uuid.Nil, msg.ConversationID)
	assert.Equal(t, alice, msg.SenderID)
	assert.Equal(t, bob, msg.ReceiverID)
	assert.False(t, msg.IsRead)

	conv, err := repo.GetByParticipants(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.Equal(t, msg.ConversationID, conv.ID)
	assert.Equal(t, msg.ID, conv.LastMessageID)
}

func Test_AppendMessage_ReusesConversation(t *testing.T) {
	truncateMessaging(t)

	repo := NewMessagingRepository(testDB, &logger.Logger{})
	alice, bob := uuid.New(), uuid.New()

	first, err := repo.AppendMessage(context.Background(), alice, bob, "hey")
	require.NoError(t, err)

	// reply goes through the opposite slot order
	second, err := repo.AppendMessage(context.Background(), bob, alice, "hey yourself")
	require.NoError(t, err)
	assert.Equal(t, first.ConversationID, second.ConversationID)

	count, err := testDB.NewSelect().Table("conversations").Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	conv, err := repo.GetByParticipants(context.Background(), alice, bob)
	require.NoError(t, err)
	assert.Equal(t, second.ID, conv.LastMessageID)
}

func Test_AppendMessage_ConcurrentFirstContact(t *testing.T) {
	truncateMessaging(t)

	repo := NewMessagingRepository(testDB, &logger.Logger{})
	alice, bob := uuid.New(), uuid.New()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = repo.AppendMessage(context.Background(), alice, bob, "hello from alice")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = repo.AppendMessage(context.Background(), bob, alice, "hello from bob")
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	count, err := testDB.NewSelect().Table("conversations").Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	conv, err := repo.GetByParticipants(context.Background(), alice, bob)
	require.NoError(t, err)

	msgs, err := repo.ListMessages(context.Background(), conv.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func Test_GetByParticipants_Missing(t *testing.T) {
	truncateMessaging(t)

	repo := NewMessagingRepository(testDB, &logger.Logger{})

	_, err := repo.GetByParticipants(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, appErrors.ErrConversationMissing)
}

func Test_ListMessages_Chronological(t *testing.T) {
	truncateMessaging(t)

	repo := NewMessagingRepository(testDB, &logger.Logger{})
	alice, bob := uuid.New(), uuid.New()

	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		_, err := repo.AppendMessage(context.Background(), alice, bob, text)
		require.NoError(t, err)
	}

	conv, err := repo.GetByParticipants(context.Background(), alice, bob)
	require.NoError(t, err)

	msgs, err := repo.ListMessages(context.Background(), conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	for i, text := range texts {
		assert.Equal(t, text, msgs[i].Text)
	}
}

func Test_MarkRead(t *testing.T) {
	truncateMessaging(t)

	repo := NewMessagingRepository(testDB, &logger.Logger{})
	alice, bob := uuid.New(), uuid.New()

	_, err := repo.AppendMessage(context.Background(), alice, bob, "one")
	require.NoError(t, err)
	_, err = repo.AppendMessage(context.Background(), alice, bob, "two")
	require.NoError(t, err)
	_, err = repo.AppendMessage(context.Background(), bob, alice, "reply")
	require.NoError(t, err)

	conv, err := repo.GetByParticipants(context.Background(), alice, bob)
	require.NoError(t, err)

	// bob views the thread: only the two messages addressed to him flip
	n, err := repo.MarkRead(context.Background(), conv.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	msgs, err := repo.ListMessages(context.Background(), conv.ID)
	require.NoError(t, err)
	for _, m := range msgs {
		if m.ReceiverID == bob {
			assert.True(t, m.IsRead)
		} else {
			assert.False(t, m.IsRead)
		}
	}

	// second view is a no-op
	n, err = repo.MarkRead(context.Background(), conv.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func Test_ListConversations(t *testing.T) {
	truncateMessaging(t)

	repo := NewMessagingRepository(testDB, &logger.Logger{})
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	_, err := repo.AppendMessage(context.Background(), bob, alice, "from bob")
	require.NoError(t, err)
	_, err = repo.AppendMessage(context.Background(), carol, alice, "from carol 1")
	require.NoError(t, err)
	latest, err := repo.AppendMessage(context.Background(), carol, alice, "from carol 2")
	require.NoError(t, err)

	convs, err := repo.ListConversations(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, convs, 2)

	// most recently updated first
	assert.Equal(t, latest.ConversationID, convs[0].ID)
	assert.Equal(t, 2, convs[0].UnreadCount)
	assert.Equal(t, 1, convs[1].UnreadCount)

	require.NotNil(t, convs[0].LastMessage)
	assert.Equal(t, "from carol 2", convs[0].LastMessage.Text)

	// senders have nothing unread
	convs, err = repo.ListConversations(context.Background(), carol)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, 0, convs[0].UnreadCount)
}

func Test_DeleteConversation(t *testing.T) {
	truncateMessaging(t)

	repo := NewMessagingRepository(testDB, &logger.Logger{})
	alice, bob, mallory := uuid.New(), uuid.New(), uuid.New()

	_, err := repo.AppendMessage(context.Background(), alice, bob, "one")
	require.NoError(t, err)
	_, err = repo.AppendMessage(context.Background(), bob, alice, "two")
	require.NoError(t, err)

	conv, err := repo.GetByParticipants(context.Background(), alice, bob)
	require.NoError(t, err)

	// a non-participant cannot delete it
	err = repo.DeleteConversation(context.Background(), conv.ID, mallory)
	assert.ErrorIs(t, err, appErrors.ErrConversationMissing)

	err = repo.DeleteConversation(context.Background(), conv.ID, alice)
	require.NoError(t, err)

	_, err = repo.GetByParticipants(context.Background(), alice, bob)
	assert.ErrorIs(t, err, appErrors.ErrConversationMissing)

	count, err := testDB.NewSelect().Table("messages").Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// already gone
	err = repo.DeleteConversation(context.Background(), conv.ID, alice)
	assert.ErrorIs(t, err, appErrors.ErrConversationMissing)
}
