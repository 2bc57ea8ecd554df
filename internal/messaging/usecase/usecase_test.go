package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	messagingMocks "github.com/sumitdoescode/Clicks/internal/messaging/mocks"
	messagingModels "github.com/sumitdoescode/Clicks/internal/messaging/model"
	userMocks "github.com/sumitdoescode/Clicks/internal/user/mocks"
	userModels "github.com/sumitdoescode/Clicks/internal/user/model"
	appErrors "github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
)

func newTestUsecase(t *testing.T) (*MessagingUsecase, *messagingMocks.MockMessagingRepository, *userMocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := messagingMocks.NewMockMessagingRepository(ctrl)
	mockUserRepo := userMocks.NewMockUserRepository(ctrl)
	uc := NewMessagingUsecase(mockRepo, mockUserRepo, &logger.Logger{})
	return uc, mockRepo, mockUserRepo
}

func Test_SendMessage(t *testing.T) {
	senderID := uuid.New()
	receiver := &userModels.User{ID: uuid.New(), Username: "bob", Name: "Bob"}

	t.Run("happy path - message delivered", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		stored := &messagingModels.Message{
			ID:             uuid.New(),
			ConversationID: uuid.New(),
			SenderID:       senderID,
			ReceiverID:     receiver.ID,
			Text:           "hello",
			CreatedAt:      time.Now(),
		}

		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(receiver, nil)
		mockRepo.EXPECT().AppendMessage(gomock.Any(), senderID, receiver.ID, "hello").Return(stored, nil)

		dto, err := uc.SendMessage(context.Background(), senderID, "bob", "hello")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, dto.ID)
		assert.Equal(t, stored.ConversationID, dto.ConversationID)
		assert.Equal(t, "hello", dto.Text)
		assert.False(t, dto.IsRead)
	})

	t.Run("sad path - empty text", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)

		_, err := uc.SendMessage(context.Background(), senderID, "bob", "")
		assert.ErrorIs(t, err, appErrors.ErrEmptyMessage)
	})

	t.Run("sad path - text too long", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)

		_, err := uc.SendMessage(context.Background(), senderID, "bob", strings.Repeat("a", 301))
		assert.ErrorIs(t, err, appErrors.ErrMessageTooLong)
	})

	t.Run("happy path - multibyte text counted in characters", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		// 300 characters but 600 bytes; the limit is on characters
		text := strings.Repeat("é", 300)
		stored := &messagingModels.Message{
			ID:             uuid.New(),
			ConversationID: uuid.New(),
			SenderID:       senderID,
			ReceiverID:     receiver.ID,
			Text:           text,
		}

		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(receiver, nil)
		mockRepo.EXPECT().AppendMessage(gomock.Any(), senderID, receiver.ID, text).Return(stored, nil)

		dto, err := uc.SendMessage(context.Background(), senderID, "bob", text)
		require.NoError(t, err)
		assert.Equal(t, text, dto.Text)
	})

	t.Run("sad path - multibyte text over the limit", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)

		_, err := uc.SendMessage(context.Background(), senderID, "bob", strings.Repeat("é", 301))
		assert.ErrorIs(t, err, appErrors.ErrMessageTooLong)
	})

	t.Run("sad path - unknown recipient", func(t *testing.T) {
		uc, _, mockUserRepo := newTestUsecase(t)

		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, appErrors.ErrUserNotFound)

		_, err := uc.SendMessage(context.Background(), senderID, "ghost", "hello")
		assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
	})

	t.Run("sad path - message to self", func(t *testing.T) {
		uc, _, mockUserRepo := newTestUsecase(t)

		self := &userModels.User{ID: senderID, Username: "me"}
		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "me").Return(self, nil)

		_, err := uc.SendMessage(context.Background(), senderID, "me", "hello")
		assert.ErrorIs(t, err, appErrors.ErrSelfMessage)
	})

	t.Run("sad path - db down", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(receiver, nil)
		mockRepo.EXPECT().AppendMessage(gomock.Any(), senderID, receiver.ID, "hello").Return(nil, errors.New("db down"))

		_, err := uc.SendMessage(context.Background(), senderID, "bob", "hello")
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}

func Test_GetThread(t *testing.T) {
	callerID := uuid.New()
	other := &userModels.User{ID: uuid.New(), Username: "bob"}
	convID := uuid.New()

	t.Run("happy path - thread fetched and marked read", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		conv := &messagingModels.Conversation{ID: convID, Participant1ID: callerID, Participant2ID: other.ID}
		msgs := []messagingModels.Message{
			{ID: uuid.New(), ConversationID: convID, SenderID: other.ID, ReceiverID: callerID, Text: "hi"},
			{ID: uuid.New(), ConversationID: convID, SenderID: callerID, ReceiverID: other.ID, Text: "hey"},
		}

		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(other, nil)
		mockRepo.EXPECT().GetByParticipants(gomock.Any(), callerID, other.ID).Return(conv, nil)
		mockRepo.EXPECT().ListMessages(gomock.Any(), convID).Return(msgs, nil)
		mockRepo.EXPECT().MarkRead(gomock.Any(), convID, callerID).Return(int64(1), nil)

		dtos, err := uc.GetThread(context.Background(), callerID, "bob")
		require.NoError(t, err)
		require.Len(t, dtos, 2)
		assert.Equal(t, "hi", dtos[0].Text)
		assert.Equal(t, "hey", dtos[1].Text)
	})

	t.Run("sad path - no conversation yet", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(other, nil)
		mockRepo.EXPECT().GetByParticipants(gomock.Any(), callerID, other.ID).Return(nil, appErrors.ErrConversationMissing)

		_, err := uc.GetThread(context.Background(), callerID, "bob")
		assert.ErrorIs(t, err, appErrors.ErrConversationMissing)
	})

	t.Run("sad path - own username reports no conversation", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		self := &userModels.User{ID: callerID, Username: "me"}
		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "me").Return(self, nil)
		mockRepo.EXPECT().GetByParticipants(gomock.Any(), callerID, callerID).Return(nil, appErrors.ErrConversationMissing)

		_, err := uc.GetThread(context.Background(), callerID, "me")
		assert.ErrorIs(t, err, appErrors.ErrConversationMissing)
	})

	t.Run("mark-read failure does not fail the read", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		conv := &messagingModels.Conversation{ID: convID, Participant1ID: callerID, Participant2ID: other.ID}

		mockUserRepo.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(other, nil)
		mockRepo.EXPECT().GetByParticipants(gomock.Any(), callerID, other.ID).Return(conv, nil)
		mockRepo.EXPECT().ListMessages(gomock.Any(), convID).Return([]messagingModels.Message{}, nil)
		mockRepo.EXPECT().MarkRead(gomock.Any(), convID, callerID).Return(int64(0), errors.New("db down"))

		dtos, err := uc.GetThread(context.Background(), callerID, "bob")
		require.NoError(t, err)
		assert.Empty(t, dtos)
	})
}

func Test_ListConversations(t *testing.T) {
	callerID := uuid.New()
	bob := userModels.User{ID: uuid.New(), Username: "bob", Name: "Bob", Image: "/uploads/bob.png"}
	carol := userModels.User{ID: uuid.New(), Username: "carol", Name: "Carol"}

	t.Run("happy path - counterpart cards attached", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		convs := []messagingModels.Conversation{
			{
				ID:             uuid.New(),
				Participant1ID: callerID,
				Participant2ID: bob.ID,
				LastMessage:    &messagingModels.Message{Text: "latest", IsRead: false},
				UnreadCount:    3,
			},
			{
				// caller in the second slot
				ID:             uuid.New(),
				Participant1ID: carol.ID,
				Participant2ID: callerID,
				UnreadCount:    0,
			},
		}

		mockRepo.EXPECT().ListConversations(gomock.Any(), callerID).Return(convs, nil)
		mockUserRepo.EXPECT().GetUsersByIDs(gomock.Any(), []uuid.UUID{bob.ID, carol.ID}).Return([]userModels.User{bob, carol}, nil)

		dtos, err := uc.ListConversations(context.Background(), callerID)
		require.NoError(t, err)
		require.Len(t, dtos, 2)

		assert.Equal(t, "bob", dtos[0].OtherParticipant.Username)
		assert.Equal(t, 3, dtos[0].UnreadCount)
		require.NotNil(t, dtos[0].LastMessage)
		assert.Equal(t, "latest", dtos[0].LastMessage.Text)

		assert.Equal(t, "carol", dtos[1].OtherParticipant.Username)
		assert.Nil(t, dtos[1].LastMessage)
	})

	t.Run("happy path - no conversations", func(t *testing.T) {
		uc, mockRepo, mockUserRepo := newTestUsecase(t)

		mockRepo.EXPECT().ListConversations(gomock.Any(), callerID).Return(nil, nil)
		mockUserRepo.EXPECT().GetUsersByIDs(gomock.Any(), []uuid.UUID{}).Return(nil, nil)

		dtos, err := uc.ListConversations(context.Background(), callerID)
		require.NoError(t, err)
		assert.Empty(t, dtos)
	})
}

func Test_DeleteConversation(t *testing.T) {
	callerID := uuid.New()
	convID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().DeleteConversation(gomock.Any(), convID, callerID).Return(nil)

		err := uc.DeleteConversation(context.Background(), callerID, convID)
		require.NoError(t, err)
	})

	t.Run("sad path - not a participant", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().DeleteConversation(gomock.Any(), convID, callerID).Return(appErrors.ErrConversationMissing)

		err := uc.DeleteConversation(context.Background(), callerID, convID)
		assert.ErrorIs(t, err, appErrors.ErrConversationMissing)
	})
}
