package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sumitdoescode/Clicks/internal/messaging"
	models "github.com/sumitdoescode/Clicks/internal/messaging/model"
	"github.com/sumitdoescode/Clicks/internal/user"
	"github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
)

const maxMessageLen = 300

type MessagingUsecase struct {
	repo     messaging.MessagingRepository
	userRepo user.UserRepository
	logger   *logger.Logger
}

func NewMessagingUsecase(repo messaging.MessagingRepository, userRepo user.UserRepository, logger *logger.Logger) *MessagingUsecase {
	return &MessagingUsecase{repo: repo, userRepo: userRepo, logger: logger}
}

func validateText(text string) error {
	if text == "" {
		return errors.ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > maxMessageLen {
		return errors.ErrMessageTooLong
	}
	return nil
}

func (uc *MessagingUsecase) SendMessage(ctx context.Context, senderID uuid.UUID, username, text string) (*messaging.MessageDTO, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	receiver, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error resolving user", "username", username, "err", err)
		return nil, errors.Internal("internal server error")
	}

	if receiver.ID == senderID {
		return nil, errors.ErrSelfMessage
	}

	msg, err := uc.repo.AppendMessage(ctx, senderID, receiver.ID, text)
	if err != nil {
		uc.logger.Error("failed to append message", "sender", senderID, "receiver", receiver.ID, "err", err)
		return nil, errors.ErrSendFailed(err)
	}

	return toMessageDTO(msg), nil
}

func (uc *MessagingUsecase) GetThread(ctx context.Context, callerID uuid.UUID, username string) ([]messaging.MessageDTO, error) {
	other, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error resolving user", "username", username, "err", err)
		return nil, errors.Internal("internal server error")
	}

	// no self guard here: a conversation with yourself can never exist, so
	// the lookup below reports not found
	conv, err := uc.repo.GetByParticipants(ctx, callerID, other.ID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return nil, err
		}
		uc.logger.Error("database error resolving conversation", "err", err)
		return nil, errors.Internal("internal server error")
	}

	msgs, err := uc.repo.ListMessages(ctx, conv.ID)
	if err != nil {
		uc.logger.Error("database error listing messages", "conversation_id", conv.ID, "err", err)
		return nil, errors.Internal("failed to fetch messages")
	}

	// mark-read-on-view is best effort relative to the fetch; the returned
	// transcript may still show pre-transition state
	if _, err := uc.repo.MarkRead(ctx, conv.ID, callerID); err != nil {
		uc.logger.Warn("failed to mark messages read", "conversation_id", conv.ID, "err", err)
	}

	dtos := make([]messaging.MessageDTO, 0, len(msgs))
	for i := range msgs {
		dtos = append(dtos, *toMessageDTO(&msgs[i]))
	}
	return dtos, nil
}

func (uc *MessagingUsecase) ListConversations(ctx context.Context, callerID uuid.UUID) ([]messaging.ConversationDTO, error) {
	convs, err := uc.repo.ListConversations(ctx, callerID)
	if err != nil {
		uc.logger.Error("database error listing conversations", "err", err)
		return nil, errors.Internal("failed to fetch conversations")
	}

	otherIDs := make([]uuid.UUID, 0, len(convs))
	for _, c := range convs {
		otherIDs = append(otherIDs, otherParticipant(&c, callerID))
	}

	others, err := uc.userRepo.GetUsersByIDs(ctx, otherIDs)
	if err != nil {
		uc.logger.Error("database error resolving participants", "err", err)
		return nil, errors.Internal("failed to fetch conversations")
	}
	cards := make(map[uuid.UUID]user.UserCardDTO, len(others))
	for _, u := range others {
		cards[u.ID] = user.UserCardDTO{ID: u.ID, Name: u.Name, Username: u.Username, Image: u.Image}
	}

	dtos := make([]messaging.ConversationDTO, 0, len(convs))
	for i := range convs {
		c := &convs[i]
		dto := messaging.ConversationDTO{
			ID:               c.ID,
			OtherParticipant: cards[otherParticipant(c, callerID)],
			UnreadCount:      c.UnreadCount,
			UpdatedAt:        c.UpdatedAt,
		}
		if c.LastMessage != nil {
			dto.LastMessage = &messaging.LastMessageDTO{
				Text:      c.LastMessage.Text,
				IsRead:    c.LastMessage.IsRead,
				CreatedAt: c.LastMessage.CreatedAt,
			}
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (uc *MessagingUsecase) DeleteConversation(ctx context.Context, callerID, conversationID uuid.UUID) error {
	err := uc.repo.DeleteConversation(ctx, conversationID, callerID)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeNotFound {
			return err
		}
		uc.logger.Error("failed to delete conversation", "conversation_id", conversationID, "err", err)
		return errors.Internal("failed to delete conversation")
	}
	return nil
}

func otherParticipant(c *models.Conversation, callerID uuid.UUID) uuid.UUID {
	if c.Participant1ID == callerID {
		return c.Participant2ID
	}
	return c.Participant1ID
}

func toMessageDTO(m *models.Message) *messaging.MessageDTO {
	return &messaging.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		ReceiverID:     m.ReceiverID,
		Text:           m.Text,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}
