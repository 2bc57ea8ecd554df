package messaging

import (
	"context"

	"github.com/google/uuid"
)

type MessagingUsecase interface {
	// SendMessage delivers a message to the user behind username, lazily
	// creating the conversation on first contact.
	SendMessage(ctx context.Context, senderID uuid.UUID, username, text string) (*MessageDTO, error)

	// GetThread returns the chronological transcript with the named user and
	// marks the caller's unread messages in it as read.
	GetThread(ctx context.Context, callerID uuid.UUID, username string) ([]MessageDTO, error)

	ListConversations(ctx context.Context, callerID uuid.UUID) ([]ConversationDTO, error)

	DeleteConversation(ctx context.Context, callerID, conversationID uuid.UUID) error
}
