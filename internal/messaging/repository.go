package messaging

import (
	"context"

	"github.com/google/uuid"
	Messaging "github.com/sumitdoescode/Clicks/internal/messaging/model"
)

type MessagingRepository interface {
	// AppendMessage resolves the conversation between sender and receiver
	// (creating it on first contact), inserts the message and advances the
	// conversation's last-message pointer — all in one transaction. A lost
	// creation race against a concurrent first contact is recovered by
	// re-resolving the winner's row, never surfaced.
	AppendMessage(ctx context.Context, senderID, receiverID uuid.UUID, text string) (*Messaging.Message, error)

	// GetByParticipants looks the conversation up in either slot order.
	GetByParticipants(ctx context.Context, userA, userB uuid.UUID) (*Messaging.Conversation, error)

	// ListConversations returns the caller's conversations with last message
	// and unread count attached, most recently updated first.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]Messaging.Conversation, error)

	// ListMessages returns the full transcript, oldest first.
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]Messaging.Message, error)

	// MarkRead flips isRead on every unread message in the conversation
	// addressed to receiverID; returns how many flipped.
	MarkRead(ctx context.Context, conversationID, receiverID uuid.UUID) (int64, error)

	// DeleteConversation removes the conversation and its messages in one
	// transaction, scoped to a participant.
	DeleteConversation(ctx context.Context, conversationID, participantID uuid.UUID) error
}
