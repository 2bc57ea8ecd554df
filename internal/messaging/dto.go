package messaging

import (
	"time"

	"github.com/google/uuid"
	"github.com/sumitdoescode/Clicks/internal/user"
)

type MessageDTO struct {
	ID             uuid.UUID `json:"_id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"sender"`
	ReceiverID     uuid.UUID `json:"receiver"`
	Text           string    `json:"text"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

type LastMessageDTO struct {
	Text      string    `json:"text"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConversationDTO struct {
	ID               uuid.UUID        `json:"_id"`
	OtherParticipant user.UserCardDTO `json:"otherParticipant"`
	LastMessage      *LastMessageDTO  `json:"lastMessage,omitempty"`
	UnreadCount      int              `json:"unreadCount"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
