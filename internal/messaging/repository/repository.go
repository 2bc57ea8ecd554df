package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	Messaging "github.com/sumitdoescode/Clicks/internal/messaging/model"
	appErrors "github.com/sumitdoescode/Clicks/pkg/errors"
	"github.com/sumitdoescode/Clicks/pkg/logger"
)

type MessagingRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessagingRepository(db *bun.DB, logger *logger.Logger) *MessagingRepository {
	return &MessagingRepository{db: db, logger: logger}
}

// pairSelect matches the conversation between two users in either slot order.
func pairSelect(q *bun.SelectQuery, a, b uuid.UUID) *bun.SelectQuery {
	return q.Where(
		"(conv.participant1_id = ? AND conv.participant2_id = ?) OR (conv.participant1_id = ? AND conv.participant2_id = ?)",
		a, b, b, a,
	)
}

func (r *MessagingRepository) GetByParticipants(ctx context.Context, userA, userB uuid.UUID) (*Messaging.Conversation, error) {
	conv := new(Messaging.Conversation)
	err := pairSelect(r.db.NewSelect().Model(conv), userA, userB).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrConversationMissing
		}
		return nil, errors.Wrap(err, "messagingRepo.GetByParticipants.Scan")
	}
	return conv, nil
}

func (r *MessagingRepository) AppendMessage(ctx context.Context, senderID, receiverID uuid.UUID, text string) (*Messaging.Message, error) {
	msg := new(Messaging.Message)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		conv := new(Messaging.Conversation)
		err := pairSelect(tx.NewSelect().Model(conv), senderID, receiverID).Scan(ctx)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			conv = &Messaging.Conversation{
				Participant1ID: senderID,
				Participant2ID: receiverID,
			}
			res, err := tx.NewInsert().
				Model(conv).
				On("CONFLICT DO NOTHING").
				Returning("*").
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "messagingRepo.Append.InsertConversation")
			}
			// zero rows means a concurrent first contact won the pair index
			// race; its row is committed by now, so re-resolve instead of
			// surfacing the conflict
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				conv = new(Messaging.Conversation)
				if err := pairSelect(tx.NewSelect().Model(conv), senderID, receiverID).Scan(ctx); err != nil {
					return errors.Wrap(err, "messagingRepo.Append.ReResolve")
				}
			}
		case err != nil:
			return errors.Wrap(err, "messagingRepo.Append.FindConversation")
		}

		msg.ConversationID = conv.ID
		msg.SenderID = senderID
		msg.ReceiverID = receiverID
		msg.Text = text
		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "messagingRepo.Append.InsertMessage")
		}

		if _, err := tx.NewUpdate().
			Model((*Messaging.Conversation)(nil)).
			Set("last_message_id = ?", msg.ID).
			Set("updated_at = current_timestamp").
			Where("id = ?", conv.ID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messagingRepo.Append.UpdateLastMessage")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *MessagingRepository) ListConversations(ctx context.Context, userID uuid.UUID) ([]Messaging.Conversation, error) {
	var convs []Messaging.Conversation
	err := r.db.NewSelect().
		Model(&convs).
		Relation("LastMessage").
		ColumnExpr("conv.*").
		ColumnExpr("(SELECT count(*) FROM messages WHERE conversation_id = conv.id AND receiver_id = ? AND NOT is_read) AS unread_count", userID).
		Where("conv.participant1_id = ? OR conv.participant2_id = ?", userID, userID).
		OrderExpr("conv.updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.ListConversations.Scan")
	}
	return convs, nil
}

func (r *MessagingRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]Messaging.Message, error) {
	var msgs []Messaging.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "messagingRepo.ListMessages.Scan")
	}
	return msgs, nil
}

func (r *MessagingRepository) MarkRead(ctx context.Context, conversationID, receiverID uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*Messaging.Message)(nil)).
		Set("is_read = true").
		Where("conversation_id = ? AND receiver_id = ? AND NOT is_read", conversationID, receiverID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "messagingRepo.MarkRead.Exec")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "messagingRepo.MarkRead.RowsAffected")
	}
	return n, nil
}

func (r *MessagingRepository) DeleteConversation(ctx context.Context, conversationID, participantID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*Messaging.Conversation)(nil)).
			Where("id = ?", conversationID).
			Where("participant1_id = ? OR participant2_id = ?", participantID, participantID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "messagingRepo.DeleteConversation.DeleteConversation")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "messagingRepo.DeleteConversation.RowsAffected")
		}
		if n == 0 {
			// a stranger's conversation looks the same as a missing one
			return appErrors.ErrConversationMissing
		}

		if _, err := tx.NewDelete().
			Model((*Messaging.Message)(nil)).
			Where("conversation_id = ?", conversationID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "messagingRepo.DeleteConversation.DeleteMessages")
		}
		return nil
	})
}
