package repository

import (
	"context"

	"rentnest/internal/domain/entity"
)

type ChatRepository interface {
	CreateConversation(ctx context.Context, conversation *entity.Conversation) error
	GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error)
	// GetConversationByRental returns the rental's conversation or NOT_FOUND.
	GetConversationByRental(ctx context.Context, rentalID string) (*entity.Conversation, error)
	// ListConversationsByUser returns the user's conversations, most recently
	// active first.
	ListConversationsByUser(ctx context.Context, userID string) ([]*entity.Conversation, error)
	// TouchConversation bumps the conversation's updatedAt to now.
	TouchConversation(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	GetMessageByID(ctx context.Context, id string) (*entity.Message, error)
	UpdateMessage(ctx context.Context, message *entity.Message) error
	// ListMessagesByConversation returns messages oldest first.
	ListMessagesByConversation(ctx context.Context, conversationID string) ([]*entity.Message, error)
}
