package usecase

import (
	"context"
	"time"

	"rentnest/internal/domain/entity"
	"rentnest/internal/domain/repository"
	"rentnest/pkg/errors"
)

type ChatUseCase struct {
	chatRepo     repository.ChatRepository
	rentalRepo   repository.RentalRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	rentalRepo repository.RentalRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:     chatRepo,
		rentalRepo:   rentalRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

type SendMessageInput struct {
	ConversationID string
	Text           string
	ImageURL       string
}

// ConversationResponse carries the conversation with its rental's property
// summary and the participants' names populated.
type ConversationResponse struct {
	*entity.Conversation
	Property     *entity.PropertySummary `json:"property,omitempty"`
	Participants []*entity.UserSummary   `json:"participants"`
}

type MessageResponse struct {
	*entity.Message
	Sender *entity.UserSummary `json:"sender,omitempty"`
}

// InitiateConversation is the idempotent find-or-create for a rental's
// thread. Only the rental's tenant or owner may open it.
func (uc *ChatUseCase) InitiateConversation(ctx context.Context, userID, rentalID string) (*ConversationResponse, error) {
	rental, err := uc.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	if !rental.IsParticipant(userID) {
		return nil, errors.Unauthorized("Not authorized for this rental", nil)
	}

	conversation, err := uc.chatRepo.GetConversationByRental(ctx, rentalID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		conversation = &entity.Conversation{
			RentalID:     rentalID,
			Participants: []string{rental.TenantID, rental.OwnerID},
		}
		if err := uc.chatRepo.CreateConversation(ctx, conversation); err != nil {
			return nil, err
		}
	}

	return uc.populateConversation(ctx, conversation)
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string) ([]*ConversationResponse, error) {
	conversations, err := uc.chatRepo.ListConversationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		resp, err := uc.populateConversation(ctx, conversation)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, userID, conversationID string) ([]*MessageResponse, error) {
	conversation, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.IsParticipant(userID) {
		return nil, errors.Unauthorized("Not authorized", nil)
	}

	messages, err := uc.chatRepo.ListMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	responses := make([]*MessageResponse, 0, len(messages))
	for _, message := range messages {
		resp, err := uc.populateMessage(ctx, message)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// SendMessage appends a message and bumps the conversation's last-activity
// timestamp. The receiver is always the other participant.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID string, input SendMessageInput) (*MessageResponse, error) {
	if input.Text == "" && input.ImageURL == "" {
		return nil, errors.BadRequest("Message must include text or an image", nil)
	}

	conversation, err := uc.chatRepo.GetConversationByID(ctx, input.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.IsParticipant(userID) {
		return nil, errors.Unauthorized("Not authorized", nil)
	}

	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       userID,
		ReceiverID:     conversation.OtherParticipant(userID),
		Text:           input.Text,
		ImageURL:       input.ImageURL,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if err := uc.chatRepo.TouchConversation(ctx, conversation.ID); err != nil {
		return nil, err
	}

	return uc.populateMessage(ctx, message)
}

// EditMessage rewrites a text message's body. Image-bearing messages are
// immutable, and the window closes two minutes after creation.
func (uc *ChatUseCase) EditMessage(ctx context.Context, userID, messageID, text string) (*MessageResponse, error) {
	message, err := uc.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.SenderID != userID {
		return nil, errors.Unauthorized("Not authorized to edit", nil)
	}
	if message.ImageURL != "" {
		return nil, errors.BadRequest("Cannot edit messages with images", nil)
	}
	if !message.Editable(time.Now()) {
		return nil, errors.BadRequest("Edit time limit (2 min) exceeded", nil)
	}

	message.Text = text
	message.IsEdited = true
	if err := uc.chatRepo.UpdateMessage(ctx, message); err != nil {
		return nil, err
	}

	return uc.populateMessage(ctx, message)
}

func (uc *ChatUseCase) ReactToMessage(ctx context.Context, userID, messageID, emoji string) (*MessageResponse, error) {
	message, err := uc.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.SenderID != userID && message.ReceiverID != userID {
		return nil, errors.Unauthorized("Not authorized", nil)
	}

	message.React(userID, emoji)
	if err := uc.chatRepo.UpdateMessage(ctx, message); err != nil {
		return nil, err
	}

	return uc.populateMessage(ctx, message)
}

func (uc *ChatUseCase) populateConversation(ctx context.Context, conversation *entity.Conversation) (*ConversationResponse, error) {
	resp := &ConversationResponse{Conversation: conversation}

	rental, err := uc.rentalRepo.GetByID(ctx, conversation.RentalID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if rental != nil {
		property, err := uc.propertyRepo.GetByID(ctx, rental.PropertyID)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		if property != nil {
			resp.Property = property.Summary()
		}
	}

	for _, participantID := range conversation.Participants {
		participant, err := uc.userRepo.GetByID(ctx, participantID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return nil, err
		}
		summary := participant.Summary()
		summary.Email = ""
		resp.Participants = append(resp.Participants, summary)
	}

	return resp, nil
}

func (uc *ChatUseCase) populateMessage(ctx context.Context, message *entity.Message) (*MessageResponse, error) {
	resp := &MessageResponse{Message: message}

	sender, err := uc.userRepo.GetByID(ctx, message.SenderID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if sender != nil {
		summary := sender.Summary()
		summary.Email = ""
		resp.Sender = summary
	}

	return resp, nil
}
