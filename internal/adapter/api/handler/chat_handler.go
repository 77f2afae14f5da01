package handler

import (
	"github.com/labstack/echo/v4"

	"rentnest/internal/usecase"
	"rentnest/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type initiateConversationRequest struct {
	RentalID string `json:"rental_id" validate:"required"`
}

type sendMessageRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type editMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type reactRequest struct {
	Emoji string `json:"emoji" validate:"required"`
}

func (h *ChatHandler) GetMyConversations(c echo.Context) error {
	userID := c.Get("uid").(string)

	conversations, err := h.chatUseCase.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

func (h *ChatHandler) InitiateConversation(c echo.Context) error {
	var req initiateConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	conversation, err := h.chatUseCase.InitiateConversation(c.Request().Context(), userID, req.RentalID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}

func (h *ChatHandler) GetMessages(c echo.Context) error {
	userID := c.Get("uid").(string)

	messages, err := h.chatUseCase.ListMessages(c.Request().Context(), userID, c.Param("conversationId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		ConversationID: c.Param("conversationId"),
		Text:           req.Text,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) EditMessage(c echo.Context) error {
	var req editMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.chatUseCase.EditMessage(c.Request().Context(), userID, c.Param("messageId"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, message)
}

func (h *ChatHandler) ReactToMessage(c echo.Context) error {
	var req reactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	message, err := h.chatUseCase.ReactToMessage(c.Request().Context(), userID, c.Param("messageId"), req.Emoji)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, message)
}
