// file: internals/features/messages/controller/message_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	messageDto "iflow_backend/internals/features/messages/dto"
	messageSvc "iflow_backend/internals/features/messages/service"
	helper "iflow_backend/internals/helpers"
)

type MessageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /messages/conversations
func (ctl *MessageController) Conversations(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	convs, err := messageSvc.ListConversations(c.Context(), ctl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch conversations")
	}
	return helper.JsonOK(c, fiber.Map{"conversations": convs})
}

// POST /messages/conversations — buka (atau temukan) DM dengan user lain.
func (ctl *MessageController) Open(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req messageDto.OpenConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	conv, err := messageSvc.OpenDirectConversation(c.Context(), ctl.DB, userID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, messageSvc.ErrSelfConversation):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, messageSvc.ErrPeerNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open conversation")
		}
	}
	return helper.JsonOK(c, fiber.Map{"conversation": conv})
}

// GET /messages/conversations/:conversationId
func (ctl *MessageController) Messages(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	convID, err := uuid.Parse(strings.TrimSpace(c.Params("conversationId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid conversation id")
	}

	msgs, err := messageSvc.ListMessages(c.Context(), ctl.DB, convID, userID)
	if err != nil {
		return ctl.renderMessageError(c, err, "Failed to fetch messages")
	}
	return helper.JsonOK(c, fiber.Map{"messages": msgs})
}

// POST /messages/conversations/:conversationId/messages
func (ctl *MessageController) Send(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	convID, err := uuid.Parse(strings.TrimSpace(c.Params("conversationId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid conversation id")
	}

	var req messageDto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	msg, err := messageSvc.SendMessage(c.Context(), ctl.DB, convID, userID, req)
	if err != nil {
		return ctl.renderMessageError(c, err, "Failed to send message")
	}
	return helper.JsonCreated(c, fiber.Map{"message": msg})
}

func (ctl *MessageController) renderMessageError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, messageSvc.ErrConversationNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Conversation not found")
	case errors.Is(err, messageSvc.ErrNotParticipant):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
