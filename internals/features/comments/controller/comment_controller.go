// file: internals/features/comments/controller/comment_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	commentDto "iflow_backend/internals/features/comments/dto"
	commentSvc "iflow_backend/internals/features/comments/service"
	helper "iflow_backend/internals/helpers"
)

type CommentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /:itemType/:itemId/comments
func (ctl *CommentController) List(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(strings.TrimSpace(c.Params("itemId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	comments, err := commentSvc.ListComments(c.Context(), ctl.DB, c.Params("itemType"), itemID)
	if err != nil {
		if errors.Is(err, commentSvc.ErrInvalidItemType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item type")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comments")
	}
	return helper.JsonOK(c, fiber.Map{"comments": comments})
}

// POST /:itemType/:itemId/comments
func (ctl *CommentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	itemID, err := uuid.Parse(strings.TrimSpace(c.Params("itemId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item id")
	}

	var req commentDto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	comment, err := commentSvc.CreateComment(c.Context(), ctl.DB, c.Params("itemType"), itemID, userID, req.Content)
	if err != nil {
		if errors.Is(err, commentSvc.ErrInvalidItemType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid item type")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}
	return helper.JsonCreated(c, fiber.Map{"comment": comment})
}

// POST /comments/:commentId/like
func (ctl *CommentController) Like(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(strings.TrimSpace(c.Params("commentId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	if err := commentSvc.LikeComment(c.Context(), ctl.DB, commentID, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to like comment")
	}
	return helper.JsonMessage(c, "Comment liked")
}

// DELETE /comments/:commentId
func (ctl *CommentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	commentID, err := uuid.Parse(strings.TrimSpace(c.Params("commentId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	if err := commentSvc.DeleteComment(c.Context(), ctl.DB, commentID, userID); err != nil {
		switch {
		case errors.Is(err, commentSvc.ErrCommentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		case errors.Is(err, commentSvc.ErrNotCommentOwner):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete comment")
		}
	}
	return helper.JsonMessage(c, "Comment deleted successfully")
}
