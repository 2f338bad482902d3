// file: internals/features/posts/controller/post_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	postDto "iflow_backend/internals/features/posts/dto"
	postSvc "iflow_backend/internals/features/posts/service"
	helper "iflow_backend/internals/helpers"
)

type PostController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /posts?hubId=&limit=
func (ctl *PostController) Feed(c *fiber.Ctx) error {
	filter := postSvc.FeedFilter{Limit: helper.ResolveLimit(c, 50, 100)}

	if raw := strings.TrimSpace(c.Query("hubId")); raw != "" {
		hubID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hubId")
		}
		filter.HubID = &hubID
	}

	posts, err := postSvc.ListPosts(c.Context(), ctl.DB, filter, helper.OptionalUserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}
	return helper.JsonOK(c, fiber.Map{"posts": posts})
}

// POST /posts
func (ctl *PostController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req postDto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Content must be 1-280 characters")
	}

	post, err := postSvc.CreatePost(c.Context(), ctl.DB, userID, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return helper.JsonCreated(c, fiber.Map{"post": post})
}

// POST /posts/:postId/like
func (ctl *PostController) React(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(strings.TrimSpace(c.Params("postId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid post id")
	}

	var req postDto.LikePostRequest
	// body boleh kosong: fallback ke emoji default
	_ = c.BodyParser(&req)

	if err := postSvc.ReactToPost(c.Context(), ctl.DB, postID, userID, req.Emoji); err != nil {
		if errors.Is(err, postSvc.ErrPostNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add reaction")
	}
	return helper.JsonMessage(c, "Reaction added")
}
