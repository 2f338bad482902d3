// file: internals/features/hubs/controller/hub_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hubDto "iflow_backend/internals/features/hubs/dto"
	hubSvc "iflow_backend/internals/features/hubs/service"
	postDto "iflow_backend/internals/features/posts/dto"
	postSvc "iflow_backend/internals/features/posts/service"
	helper "iflow_backend/internals/helpers"
)

type HubController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewHubController(db *gorm.DB) *HubController {
	return &HubController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /hubs
func (ctl *HubController) List(c *fiber.Ctx) error {
	hubs, err := hubSvc.ListHubs(c.Context(), ctl.DB, helper.OptionalUserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch hubs")
	}
	return helper.JsonOK(c, fiber.Map{"hubs": hubs})
}

// GET /hubs/:hubId
func (ctl *HubController) Get(c *fiber.Ctx) error {
	hubID, err := uuid.Parse(strings.TrimSpace(c.Params("hubId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hub id")
	}

	detail, err := hubSvc.GetHub(c.Context(), ctl.DB, hubID, helper.OptionalUserID(c))
	if err != nil {
		if errors.Is(err, hubSvc.ErrHubNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hub not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch hub")
	}
	return helper.JsonOK(c, fiber.Map{"hub": detail})
}

// POST /hubs
func (ctl *HubController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req hubDto.CreateHubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hub, err := hubSvc.CreateHub(c.Context(), ctl.DB, userID, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create hub")
	}
	return helper.JsonCreated(c, fiber.Map{"hub": hub})
}

// POST /hubs/:hubId/join
func (ctl *HubController) Join(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	hubID, err := uuid.Parse(strings.TrimSpace(c.Params("hubId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hub id")
	}

	if err := hubSvc.JoinHub(c.Context(), ctl.DB, hubID, userID); err != nil {
		if errors.Is(err, hubSvc.ErrHubNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hub not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to join hub")
	}
	return helper.JsonMessage(c, "Joined hub successfully")
}

// GET /hubs/:hubId/posts — feed post milik hub; anonim hanya post publik.
func (ctl *HubController) Posts(c *fiber.Ctx) error {
	hubID, err := uuid.Parse(strings.TrimSpace(c.Params("hubId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hub id")
	}

	viewerID := helper.OptionalUserID(c)
	filter := postSvc.FeedFilter{
		HubID:      &hubID,
		PublicOnly: viewerID == uuid.Nil,
	}
	posts, err := postSvc.ListPosts(c.Context(), ctl.DB, filter, viewerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch posts")
	}
	return helper.JsonOK(c, fiber.Map{"posts": posts})
}

// POST /hubs/:hubId/posts
func (ctl *HubController) CreatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	hubID, err := uuid.Parse(strings.TrimSpace(c.Params("hubId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hub id")
	}

	var req postDto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.HubID = &hubID
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Content must be 1-280 characters")
	}

	post, err := postSvc.CreatePost(c.Context(), ctl.DB, userID, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create post")
	}
	return helper.JsonCreated(c, fiber.Map{"post": post})
}
