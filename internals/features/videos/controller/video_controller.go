// file: internals/features/videos/controller/video_controller.go
package controller

import (
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	videoDto "iflow_backend/internals/features/videos/dto"
	videoSvc "iflow_backend/internals/features/videos/service"
	helper "iflow_backend/internals/helpers"
)

type VideoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /videos?hubId=&propTag=&limit=&offset=
func (ctl *VideoController) Feed(c *fiber.Ctx) error {
	filter := videoSvc.VideoFilter{
		PropTag: strings.TrimSpace(c.Query("propTag")),
		Limit:   helper.ResolveLimit(c, 20, 50),
		Offset:  helper.ResolveOffset(c),
	}

	if raw := strings.TrimSpace(c.Query("hubId")); raw != "" {
		hubID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid hubId")
		}
		filter.HubID = &hubID
	}

	videos, err := videoSvc.ListVideos(c.Context(), ctl.DB, filter, helper.OptionalUserID(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch videos")
	}
	return helper.JsonOK(c, fiber.Map{"videos": videos})
}

// POST /videos
func (ctl *VideoController) Upload(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req videoDto.UploadVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	video, err := videoSvc.UploadVideo(c.Context(), ctl.DB, userID, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload video")
	}
	return helper.JsonCreated(c, fiber.Map{"video": video})
}

// POST /videos/:videoId/like
func (ctl *VideoController) Like(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	videoID, err := uuid.Parse(strings.TrimSpace(c.Params("videoId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}

	if err := videoSvc.LikeVideo(c.Context(), ctl.DB, videoID, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to like video")
	}
	return helper.JsonMessage(c, "Video liked")
}

// DELETE /videos/:videoId/like
func (ctl *VideoController) Unlike(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	videoID, err := uuid.Parse(strings.TrimSpace(c.Params("videoId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video id")
	}

	if err := videoSvc.UnlikeVideo(c.Context(), ctl.DB, videoID, userID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to unlike video")
	}
	return helper.JsonMessage(c, "Video unliked")
}
