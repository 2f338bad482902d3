package controller_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"iflow_backend/internals/configs"
	eventModel "iflow_backend/internals/features/events/model"
	eventRoute "iflow_backend/internals/features/events/route"
	hubModel "iflow_backend/internals/features/hubs/model"
	authModel "iflow_backend/internals/features/users/auth/model"
	userModel "iflow_backend/internals/features/users/user/model"
	helper "iflow_backend/internals/helpers"
)

type apiBody struct {
	Event   map[string]interface{}   `json:"event"`
	Events  []map[string]interface{} `json:"events"`
	Message string                   `json:"message"`
	Error   struct {
		Message   string `json:"message"`
		Conflicts []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"conflicts"`
	} `json:"error"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&hubModel.HubModel{},
		&eventModel.EventModel{},
		&eventModel.EventRSVPModel{},
		&eventModel.EventInstructorModel{},
	))

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code, msg = fe.Code, fe.Message
			}
			return helper.JsonError(c, code, msg)
		},
	})
	eventRoute.EventRoutes(app.Group("/api"), db)
	return app, db
}

func mkUserWithToken(t *testing.T, db *gorm.DB, username string) (uuid.UUID, string) {
	t.Helper()
	u := userModel.UserModel{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&u).Error)
	token, err := helper.CreateToken(u.ID, u.Username)
	require.NoError(t, err)
	return u.ID, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) (int, apiBody) {
	t.Helper()
	var reqBody io.Reader
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body apiBody
	if len(raw) > 0 {
		require.NoError(t, sonic.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

func eventPayload(hubID *uuid.UUID, title string, startHour, endHour int) fiber.Map {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := fiber.Map{
		"title":     title,
		"startTime": day.Add(time.Duration(startHour) * time.Hour).Format(time.RFC3339),
		"endTime":   day.Add(time.Duration(endHour) * time.Hour).Format(time.RFC3339),
	}
	if hubID != nil {
		p["hubId"] = hubID.String()
	}
	return p
}

func TestCreateEventRequiresAuth(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/events", "", eventPayload(nil, "X", 10, 12))
	require.Equal(t, http.StatusUnauthorized, status)
	require.NotEmpty(t, body.Error.Message)
}

func TestCreateEventConflictEnvelope(t *testing.T) {
	app, db := setupApp(t)
	userID, token := mkUserWithToken(t, db, "owner")

	hub := hubModel.HubModel{HubName: "Hub", HubCreatedBy: userID}
	require.NoError(t, db.Create(&hub).Error)

	status, body := doJSON(t, app, http.MethodPost, "/api/events", token, eventPayload(&hub.HubID, "First", 10, 12))
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, body.Event["event_id"])

	status, body = doJSON(t, app, http.MethodPost, "/api/events", token, eventPayload(&hub.HubID, "Second", 11, 13))
	require.Equal(t, http.StatusConflict, status)
	require.NotEmpty(t, body.Error.Message)
	require.Len(t, body.Error.Conflicts, 1)
	require.Equal(t, "First", body.Error.Conflicts[0].Title)
	require.NotEmpty(t, body.Error.Conflicts[0].ID)
}

func TestUpdateEventOwnershipOverHTTP(t *testing.T) {
	app, db := setupApp(t)
	_, ownerToken := mkUserWithToken(t, db, "owner")
	_, otherToken := mkUserWithToken(t, db, "other")

	status, body := doJSON(t, app, http.MethodPost, "/api/events", ownerToken, eventPayload(nil, "Mine", 10, 12))
	require.Equal(t, http.StatusCreated, status)
	eventID := body.Event["event_id"].(string)

	status, body = doJSON(t, app, http.MethodPut, "/api/events/"+eventID, otherToken, eventPayload(nil, "Stolen", 10, 12))
	require.Equal(t, http.StatusForbidden, status)
	require.NotEmpty(t, body.Error.Message)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/events/"+eventID, otherToken, nil)
	require.Equal(t, http.StatusForbidden, status)

	// pemilik tetap bisa update
	status, body = doJSON(t, app, http.MethodPut, "/api/events/"+eventID, ownerToken, eventPayload(nil, "Renamed", 10, 12))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Renamed", body.Event["event_title"])
}

func TestUpdateUnknownEventReturns404(t *testing.T) {
	app, db := setupApp(t)
	_, token := mkUserWithToken(t, db, "owner")

	status, body := doJSON(t, app, http.MethodPut, "/api/events/"+uuid.NewString(), token, eventPayload(nil, "X", 10, 12))
	require.Equal(t, http.StatusNotFound, status)
	require.NotEmpty(t, body.Error.Message)
}

func TestRSVPStatusValidation(t *testing.T) {
	app, db := setupApp(t)
	_, token := mkUserWithToken(t, db, "owner")

	status, body := doJSON(t, app, http.MethodPost, "/api/events", token, eventPayload(nil, "Party", 10, 12))
	require.Equal(t, http.StatusCreated, status)
	eventID := body.Event["event_id"].(string)

	status, body = doJSON(t, app, http.MethodPost, "/api/events/"+eventID+"/rsvp", token, fiber.Map{"status": "maybe"})
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, body.Error.Message)

	status, body = doJSON(t, app, http.MethodPost, "/api/events/"+eventID+"/rsvp", token, fiber.Map{"status": "going"})
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, body.Message)
}

func TestRSVPUnknownEventReturns404(t *testing.T) {
	app, db := setupApp(t)
	_, token := mkUserWithToken(t, db, "guest")

	status, body := doJSON(t, app, http.MethodPost, "/api/events/"+uuid.NewString()+"/rsvp", token, fiber.Map{"status": "going"})
	require.Equal(t, http.StatusNotFound, status)
	require.NotEmpty(t, body.Error.Message)
}

func TestClearRSVPIsIdempotentOverHTTP(t *testing.T) {
	app, db := setupApp(t)
	_, token := mkUserWithToken(t, db, "guest")

	status, body := doJSON(t, app, http.MethodPost, "/api/events", token, eventPayload(nil, "Party", 10, 12))
	require.Equal(t, http.StatusCreated, status)
	eventID := body.Event["event_id"].(string)

	for i := 0; i < 2; i++ {
		status, body = doJSON(t, app, http.MethodDelete, "/api/events/"+eventID+"/rsvp", token, nil)
		require.Equal(t, http.StatusOK, status)
		require.NotEmpty(t, body.Message)
	}
}

func TestListEventsPublicWithMyRSVP(t *testing.T) {
	app, db := setupApp(t)
	_, token := mkUserWithToken(t, db, "owner")

	status, body := doJSON(t, app, http.MethodPost, "/api/events", token, eventPayload(nil, "Open run", 10, 12))
	require.Equal(t, http.StatusCreated, status)
	eventID := body.Event["event_id"].(string)

	status, _ = doJSON(t, app, http.MethodPost, "/api/events/"+eventID+"/rsvp", token, fiber.Map{"status": "interested"})
	require.Equal(t, http.StatusOK, status)

	// tanpa token: tetap 200, tanpa my_rsvp
	status, body = doJSON(t, app, http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Events, 1)
	require.Nil(t, body.Events[0]["my_rsvp"])

	// dengan token: my_rsvp terisi
	status, body = doJSON(t, app, http.MethodGet, "/api/events", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, body.Events, 1)
	require.Equal(t, "interested", body.Events[0]["my_rsvp"])
}
