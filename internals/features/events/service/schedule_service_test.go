package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	eventDto "iflow_backend/internals/features/events/dto"
	eventModel "iflow_backend/internals/features/events/model"
	"iflow_backend/internals/features/events/service"
	hubModel "iflow_backend/internals/features/hubs/model"
	userModel "iflow_backend/internals/features/users/user/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&hubModel.HubModel{},
		&eventModel.EventModel{},
		&eventModel.EventRSVPModel{},
		&eventModel.EventInstructorModel{},
	))
	return db
}

func mkUser(t *testing.T, db *gorm.DB, username string) uuid.UUID {
	t.Helper()
	u := userModel.UserModel{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func mkHub(t *testing.T, db *gorm.DB, name string, creator uuid.UUID) uuid.UUID {
	t.Helper()
	h := hubModel.HubModel{HubName: name, HubCreatedBy: creator}
	require.NoError(t, db.Create(&h).Error)
	return h.HubID
}

// at: jam ke-h pada satu hari tetap, biar interval gampang dibaca.
func at(h int) time.Time {
	return time.Date(2026, 9, 1, h, 0, 0, 0, time.UTC)
}

func createReq(hubID *uuid.UUID, title string, startHour, endHour int) eventDto.CreateEventRequest {
	return eventDto.CreateEventRequest{
		HubID:     hubID,
		Title:     title,
		StartTime: at(startHour),
		EndTime:   at(endHour),
	}
}

func rsvpCount(t *testing.T, db *gorm.DB, eventID, userID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&eventModel.EventRSVPModel{}).
		Where("event_rsvp_event_id = ? AND event_rsvp_user_id = ?", eventID, userID).
		Count(&n).Error)
	return n
}

// ==================== RSVP ====================

func TestSubmitRSVPIdempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	guest := mkUser(t, db, "guest")
	ev, err := service.CreateEvent(ctx, db, owner, createReq(nil, "Yoga", 10, 12))
	require.NoError(t, err)

	require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, guest, eventModel.RSVPStatusGoing))
	require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, guest, eventModel.RSVPStatusGoing))

	require.EqualValues(t, 1, rsvpCount(t, db, ev.EventID, guest))

	var row eventModel.EventRSVPModel
	require.NoError(t, db.First(&row, "event_rsvp_event_id = ? AND event_rsvp_user_id = ?", ev.EventID, guest).Error)
	require.Equal(t, eventModel.RSVPStatusGoing, row.EventRSVPStatus)
}

func TestSubmitRSVPOverwritesStatus(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	guest := mkUser(t, db, "guest")
	ev, err := service.CreateEvent(ctx, db, owner, createReq(nil, "Yoga", 10, 12))
	require.NoError(t, err)

	require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, guest, eventModel.RSVPStatusGoing))
	require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, guest, eventModel.RSVPStatusInterested))

	require.EqualValues(t, 1, rsvpCount(t, db, ev.EventID, guest))

	var row eventModel.EventRSVPModel
	require.NoError(t, db.First(&row, "event_rsvp_event_id = ? AND event_rsvp_user_id = ?", ev.EventID, guest).Error)
	require.Equal(t, eventModel.RSVPStatusInterested, row.EventRSVPStatus)
}

func TestSubmitRSVPInvalidStatus(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	ev, err := service.CreateEvent(ctx, db, owner, createReq(nil, "Yoga", 10, 12))
	require.NoError(t, err)

	err = service.SubmitRSVP(ctx, db, ev.EventID, owner, "maybe")
	require.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestSubmitRSVPUnknownEvent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	guest := mkUser(t, db, "guest")

	err := service.SubmitRSVP(ctx, db, uuid.New(), guest, eventModel.RSVPStatusGoing)
	require.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestClearRSVPIdempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	guest := mkUser(t, db, "guest")
	ev, err := service.CreateEvent(ctx, db, owner, createReq(nil, "Yoga", 10, 12))
	require.NoError(t, err)

	// clear tanpa RSVP: tetap sukses
	require.NoError(t, service.ClearRSVP(ctx, db, ev.EventID, guest))

	require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, guest, eventModel.RSVPStatusGoing))
	require.NoError(t, service.ClearRSVP(ctx, db, ev.EventID, guest))
	require.NoError(t, service.ClearRSVP(ctx, db, ev.EventID, guest))

	require.EqualValues(t, 0, rsvpCount(t, db, ev.EventID, guest))
}

// ==================== CONFLICT ====================

func TestConflictDetectionSymmetry(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")

	// A dulu, lalu B overlap → B ditolak
	hubA := mkHub(t, db, "Hub A", owner)
	a, err := service.CreateEvent(ctx, db, owner, createReq(&hubA, "A", 10, 12))
	require.NoError(t, err)

	_, err = service.CreateEvent(ctx, db, owner, createReq(&hubA, "B", 11, 13))
	var conflict *service.ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 1)
	require.Equal(t, a.EventID, conflict.Conflicts[0].ID)
	require.Equal(t, "A", conflict.Conflicts[0].Title)

	// urutan dibalik di hub lain → hasil sama
	hubB := mkHub(t, db, "Hub B", owner)
	_, err = service.CreateEvent(ctx, db, owner, createReq(&hubB, "B", 11, 13))
	require.NoError(t, err)

	_, err = service.CreateEvent(ctx, db, owner, createReq(&hubB, "A", 10, 12))
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 1)
	require.Equal(t, "B", conflict.Conflicts[0].Title)
}

func TestBackToBackEventsDoNotConflict(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	hub := mkHub(t, db, "Hub", owner)

	_, err := service.CreateEvent(ctx, db, owner, createReq(&hub, "Morning", 10, 12))
	require.NoError(t, err)

	// [10,12) dan [12,14): batas nempel, half-open → bukan konflik
	_, err = service.CreateEvent(ctx, db, owner, createReq(&hub, "Afternoon", 12, 14))
	require.NoError(t, err)
}

func TestCrossHubIndependence(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	hubA := mkHub(t, db, "Hub A", owner)
	hubB := mkHub(t, db, "Hub B", owner)

	_, err := service.CreateEvent(ctx, db, owner, createReq(&hubA, "Same slot", 10, 12))
	require.NoError(t, err)

	_, err = service.CreateEvent(ctx, db, owner, createReq(&hubB, "Same slot", 10, 12))
	require.NoError(t, err)
}

func TestHublessEventsNeverConflict(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")

	_, err := service.CreateEvent(ctx, db, owner, createReq(nil, "Personal 1", 10, 12))
	require.NoError(t, err)

	_, err = service.CreateEvent(ctx, db, owner, createReq(nil, "Personal 2", 10, 12))
	require.NoError(t, err)
}

func TestCreateRejectsInvalidWindow(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")

	_, err := service.CreateEvent(ctx, db, owner, createReq(nil, "Bad", 12, 12))
	require.ErrorIs(t, err, service.ErrInvalidWindow)

	_, err = service.CreateEvent(ctx, db, owner, createReq(nil, "Worse", 12, 10))
	require.ErrorIs(t, err, service.ErrInvalidWindow)
}

// ==================== UPDATE / DELETE ====================

func TestOwnershipEnforcement(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	other := mkUser(t, db, "other")
	ev, err := service.CreateEvent(ctx, db, owner, createReq(nil, "Mine", 10, 12))
	require.NoError(t, err)

	upd := eventDto.UpdateEventRequest{Title: "Stolen", StartTime: at(10), EndTime: at(12)}
	_, err = service.UpdateEvent(ctx, db, ev.EventID, other, upd)
	require.ErrorIs(t, err, service.ErrNotOwner)

	err = service.DeleteEvent(ctx, db, ev.EventID, other)
	require.ErrorIs(t, err, service.ErrNotOwner)

	// event tidak berubah dan masih ada
	var got eventModel.EventModel
	require.NoError(t, db.First(&got, "event_id = ?", ev.EventID).Error)
	require.Equal(t, "Mine", got.EventTitle)
}

func TestUpdateUnknownEvent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")

	upd := eventDto.UpdateEventRequest{Title: "X", StartTime: at(10), EndTime: at(12)}
	_, err := service.UpdateEvent(ctx, db, uuid.New(), owner, upd)
	require.ErrorIs(t, err, service.ErrEventNotFound)

	require.ErrorIs(t, service.DeleteEvent(ctx, db, uuid.New(), owner), service.ErrEventNotFound)
}

func TestUpdateDoesNotRecheckConflicts(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	hub := mkHub(t, db, "Hub", owner)

	_, err := service.CreateEvent(ctx, db, owner, createReq(&hub, "First", 10, 12))
	require.NoError(t, err)
	second, err := service.CreateEvent(ctx, db, owner, createReq(&hub, "Second", 13, 14))
	require.NoError(t, err)

	// geser Second sampai overlap dengan First: diterima tanpa cek konflik
	upd := eventDto.UpdateEventRequest{HubID: &hub, Title: "Second", StartTime: at(11), EndTime: at(13)}
	got, err := service.UpdateEvent(ctx, db, second.EventID, owner, upd)
	require.NoError(t, err)
	require.True(t, got.EventStartTime.Equal(at(11)))
}

func TestDeleteCascadesRSVPs(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	ev, err := service.CreateEvent(ctx, db, owner, createReq(nil, "Party", 10, 12))
	require.NoError(t, err)

	for _, name := range []string{"g1", "g2", "g3"} {
		guest := mkUser(t, db, name)
		require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, guest, eventModel.RSVPStatusGoing))
	}

	require.NoError(t, service.DeleteEvent(ctx, db, ev.EventID, owner))

	var n int64
	require.NoError(t, db.Model(&eventModel.EventRSVPModel{}).
		Where("event_rsvp_event_id = ?", ev.EventID).Count(&n).Error)
	require.EqualValues(t, 0, n)

	require.ErrorIs(t,
		db.First(&eventModel.EventModel{}, "event_id = ?", ev.EventID).Error,
		gorm.ErrRecordNotFound)
}

// ==================== LIST ====================

func TestListAnnotations(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	viewer := mkUser(t, db, "viewer")
	hub := mkHub(t, db, "Riverside", owner)

	ev, err := service.CreateEvent(ctx, db, owner, createReq(&hub, "Run club", 10, 12))
	require.NoError(t, err)

	// 2 going + 1 interested: going_count harus 2
	require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, owner, eventModel.RSVPStatusGoing))
	require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, viewer, eventModel.RSVPStatusGoing))
	third := mkUser(t, db, "third")
	require.NoError(t, service.SubmitRSVP(ctx, db, ev.EventID, third, eventModel.RSVPStatusInterested))

	out, err := service.ListEvents(ctx, db, service.ListFilter{}, viewer)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.EqualValues(t, 2, out[0].GoingCount)
	require.NotNil(t, out[0].HubName)
	require.Equal(t, "Riverside", *out[0].HubName)
	require.NotNil(t, out[0].MyRSVP)
	require.Equal(t, eventModel.RSVPStatusGoing, *out[0].MyRSVP)

	// viewer anonim: my_rsvp kosong
	anon, err := service.ListEvents(ctx, db, service.ListFilter{}, uuid.Nil)
	require.NoError(t, err)
	require.Nil(t, anon[0].MyRSVP)
}

func TestListOrderingAndFilters(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owner := mkUser(t, db, "owner")
	hubA := mkHub(t, db, "Hub A", owner)
	hubB := mkHub(t, db, "Hub B", owner)

	late, err := service.CreateEvent(ctx, db, owner, createReq(&hubA, "Late", 15, 16))
	require.NoError(t, err)
	early, err := service.CreateEvent(ctx, db, owner, createReq(&hubA, "Early", 8, 9))
	require.NoError(t, err)
	_, err = service.CreateEvent(ctx, db, owner, createReq(&hubB, "Elsewhere", 10, 11))
	require.NoError(t, err)

	out, err := service.ListEvents(ctx, db, service.ListFilter{HubID: &hubA}, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, early.EventID, out[0].EventID)
	require.Equal(t, late.EventID, out[1].EventID)

	// filter tanggal memakai start_time
	from := at(9)
	out, err = service.ListEvents(ctx, db, service.ListFilter{HubID: &hubA, StartDate: &from}, uuid.Nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Late", out[0].EventTitle)
}
