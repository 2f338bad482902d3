// file: internals/features/events/service/schedule_service.go
package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	eventDto "iflow_backend/internals/features/events/dto"
	eventModel "iflow_backend/internals/features/events/model"
	hubModel "iflow_backend/internals/features/hubs/model"
	userModel "iflow_backend/internals/features/users/user/model"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrNotOwner      = errors.New("you can only modify your own events")
	ErrInvalidStatus = errors.New("status must be going, interested or not_going")
	ErrInvalidWindow = errors.New("endTime must be after startTime")
)

// ConflictingEvent dikirim ke caller di payload 409.
type ConflictingEvent struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// ConflictError: interval event baru overlap dengan event scheduled lain
// di hub yang sama.
type ConflictError struct {
	Conflicts []ConflictingEvent
}

func (e *ConflictError) Error() string {
	return "Event time conflicts with existing event"
}

type ListFilter struct {
	HubID     *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

const maxListLimit = 50

// ==================== LIST ====================

// ListEvents mengembalikan event scheduled urut start_time ASC (maks 50),
// beranotasi nama hub, daftar instruktur, jumlah going, dan RSVP milik
// viewer kalau ada (viewerID == uuid.Nil berarti anonim).
func ListEvents(ctx context.Context, db *gorm.DB, filter ListFilter, viewerID uuid.UUID) ([]eventDto.EventResponse, error) {
	q := db.WithContext(ctx).
		Model(&eventModel.EventModel{}).
		Where("event_status = ?", eventModel.EventStatusScheduled)

	if filter.HubID != nil {
		q = q.Where("event_hub_id = ?", *filter.HubID)
	}
	if filter.StartDate != nil {
		q = q.Where("event_start_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("event_start_time <= ?", *filter.EndDate)
	}

	limit := filter.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	var events []eventModel.EventModel
	if err := q.Order("event_start_time ASC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return []eventDto.EventResponse{}, nil
	}

	eventIDs := make([]uuid.UUID, 0, len(events))
	hubIDs := make([]uuid.UUID, 0, len(events))
	for _, ev := range events {
		eventIDs = append(eventIDs, ev.EventID)
		if ev.EventHubID != nil {
			hubIDs = append(hubIDs, *ev.EventHubID)
		}
	}

	hubNames := map[uuid.UUID]string{}
	if len(hubIDs) > 0 {
		var hubs []hubModel.HubModel
		if err := db.WithContext(ctx).
			Select("hub_id", "hub_name").
			Where("hub_id IN ?", hubIDs).
			Find(&hubs).Error; err != nil {
			return nil, err
		}
		for _, h := range hubs {
			hubNames[h.HubID] = h.HubName
		}
	}

	// Hitung going per event
	type goingRow struct {
		EventID uuid.UUID `gorm:"column:event_id"`
		N       int64     `gorm:"column:n"`
	}
	var goingRows []goingRow
	if err := db.WithContext(ctx).
		Model(&eventModel.EventRSVPModel{}).
		Select("event_rsvp_event_id AS event_id, COUNT(*) AS n").
		Where("event_rsvp_event_id IN ? AND event_rsvp_status = ?", eventIDs, eventModel.RSVPStatusGoing).
		Group("event_rsvp_event_id").
		Scan(&goingRows).Error; err != nil {
		return nil, err
	}
	goingCounts := map[uuid.UUID]int64{}
	for _, r := range goingRows {
		goingCounts[r.EventID] = r.N
	}

	instructors, err := loadInstructors(ctx, db, eventIDs)
	if err != nil {
		return nil, err
	}

	myRSVP := map[uuid.UUID]string{}
	if viewerID != uuid.Nil {
		var rows []eventModel.EventRSVPModel
		if err := db.WithContext(ctx).
			Where("event_rsvp_event_id IN ? AND event_rsvp_user_id = ?", eventIDs, viewerID).
			Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			myRSVP[r.EventRSVPEventID] = r.EventRSVPStatus
		}
	}

	out := make([]eventDto.EventResponse, 0, len(events))
	for _, ev := range events {
		resp := eventDto.EventResponse{
			EventModel:  ev,
			Instructors: instructors[ev.EventID],
			GoingCount:  goingCounts[ev.EventID],
		}
		if resp.Instructors == nil {
			resp.Instructors = []eventDto.InstructorItem{}
		}
		if ev.EventHubID != nil {
			if name, ok := hubNames[*ev.EventHubID]; ok {
				resp.HubName = &name
			}
		}
		if status, ok := myRSVP[ev.EventID]; ok {
			resp.MyRSVP = &status
		}
		out = append(out, resp)
	}
	return out, nil
}

func loadInstructors(ctx context.Context, db *gorm.DB, eventIDs []uuid.UUID) (map[uuid.UUID][]eventDto.InstructorItem, error) {
	var rows []eventModel.EventInstructorModel
	if err := db.WithContext(ctx).
		Where("event_instructor_event_id IN ?", eventIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	result := map[uuid.UUID][]eventDto.InstructorItem{}
	if len(rows) == 0 {
		return result, nil
	}

	userIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		userIDs = append(userIDs, r.EventInstructorUserID)
	}
	var users []userModel.UserModel
	if err := db.WithContext(ctx).
		Select("id", "username", "display_name").
		Where("id IN ?", userIDs).
		Find(&users).Error; err != nil {
		return nil, err
	}
	usersByID := map[uuid.UUID]userModel.UserModel{}
	for _, u := range users {
		usersByID[u.ID] = u
	}

	for _, r := range rows {
		item := eventDto.InstructorItem{
			UserID: r.EventInstructorUserID,
			Role:   r.EventInstructorRole,
		}
		if u, ok := usersByID[r.EventInstructorUserID]; ok {
			item.Username = u.Username
			item.DisplayName = u.DisplayName
		}
		result[r.EventInstructorEventID] = append(result[r.EventInstructorEventID], item)
	}
	return result, nil
}

// ==================== CREATE ====================

// CreateEvent menyimpan event baru berstatus scheduled. Kalau hub diisi,
// interval [start, end) dicek overlap terhadap event scheduled lain di hub
// yang sama; cek + insert dijalankan dalam satu transaksi serializable
// supaya dua request konkuren tidak sama-sama lolos cek.
// Event tanpa hub tidak pernah konflik.
func CreateEvent(ctx context.Context, db *gorm.DB, creatorID uuid.UUID, req eventDto.CreateEventRequest) (*eventModel.EventModel, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidWindow
	}

	ev := eventModel.EventModel{
		EventHubID:        req.HubID,
		EventCreatedBy:    creatorID,
		EventTitle:        req.Title,
		EventDescription:  req.Description,
		EventLocation:     req.Location,
		EventLatitude:     req.Latitude,
		EventLongitude:    req.Longitude,
		EventStartTime:    req.StartTime,
		EventEndTime:      req.EndTime,
		EventIsFireEvent:  req.IsFireEvent,
		EventMaxAttendees: req.MaxAttendees,
		EventStatus:       eventModel.EventStatusScheduled,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.HubID != nil {
			conflicts, err := findConflicts(tx, *req.HubID, req.StartTime, req.EndTime)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return &ConflictError{Conflicts: conflicts}
			}
		}
		return tx.Create(&ev).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Overlap half-open: A dan B overlap iff startA < endB && startB < endA.
func findConflicts(tx *gorm.DB, hubID uuid.UUID, start, end time.Time) ([]ConflictingEvent, error) {
	var rows []eventModel.EventModel
	err := tx.Model(&eventModel.EventModel{}).
		Select("event_id", "event_title").
		Where("event_hub_id = ? AND event_status = ?", hubID, eventModel.EventStatusScheduled).
		Where("event_start_time < ? AND event_end_time > ?", end, start).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	conflicts := make([]ConflictingEvent, 0, len(rows))
	for _, r := range rows {
		conflicts = append(conflicts, ConflictingEvent{ID: r.EventID, Title: r.EventTitle})
	}
	return conflicts, nil
}

// ==================== UPDATE ====================

// UpdateEvent mengganti seluruh field event (full replacement), hanya oleh
// pembuatnya. Tidak ada re-check konflik di sini: organizer boleh
// menggeser jadwal setelah event dibuat.
func UpdateEvent(ctx context.Context, db *gorm.DB, eventID, userID uuid.UUID, req eventDto.UpdateEventRequest) (*eventModel.EventModel, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidWindow
	}

	var ev eventModel.EventModel
	if err := db.WithContext(ctx).First(&ev, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if ev.EventCreatedBy != userID {
		return nil, ErrNotOwner
	}

	updates := map[string]interface{}{
		"event_hub_id":        req.HubID,
		"event_title":         req.Title,
		"event_description":   req.Description,
		"event_location":      req.Location,
		"event_latitude":      req.Latitude,
		"event_longitude":     req.Longitude,
		"event_start_time":    req.StartTime,
		"event_end_time":      req.EndTime,
		"event_is_fire_event": req.IsFireEvent,
		"event_max_attendees": req.MaxAttendees,
	}
	if err := db.WithContext(ctx).Model(&ev).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).First(&ev, "event_id = ?", eventID).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// ==================== DELETE ====================

// DeleteEvent menghapus event beserta seluruh RSVP dan baris instrukturnya
// dalam satu transaksi. Hanya pembuat yang boleh menghapus.
func DeleteEvent(ctx context.Context, db *gorm.DB, eventID, userID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ev eventModel.EventModel
		if err := tx.First(&ev, "event_id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if ev.EventCreatedBy != userID {
			return ErrNotOwner
		}

		if err := tx.Where("event_rsvp_event_id = ?", eventID).
			Delete(&eventModel.EventRSVPModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_instructor_event_id = ?", eventID).
			Delete(&eventModel.EventInstructorModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ev).Error
	})
}

// ==================== RSVP ====================

// SubmitRSVP meng-upsert respons user untuk satu event. Pasangan
// (event, user) unik; submit ulang mengganti status dan me-refresh
// updated_at lewat ON CONFLICT DO UPDATE, jadi dua submit konkuren tidak
// saling menimpa jadi dua baris. Kapasitas tidak pernah dicek.
func SubmitRSVP(ctx context.Context, db *gorm.DB, eventID, userID uuid.UUID, status string) error {
	if !eventModel.ValidRSVPStatus(status) {
		return ErrInvalidStatus
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&eventModel.EventModel{}).
		Where("event_id = ? AND event_status = ?", eventID, eventModel.EventStatusScheduled).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrEventNotFound
	}

	rsvp := eventModel.EventRSVPModel{
		EventRSVPEventID: eventID,
		EventRSVPUserID:  userID,
		EventRSVPStatus:  status,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "event_rsvp_event_id"},
				{Name: "event_rsvp_user_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"event_rsvp_status":     status,
				"event_rsvp_updated_at": time.Now(),
			}),
		}).
		Create(&rsvp).Error
}

// ClearRSVP menghapus RSVP user untuk satu event. Kalau tidak ada, tetap
// sukses (idempotent).
func ClearRSVP(ctx context.Context, db *gorm.DB, eventID, userID uuid.UUID) error {
	return db.WithContext(ctx).
		Where("event_rsvp_event_id = ? AND event_rsvp_user_id = ?", eventID, userID).
		Delete(&eventModel.EventRSVPModel{}).Error
}
