// file: internals/features/admin/service/admin_service.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	commentModel "iflow_backend/internals/features/comments/model"
	eventModel "iflow_backend/internals/features/events/model"
	hubModel "iflow_backend/internals/features/hubs/model"
	listingModel "iflow_backend/internals/features/marketplace/model"
	messageModel "iflow_backend/internals/features/messages/model"
	postModel "iflow_backend/internals/features/posts/model"
	templateModel "iflow_backend/internals/features/templates/model"
	userModel "iflow_backend/internals/features/users/user/model"
	videoModel "iflow_backend/internals/features/videos/model"
)

type ActiveUser struct {
	Username      string `json:"username"`
	DisplayName   string `json:"display_name"`
	PostCount     int    `json:"post_count"`
	VideoCount    int    `json:"video_count"`
	TotalActivity int    `json:"total_activity"`
}

type PopularHub struct {
	Name        string  `json:"name"`
	Location    *string `json:"location"`
	MemberCount int     `json:"member_count"`
}

type RecentActivity struct {
	NewUsers  int64 `json:"newUsers"`
	NewEvents int64 `json:"newEvents"`
	NewVideos int64 `json:"newVideos"`
	NewPosts  int64 `json:"newPosts"`
}

type Stats struct {
	Counts         map[string]int64 `json:"counts"`
	RecentActivity RecentActivity   `json:"recentActivity"`
	PopularHubs    []PopularHub     `json:"popularHubs"`
	ActiveUsers    []ActiveUser     `json:"activeUsers"`
	Timestamp      time.Time        `json:"timestamp"`
}

// countTargets memetakan nama tabel ke model GORM-nya.
var countTargets = []struct {
	name  string
	model interface{}
}{
	{"users", &userModel.UserModel{}},
	{"hubs", &hubModel.HubModel{}},
	{"hub_members", &hubModel.HubMemberModel{}},
	{"events", &eventModel.EventModel{}},
	{"event_rsvps", &eventModel.EventRSVPModel{}},
	{"videos", &videoModel.VideoModel{}},
	{"video_likes", &videoModel.VideoLikeModel{}},
	{"posts", &postModel.PostModel{}},
	{"post_likes", &postModel.PostLikeModel{}},
	{"marketplace_listings", &listingModel.ListingModel{}},
	{"listing_comments", &commentModel.ListingCommentModel{}},
	{"conversations", &messageModel.ConversationModel{}},
	{"messages", &messageModel.MessageModel{}},
	{"content_templates", &templateModel.ContentTemplateModel{}},
}

// GetStats merangkum isi database untuk dashboard admin: jumlah baris
// per tabel, aktivitas 7 hari terakhir, hub terpopuler, dan user paling
// aktif (post + video).
func GetStats(ctx context.Context, db *gorm.DB) (*Stats, error) {
	stats := Stats{
		Counts:      make(map[string]int64, len(countTargets)),
		PopularHubs: []PopularHub{},
		ActiveUsers: []ActiveUser{},
		Timestamp:   time.Now().UTC(),
	}

	for _, t := range countTargets {
		var n int64
		if err := db.WithContext(ctx).Model(t.model).Count(&n).Error; err != nil {
			return nil, err
		}
		stats.Counts[t.name] = n
	}

	weekAgo := time.Now().Add(-7 * 24 * time.Hour)
	recents := []struct {
		model  interface{}
		column string
		dest   *int64
	}{
		{&userModel.UserModel{}, "created_at", &stats.RecentActivity.NewUsers},
		{&eventModel.EventModel{}, "event_created_at", &stats.RecentActivity.NewEvents},
		{&videoModel.VideoModel{}, "video_created_at", &stats.RecentActivity.NewVideos},
		{&postModel.PostModel{}, "post_created_at", &stats.RecentActivity.NewPosts},
	}
	for _, r := range recents {
		if err := db.WithContext(ctx).Model(r.model).
			Where(r.column+" >= ?", weekAgo).
			Count(r.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := db.WithContext(ctx).
		Table("hubs").
		Select("hubs.hub_name AS name, hubs.hub_location AS location, COUNT(hub_members.hub_member_user_id) AS member_count").
		Joins("LEFT JOIN hub_members ON hub_members.hub_member_hub_id = hubs.hub_id").
		Group("hubs.hub_id, hubs.hub_name, hubs.hub_location").
		Order("member_count DESC").
		Limit(10).
		Scan(&stats.PopularHubs).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).
		Table("users").
		Select(`users.username,
			users.display_name,
			COUNT(DISTINCT posts.post_id) AS post_count,
			COUNT(DISTINCT videos.video_id) AS video_count,
			COUNT(DISTINCT posts.post_id) + COUNT(DISTINCT videos.video_id) AS total_activity`).
		Joins("LEFT JOIN posts ON posts.post_user_id = users.id").
		Joins("LEFT JOIN videos ON videos.video_user_id = users.id").
		Group("users.id, users.username, users.display_name").
		Having("COUNT(DISTINCT posts.post_id) + COUNT(DISTINCT videos.video_id) > 0").
		Order("total_activity DESC").
		Limit(10).
		Scan(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
