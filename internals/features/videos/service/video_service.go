// file: internals/features/videos/service/video_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	listingModel "iflow_backend/internals/features/marketplace/model"
	userModel "iflow_backend/internals/features/users/user/model"
	videoDto "iflow_backend/internals/features/videos/dto"
	videoModel "iflow_backend/internals/features/videos/model"
)

type VideoFilter struct {
	HubID   *uuid.UUID
	PropTag string // nama tag, bukan id
	Limit   int
	Offset  int
}

const (
	defaultVideoLimit = 20
	maxVideoLimit     = 50
)

// ListVideos: feed video aktif, terbaru dulu, dengan limit+offset.
func ListVideos(ctx context.Context, db *gorm.DB, filter VideoFilter, viewerID uuid.UUID) ([]videoDto.VideoResponse, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultVideoLimit
	}
	if limit > maxVideoLimit {
		limit = maxVideoLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	q := db.WithContext(ctx).
		Model(&videoModel.VideoModel{}).
		Where("video_is_active = true")
	if filter.HubID != nil {
		q = q.Where("video_hub_id = ?", *filter.HubID)
	}
	if filter.PropTag != "" {
		q = q.Where("video_id IN (?)", db.
			Model(&videoModel.VideoPropTagModel{}).
			Select("video_prop_tag_video_id").
			Joins("JOIN prop_tags ON prop_tags.prop_tag_id = video_prop_tags.video_prop_tag_tag_id").
			Where("prop_tags.prop_tag_name = ?", filter.PropTag))
	}

	var videos []videoModel.VideoModel
	if err := q.Order("video_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return []videoDto.VideoResponse{}, nil
	}

	videoIDs := make([]uuid.UUID, 0, len(videos))
	uploaderIDs := make([]uuid.UUID, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.VideoID)
		uploaderIDs = append(uploaderIDs, v.VideoUserID)
	}

	var uploaders []userModel.UserModel
	if err := db.WithContext(ctx).
		Select("id", "username", "display_name", "avatar_url").
		Where("id IN ?", uploaderIDs).
		Find(&uploaders).Error; err != nil {
		return nil, err
	}
	uploaderByID := map[uuid.UUID]userModel.UserModel{}
	for _, u := range uploaders {
		uploaderByID[u.ID] = u
	}

	tagsByVideo, err := loadVideoTags(ctx, db, videoIDs)
	if err != nil {
		return nil, err
	}

	liked := map[uuid.UUID]bool{}
	if viewerID != uuid.Nil {
		var likes []videoModel.VideoLikeModel
		if err := db.WithContext(ctx).
			Where("video_like_video_id IN ? AND video_like_user_id = ?", videoIDs, viewerID).
			Find(&likes).Error; err != nil {
			return nil, err
		}
		for _, l := range likes {
			liked[l.VideoLikeVideoID] = true
		}
	}

	out := make([]videoDto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp := videoDto.VideoResponse{
			VideoModel: v,
			PropTags:   tagsByVideo[v.VideoID],
			IsLiked:    liked[v.VideoID],
		}
		if resp.PropTags == nil {
			resp.PropTags = []videoDto.VideoPropTagItem{}
		}
		if u, ok := uploaderByID[v.VideoUserID]; ok {
			resp.Username = u.Username
			resp.DisplayName = u.DisplayName
			resp.AvatarURL = u.AvatarURL
		}
		out = append(out, resp)
	}
	return out, nil
}

func loadVideoTags(ctx context.Context, db *gorm.DB, videoIDs []uuid.UUID) (map[uuid.UUID][]videoDto.VideoPropTagItem, error) {
	var joins []videoModel.VideoPropTagModel
	if err := db.WithContext(ctx).
		Where("video_prop_tag_video_id IN ?", videoIDs).
		Find(&joins).Error; err != nil {
		return nil, err
	}
	result := map[uuid.UUID][]videoDto.VideoPropTagItem{}
	if len(joins) == 0 {
		return result, nil
	}

	tagIDs := make([]uuid.UUID, 0, len(joins))
	for _, j := range joins {
		tagIDs = append(tagIDs, j.VideoPropTagTagID)
	}
	var tags []listingModel.PropTagModel
	if err := db.WithContext(ctx).
		Where("prop_tag_id IN ?", tagIDs).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	tagByID := map[uuid.UUID]listingModel.PropTagModel{}
	for _, t := range tags {
		tagByID[t.PropTagID] = t
	}

	for _, j := range joins {
		if t, ok := tagByID[j.VideoPropTagTagID]; ok {
			result[j.VideoPropTagVideoID] = append(result[j.VideoPropTagVideoID],
				videoDto.VideoPropTagItem{ID: t.PropTagID, Name: t.PropTagName, Category: t.PropTagCategory})
		}
	}
	return result, nil
}

// UploadVideo menyimpan metadata video + prop tag-nya dalam satu transaksi.
func UploadVideo(ctx context.Context, db *gorm.DB, uploaderID uuid.UUID, req videoDto.UploadVideoRequest) (*videoModel.VideoModel, error) {
	video := videoModel.VideoModel{
		VideoUserID:       uploaderID,
		VideoHubID:        req.HubID,
		VideoTitle:        req.Title,
		VideoDescription:  req.Description,
		VideoURL:          req.VideoURL,
		VideoThumbnailURL: req.ThumbnailURL,
		VideoIsPremium:    req.IsPremium,
		VideoPremiumPrice: req.PremiumPrice,
		VideoIsActive:     true,
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&video).Error; err != nil {
			return err
		}
		for _, tagID := range req.PropTags {
			join := videoModel.VideoPropTagModel{
				VideoPropTagVideoID: video.VideoID,
				VideoPropTagTagID:   tagID,
			}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// LikeVideo: like sekali per (video, user), dobel diabaikan.
func LikeVideo(ctx context.Context, db *gorm.DB, videoID, userID uuid.UUID) error {
	like := videoModel.VideoLikeModel{
		VideoLikeVideoID: videoID,
		VideoLikeUserID:  userID,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "video_like_video_id"},
				{Name: "video_like_user_id"},
			},
			DoNothing: true,
		}).
		Create(&like).Error
}

// UnlikeVideo: hapus like; no-op kalau belum pernah like.
func UnlikeVideo(ctx context.Context, db *gorm.DB, videoID, userID uuid.UUID) error {
	return db.WithContext(ctx).
		Where("video_like_video_id = ? AND video_like_user_id = ?", videoID, userID).
		Delete(&videoModel.VideoLikeModel{}).Error
}
