// file: internals/features/posts/service/post_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	postDto "iflow_backend/internals/features/posts/dto"
	postModel "iflow_backend/internals/features/posts/model"
	userModel "iflow_backend/internals/features/users/user/model"
)

var ErrPostNotFound = errors.New("post not found")

type FeedFilter struct {
	HubID *uuid.UUID
	Limit int
	// PublicOnly: viewer anonim di feed hub hanya melihat post publik.
	PublicOnly bool
}

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 100
)

// ListPosts mengembalikan feed, pinned dulu lalu terbaru, beranotasi
// identitas penulis, jumlah like & komentar, dan is_liked milik viewer.
func ListPosts(ctx context.Context, db *gorm.DB, filter FeedFilter, viewerID uuid.UUID) ([]postDto.PostResponse, error) {
	q := db.WithContext(ctx).Model(&postModel.PostModel{})
	if filter.HubID != nil {
		q = q.Where("post_hub_id = ?", *filter.HubID)
	}
	if filter.PublicOnly {
		q = q.Where("post_is_public = true")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	var posts []postModel.PostModel
	if err := q.Order("post_is_pinned DESC, post_created_at DESC").
		Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return []postDto.PostResponse{}, nil
	}

	postIDs := make([]uuid.UUID, 0, len(posts))
	authorIDs := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.PostID)
		authorIDs = append(authorIDs, p.PostUserID)
	}

	var authors []userModel.UserModel
	if err := db.WithContext(ctx).
		Select("id", "username", "display_name", "avatar_url").
		Where("id IN ?", authorIDs).
		Find(&authors).Error; err != nil {
		return nil, err
	}
	authorByID := map[uuid.UUID]userModel.UserModel{}
	for _, u := range authors {
		authorByID[u.ID] = u
	}

	type countRow struct {
		PostID uuid.UUID `gorm:"column:post_id"`
		N      int64     `gorm:"column:n"`
	}

	likeCounts := map[uuid.UUID]int64{}
	var likeRows []countRow
	if err := db.WithContext(ctx).
		Model(&postModel.PostLikeModel{}).
		Select("post_like_post_id AS post_id, COUNT(*) AS n").
		Where("post_like_post_id IN ?", postIDs).
		Group("post_like_post_id").
		Scan(&likeRows).Error; err != nil {
		return nil, err
	}
	for _, r := range likeRows {
		likeCounts[r.PostID] = r.N
	}

	commentCounts := map[uuid.UUID]int64{}
	var commentRows []countRow
	if err := db.WithContext(ctx).
		Table("post_comments").
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&commentRows).Error; err != nil {
		return nil, err
	}
	for _, r := range commentRows {
		commentCounts[r.PostID] = r.N
	}

	liked := map[uuid.UUID]bool{}
	if viewerID != uuid.Nil {
		var likes []postModel.PostLikeModel
		if err := db.WithContext(ctx).
			Where("post_like_post_id IN ? AND post_like_user_id = ?", postIDs, viewerID).
			Find(&likes).Error; err != nil {
			return nil, err
		}
		for _, l := range likes {
			liked[l.PostLikePostID] = true
		}
	}

	out := make([]postDto.PostResponse, 0, len(posts))
	for _, p := range posts {
		resp := postDto.PostResponse{
			PostModel:    p,
			LikeCount:    likeCounts[p.PostID],
			CommentCount: commentCounts[p.PostID],
			IsLiked:      liked[p.PostID],
		}
		if u, ok := authorByID[p.PostUserID]; ok {
			resp.Username = u.Username
			resp.DisplayName = u.DisplayName
			resp.AvatarURL = u.AvatarURL
		}
		out = append(out, resp)
	}
	return out, nil
}

// CreatePost menyimpan post baru milik userID.
func CreatePost(ctx context.Context, db *gorm.DB, userID uuid.UUID, req postDto.CreatePostRequest) (*postModel.PostModel, error) {
	post := postModel.PostModel{
		PostUserID:  userID,
		PostHubID:   req.HubID,
		PostContent: req.Content,
	}
	if err := db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ReactToPost menambah reaksi emoji; dobel reaksi yang sama diabaikan
// lewat ON CONFLICT DO NOTHING.
func ReactToPost(ctx context.Context, db *gorm.DB, postID, userID uuid.UUID, emoji string) error {
	if emoji == "" {
		emoji = postModel.DefaultReactionEmoji
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&postModel.PostModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPostNotFound
	}

	like := postModel.PostLikeModel{
		PostLikePostID: postID,
		PostLikeUserID: userID,
		PostLikeEmoji:  emoji,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "post_like_post_id"},
				{Name: "post_like_user_id"},
				{Name: "post_like_emoji"},
			},
			DoNothing: true,
		}).
		Create(&like).Error
}
