// file: internals/features/comments/service/comment_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	commentDto "iflow_backend/internals/features/comments/dto"
	commentModel "iflow_backend/internals/features/comments/model"
	userModel "iflow_backend/internals/features/users/user/model"
)

var (
	ErrInvalidItemType = errors.New("invalid item type")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("you can only delete your own comments")
)

// itemBinding memetakan segmen itemType di URL ke tabel + kolom item.
// Whitelist ini satu-satunya sumber nama tabel yang boleh masuk query,
// jadi input path tidak pernah menyentuh SQL mentah.
type itemBinding struct {
	table  string
	column string
}

var itemBindings = map[string]itemBinding{
	"events":      {table: "event_comments", column: "event_id"},
	"posts":       {table: "post_comments", column: "post_id"},
	"videos":      {table: "video_comments", column: "video_id"},
	"marketplace": {table: "listing_comments", column: "listing_id"},
}

var commentTables = []string{"event_comments", "post_comments", "video_comments", "listing_comments"}

type commentRow struct {
	ID        uuid.UUID `gorm:"column:id"`
	ItemID    uuid.UUID `gorm:"column:item_id"`
	UserID    uuid.UUID `gorm:"column:user_id"`
	Content   string    `gorm:"column:content"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// ListComments: komentar sebuah item, terbaru dulu, + penulis & like_count.
func ListComments(ctx context.Context, db *gorm.DB, itemType string, itemID uuid.UUID) ([]commentDto.CommentResponse, error) {
	b, ok := itemBindings[itemType]
	if !ok {
		return nil, ErrInvalidItemType
	}

	var rows []commentRow
	if err := db.WithContext(ctx).
		Table(b.table).
		Select("id, "+b.column+" AS item_id, user_id, content, created_at").
		Where(b.column+" = ?", itemID).
		Order("created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []commentDto.CommentResponse{}, nil
	}

	commentIDs := make([]uuid.UUID, 0, len(rows))
	userIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		commentIDs = append(commentIDs, r.ID)
		userIDs = append(userIDs, r.UserID)
	}

	var authors []userModel.UserModel
	if err := db.WithContext(ctx).
		Select("id", "username", "display_name").
		Where("id IN ?", userIDs).
		Find(&authors).Error; err != nil {
		return nil, err
	}
	authorByID := map[uuid.UUID]userModel.UserModel{}
	for _, u := range authors {
		authorByID[u.ID] = u
	}

	type likeRow struct {
		CommentID uuid.UUID `gorm:"column:comment_id"`
		N         int64     `gorm:"column:n"`
	}
	var likeRows []likeRow
	if err := db.WithContext(ctx).
		Model(&commentModel.CommentLikeModel{}).
		Select("comment_like_comment_id AS comment_id, COUNT(*) AS n").
		Where("comment_like_comment_id IN ?", commentIDs).
		Group("comment_like_comment_id").
		Scan(&likeRows).Error; err != nil {
		return nil, err
	}
	likeCounts := map[uuid.UUID]int64{}
	for _, r := range likeRows {
		likeCounts[r.CommentID] = r.N
	}

	out := make([]commentDto.CommentResponse, 0, len(rows))
	for _, r := range rows {
		resp := commentDto.CommentResponse{
			ID:        r.ID,
			ItemID:    r.ItemID,
			UserID:    r.UserID,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
			LikeCount: likeCounts[r.ID],
		}
		if u, ok := authorByID[r.UserID]; ok {
			resp.Username = u.Username
			resp.DisplayName = u.DisplayName
		}
		out = append(out, resp)
	}
	return out, nil
}

// CreateComment menulis komentar baru ke tabel sesuai itemType.
func CreateComment(ctx context.Context, db *gorm.DB, itemType string, itemID, userID uuid.UUID, content string) (*commentDto.CommentResponse, error) {
	b, ok := itemBindings[itemType]
	if !ok {
		return nil, ErrInvalidItemType
	}

	now := time.Now()
	id := uuid.New()
	if err := db.WithContext(ctx).
		Table(b.table).
		Create(map[string]interface{}{
			"id":         id,
			b.column:     itemID,
			"user_id":    userID,
			"content":    content,
			"created_at": now,
		}).Error; err != nil {
		return nil, err
	}

	return &commentDto.CommentResponse{
		ID:        id,
		ItemID:    itemID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
	}, nil
}

// LikeComment: like sekali per (comment, user); dobel diabaikan.
func LikeComment(ctx context.Context, db *gorm.DB, commentID, userID uuid.UUID) error {
	like := commentModel.CommentLikeModel{
		CommentLikeCommentID: commentID,
		CommentLikeUserID:    userID,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "comment_like_comment_id"},
				{Name: "comment_like_user_id"},
			},
			DoNothing: true,
		}).
		Create(&like).Error
}

// DeleteComment mencari komentar di keempat tabel (id tidak menyimpan jenis
// itemnya), lalu menghapus komentar + like-nya dalam satu transaksi.
// Hanya penulisnya yang boleh menghapus.
func DeleteComment(ctx context.Context, db *gorm.DB, commentID, userID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range commentTables {
			var row commentRow
			err := tx.Table(table).
				Select("id, user_id").
				Where("id = ?", commentID).
				Take(&row).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			if row.UserID != userID {
				return ErrNotCommentOwner
			}
			if err := tx.Where("comment_like_comment_id = ?", commentID).
				Delete(&commentModel.CommentLikeModel{}).Error; err != nil {
				return err
			}
			// nama tabel berasal dari whitelist, aman untuk Exec
			return tx.Exec("DELETE FROM "+table+" WHERE id = ?", commentID).Error
		}
		return ErrCommentNotFound
	})
}
