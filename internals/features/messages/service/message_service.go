// file: internals/features/messages/service/message_service.go
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	messageDto "iflow_backend/internals/features/messages/dto"
	messageModel "iflow_backend/internals/features/messages/model"
	userModel "iflow_backend/internals/features/users/user/model"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("you are not part of this conversation")
	ErrSelfConversation     = errors.New("cannot open a conversation with yourself")
	ErrPeerNotFound         = errors.New("user not found")
)

// ListConversations: semua percakapan user, diurutkan pesan terakhir.
func ListConversations(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]messageDto.ConversationResponse, error) {
	var mine []messageModel.ConversationParticipantModel
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&mine).Error; err != nil {
		return nil, err
	}
	if len(mine) == 0 {
		return []messageDto.ConversationResponse{}, nil
	}

	convIDs := make([]uuid.UUID, 0, len(mine))
	for _, p := range mine {
		convIDs = append(convIDs, p.ConversationID)
	}

	var convs []messageModel.ConversationModel
	if err := db.WithContext(ctx).
		Where("conversation_id IN ?", convIDs).
		Find(&convs).Error; err != nil {
		return nil, err
	}

	// lawan bicara per percakapan
	var others []messageModel.ConversationParticipantModel
	if err := db.WithContext(ctx).
		Where("conversation_id IN ? AND user_id <> ?", convIDs, userID).
		Find(&others).Error; err != nil {
		return nil, err
	}
	peerIDs := make([]uuid.UUID, 0, len(others))
	for _, p := range others {
		peerIDs = append(peerIDs, p.UserID)
	}
	peerByID := map[uuid.UUID]userModel.UserModel{}
	if len(peerIDs) > 0 {
		var peers []userModel.UserModel
		if err := db.WithContext(ctx).
			Select("id", "username", "display_name", "avatar_url").
			Where("id IN ?", peerIDs).
			Find(&peers).Error; err != nil {
			return nil, err
		}
		for _, u := range peers {
			peerByID[u.ID] = u
		}
	}
	participantsByConv := map[uuid.UUID][]messageDto.ParticipantItem{}
	for _, p := range others {
		item := messageDto.ParticipantItem{UserID: p.UserID}
		if u, ok := peerByID[p.UserID]; ok {
			item.Username = u.Username
			item.DisplayName = u.DisplayName
			item.AvatarURL = u.AvatarURL
		}
		participantsByConv[p.ConversationID] = append(participantsByConv[p.ConversationID], item)
	}

	// preview pesan terakhir per percakapan: ambil semua pesan terakhirnya
	// lewat satu query, lalu pilih yang terbaru di memori (jumlah
	// percakapan per user kecil).
	var msgs []messageModel.MessageModel
	if err := db.WithContext(ctx).
		Where("message_conversation_id IN ?", convIDs).
		Order("message_created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	lastByConv := map[uuid.UUID]messageModel.MessageModel{}
	for _, m := range msgs {
		if _, ok := lastByConv[m.MessageConversationID]; !ok {
			lastByConv[m.MessageConversationID] = m
		}
	}

	out := make([]messageDto.ConversationResponse, 0, len(convs))
	for _, c := range convs {
		resp := messageDto.ConversationResponse{
			ConversationModel: c,
			Participants:      participantsByConv[c.ConversationID],
		}
		if resp.Participants == nil {
			resp.Participants = []messageDto.ParticipantItem{}
		}
		if last, ok := lastByConv[c.ConversationID]; ok {
			content := last.MessageContent
			at := last.MessageCreatedAt
			resp.LastMessage = &content
			resp.LastMessageAt = &at
		}
		out = append(out, resp)
	}

	// terbaru dulu; percakapan tanpa pesan di belakang
	sort.SliceStable(out, func(i, j int) bool {
		return laterThan(out[i], out[j])
	})
	return out, nil
}

func laterThan(a, b messageDto.ConversationResponse) bool {
	if a.LastMessageAt == nil {
		return false
	}
	if b.LastMessageAt == nil {
		return true
	}
	return a.LastMessageAt.After(*b.LastMessageAt)
}

func isParticipant(ctx context.Context, db *gorm.DB, convID, userID uuid.UUID) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&messageModel.ConversationParticipantModel{}).
		Where("conversation_id = ? AND user_id = ?", convID, userID).
		Count(&n).Error
	return n > 0, err
}

// ListMessages: isi percakapan urut lama→baru; hanya untuk partisipan.
func ListMessages(ctx context.Context, db *gorm.DB, convID, userID uuid.UUID) ([]messageDto.MessageResponse, error) {
	var conv messageModel.ConversationModel
	if err := db.WithContext(ctx).
		First(&conv, "conversation_id = ?", convID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	ok, err := isParticipant(ctx, db, convID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	var msgs []messageModel.MessageModel
	if err := db.WithContext(ctx).
		Where("message_conversation_id = ?", convID).
		Order("message_created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return []messageDto.MessageResponse{}, nil
	}

	senderIDs := make([]uuid.UUID, 0, len(msgs))
	for _, m := range msgs {
		senderIDs = append(senderIDs, m.MessageSenderID)
	}
	var senders []userModel.UserModel
	if err := db.WithContext(ctx).
		Select("id", "username", "display_name", "avatar_url").
		Where("id IN ?", senderIDs).
		Find(&senders).Error; err != nil {
		return nil, err
	}
	senderByID := map[uuid.UUID]userModel.UserModel{}
	for _, u := range senders {
		senderByID[u.ID] = u
	}

	out := make([]messageDto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		resp := messageDto.MessageResponse{MessageModel: m}
		if u, ok := senderByID[m.MessageSenderID]; ok {
			resp.Username = u.Username
			resp.DisplayName = u.DisplayName
			resp.AvatarURL = u.AvatarURL
		}
		out = append(out, resp)
	}
	return out, nil
}

// SendMessage menulis pesan baru; pengirim harus partisipan.
func SendMessage(ctx context.Context, db *gorm.DB, convID, senderID uuid.UUID, req messageDto.SendMessageRequest) (*messageModel.MessageModel, error) {
	ok, err := isParticipant(ctx, db, convID, senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}

	msg := messageModel.MessageModel{
		MessageConversationID: convID,
		MessageSenderID:       senderID,
		MessageContent:        req.Content,
		MessageMediaURL:       req.MediaURL,
	}
	if err := db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// OpenDirectConversation mencari percakapan direct antara dua user, atau
// membuatnya (beserta dua baris partisipan) kalau belum ada.
func OpenDirectConversation(ctx context.Context, db *gorm.DB, userID, peerID uuid.UUID) (*messageModel.ConversationModel, error) {
	if userID == peerID {
		return nil, ErrSelfConversation
	}

	var peerCount int64
	if err := db.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ? AND is_active = true", peerID).
		Count(&peerCount).Error; err != nil {
		return nil, err
	}
	if peerCount == 0 {
		return nil, ErrPeerNotFound
	}

	sub := db.Table("conversation_participants").
		Select("conversation_id").
		Where("user_id IN ?", []uuid.UUID{userID, peerID}).
		Group("conversation_id").
		Having("COUNT(DISTINCT user_id) = 2")

	var existing messageModel.ConversationModel
	err := db.WithContext(ctx).
		Where("conversation_is_group = false AND conversation_id IN (?)", sub).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conv := messageModel.ConversationModel{}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&conv).Error; err != nil {
			return err
		}
		for _, uid := range []uuid.UUID{userID, peerID} {
			p := messageModel.ConversationParticipantModel{
				ConversationID: conv.ConversationID,
				UserID:         uid,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &conv, nil
}
