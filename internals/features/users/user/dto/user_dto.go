// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	model "iflow_backend/internals/features/users/user/model"
)

// PATCH /users/me memakai key camelCase (dipakai form profil di frontend)
type UpdateMeRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=100"`
	Bio         *string `json:"bio" validate:"omitempty,max=2000"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	AvatarURL   *string `json:"avatarUrl" validate:"omitempty,max=500"`
}

// PUT /users/:userId memakai key snake_case
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Bio         *string `json:"bio" validate:"omitempty,max=2000"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,max=500"`
}

// ToUpdates: hanya field yang dikirim yang ikut di-UPDATE (COALESCE style).
func buildUpdates(displayName, bio, location, avatarURL *string) map[string]interface{} {
	updates := map[string]interface{}{}
	if displayName != nil {
		updates["display_name"] = *displayName
	}
	if bio != nil {
		updates["bio"] = *bio
	}
	if location != nil {
		updates["location"] = *location
	}
	if avatarURL != nil {
		updates["avatar_url"] = *avatarURL
	}
	return updates
}

func (r *UpdateMeRequest) ToUpdates() map[string]interface{} {
	return buildUpdates(r.DisplayName, r.Bio, r.Location, r.AvatarURL)
}

func (r *UpdateUserRequest) ToUpdates() map[string]interface{} {
	return buildUpdates(r.DisplayName, r.Bio, r.Location, r.AvatarURL)
}

type BadgeItem struct {
	Type       string    `json:"type"`
	VerifiedAt time.Time `json:"verifiedAt"`
}

type LinkItem struct {
	Platform    string  `json:"platform"`
	URL         string  `json:"url"`
	DisplayText *string `json:"displayText,omitempty"`
}

// ProfileResponse: profil publik + badge & link teragregasi.
type ProfileResponse struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Bio         *string     `json:"bio,omitempty"`
	AvatarURL   *string     `json:"avatar_url,omitempty"`
	Location    *string     `json:"location,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Badges      []BadgeItem `json:"badges"`
	Links       []LinkItem  `json:"links"`
}

func ToProfileResponse(u *model.UserModel, badges []model.VerificationBadgeModel, links []model.UserLinkModel) ProfileResponse {
	resp := ProfileResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Location:    u.Location,
		CreatedAt:   u.CreatedAt,
		Badges:      make([]BadgeItem, 0, len(badges)),
		Links:       make([]LinkItem, 0, len(links)),
	}
	for _, b := range badges {
		resp.Badges = append(resp.Badges, BadgeItem{Type: b.VerificationBadgeType, VerifiedAt: b.VerificationBadgeVerifiedAt})
	}
	for _, l := range links {
		resp.Links = append(resp.Links, LinkItem{Platform: l.UserLinkPlatform, URL: l.UserLinkURL, DisplayText: l.UserLinkDisplayText})
	}
	return resp
}
