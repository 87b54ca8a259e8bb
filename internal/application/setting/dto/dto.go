package dto

import (
	"github.com/orris-inc/socialdash/internal/domain/setting"
)

// NotificationsDTO mirrors setting.Notifications on the wire.
type NotificationsDTO struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Marketing bool `json:"marketing"`
}

// UserSettingsResponse represents the profile settings response
type UserSettingsResponse struct {
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	Email         string           `json:"email"`
	Company       string           `json:"company"`
	Notifications NotificationsDTO `json:"notifications"`
}

// UpdateUserSettingsRequest replaces the profile settings. Omitted
// notification flags keep their current value.
type UpdateUserSettingsRequest struct {
	FirstName     string              `json:"first_name" validate:"required,max=100"`
	LastName      string              `json:"last_name" validate:"required,max=100"`
	Email         string              `json:"email" validate:"required,email"`
	Company       string              `json:"company" validate:"max=200"`
	Notifications *NotificationsPatch `json:"notifications"`
}

// NotificationsPatch carries optional notification flags.
type NotificationsPatch struct {
	Email     *bool `json:"email"`
	Push      *bool `json:"push"`
	Marketing *bool `json:"marketing"`
}

// UpdateNotificationRequest toggles one notification channel
type UpdateNotificationRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// APIKeyResponse is one platform's key, masked unless revealed
type APIKeyResponse struct {
	Platform    string `json:"platform"`
	DisplayName string `json:"display_name"`
	Key         string `json:"key"`
	Configured  bool   `json:"configured"`
}

// UpdateAPIKeysRequest sets keys per platform id
type UpdateAPIKeysRequest struct {
	Keys map[string]string `json:"keys" validate:"required"`
}

func ToUserSettingsResponse(s setting.UserSettings) *UserSettingsResponse {
	return &UserSettingsResponse{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Company:   s.Company,
		Notifications: NotificationsDTO{
			Email:     s.Notifications.Email,
			Push:      s.Notifications.Push,
			Marketing: s.Notifications.Marketing,
		},
	}
}

// MaskSensitiveValue masks a sensitive value for display
func MaskSensitiveValue(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 6 {
		return "***"
	}
	return value[:2] + "***...***" + value[len(value)-2:]
}
