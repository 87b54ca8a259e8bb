// Package setting models the dashboard user's profile settings and API keys.
package setting

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownNotification = errors.New("unknown notification kind")
	ErrUnknownPlatformKey  = errors.New("api key for unknown platform")
)

type NotificationKind string

const (
	NotificationEmail     NotificationKind = "email"
	NotificationPush      NotificationKind = "push"
	NotificationMarketing NotificationKind = "marketing"
)

type Notifications struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Marketing bool `json:"marketing"`
}

// Set toggles a single notification channel.
func (n *Notifications) Set(kind NotificationKind, enabled bool) error {
	switch kind {
	case NotificationEmail:
		n.Email = enabled
	case NotificationPush:
		n.Push = enabled
	case NotificationMarketing:
		n.Marketing = enabled
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNotification, kind)
	}
	return nil
}

type UserSettings struct {
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Email         string        `json:"email"`
	Company       string        `json:"company"`
	Notifications Notifications `json:"notifications"`
}

// DefaultUserSettings is returned when nothing has been saved yet.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Company:   "Acme Corp",
		Notifications: Notifications{
			Email:     true,
			Push:      false,
			Marketing: true,
		},
	}
}

// APIKeys maps platform identifiers to user supplied API keys.
type APIKeys map[string]string

// MergeOver returns defaults overlaid with the keys in k.
func (k APIKeys) MergeOver(defaults APIKeys) APIKeys {
	out := make(APIKeys, len(defaults)+len(k))
	for p, v := range defaults {
		out[p] = v
	}
	for p, v := range k {
		out[p] = v
	}
	return out
}

type Repository interface {
	// Load returns the saved settings, or false when none are stored.
	Load(ctx context.Context) (UserSettings, bool)
	Save(ctx context.Context, s UserSettings) error
}

type APIKeyRepository interface {
	Load(ctx context.Context) (APIKeys, bool)
	Save(ctx context.Context, keys APIKeys) error
}
