// Package account models social accounts connected through the OAuth flow.
package account

import (
	"errors"
	"time"
)

// ErrPlatformMismatch is returned when an account is stored under a platform
// other than the one it was generated for.
var ErrPlatformMismatch = errors.New("account platform does not match target platform")

// ConnectedAccount is a linked social account. At most one exists per platform.
type ConnectedAccount struct {
	ID             string    `json:"id"`
	Platform       string    `json:"platform"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	ProfilePicture string    `json:"profile_picture"`
	Followers      int       `json:"followers"`
	IsVerified     bool      `json:"is_verified"`
	AccessToken    string    `json:"access_token"`
	RefreshToken   string    `json:"refresh_token"`
	ExpiresAt      time.Time `json:"expires_at"`
	ConnectedAt    time.Time `json:"connected_at"`
}

// IsTokenExpired reports whether the access token has expired at now.
func (a *ConnectedAccount) IsTokenExpired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// Clone returns a copy that shares no state with a.
func (a *ConnectedAccount) Clone() *ConnectedAccount {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// UpsertResult tells whether Upsert added a new account or replaced one.
type UpsertResult int

const (
	Inserted UpsertResult = iota + 1
	Replaced
)

func (r UpsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}
