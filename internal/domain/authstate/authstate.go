// Package authstate models the single pending OAuth initiation.
package authstate

import (
	"context"
	"time"
)

// AuthState binds a pending OAuth flow to its anti-forgery token.
type AuthState struct {
	Platform  string    `json:"platform"`
	Token     string    `json:"state"`
	CreatedAt time.Time `json:"timestamp"`
}

// Matches reports whether a callback for platformID carrying token belongs
// to this pending flow.
func (s *AuthState) Matches(platformID, token string) bool {
	return s != nil && s.Token == token && s.Platform == platformID
}

// Repository holds at most one AuthState. Save overwrites the previous one.
type Repository interface {
	Save(ctx context.Context, state *AuthState) error
	Load(ctx context.Context) (*AuthState, bool)
	Delete(ctx context.Context) error
}
