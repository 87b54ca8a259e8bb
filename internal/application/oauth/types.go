package oauth

import (
	"time"

	"github.com/orris-inc/socialdash/internal/domain/account"
)

// FlowState is the position of an OAuth flow in its lifecycle.
type FlowState string

const (
	FlowIdle           FlowState = "idle"
	FlowInitiated      FlowState = "initiated"
	FlowAuthenticating FlowState = "authenticating"
	FlowSucceeded      FlowState = "succeeded"
	FlowFailed         FlowState = "failed"
)

// FailureKind classifies a structured callback failure.
type FailureKind string

const (
	FailureInvalidAuthState  FailureKind = "invalid_auth_state"
	FailureProviderRejection FailureKind = "provider_rejection"
	FailurePlatformNotFound  FailureKind = "platform_not_found"
)

// MsgInvalidAuthState is the error text of an InvalidAuthState failure.
const MsgInvalidAuthState = "Invalid auth state"

// InitiateResult is returned by InitiateOAuth.
type InitiateResult struct {
	Platform  string    `json:"platform"`
	AuthURL   string    `json:"auth_url"`
	State     string    `json:"state"`
	FlowState FlowState `json:"flow_state"`
}

// CallbackResult is the structured outcome of SimulateOAuthCallback. Exactly
// one of Account (on success) or Error/FailureKind (on failure) is set.
type CallbackResult struct {
	Success     bool                      `json:"success"`
	Account     *account.ConnectedAccount `json:"account,omitempty"`
	Replaced    bool                      `json:"replaced,omitempty"`
	Error       string                    `json:"error,omitempty"`
	FailureKind FailureKind               `json:"failure_kind,omitempty"`
	FlowState   FlowState                 `json:"flow_state"`
}

func failure(kind FailureKind, msg string) *CallbackResult {
	return &CallbackResult{
		Success:     false,
		Error:       msg,
		FailureKind: kind,
		FlowState:   FlowFailed,
	}
}

// PendingFlow describes the initiation that a callback could still complete.
type PendingFlow struct {
	FlowState FlowState  `json:"flow_state"`
	Platform  string     `json:"platform,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
