package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/socialdash/internal/application/oauth"
	"github.com/orris-inc/socialdash/internal/domain/account"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/infrastructure/kvstore"
	"github.com/orris-inc/socialdash/internal/interfaces/http/handlers/testutil"
)

// =====================================================================
// Mock service
// =====================================================================

type mockOAuthService struct {
	initiateFn   func(ctx context.Context, platformID string) (*oauth.InitiateResult, error)
	callbackFn   func(ctx context.Context, platformID, code, state string) (*oauth.CallbackResult, error)
	disconnectFn func(ctx context.Context, platformID string) (bool, error)
	refreshFn    func(ctx context.Context, platformID string) (bool, error)
	pending      *oauth.PendingFlow
	accounts     []*account.ConnectedAccount
}

func (m *mockOAuthService) InitiateOAuth(ctx context.Context, platformID string) (*oauth.InitiateResult, error) {
	return m.initiateFn(ctx, platformID)
}

func (m *mockOAuthService) SimulateOAuthCallback(ctx context.Context, platformID, code, state string) (*oauth.CallbackResult, error) {
	return m.callbackFn(ctx, platformID, code, state)
}

func (m *mockOAuthService) DisconnectAccount(ctx context.Context, platformID string) (bool, error) {
	return m.disconnectFn(ctx, platformID)
}

func (m *mockOAuthService) RefreshToken(ctx context.Context, platformID string) (bool, error) {
	return m.refreshFn(ctx, platformID)
}

func (m *mockOAuthService) PendingFlow(ctx context.Context) *oauth.PendingFlow {
	if m.pending == nil {
		return &oauth.PendingFlow{FlowState: oauth.FlowIdle}
	}
	return m.pending
}

func (m *mockOAuthService) Accounts(ctx context.Context) []*account.ConnectedAccount {
	return m.accounts
}

func (m *mockOAuthService) Account(ctx context.Context, platformID string) (*account.ConnectedAccount, bool) {
	for _, a := range m.accounts {
		if a.Platform == platformID {
			return a, true
		}
	}
	return nil, false
}

func newTestOAuthHandler(svc *mockOAuthService) *OAuthHandler {
	return NewOAuthHandler(svc, platform.Default(), testutil.NewMockLogger())
}

// =====================================================================
// Platforms
// =====================================================================

func TestOAuthHandler_ListPlatforms(t *testing.T) {
	handler := newTestOAuthHandler(&mockOAuthService{})
	c, w := testutil.NewTestContext(http.MethodGet, "/platforms", nil)

	handler.ListPlatforms(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []platformResponse
	require.NoError(t, testutil.ParseData(w, &got))
	require.Len(t, got, 4)
	assert.Equal(t, "instagram", got[0].ID)
	assert.NotEmpty(t, got[0].Scopes)
	assert.NotEmpty(t, got[0].Scopes[0].Description)
}

func TestOAuthHandler_GetPlatform_NotFound(t *testing.T) {
	handler := newTestOAuthHandler(&mockOAuthService{})
	c, w := testutil.NewTestContext(http.MethodGet, "/platforms/myspace", nil)
	testutil.SetURLParam(c, "platform", "myspace")

	handler.GetPlatform(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// Initiate
// =====================================================================

func TestOAuthHandler_Initiate_Success(t *testing.T) {
	svc := &mockOAuthService{
		initiateFn: func(_ context.Context, platformID string) (*oauth.InitiateResult, error) {
			return &oauth.InitiateResult{Platform: platformID, AuthURL: "https://example.test/auth", State: "abc", FlowState: oauth.FlowInitiated}, nil
		},
	}
	handler := newTestOAuthHandler(svc)
	c, w := testutil.NewTestContext(http.MethodPost, "/oauth/twitter/initiate", nil)
	testutil.SetURLParam(c, "platform", "twitter")

	handler.Initiate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got oauth.InitiateResult
	require.NoError(t, testutil.ParseData(w, &got))
	assert.Equal(t, "twitter", got.Platform)
	assert.Equal(t, oauth.FlowInitiated, got.FlowState)
}

func TestOAuthHandler_Initiate_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown platform", fmt.Errorf("%w: myspace", platform.ErrPlatformNotFound), http.StatusNotFound},
		{"storage failure", fmt.Errorf("%w: disk full", kvstore.ErrIOFailure), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOAuthService{
				initiateFn: func(context.Context, string) (*oauth.InitiateResult, error) { return nil, tt.err },
			}
			handler := newTestOAuthHandler(svc)
			c, w := testutil.NewTestContext(http.MethodPost, "/oauth/myspace/initiate", nil)
			testutil.SetURLParam(c, "platform", "myspace")

			handler.Initiate(c)

			assert.Equal(t, tt.want, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
		})
	}
}

// =====================================================================
// Callback
// =====================================================================

func TestOAuthHandler_Callback_StructuredFailureIsOK(t *testing.T) {
	var gotCode, gotState string
	svc := &mockOAuthService{
		callbackFn: func(_ context.Context, _, code, state string) (*oauth.CallbackResult, error) {
			gotCode, gotState = code, state
			return &oauth.CallbackResult{Success: false, Error: oauth.MsgInvalidAuthState, FailureKind: oauth.FailureInvalidAuthState, FlowState: oauth.FlowFailed}, nil
		},
	}
	handler := newTestOAuthHandler(svc)
	c, w := testutil.NewTestContext(http.MethodPost, "/oauth/twitter/callback", CallbackRequest{Code: "c1", State: "wrong"})
	testutil.SetURLParam(c, "platform", "twitter")

	handler.Callback(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c1", gotCode)
	assert.Equal(t, "wrong", gotState)

	var got oauth.CallbackResult
	require.NoError(t, testutil.ParseData(w, &got))
	assert.False(t, got.Success)
	assert.Equal(t, oauth.FailureInvalidAuthState, got.FailureKind)
}

func TestOAuthHandler_Callback_InvalidBody(t *testing.T) {
	handler := newTestOAuthHandler(&mockOAuthService{})
	c, w := testutil.NewRawTestContext(http.MethodPost, "/oauth/twitter/callback", "{not json")
	testutil.SetURLParam(c, "platform", "twitter")

	handler.Callback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOAuthHandler_Redirect_UsesPendingPlatform(t *testing.T) {
	var gotPlatform string
	svc := &mockOAuthService{
		pending: &oauth.PendingFlow{FlowState: oauth.FlowInitiated, Platform: "linkedin"},
		callbackFn: func(_ context.Context, platformID, _, _ string) (*oauth.CallbackResult, error) {
			gotPlatform = platformID
			return &oauth.CallbackResult{Success: true, FlowState: oauth.FlowSucceeded}, nil
		},
	}
	handler := newTestOAuthHandler(svc)
	c, w := testutil.NewTestContext(http.MethodGet, "/auth/callback?code=x&state=y", nil)

	handler.Redirect(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "linkedin", gotPlatform)
}

func TestOAuthHandler_Redirect_NoPendingFlow(t *testing.T) {
	handler := newTestOAuthHandler(&mockOAuthService{})
	c, w := testutil.NewTestContext(http.MethodGet, "/auth/callback?code=x&state=y", nil)

	handler.Redirect(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Accounts
// =====================================================================

func TestOAuthHandler_Accounts(t *testing.T) {
	svc := &mockOAuthService{
		accounts: []*account.ConnectedAccount{{ID: "twitter_1", Platform: "twitter", Username: "@tech_enthusiast"}},
	}
	handler := newTestOAuthHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/accounts/twitter", nil)
	testutil.SetURLParam(c, "platform", "twitter")
	handler.GetAccount(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/accounts/facebook", nil)
	testutil.SetURLParam(c, "platform", "facebook")
	handler.GetAccount(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/accounts", nil)
	handler.ListAccounts(c)
	var list []account.ConnectedAccount
	require.NoError(t, testutil.ParseData(w, &list))
	assert.Len(t, list, 1)
}

func TestOAuthHandler_DisconnectAndRefresh(t *testing.T) {
	svc := &mockOAuthService{
		disconnectFn: func(context.Context, string) (bool, error) { return false, nil },
		refreshFn:    func(context.Context, string) (bool, error) { return true, nil },
	}
	handler := newTestOAuthHandler(svc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/accounts/facebook", nil)
	testutil.SetURLParam(c, "platform", "facebook")
	handler.Disconnect(c)
	assert.Equal(t, http.StatusOK, w.Code)
	var disconnected map[string]any
	require.NoError(t, testutil.ParseData(w, &disconnected))
	assert.Equal(t, false, disconnected["disconnected"])

	c, w = testutil.NewTestContext(http.MethodPost, "/accounts/facebook/refresh", nil)
	testutil.SetURLParam(c, "platform", "facebook")
	handler.Refresh(c)
	assert.Equal(t, http.StatusOK, w.Code)
	var refreshed map[string]any
	require.NoError(t, testutil.ParseData(w, &refreshed))
	assert.Equal(t, true, refreshed["refreshed"])
}

func TestOAuthHandler_Disconnect_StorageError(t *testing.T) {
	svc := &mockOAuthService{
		disconnectFn: func(context.Context, string) (bool, error) {
			return false, fmt.Errorf("%w: write refused", kvstore.ErrIOFailure)
		},
	}
	handler := newTestOAuthHandler(svc)
	c, w := testutil.NewTestContext(http.MethodDelete, "/accounts/facebook", nil)
	testutil.SetURLParam(c, "platform", "facebook")

	handler.Disconnect(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Storage unavailable", resp.Error.Message)
}
