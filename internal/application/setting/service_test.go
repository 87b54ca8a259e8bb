package setting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/socialdash/internal/application/setting/dto"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/domain/setting"
	"github.com/orris-inc/socialdash/internal/infrastructure/kvstore"
	"github.com/orris-inc/socialdash/internal/infrastructure/repository"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	backend, err := kvstore.NewMemoryBackend(8)
	require.NoError(t, err)
	store := kvstore.NewStore(backend)
	return NewService(
		repository.NewSettingRepository(store, 0),
		repository.NewAPIKeyRepository(store, 0),
		platform.Default(),
		logger.NewNop(),
	)
}

func boolPtr(b bool) *bool { return &b }

func TestGetUserSettingsDefaults(t *testing.T) {
	svc := newTestService(t)

	got := svc.GetUserSettings(context.Background())
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "john@example.com", got.Email)
	assert.Equal(t, "Acme Corp", got.Company)
	assert.Equal(t, dto.NotificationsDTO{Email: true, Push: false, Marketing: true}, got.Notifications)
}

func TestUpdateUserSettings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := dto.UpdateUserSettingsRequest{
		FirstName: " Jane ",
		LastName:  "Roe",
		Email:     "jane@example.com",
		Company:   "Initech",
	}
	req.Notifications = &dto.NotificationsPatch{Push: boolPtr(true)}

	got, err := svc.UpdateUserSettings(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, dto.NotificationsDTO{Email: true, Push: true, Marketing: true}, got.Notifications)

	assert.Equal(t, got, svc.GetUserSettings(ctx))
}

func TestUpdateUserSettingsValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateUserSettings(context.Background(), dto.UpdateUserSettingsRequest{
		FirstName: "Jane",
		LastName:  "Roe",
		Email:     "not-an-email",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSetNotification(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	got, err := svc.SetNotification(ctx, setting.NotificationMarketing, false)
	require.NoError(t, err)
	assert.False(t, got.Notifications.Marketing)
	assert.Equal(t, "John", got.FirstName)

	_, err = svc.SetNotification(ctx, "sms", true)
	assert.True(t, errors.IsValidationError(err))
}

func TestAPIKeys(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	keys := svc.GetAPIKeys(ctx, false)
	require.Len(t, keys, 4)
	for _, k := range keys {
		assert.Empty(t, k.Key)
		assert.False(t, k.Configured)
	}

	require.NoError(t, svc.UpdateAPIKeys(ctx, dto.UpdateAPIKeysRequest{
		Keys: map[string]string{"facebook": "fb-secret-key", "twitter": "abc"},
	}))

	masked := svc.GetAPIKeys(ctx, false)
	assert.Equal(t, "instagram", masked[0].Platform)
	assert.Equal(t, "fb***...***ey", masked[1].Key)
	assert.True(t, masked[1].Configured)
	assert.Equal(t, "***", masked[2].Key)

	revealed := svc.GetAPIKeys(ctx, true)
	assert.Equal(t, "fb-secret-key", revealed[1].Key)
	assert.Equal(t, "X (Twitter)", revealed[2].DisplayName)
}

func TestUpdateAPIKeysRejectsUnknownPlatforms(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.UpdateAPIKeys(ctx, dto.UpdateAPIKeysRequest{
		Keys: map[string]string{"myspace": "x", "instagram": "y", "friendster": "z"},
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "friendster, myspace", appErr.Details)

	for _, k := range svc.GetAPIKeys(ctx, true) {
		assert.Empty(t, k.Key, "nothing is saved when a platform is unknown")
	}
}
