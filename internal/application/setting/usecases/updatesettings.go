package usecases

import (
	"context"
	"sort"
	"strings"

	"github.com/orris-inc/socialdash/internal/application/setting/dto"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/domain/setting"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

// UpdateSettingsUseCase handles updating user settings and api keys
type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	apiKeyRepo  setting.APIKeyRepository
	getter      *GetSettingsUseCase
	registry    *platform.Registry
	logger      logger.Interface
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase
func NewUpdateSettingsUseCase(
	settingRepo setting.Repository,
	apiKeyRepo setting.APIKeyRepository,
	getter *GetSettingsUseCase,
	registry *platform.Registry,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		apiKeyRepo:  apiKeyRepo,
		getter:      getter,
		registry:    registry,
		logger:      logger,
	}
}

// UpdateUserSettings validates and stores the profile settings.
func (uc *UpdateSettingsUseCase) UpdateUserSettings(ctx context.Context, req dto.UpdateUserSettingsRequest) (*dto.UserSettingsResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	current := uc.getter.Current(ctx)
	next := setting.UserSettings{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.TrimSpace(req.Email),
		Company:       strings.TrimSpace(req.Company),
		Notifications: current.Notifications,
	}
	if n := req.Notifications; n != nil {
		if n.Email != nil {
			next.Notifications.Email = *n.Email
		}
		if n.Push != nil {
			next.Notifications.Push = *n.Push
		}
		if n.Marketing != nil {
			next.Notifications.Marketing = *n.Marketing
		}
	}

	if err := uc.settingRepo.Save(ctx, next); err != nil {
		uc.logger.Errorw("failed to save user settings", "error", err)
		return nil, errors.NewInternalError("Failed to save settings")
	}
	return dto.ToUserSettingsResponse(next), nil
}

// SetNotification toggles one notification channel.
func (uc *UpdateSettingsUseCase) SetNotification(ctx context.Context, kind setting.NotificationKind, enabled bool) (*dto.UserSettingsResponse, error) {
	s := uc.getter.Current(ctx)
	if err := s.Notifications.Set(kind, enabled); err != nil {
		return nil, errors.NewValidationError("Unknown notification kind", string(kind))
	}

	if err := uc.settingRepo.Save(ctx, s); err != nil {
		uc.logger.Errorw("failed to save notification preference", "kind", kind, "error", err)
		return nil, errors.NewInternalError("Failed to save settings")
	}
	return dto.ToUserSettingsResponse(s), nil
}

// UpdateAPIKeys merges keys into the stored set. Keys for platforms outside
// the registry are rejected as a whole.
func (uc *UpdateSettingsUseCase) UpdateAPIKeys(ctx context.Context, req dto.UpdateAPIKeysRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	var unknown []string
	for id := range req.Keys {
		if !uc.registry.Has(id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return errors.NewValidationError(
			setting.ErrUnknownPlatformKey.Error(),
			strings.Join(unknown, ", "),
		)
	}

	keys := uc.getter.APIKeys(ctx)
	for id, v := range req.Keys {
		keys[id] = strings.TrimSpace(v)
	}

	if err := uc.apiKeyRepo.Save(ctx, keys); err != nil {
		uc.logger.Errorw("failed to save api keys", "error", err)
		return errors.NewInternalError("Failed to save API keys")
	}

	uc.logger.Infow("api keys updated", "platforms", len(req.Keys))
	return nil
}
