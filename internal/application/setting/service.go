// Package setting serves the dashboard user's profile settings and the
// per-platform API keys.
package setting

import (
	"context"

	"github.com/orris-inc/socialdash/internal/application/setting/dto"
	"github.com/orris-inc/socialdash/internal/application/setting/usecases"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/domain/setting"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

// Service aggregates all setting-related use cases
type Service struct {
	getSettingsUC    *usecases.GetSettingsUseCase
	updateSettingsUC *usecases.UpdateSettingsUseCase
}

// NewService creates a new setting service
func NewService(
	settingRepo setting.Repository,
	apiKeyRepo setting.APIKeyRepository,
	registry *platform.Registry,
	logger logger.Interface,
) *Service {
	getUC := usecases.NewGetSettingsUseCase(settingRepo, apiKeyRepo, registry, logger)
	updateUC := usecases.NewUpdateSettingsUseCase(settingRepo, apiKeyRepo, getUC, registry, logger)

	return &Service{
		getSettingsUC:    getUC,
		updateSettingsUC: updateUC,
	}
}

func (s *Service) GetUserSettings(ctx context.Context) *dto.UserSettingsResponse {
	return s.getSettingsUC.GetUserSettings(ctx)
}

func (s *Service) UpdateUserSettings(ctx context.Context, req dto.UpdateUserSettingsRequest) (*dto.UserSettingsResponse, error) {
	return s.updateSettingsUC.UpdateUserSettings(ctx, req)
}

func (s *Service) SetNotification(ctx context.Context, kind setting.NotificationKind, enabled bool) (*dto.UserSettingsResponse, error) {
	return s.updateSettingsUC.SetNotification(ctx, kind, enabled)
}

func (s *Service) GetAPIKeys(ctx context.Context, reveal bool) []dto.APIKeyResponse {
	return s.getSettingsUC.GetAPIKeys(ctx, reveal)
}

func (s *Service) UpdateAPIKeys(ctx context.Context, req dto.UpdateAPIKeysRequest) error {
	return s.updateSettingsUC.UpdateAPIKeys(ctx, req)
}
