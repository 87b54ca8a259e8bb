package usecases

import (
	"context"

	"github.com/orris-inc/socialdash/internal/application/setting/dto"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/domain/setting"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

// GetSettingsUseCase handles retrieval of user settings and api keys
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	apiKeyRepo  setting.APIKeyRepository
	registry    *platform.Registry
	logger      logger.Interface
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase
func NewGetSettingsUseCase(
	settingRepo setting.Repository,
	apiKeyRepo setting.APIKeyRepository,
	registry *platform.Registry,
	logger logger.Interface,
) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		apiKeyRepo:  apiKeyRepo,
		registry:    registry,
		logger:      logger,
	}
}

// Current returns the stored settings, or the defaults when none are stored.
func (uc *GetSettingsUseCase) Current(ctx context.Context) setting.UserSettings {
	s, ok := uc.settingRepo.Load(ctx)
	if !ok {
		return setting.DefaultUserSettings()
	}
	return s
}

func (uc *GetSettingsUseCase) GetUserSettings(ctx context.Context) *dto.UserSettingsResponse {
	return dto.ToUserSettingsResponse(uc.Current(ctx))
}

// APIKeys returns the stored keys merged over an empty key for every
// registered platform.
func (uc *GetSettingsUseCase) APIKeys(ctx context.Context) setting.APIKeys {
	defaults := make(setting.APIKeys, len(uc.registry.IDs()))
	for _, id := range uc.registry.IDs() {
		defaults[id] = ""
	}
	stored, _ := uc.apiKeyRepo.Load(ctx)
	return stored.MergeOver(defaults)
}

// GetAPIKeys lists keys in registry order, masked unless reveal is set.
func (uc *GetSettingsUseCase) GetAPIKeys(ctx context.Context, reveal bool) []dto.APIKeyResponse {
	keys := uc.APIKeys(ctx)
	out := make([]dto.APIKeyResponse, 0, len(keys))
	for _, p := range uc.registry.All() {
		value := keys[p.ID]
		if !reveal {
			value = dto.MaskSensitiveValue(value)
		}
		out = append(out, dto.APIKeyResponse{
			Platform:    p.ID,
			DisplayName: p.DisplayName,
			Key:         value,
			Configured:  keys[p.ID] != "",
		})
	}
	return out
}
