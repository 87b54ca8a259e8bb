package handlers

import (
	"context"

	"github.com/orris-inc/socialdash/internal/application/dashboard"
	mediaApp "github.com/orris-inc/socialdash/internal/application/media"
	postApp "github.com/orris-inc/socialdash/internal/application/post"
	"github.com/orris-inc/socialdash/internal/application/setting/dto"
	"github.com/orris-inc/socialdash/internal/domain/media"
	"github.com/orris-inc/socialdash/internal/domain/post"
	"github.com/orris-inc/socialdash/internal/domain/setting"
	"github.com/orris-inc/socialdash/internal/infrastructure/scheduler"
)

type postService interface {
	Create(ctx context.Context, req postApp.CreatePostRequest) (*post.Post, error)
	Get(ctx context.Context, id string) (*post.Post, error)
	Update(ctx context.Context, id string, req postApp.UpdatePostRequest) (*post.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) []*post.Post
	ListByStatus(ctx context.Context, status string) ([]*post.Post, error)
}

type mediaService interface {
	Add(ctx context.Context, req mediaApp.AddMediaRequest) (*media.Item, error)
	List(ctx context.Context) []*media.Item
	Delete(ctx context.Context, id string) (bool, error)
}

type settingService interface {
	GetUserSettings(ctx context.Context) *dto.UserSettingsResponse
	UpdateUserSettings(ctx context.Context, req dto.UpdateUserSettingsRequest) (*dto.UserSettingsResponse, error)
	SetNotification(ctx context.Context, kind setting.NotificationKind, enabled bool) (*dto.UserSettingsResponse, error)
	GetAPIKeys(ctx context.Context, reveal bool) []dto.APIKeyResponse
	UpdateAPIKeys(ctx context.Context, req dto.UpdateAPIKeysRequest) error
}

type statsService interface {
	Stats(ctx context.Context) *dashboard.Stats
}

type storeMaintainer interface {
	Sweep(ctx context.Context) (int, error)
	ClearAll(ctx context.Context) error
}

type sweepReporter interface {
	LastSweep() scheduler.SweepStatus
}
