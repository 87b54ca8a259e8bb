// Package media manages the media library.
package media

import (
	"context"

	"github.com/google/uuid"

	"github.com/orris-inc/socialdash/internal/domain/media"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

// AddMediaRequest represents a request to register a media item
type AddMediaRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Type string `json:"type" validate:"required,oneof=image video"`
	Size string `json:"size" validate:"required,max=32"`
	URL  string `json:"url" validate:"required"`
}

type Service struct {
	repo   media.Repository
	clock  biztime.Clock
	logger logger.Interface
}

func NewService(repo media.Repository, clock biztime.Clock, logger logger.Interface) *Service {
	return &Service{repo: repo, clock: clock, logger: logger}
}

func (s *Service) Add(ctx context.Context, req AddMediaRequest) (*media.Item, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	item := &media.Item{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Type:       media.Type(req.Type),
		Size:       req.Size,
		URL:        req.URL,
		UploadedAt: s.clock.Now(),
	}
	if err := s.repo.Add(ctx, item); err != nil {
		return nil, errors.NewInternalError("Failed to save media item").WithCause(err)
	}

	s.logger.Infow("media item added", "id", item.ID, "name", item.Name, "type", item.Type)
	return item, nil
}

func (s *Service) List(ctx context.Context) []*media.Item {
	return s.repo.List(ctx)
}

// Delete removes a media item. False means it did not exist.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, errors.NewInternalError("Failed to delete media item").WithCause(err)
	}
	return ok, nil
}
