// Package post implements composing, scheduling and publishing posts.
package post

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/domain/post"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/mapper"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

func init() {
	// "platform" accepts registered platform ids.
	if err := utils.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return platform.Default().Has(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// CreatePostRequest represents a request to compose a post
type CreatePostRequest struct {
	Content       string     `json:"content" validate:"required,max=5000"`
	Platforms     []string   `json:"platforms" validate:"dive,platform"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Status        string     `json:"status" validate:"required,oneof=published scheduled draft"`
	MediaURLs     []string   `json:"media_urls" validate:"dive,required"`
}

// UpdatePostRequest is a partial update; nil fields are left unchanged
type UpdatePostRequest struct {
	Content       *string    `json:"content" validate:"omitempty,max=5000"`
	Platforms     []string   `json:"platforms" validate:"omitempty,dive,platform"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Status        *string    `json:"status" validate:"omitempty,oneof=published scheduled draft"`
	MediaURLs     []string   `json:"media_urls" validate:"omitempty,dive,required"`
}

type Service struct {
	repo   post.Repository
	clock  biztime.Clock
	logger logger.Interface
}

// NewService creates a new post Service
func NewService(repo post.Repository, clock biztime.Clock, logger logger.Interface) *Service {
	return &Service{repo: repo, clock: clock, logger: logger}
}

func (s *Service) Create(ctx context.Context, req CreatePostRequest) (*post.Post, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	p, err := post.NewPost(
		uuid.NewString(),
		req.Content,
		req.Platforms,
		req.ScheduledTime,
		post.Status(req.Status),
		req.MediaURLs,
		s.clock.Now(),
	)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, errors.NewInternalError("Failed to save post").WithCause(err)
	}

	s.logger.Infow("post created", "id", p.ID, "status", p.Status, "platforms", p.Platforms)
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*post.Post, error) {
	p, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, errors.NewNotFoundError(post.ErrPostNotFound.Error(), id)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdatePostRequest) (*post.Post, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := post.Patch{
		Content:       req.Content,
		Platforms:     req.Platforms,
		ScheduledTime: req.ScheduledTime,
		MediaURLs:     req.MediaURLs,
	}
	if req.Status != nil {
		st := post.Status(*req.Status)
		patch.Status = &st
	}
	if err := p.Apply(patch, s.clock.Now()); err != nil {
		return nil, toAppError(err)
	}

	ok, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, errors.NewInternalError("Failed to save post").WithCause(err)
	}
	if !ok {
		return nil, errors.NewNotFoundError(post.ErrPostNotFound.Error(), id)
	}
	return p, nil
}

// Delete removes a post. False means it did not exist.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, errors.NewInternalError("Failed to delete post").WithCause(err)
	}
	return ok, nil
}

func (s *Service) List(ctx context.Context) []*post.Post {
	return s.repo.List(ctx)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*post.Post, error) {
	st := post.Status(status)
	if !st.IsValid() {
		return nil, errors.NewValidationError(post.ErrInvalidStatus.Error(), status)
	}
	return mapper.Filter(s.repo.List(ctx), func(p *post.Post) bool {
		return p.Status == st
	}), nil
}

func toAppError(err error) error {
	switch {
	case stderrors.Is(err, post.ErrEmptyContent),
		stderrors.Is(err, post.ErrInvalidStatus),
		stderrors.Is(err, post.ErrMissingSchedule):
		return errors.NewValidationError(err.Error())
	default:
		return errors.NewInternalError("Failed to process post").WithCause(err)
	}
}
