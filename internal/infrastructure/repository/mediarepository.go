package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/socialdash/internal/domain/media"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

var _ media.Repository = (*MediaRepository)(nil)

// MediaRepository implements media.Repository over a single store key.
type MediaRepository struct {
	items  *kvCollection[*media.Item]
	logger logger.Interface
}

func NewMediaRepository(store KVStore, ttl time.Duration, logger logger.Interface) *MediaRepository {
	return &MediaRepository{
		items:  newKVCollection[*media.Item](store, KeyMedia, ttl),
		logger: logger,
	}
}

func (r *MediaRepository) List(ctx context.Context) []*media.Item {
	return r.items.load(ctx)
}

func (r *MediaRepository) Add(ctx context.Context, item *media.Item) error {
	r.items.mu.Lock()
	defer r.items.mu.Unlock()

	items := append(r.items.load(ctx), item)
	if err := r.items.save(ctx, items); err != nil {
		r.logger.Errorw("failed to add media item", "id", item.ID, "error", err)
		return fmt.Errorf("failed to add media item: %w", err)
	}
	return nil
}

func (r *MediaRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.items.mu.Lock()
	defer r.items.mu.Unlock()

	items := r.items.load(ctx)
	kept := make([]*media.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}

	if err := r.items.save(ctx, kept); err != nil {
		r.logger.Errorw("failed to delete media item", "id", id, "error", err)
		return false, fmt.Errorf("failed to delete media item: %w", err)
	}
	return true, nil
}
