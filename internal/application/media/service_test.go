package media

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/socialdash/internal/domain/media"
	"github.com/orris-inc/socialdash/internal/infrastructure/kvstore"
	"github.com/orris-inc/socialdash/internal/infrastructure/repository"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	backend, err := kvstore.NewMemoryBackend(8)
	require.NoError(t, err)
	clock := biztime.NewManualClock(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	store := kvstore.NewStore(backend, kvstore.WithClock(clock))
	return NewService(repository.NewMediaRepository(store, 0, logger.NewNop()), clock, logger.NewNop())
}

func TestAddListDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, AddMediaRequest{Name: "demo-video.mp4", Type: "video", Size: "15.8 MB", URL: "/placeholder.svg"})
	require.NoError(t, err)
	assert.Equal(t, media.TypeVideo, item.Type)
	assert.NotEmpty(t, item.ID)

	list := svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, item.ID, list[0].ID)

	ok, err := svc.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add(context.Background(), AddMediaRequest{Name: "doc.pdf", Type: "document", Size: "1 MB", URL: "/x"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = svc.Add(context.Background(), AddMediaRequest{Type: "image"})
	assert.True(t, errors.IsValidationError(err))
}
