package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/socialdash/internal/domain/account"
	"github.com/orris-inc/socialdash/internal/domain/authstate"
	"github.com/orris-inc/socialdash/internal/domain/media"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/domain/post"
	"github.com/orris-inc/socialdash/internal/domain/setting"
	"github.com/orris-inc/socialdash/internal/infrastructure/kvstore"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestKV(t *testing.T) (*kvstore.Store, *biztime.ManualClock) {
	t.Helper()
	backend, err := kvstore.NewMemoryBackend(32)
	require.NoError(t, err)
	clock := biztime.NewManualClock(testNow)
	return kvstore.NewStore(backend, kvstore.WithClock(clock)), clock
}

func newAccount(platformID, id string) *account.ConnectedAccount {
	return &account.ConnectedAccount{
		ID:           id,
		Platform:     platformID,
		Username:     "@creative_studio",
		DisplayName:  "Creative Studio",
		Followers:    1200,
		AccessToken:  platformID + "_access_a",
		RefreshToken: platformID + "_refresh_a",
		ExpiresAt:    testNow.Add(time.Hour),
		ConnectedAt:  testNow,
	}
}

func TestAccountRepositoryUpsert(t *testing.T) {
	store, _ := newTestKV(t)
	repo := NewAccountRepository(store, platform.Default(), 0, logger.NewNop())
	ctx := context.Background()

	res, err := repo.Upsert(ctx, "instagram", newAccount("instagram", "instagram_1"))
	require.NoError(t, err)
	assert.Equal(t, account.Inserted, res)

	res, err = repo.Upsert(ctx, "facebook", newAccount("facebook", "facebook_2"))
	require.NoError(t, err)
	assert.Equal(t, account.Inserted, res)

	res, err = repo.Upsert(ctx, "instagram", newAccount("instagram", "instagram_3"))
	require.NoError(t, err)
	assert.Equal(t, account.Replaced, res)

	list := repo.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "facebook_2", list[0].ID)
	assert.Equal(t, "instagram_3", list[1].ID, "replacement is appended")

	got, ok := repo.FindByPlatform(ctx, "instagram")
	require.True(t, ok)
	assert.Equal(t, "instagram_3", got.ID)
	assert.False(t, repo.IsConnected(ctx, "twitter"))
}

func TestAccountRepositoryUpsertValidation(t *testing.T) {
	store, _ := newTestKV(t)
	repo := NewAccountRepository(store, platform.Default(), 0, logger.NewNop())
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "myspace", newAccount("myspace", "x"))
	assert.ErrorIs(t, err, platform.ErrPlatformNotFound)

	_, err = repo.Upsert(ctx, "instagram", newAccount("facebook", "x"))
	assert.ErrorIs(t, err, account.ErrPlatformMismatch)

	_, err = repo.Upsert(ctx, "instagram", nil)
	assert.ErrorIs(t, err, account.ErrPlatformMismatch)

	assert.Empty(t, repo.List(ctx))
}

func TestAccountRepositoryRemove(t *testing.T) {
	store, _ := newTestKV(t)
	repo := NewAccountRepository(store, platform.Default(), 0, logger.NewNop())
	ctx := context.Background()

	removed, err := repo.Remove(ctx, "twitter")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.Upsert(ctx, "twitter", newAccount("twitter", "twitter_1"))
	require.NoError(t, err)

	removed, err = repo.Remove(ctx, "twitter")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, repo.IsConnected(ctx, "twitter"))
}

func TestAccountRepositoryUpdateTokens(t *testing.T) {
	store, _ := newTestKV(t)
	repo := NewAccountRepository(store, platform.Default(), 0, logger.NewNop())
	ctx := context.Background()

	ok, err := repo.UpdateTokens(ctx, "linkedin", "a", "r", testNow)
	require.NoError(t, err)
	assert.False(t, ok)

	original := newAccount("linkedin", "linkedin_1")
	_, err = repo.Upsert(ctx, "linkedin", original)
	require.NoError(t, err)

	expires := testNow.Add(2 * time.Hour)
	ok, err = repo.UpdateTokens(ctx, "linkedin", "new_access", "new_refresh", expires)
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := repo.FindByPlatform(ctx, "linkedin")
	want := *original
	want.AccessToken = "new_access"
	want.RefreshToken = "new_refresh"
	want.ExpiresAt = expires
	assert.Equal(t, &want, got)
}

func TestAccountRepositoryExpires(t *testing.T) {
	store, clock := newTestKV(t)
	repo := NewAccountRepository(store, platform.Default(), time.Hour, logger.NewNop())
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "instagram", newAccount("instagram", "instagram_1"))
	require.NoError(t, err)

	clock.Advance(time.Hour)
	assert.Empty(t, repo.List(ctx))
}

func TestAuthStateRepository(t *testing.T) {
	store, clock := newTestKV(t)
	repo := NewAuthStateRepository(store, time.Minute)
	ctx := context.Background()

	_, ok := repo.Load(ctx)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, &authstate.AuthState{Platform: "instagram", Token: "one", CreatedAt: testNow}))
	require.NoError(t, repo.Save(ctx, &authstate.AuthState{Platform: "facebook", Token: "two", CreatedAt: testNow}))

	got, ok := repo.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "facebook", got.Platform)
	assert.Equal(t, "two", got.Token)

	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx))
	_, ok = repo.Load(ctx)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, &authstate.AuthState{Platform: "instagram", Token: "three"}))
	clock.Advance(time.Minute)
	_, ok = repo.Load(ctx)
	assert.False(t, ok)
}

func TestPostRepository(t *testing.T) {
	store, _ := newTestKV(t)
	repo := NewPostRepository(store, 0, logger.NewNop())
	ctx := context.Background()

	first, err := post.NewPost("p1", "first", nil, nil, post.StatusDraft, nil, testNow)
	require.NoError(t, err)
	second, err := post.NewPost("p2", "second", []string{"instagram"}, nil, post.StatusPublished, nil, testNow)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list := repo.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ID)

	first.Content = "edited"
	ok, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.True(t, ok)

	got, ok := repo.Get(ctx, "p1")
	require.True(t, ok)
	assert.Equal(t, "edited", got.Content)

	ok, err = repo.Update(ctx, &post.Post{ID: "nope"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Len(t, repo.List(ctx), 1)
}

func TestMediaRepository(t *testing.T) {
	store, _ := newTestKV(t)
	repo := NewMediaRepository(store, 0, logger.NewNop())
	ctx := context.Background()

	assert.Empty(t, repo.List(ctx))

	require.NoError(t, repo.Add(ctx, &media.Item{ID: "m1", Name: "a.jpg", Type: media.TypeImage}))
	require.NoError(t, repo.Add(ctx, &media.Item{ID: "m2", Name: "b.mp4", Type: media.TypeVideo}))

	ok, err := repo.Delete(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, ok)

	list := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "m2", list[0].ID)

	ok, err = repo.Delete(ctx, "m1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettingRepositories(t *testing.T) {
	store, _ := newTestKV(t)
	ctx := context.Background()

	settings := NewSettingRepository(store, 0)
	_, ok := settings.Load(ctx)
	assert.False(t, ok)

	want := setting.DefaultUserSettings()
	want.FirstName = "Jane"
	require.NoError(t, settings.Save(ctx, want))
	got, ok := settings.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)

	keys := NewAPIKeyRepository(store, 0)
	_, ok = keys.Load(ctx)
	assert.False(t, ok)

	require.NoError(t, keys.Save(ctx, setting.APIKeys{"instagram": "ig"}))
	loaded, ok := keys.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, setting.APIKeys{"instagram": "ig"}, loaded)
}
