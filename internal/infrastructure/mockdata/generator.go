// Package mockdata fabricates the provider-side profile data returned by the
// simulated OAuth flow.
package mockdata

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/orris-inc/socialdash/internal/domain/account"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/id"
	"github.com/orris-inc/socialdash/internal/shared/random"
)

// ErrUnknownPlatform is returned for platforms without a candidate pool.
var ErrUnknownPlatform = errors.New("no mock profile data for platform")

const (
	ProfilePicture = "/placeholder.svg"

	minFollowers  = 1000
	followerRange = 50000
	// A profile is verified when the draw exceeds this, i.e. about 30% of the time.
	verifiedThreshold = 0.7
)

type profile struct {
	username    string
	displayName string
}

var candidates = map[string][]profile{
	"instagram": {
		{"@creative_studio", "Creative Studio"},
		{"@brand_official", "Brand Official"},
		{"@marketing_pro", "Marketing Pro"},
		{"@content_creator", "Content Creator"},
	},
	"facebook": {
		{"Creative Studio Page", "Creative Studio"},
		{"Brand Official", "Brand Official"},
		{"Marketing Pro", "Marketing Pro"},
		{"Content Creator", "Content Creator"},
	},
	"twitter": {
		{"@creative_studio", "Creative Studio"},
		{"@brand_official", "Brand Official"},
		{"@marketing_pro", "Marketing Pro"},
		{"@content_creator", "Content Creator"},
	},
	"linkedin": {
		{"Creative Studio", "Creative Studio"},
		{"Brand Official", "Brand Official"},
		{"Marketing Professional", "Marketing Professional"},
		{"Content Creator", "Content Creator"},
	},
}

// Generator builds randomized ConnectedAccount records.
type Generator struct {
	src           random.Source
	clock         biztime.Clock
	tokenLifetime time.Duration
}

func NewGenerator(src random.Source, clock biztime.Clock, tokenLifetime time.Duration) *Generator {
	if tokenLifetime <= 0 {
		tokenLifetime = time.Hour
	}
	return &Generator{src: src, clock: clock, tokenLifetime: tokenLifetime}
}

// Supports reports whether platformID has a candidate pool.
func (g *Generator) Supports(platformID string) bool {
	_, ok := candidates[platformID]
	return ok
}

// Generate returns a fresh account for platformID. platformName only
// appears in the error for unsupported platforms.
func (g *Generator) Generate(platformID, platformName string) (*account.ConnectedAccount, error) {
	pool, ok := candidates[platformID]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownPlatform, platformID, platformName)
	}

	now := g.clock.Now()
	pick := pool[g.src.IntN(len(pool))]
	followers := minFollowers + g.src.IntN(followerRange)
	verified := g.src.Float64() > verifiedThreshold
	access, refresh := g.NewTokens(platformID)

	return &account.ConnectedAccount{
		ID:             id.FormatWithPrefix(platformID, strconv.FormatInt(now.UnixMilli(), 10)),
		Platform:       platformID,
		Username:       pick.username,
		DisplayName:    pick.displayName,
		ProfilePicture: ProfilePicture,
		Followers:      followers,
		IsVerified:     verified,
		AccessToken:    access,
		RefreshToken:   refresh,
		ExpiresAt:      now.Add(g.tokenLifetime),
		ConnectedAt:    now,
	}, nil
}

// NewTokens returns a new access/refresh token pair for platformID.
func (g *Generator) NewTokens(platformID string) (accessToken, refreshToken string) {
	accessToken = platformID + "_access_" + id.Base36(g.src, id.TokenSuffixLength)
	refreshToken = platformID + "_refresh_" + id.Base36(g.src, id.TokenSuffixLength)
	return accessToken, refreshToken
}

// TokenLifetime is how long generated access tokens stay valid.
func (g *Generator) TokenLifetime() time.Duration {
	return g.tokenLifetime
}
