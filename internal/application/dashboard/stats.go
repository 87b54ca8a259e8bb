// Package dashboard aggregates posts, media and accounts into the overview
// shown on the dashboard home page, and seeds sample content.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/orris-inc/socialdash/internal/domain/account"
	"github.com/orris-inc/socialdash/internal/domain/media"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/domain/post"
)

// PlatformStatus is the connection summary for one registered platform.
type PlatformStatus struct {
	Platform         string `json:"platform"`
	Label            string `json:"label"`
	Connected        bool   `json:"connected"`
	Username         string `json:"username,omitempty"`
	Followers        int    `json:"followers"`
	FollowersLabel   string `json:"followers_label"`
	FollowersCompact string `json:"followers_compact"`
}

type Stats struct {
	ScheduledPosts    int              `json:"scheduled_posts"`
	PublishedPosts    int              `json:"published_posts"`
	DraftPosts        int              `json:"draft_posts"`
	MediaItems        int              `json:"media_items"`
	ConnectedAccounts int              `json:"connected_accounts"`
	TotalFollowers    int              `json:"total_followers"`
	FollowersLabel    string           `json:"followers_label"`
	Platforms         []PlatformStatus `json:"platforms"`
}

type Service struct {
	registry *platform.Registry
	accounts account.Repository
	posts    post.Repository
	media    media.Repository
	printer  *message.Printer
	title    cases.Caser
}

func NewService(registry *platform.Registry, accounts account.Repository, posts post.Repository, media media.Repository) *Service {
	return &Service{
		registry: registry,
		accounts: accounts,
		posts:    posts,
		media:    media,
		printer:  message.NewPrinter(language.English),
		title:    cases.Title(language.English),
	}
}

func (s *Service) Stats(ctx context.Context) *Stats {
	stats := &Stats{Platforms: []PlatformStatus{}}

	for _, p := range s.posts.List(ctx) {
		switch p.Status {
		case post.StatusScheduled:
			stats.ScheduledPosts++
		case post.StatusPublished:
			stats.PublishedPosts++
		case post.StatusDraft:
			stats.DraftPosts++
		}
	}
	stats.MediaItems = len(s.media.List(ctx))

	connected := make(map[string]*account.ConnectedAccount)
	for _, a := range s.accounts.List(ctx) {
		connected[a.Platform] = a
	}

	for _, p := range s.registry.All() {
		status := PlatformStatus{
			Platform: p.ID,
			Label:    s.label(p),
		}
		if a, ok := connected[p.ID]; ok {
			status.Connected = true
			status.Username = a.Username
			status.Followers = a.Followers
			stats.ConnectedAccounts++
			stats.TotalFollowers += a.Followers
		}
		status.FollowersLabel = s.printer.Sprintf("%d", status.Followers)
		status.FollowersCompact = CompactCount(status.Followers)
		stats.Platforms = append(stats.Platforms, status)
	}
	stats.FollowersLabel = s.printer.Sprintf("%d", stats.TotalFollowers)

	return stats
}

// label prefers the display name and title-cases the platform name otherwise.
func (s *Service) label(p platform.Platform) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Name != "" {
		return s.title.String(p.Name)
	}
	return s.title.String(p.ID)
}

// CompactCount renders a follower count the way account cards show it:
// 950, 12.4K, 1.2M.
func CompactCount(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return trimZero(float64(n)/1_000) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
