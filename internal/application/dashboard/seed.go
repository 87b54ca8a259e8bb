package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orris-inc/socialdash/internal/domain/media"
	"github.com/orris-inc/socialdash/internal/domain/post"
	"github.com/orris-inc/socialdash/internal/shared/biztime"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

type samplePost struct {
	content   string
	platforms []string
	scheduled *time.Time
	status    post.Status
}

func at(t time.Time) *time.Time { return &t }

var samplePosts = []samplePost{
	{
		content:   "Excited to share our latest product update! 🚀",
		platforms: []string{"instagram", "facebook"},
		scheduled: at(time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)),
		status:    post.StatusScheduled,
	},
	{
		content:   "Join us for our webinar next week about social media trends",
		platforms: []string{"linkedin", "twitter"},
		scheduled: at(time.Date(2025, 6, 17, 14, 0, 0, 0, time.UTC)),
		status:    post.StatusScheduled,
	},
	{
		content:   "Draft post about our new feature...",
		platforms: []string{},
		status:    post.StatusDraft,
	},
	{
		content:   "Just published our monthly newsletter! Check it out 📧",
		platforms: []string{"instagram", "facebook", "linkedin"},
		status:    post.StatusPublished,
	},
}

var sampleMedia = []media.Item{
	{Name: "product-shot-1.jpg", Type: media.TypeImage, Size: "2.4 MB", URL: "/placeholder.svg"},
	{Name: "demo-video.mp4", Type: media.TypeVideo, Size: "15.8 MB", URL: "/placeholder.svg"},
	{Name: "team-photo.jpg", Type: media.TypeImage, Size: "3.1 MB", URL: "/placeholder.svg"},
}

// SeedResult counts what Seed inserted.
type SeedResult struct {
	Posts int
	Media int
}

// Seeder fills empty post and media collections with sample content.
type Seeder struct {
	posts  post.Repository
	media  media.Repository
	clock  biztime.Clock
	logger logger.Interface
}

func NewSeeder(posts post.Repository, media media.Repository, clock biztime.Clock, logger logger.Interface) *Seeder {
	return &Seeder{posts: posts, media: media, clock: clock, logger: logger}
}

// Seed inserts sample data into each collection that is currently empty.
// Non-empty collections are left alone.
func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	now := s.clock.Now()

	if len(s.posts.List(ctx)) == 0 {
		for _, sp := range samplePosts {
			p, err := post.NewPost(uuid.NewString(), sp.content, sp.platforms, sp.scheduled, sp.status, nil, now)
			if err != nil {
				return res, fmt.Errorf("build sample post: %w", err)
			}
			if err := s.posts.Create(ctx, p); err != nil {
				return res, fmt.Errorf("seed posts: %w", err)
			}
			res.Posts++
		}
	}

	if len(s.media.List(ctx)) == 0 {
		for _, m := range sampleMedia {
			item := m
			item.ID = uuid.NewString()
			item.UploadedAt = now
			if err := s.media.Add(ctx, &item); err != nil {
				return res, fmt.Errorf("seed media: %w", err)
			}
			res.Media++
		}
	}

	if res.Posts > 0 || res.Media > 0 {
		s.logger.Infow("sample data seeded", "posts", res.Posts, "media", res.Media)
	}
	return res, nil
}
