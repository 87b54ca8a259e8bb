// Package post models composed social media posts.
package post

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrInvalidStatus   = errors.New("invalid post status")
	ErrEmptyContent    = errors.New("post content is required")
	ErrMissingSchedule = errors.New("scheduled post requires a scheduled time")
)

type Status string

const (
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
	StatusDraft     Status = "draft"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPublished, StatusScheduled, StatusDraft:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

type Post struct {
	ID            string     `json:"id"`
	Content       string     `json:"content"`
	Platforms     []string   `json:"platforms"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	Status        Status     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	MediaURLs     []string   `json:"media_urls,omitempty"`
}

// NewPost validates the fields and builds a post created at now. A post
// created as published gets PublishedAt = now.
func NewPost(id, content string, platforms []string, scheduledTime *time.Time, status Status, mediaURLs []string, now time.Time) (*Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if status == StatusScheduled && scheduledTime == nil {
		return nil, ErrMissingSchedule
	}

	p := &Post{
		ID:            id,
		Content:       content,
		Platforms:     append([]string{}, platforms...),
		ScheduledTime: scheduledTime,
		Status:        status,
		CreatedAt:     now,
		MediaURLs:     append([]string(nil), mediaURLs...),
	}
	if status == StatusPublished {
		published := now
		p.PublishedAt = &published
	}
	return p, nil
}

// Patch carries the fields of a partial update. Nil fields are left unchanged.
type Patch struct {
	Content       *string
	Platforms     []string
	ScheduledTime *time.Time
	Status        *Status
	MediaURLs     []string
}

// Apply merges patch into p. Transitioning to published stamps PublishedAt.
func (p *Post) Apply(patch Patch, now time.Time) error {
	if patch.Content != nil {
		if strings.TrimSpace(*patch.Content) == "" {
			return ErrEmptyContent
		}
		p.Content = *patch.Content
	}
	if patch.Platforms != nil {
		p.Platforms = append([]string{}, patch.Platforms...)
	}
	if patch.ScheduledTime != nil {
		st := *patch.ScheduledTime
		p.ScheduledTime = &st
	}
	if patch.MediaURLs != nil {
		p.MediaURLs = append([]string{}, patch.MediaURLs...)
	}
	if patch.Status != nil {
		next := *patch.Status
		if !next.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, next)
		}
		if next == StatusScheduled && p.ScheduledTime == nil {
			return ErrMissingSchedule
		}
		if next == StatusPublished && p.Status != StatusPublished {
			published := now
			p.PublishedAt = &published
		}
		p.Status = next
	}
	return nil
}

// Repository persists the post collection.
type Repository interface {
	List(ctx context.Context) []*Post
	Get(ctx context.Context, id string) (*Post, bool)
	Create(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
