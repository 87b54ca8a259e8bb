// Package media models uploaded media assets.
package media

import (
	"context"
	"errors"
	"time"
)

var (
	ErrMediaNotFound    = errors.New("media item not found")
	ErrInvalidMediaType = errors.New("invalid media type")
)

type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

func (t Type) IsValid() bool {
	return t == TypeImage || t == TypeVideo
}

// Item is a media asset. Size is a display string such as "2.4 MB".
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       Type      `json:"type"`
	Size       string    `json:"size"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type Repository interface {
	List(ctx context.Context) []*Item
	Add(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id string) (bool, error)
}
