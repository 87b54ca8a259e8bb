package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/orris-inc/socialdash/internal/domain/post"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

var _ post.Repository = (*PostRepository)(nil)

// PostRepository implements post.Repository over a single store key.
type PostRepository struct {
	posts  *kvCollection[*post.Post]
	logger logger.Interface
}

func NewPostRepository(store KVStore, ttl time.Duration, logger logger.Interface) *PostRepository {
	return &PostRepository{
		posts:  newKVCollection[*post.Post](store, KeyPosts, ttl),
		logger: logger,
	}
}

func (r *PostRepository) List(ctx context.Context) []*post.Post {
	return r.posts.load(ctx)
}

func (r *PostRepository) Get(ctx context.Context, id string) (*post.Post, bool) {
	for _, p := range r.posts.load(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (r *PostRepository) Create(ctx context.Context, p *post.Post) error {
	r.posts.mu.Lock()
	defer r.posts.mu.Unlock()

	posts := append(r.posts.load(ctx), p)
	if err := r.posts.save(ctx, posts); err != nil {
		r.logger.Errorw("failed to create post", "id", p.ID, "error", err)
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update replaces the stored post with the same ID. It returns false when
// no such post exists.
func (r *PostRepository) Update(ctx context.Context, p *post.Post) (bool, error) {
	r.posts.mu.Lock()
	defer r.posts.mu.Unlock()

	posts := r.posts.load(ctx)
	for i := range posts {
		if posts[i].ID != p.ID {
			continue
		}
		posts[i] = p
		if err := r.posts.save(ctx, posts); err != nil {
			r.logger.Errorw("failed to update post", "id", p.ID, "error", err)
			return false, fmt.Errorf("failed to update post: %w", err)
		}
		return true, nil
	}
	return false, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.posts.mu.Lock()
	defer r.posts.mu.Unlock()

	posts := r.posts.load(ctx)
	kept := make([]*post.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return false, nil
	}

	if err := r.posts.save(ctx, kept); err != nil {
		r.logger.Errorw("failed to delete post", "id", id, "error", err)
		return false, fmt.Errorf("failed to delete post: %w", err)
	}
	return true, nil
}
