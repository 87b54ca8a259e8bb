package handlers

import (
	"github.com/gin-gonic/gin"

	postApp "github.com/orris-inc/socialdash/internal/application/post"
	"github.com/orris-inc/socialdash/internal/domain/post"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

type PostHandler struct {
	posts  postService
	logger logger.Interface
}

func NewPostHandler(posts postService, logger logger.Interface) *PostHandler {
	return &PostHandler{posts: posts, logger: logger}
}

// ListPosts handles GET /posts, optionally filtered by ?status=
func (h *PostHandler) ListPosts(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		utils.OKResponse(c, h.posts.List(c.Request.Context()))
		return
	}

	posts, err := h.posts.ListByStatus(c.Request.Context(), status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, posts)
}

// GetPost handles GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	p, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, p)
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req postApp.CreatePostRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create post", "error", err)
		return
	}

	p, err := h.posts.Create(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, p, "Post created successfully")
}

// UpdatePost handles PATCH /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req postApp.UpdatePostRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update post", "error", err)
		return
	}

	p, err := h.posts.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.MessageResponse(c, "Post updated successfully", p)
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.posts.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(post.ErrPostNotFound.Error(), id))
		return
	}
	utils.NoContentResponse(c)
}
