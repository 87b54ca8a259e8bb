package handlers

import (
	"github.com/gin-gonic/gin"

	mediaApp "github.com/orris-inc/socialdash/internal/application/media"
	"github.com/orris-inc/socialdash/internal/domain/media"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

type MediaHandler struct {
	media  mediaService
	logger logger.Interface
}

func NewMediaHandler(media mediaService, logger logger.Interface) *MediaHandler {
	return &MediaHandler{media: media, logger: logger}
}

// ListMedia handles GET /media
func (h *MediaHandler) ListMedia(c *gin.Context) {
	utils.OKResponse(c, h.media.List(c.Request.Context()))
}

// AddMedia handles POST /media
func (h *MediaHandler) AddMedia(c *gin.Context) {
	var req mediaApp.AddMediaRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for add media", "error", err)
		return
	}

	item, err := h.media.Add(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, item, "Media item added successfully")
}

// DeleteMedia handles DELETE /media/:id
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.media.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError(media.ErrMediaNotFound.Error(), id))
		return
	}
	utils.NoContentResponse(c)
}
