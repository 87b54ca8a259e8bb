package handlers

import (
	"context"
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/infrastructure/kvstore"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

// respondError maps domain sentinels onto the AppError taxonomy before
// writing the error response.
func respondError(c *gin.Context, err error) {
	if errors.GetAppError(err) != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	switch {
	case stderrors.Is(err, platform.ErrPlatformNotFound):
		err = errors.NewNotFoundError("Platform not found", c.Param("platform"))
	case stderrors.Is(err, kvstore.ErrQuotaExceeded):
		err = errors.NewInternalError("Storage quota exceeded").WithCause(err)
	case stderrors.Is(err, kvstore.ErrIOFailure):
		err = errors.NewInternalError("Storage unavailable").WithCause(err)
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		err = errors.NewInternalError("Request cancelled").WithCause(err)
	}
	utils.ErrorResponseWithError(c, err)
}
