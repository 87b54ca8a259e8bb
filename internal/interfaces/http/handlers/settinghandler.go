package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/socialdash/internal/application/setting/dto"
	"github.com/orris-inc/socialdash/internal/domain/setting"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

// SettingHandler handles the profile, notification and API key settings.
type SettingHandler struct {
	settings settingService
	logger   logger.Interface
}

func NewSettingHandler(settings settingService, logger logger.Interface) *SettingHandler {
	return &SettingHandler{settings: settings, logger: logger}
}

// GetSettings handles GET /settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	utils.OKResponse(c, h.settings.GetUserSettings(c.Request.Context()))
}

// UpdateSettings handles PUT /settings
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateUserSettingsRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		return
	}

	result, err := h.settings.UpdateUserSettings(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.MessageResponse(c, "Settings saved successfully", result)
}

// SetNotification handles PUT /settings/notifications/:kind
func (h *SettingHandler) SetNotification(c *gin.Context) {
	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "enabled is required")
		return
	}

	kind := setting.NotificationKind(c.Param("kind"))
	result, err := h.settings.SetNotification(c.Request.Context(), kind, *req.Enabled)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetAPIKeys handles GET /settings/api-keys. Keys are masked unless
// ?reveal=true is given.
func (h *SettingHandler) GetAPIKeys(c *gin.Context) {
	reveal, _ := strconv.ParseBool(c.DefaultQuery("reveal", "false"))
	utils.OKResponse(c, h.settings.GetAPIKeys(c.Request.Context(), reveal))
}

// UpdateAPIKeys handles PUT /settings/api-keys
func (h *SettingHandler) UpdateAPIKeys(c *gin.Context) {
	var req dto.UpdateAPIKeysRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update api keys", "error", err)
		return
	}

	if err := h.settings.UpdateAPIKeys(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, h.settings.GetAPIKeys(c.Request.Context(), false))
}
