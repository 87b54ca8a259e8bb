package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/socialdash/internal/application/oauth"
	"github.com/orris-inc/socialdash/internal/domain/platform"
	"github.com/orris-inc/socialdash/internal/shared/errors"
	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/mapper"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

// OAuthHandler serves the platform catalog and the simulated OAuth flow.
type OAuthHandler struct {
	oauth     oauthService
	platforms platformCatalog
	logger    logger.Interface
}

func NewOAuthHandler(svc oauthService, platforms platformCatalog, logger logger.Interface) *OAuthHandler {
	return &OAuthHandler{
		oauth:     svc,
		platforms: platforms,
		logger:    logger,
	}
}

// CallbackRequest carries what the provider appends to the redirect.
type CallbackRequest struct {
	Code  string `json:"code" form:"code"`
	State string `json:"state" form:"state"`
}

type scopeResponse struct {
	Scope       string `json:"scope"`
	Description string `json:"description"`
}

type platformResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"display_name"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	AuthURL     string          `json:"auth_url"`
	Scopes      []scopeResponse `json:"scopes"`
}

func toPlatformResponse(p platform.Platform) platformResponse {
	scopes := make([]scopeResponse, 0, len(p.Scopes))
	for _, s := range p.Scopes {
		scopes = append(scopes, scopeResponse{Scope: s, Description: p.DescribeScope(s)})
	}
	return platformResponse{
		ID:          p.ID,
		Name:        p.Name,
		DisplayName: p.DisplayName,
		Icon:        p.Icon,
		Color:       p.Color,
		AuthURL:     p.AuthURL,
		Scopes:      scopes,
	}
}

// ListPlatforms handles GET /platforms
func (h *OAuthHandler) ListPlatforms(c *gin.Context) {
	utils.OKResponse(c, mapper.MapSlice(h.platforms.All(), toPlatformResponse))
}

// GetPlatform handles GET /platforms/:platform
func (h *OAuthHandler) GetPlatform(c *gin.Context) {
	p, ok := h.platforms.ByID(c.Param("platform"))
	if !ok {
		respondError(c, platform.ErrPlatformNotFound)
		return
	}
	utils.OKResponse(c, toPlatformResponse(p))
}

// Initiate handles POST /oauth/:platform/initiate
func (h *OAuthHandler) Initiate(c *gin.Context) {
	platformID := c.Param("platform")

	result, err := h.oauth.InitiateOAuth(c.Request.Context(), platformID)
	if err != nil {
		h.logger.Warnw("failed to initiate oauth flow", "platform", platformID, "error", err)
		respondError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Callback handles POST /oauth/:platform/callback with a JSON body.
func (h *OAuthHandler) Callback(c *gin.Context) {
	var req CallbackRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for oauth callback", "error", err)
		return
	}

	h.completeFlow(c, c.Param("platform"), req)
}

// Redirect handles GET /auth/callback, the redirect URI advertised in
// authorization URLs. The platform comes from the query or, failing that,
// from the pending initiation.
func (h *OAuthHandler) Redirect(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	platformID := c.Query("platform")
	if platformID == "" {
		pending := h.oauth.PendingFlow(c.Request.Context())
		platformID = pending.Platform
	}
	if platformID == "" {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(oauth.MsgInvalidAuthState, "no pending oauth flow"))
		return
	}

	h.completeFlow(c, platformID, req)
}

func (h *OAuthHandler) completeFlow(c *gin.Context, platformID string, req CallbackRequest) {
	result, err := h.oauth.SimulateOAuthCallback(c.Request.Context(), platformID, req.Code, req.State)
	if err != nil {
		h.logger.Errorw("oauth callback failed", "platform", platformID, "error", err)
		respondError(c, err)
		return
	}

	// Structured failures are part of the flow, not transport errors.
	utils.OKResponse(c, result)
}

// Pending handles GET /oauth/pending
func (h *OAuthHandler) Pending(c *gin.Context) {
	utils.OKResponse(c, h.oauth.PendingFlow(c.Request.Context()))
}

// ListAccounts handles GET /accounts
func (h *OAuthHandler) ListAccounts(c *gin.Context) {
	utils.OKResponse(c, h.oauth.Accounts(c.Request.Context()))
}

// GetAccount handles GET /accounts/:platform
func (h *OAuthHandler) GetAccount(c *gin.Context) {
	platformID := c.Param("platform")
	acct, ok := h.oauth.Account(c.Request.Context(), platformID)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("Account not connected", platformID))
		return
	}
	utils.OKResponse(c, acct)
}

// Disconnect handles DELETE /accounts/:platform
func (h *OAuthHandler) Disconnect(c *gin.Context) {
	platformID := c.Param("platform")

	removed, err := h.oauth.DisconnectAccount(c.Request.Context(), platformID)
	if err != nil {
		h.logger.Errorw("failed to disconnect account", "platform", platformID, "error", err)
		respondError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"platform": platformID, "disconnected": removed})
}

// Refresh handles POST /accounts/:platform/refresh
func (h *OAuthHandler) Refresh(c *gin.Context) {
	platformID := c.Param("platform")

	refreshed, err := h.oauth.RefreshToken(c.Request.Context(), platformID)
	if err != nil {
		h.logger.Errorw("failed to refresh account tokens", "platform", platformID, "error", err)
		respondError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"platform": platformID, "refreshed": refreshed})
}
