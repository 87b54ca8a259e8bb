package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/socialdash/internal/shared/logger"
	"github.com/orris-inc/socialdash/internal/shared/utils"
)

// DashboardHandler serves the overview stats, health and storage maintenance.
type DashboardHandler struct {
	stats  statsService
	store  storeMaintainer
	sweeps sweepReporter
	logger logger.Interface
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(stats statsService, store storeMaintainer, sweeps sweepReporter, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		stats:  stats,
		store:  store,
		sweeps: sweeps,
		logger: logger,
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	utils.OKResponse(c, h.stats.Stats(c.Request.Context()))
}

// HealthCheck handles GET /health
func (h *DashboardHandler) HealthCheck(c *gin.Context) {
	utils.OKResponse(c, gin.H{
		"status":     "ok",
		"last_sweep": h.sweeps.LastSweep(),
	})
}

// Sweep handles POST /storage/sweep
func (h *DashboardHandler) Sweep(c *gin.Context) {
	removed, err := h.store.Sweep(c.Request.Context())
	if err != nil {
		h.logger.Errorw("storage sweep failed", "error", err)
		respondError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"removed": removed})
}

// ClearAll handles DELETE /storage
func (h *DashboardHandler) ClearAll(c *gin.Context) {
	if err := h.store.ClearAll(c.Request.Context()); err != nil {
		h.logger.Errorw("failed to clear storage", "error", err)
		respondError(c, err)
		return
	}
	h.logger.Warnw("all stored data cleared")
	utils.MessageResponse(c, "All data cleared", nil)
}
