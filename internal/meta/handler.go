package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/uknowme/member-server/internal/config"
	"github.com/uknowme/member-server/internal/shared/logger"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

// Pinger reports database reachability. *database.DB satisfies it.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Handler serves meta endpoints (health check)
type Handler struct {
	cfg *config.Config
	db  Pinger
}

type ServiceInfo struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Port        int    `json:"port,omitempty"`
}

type DatabaseCheck struct {
	Status    string `json:"status"`
	Driver    string `json:"driver"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string      `json:"status"`
	Service ServiceInfo `json:"service"`
	Checks  struct {
		Database DatabaseCheck `json:"database"`
	} `json:"checks"`
}

func NewHandler(cfg *config.Config, db Pinger) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health checks service and database health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	var response HealthResponse
	response.Service = ServiceInfo{
		Name:        h.cfg.App.Name,
		Environment: h.cfg.App.Env,
	}
	response.Checks.Database.Driver = h.cfg.Database.Driver

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		logger.FromContext(ctx).Error("Health check 실패", "error", err)

		response.Status = "unhealthy"
		response.Checks.Database.Status = "down"
		response.Checks.Database.Error = err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	response.Status = "healthy"
	response.Service.Port = h.cfg.App.Port
	response.Checks.Database.Status = "up"
	response.Checks.Database.LatencyMS = time.Since(start).Milliseconds()
	c.JSON(http.StatusOK, response)
}
