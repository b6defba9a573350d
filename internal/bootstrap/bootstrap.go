package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/uknowme/member-server/internal/config"
	sharedError "github.com/uknowme/member-server/internal/shared/error"
	"github.com/uknowme/member-server/internal/shared/metrics"
	"github.com/uknowme/member-server/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Bootstrap builds the gin engine and its global middleware chain
type Bootstrap struct {
	cfg     *config.Config
	metrics *metrics.Metrics
}

// NewBootstrap creates a new bootstrap instance. m may be nil.
func NewBootstrap(cfg *config.Config, m *metrics.Metrics) *Bootstrap {
	return &Bootstrap{
		cfg:     cfg,
		metrics: m,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Metrics(b.metrics))
	engine.Use(middleware.CORS(b.cfg.CORS))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout)) // 30 second global timeout
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler logs the panic value and answers with the common 500 body.
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"panic", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
