package handlers

import (
	"net/http"
	"time"

	"property-ledger/internal/errors"
	"property-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       HealthChecker
	sessions services.FilterSessionServiceInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker, sessions services.FilterSessionServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, sessions: sessions}
}

// HealthCheck reports API and database status
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,filter_sessions=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_002 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"time":            time.Now().UTC().Format(time.RFC3339),
		"filter_sessions": h.sessions.ActiveSessions(),
	})
}
