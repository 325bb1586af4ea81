package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"investpro/internal/db"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports process and database status.
type HealthHandler struct {
	db  *gorm.DB
	env string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(gormDB *gorm.DB, env string) *HealthHandler {
	return &HealthHandler{db: gormDB, env: env}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status      string    `json:"status"`
	TS          time.Time `json:"ts"`
	Database    string    `json:"database"`
	Environment string    `json:"environment"`
}

// Health pings the database and reports overall status.
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	database := "connected"
	if err := db.Ping(ctx, h.db); err != nil {
		database = "disconnected"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "OK",
		TS:          time.Now().UTC(),
		Database:    database,
		Environment: h.env,
	})
}
