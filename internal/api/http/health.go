package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports reachability of the durable backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Storage   string    `json:"storage"`
}

type HealthHandler struct {
	serviceName string
	version     string
	durable     Pinger // nil when running on memory storage only
}

func NewHealthHandler(serviceName, version string, durable Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		durable:     durable,
	}
}

// HealthCheck always reports healthy: the process serves from memory
// storage even when the durable backend is down, so only the storage
// field varies.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storage := "memory"
	if h.durable != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.durable.Ping(pingCtx); err != nil {
			storage = "mongodb-down"
		} else {
			storage = "mongodb"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Storage:   storage,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
