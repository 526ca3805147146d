package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	httpapi "github.com/emmzy1212/portfolio-backend/internal/api/http"
	"github.com/emmzy1212/portfolio-backend/internal/api/http/middleware"
	portfoliohttp "github.com/emmzy1212/portfolio-backend/internal/portfolio/http"
	"github.com/emmzy1212/portfolio-backend/internal/portfolio/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	UploadDir   string
	Store       *service.Store
	Durable     httpapi.Pinger // nil when running on memory storage only
	Files       portfoliohttp.FileSaver
	Notifier    portfoliohttp.Notifier
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(corsMiddleware(dep.CORSOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Durable)
	healthHandler.RegisterRoutes(r)

	r.Static("/uploads", dep.UploadDir)

	api := r.Group("/api")

	h := portfoliohttp.NewHandler(dep.Store, dep.Files, dep.Notifier)
	h.Register(api, middleware.RateLimit(rate.Every(2*time.Second), 5))

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
