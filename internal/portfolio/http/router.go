package http

import "github.com/gin-gonic/gin"

// Register attaches the portfolio routes to the given router group.
// contactMW runs before the contact handler only (rate limiting).
func (h *Handler) Register(rg *gin.RouterGroup, contactMW ...gin.HandlerFunc) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
	rg.POST("/projects", h.create)
	rg.PUT("/projects/:id", h.update)
	rg.DELETE("/projects/:id", h.delete)

	handlers := append(append([]gin.HandlerFunc{}, contactMW...), h.contact)
	rg.POST("/contact", handlers...)
}
