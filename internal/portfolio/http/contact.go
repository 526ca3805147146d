package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emmzy1212/portfolio-backend/internal/portfolio/domain"
)

func (h *Handler) contact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": validationMessage(err)})
		return
	}

	m, err := h.store.CreateMessage(c.Request.Context(), domain.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}

	// Fire and forget: the notifier outcome never changes the response,
	// which is why this runs on its own context, not the request's.
	if h.notifier != nil && h.notifier.Enabled() {
		msg := *m
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := h.notifier.Send(ctx, msg); err != nil {
				log.Printf("telegram notification failed: %v", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}
