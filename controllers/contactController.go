package controllers

import (
	"log/slog"
	"net/http"

	"newshub-backend/models"
	"newshub-backend/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	mailer services.Mailer
	logger *slog.Logger
}

func NewContactController(mailer services.Mailer, logger *slog.Logger) *ContactController {
	return &ContactController{mailer: mailer, logger: logger}
}

// POST /send-message
func (ct *ContactController) SendMessage(c *gin.Context) {
	var msg models.VolunteerMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	if err := ct.mailer.Send(msg); err != nil {
		ct.logger.Error("mail relay failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message sent"})
}
