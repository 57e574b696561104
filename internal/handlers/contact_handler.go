package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gojobs/board/internal/dtos"
	"github.com/gojobs/board/internal/models"
)

type ContactService interface {
	Submit(ctx context.Context, req *dtos.ContactRequest) (*models.Contact, error)
}

type ContactHandler struct {
	Contacts ContactService
}

func NewContactHandler(contacts ContactService) *ContactHandler {
	return &ContactHandler{Contacts: contacts}
}

// Submit is POST /contact: captcha-gated contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dtos.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	contact, err := h.Contacts.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reference": contact.Reference})
}
