package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gojobs/board/internal/auth"
)

type ApplicationHandler struct {
	Applications ApplicationService
}

func NewApplicationHandler(apps ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// Apply is POST /job/:id/apply (authenticated). Repeat calls return the same
// application.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	app, err := h.Applications.Apply(c.Request.Context(), auth.AccountID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
