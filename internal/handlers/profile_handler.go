package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gojobs/board/internal/auth"
	"github.com/gojobs/board/internal/dtos"
	"github.com/gojobs/board/internal/models"
)

type ProfileService interface {
	Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dtos.LoginRequest) (string, *models.User, error)
	UpdateProfile(ctx context.Context, accountID uint, req *dtos.ProfileUpdateRequest) (*models.Profile, error)
	ChangePassword(ctx context.Context, accountID uint, req *dtos.ChangePasswordRequest) error
}

type ProfileHandler struct {
	Profiles ProfileService
}

func NewProfileHandler(profiles ProfileService) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

// Register is POST /signup: account plus profile in one step.
func (h *ProfileHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	user, err := h.Profiles.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login is POST /login: exchanges credentials for a session token.
func (h *ProfileHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	token, user, err := h.Profiles.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// UpdateProfile is PUT /me/profile (authenticated); only fields present in
// the payload are overwritten.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	profile, err := h.Profiles.UpdateProfile(c.Request.Context(), auth.AccountID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ChangePassword is PUT /me/password (authenticated).
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req dtos.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if err := h.Profiles.ChangePassword(c.Request.Context(), auth.AccountID(c), &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
