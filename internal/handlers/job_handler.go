package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gojobs/board/internal/auth"
	"github.com/gojobs/board/internal/dtos"
	"github.com/gojobs/board/internal/models"
	"github.com/gojobs/board/internal/services"
)

// JobService is the slice of the jobs workflow the HTTP layer needs.
type JobService interface {
	ListPublic(ctx context.Context, search string, page int) (*services.JobPage, error)
	ListPremium(ctx context.Context) ([]models.Job, error)
	WeeklySummary(ctx context.Context) ([]models.DailyJobCount, error)
	Get(ctx context.Context, id uint) (*models.Job, error)
	Create(ctx context.Context, req *dtos.JobSubmissionRequest) (*models.Job, error)
}

// ApplicationService drives the applied flag on the job detail page and the
// apply endpoint.
type ApplicationService interface {
	Apply(ctx context.Context, accountID, jobID uint) (*models.JobApplication, error)
	HasApplied(ctx context.Context, accountID, jobID uint) (bool, error)
}

type JobHandler struct {
	Jobs         JobService
	Applications ApplicationService
}

func NewJobHandler(jobs JobService, apps ApplicationService) *JobHandler {
	return &JobHandler{Jobs: jobs, Applications: apps}
}

// List is GET /jobs?search=&page=. Non-numeric page values fall through to
// the service's page-1 clamp.
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	result, err := h.Jobs.ListPublic(c.Request.Context(), c.Query("search"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Premium is GET /premium: every premium job, unpaginated.
func (h *JobHandler) Premium(c *gin.Context) {
	jobs, err := h.Jobs.ListPremium(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Summary is GET /summary: posting counts for the trailing week.
func (h *JobHandler) Summary(c *gin.Context) {
	summary, err := h.Jobs.WeeklySummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Detail is GET /job/:id. When the request carries a valid session the
// response includes whether this user already applied.
func (h *JobHandler) Detail(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := h.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	applied, err := h.Applications.HasApplied(c.Request.Context(), auth.AccountID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job, "applied": applied})
}

// Create is POST /jobs: captcha-gated job submission.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	job, err := h.Jobs.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
