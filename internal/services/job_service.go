package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/gojobs/board/internal/apperrors"
	"github.com/gojobs/board/internal/cache"
	"github.com/gojobs/board/internal/captcha"
	"github.com/gojobs/board/internal/dtos"
	"github.com/gojobs/board/internal/logging"
	"github.com/gojobs/board/internal/models"
	"github.com/gojobs/board/internal/repositories"
)

// publicPageSize matches the original board: five postings per page.
const publicPageSize = 5

// minSearchLength is the shortest search term that actually filters; anything
// shorter is treated as "no search".
const minSearchLength = 4

// JobPage is one page of the public listing.
type JobPage struct {
	Jobs       []models.Job `json:"jobs"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
}

type JobService struct {
	jobs     repositories.JobRepository
	verifier captcha.Verifier
	cache    *cache.Cache
	validate *validator.Validate
	log      logging.Logger
}

// NewJobService wires the job workflows. cache may be nil, in which case
// every listing request hits the database.
func NewJobService(jobs repositories.JobRepository, verifier captcha.Verifier, c *cache.Cache, log logging.Logger) *JobService {
	return &JobService{
		jobs:     jobs,
		verifier: verifier,
		cache:    c,
		validate: newValidator(),
		log:      log.With("service", "jobs"),
	}
}

// ListPublic returns one page of publicly visible jobs. Search terms shorter
// than minSearchLength are ignored; an invalid or out-of-range page number
// silently serves page 1.
func (s *JobService) ListPublic(ctx context.Context, search string, page int) (*JobPage, error) {
	search = strings.TrimSpace(search)
	if utf8.RuneCountInString(search) < minSearchLength {
		search = ""
	}

	total, err := s.jobs.CountPublic(ctx, search)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + publicPageSize - 1) / publicPageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 || page > totalPages {
		s.log.Info(ctx, "invalid page requested, serving page 1", "page", page, "total_pages", totalPages)
		page = 1
	}

	cacheable := search == "" && s.cache != nil
	if cacheable {
		var cached JobPage
		if s.cache.Get(ctx, cache.ListingKey(page), &cached) {
			return &cached, nil
		}
	}

	jobs, err := s.jobs.ListPublic(ctx, search, (page-1)*publicPageSize, publicPageSize)
	if err != nil {
		return nil, err
	}

	result := &JobPage{Jobs: jobs, Page: page, TotalPages: totalPages}
	if cacheable {
		if err := s.cache.Set(ctx, cache.ListingKey(page), result); err != nil {
			s.log.Warn(ctx, "caching listing page failed", "page", page, "error", err)
		}
	}
	return result, nil
}

// ListPremium returns every premium job, unpaginated.
func (s *JobService) ListPremium(ctx context.Context) ([]models.Job, error) {
	return s.jobs.ListPremium(ctx)
}

// WeeklySummary returns per-day posting counts for the trailing seven days.
func (s *JobService) WeeklySummary(ctx context.Context) ([]models.DailyJobCount, error) {
	since := time.Now().AddDate(0, 0, -7)
	return s.jobs.CountByDaySince(ctx, since)
}

// Get returns a single job by ID.
func (s *JobService) Get(ctx context.Context, id uint) (*models.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// Create verifies the captcha token, validates the submission and persists a
// new, not-yet-public job. A rejected captcha writes nothing.
func (s *JobService) Create(ctx context.Context, req *dtos.JobSubmissionRequest) (*models.Job, error) {
	if !s.verifier.Verify(ctx, req.CaptchaToken) {
		return nil, apperrors.ErrVerification
	}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Workplace:   req.Workplace,
		Description: req.Description,
		SalaryRange: req.SalaryRange,
		ApplyEmail:  req.ApplyEmail,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "job submitted", "job_id", job.ID, "company", job.Company)
	return job, nil
}
