package services

import (
	"context"

	"github.com/gojobs/board/internal/apperrors"
	"github.com/gojobs/board/internal/logging"
	"github.com/gojobs/board/internal/models"
	"github.com/gojobs/board/internal/repositories"
)

type ApplicationService struct {
	apps repositories.ApplicationRepository
	jobs repositories.JobRepository
	log  logging.Logger
}

func NewApplicationService(apps repositories.ApplicationRepository, jobs repositories.JobRepository, log logging.Logger) *ApplicationService {
	return &ApplicationService{
		apps: apps,
		jobs: jobs,
		log:  log.With("service", "applications"),
	}
}

// Apply records the user's interest in a job. Idempotent: a repeat call
// returns the existing application and writes nothing. Parallel requests
// converge on a single row through the unique (user, job) index.
func (s *ApplicationService) Apply(ctx context.Context, accountID, jobID uint) (*models.JobApplication, error) {
	if accountID == 0 {
		return nil, apperrors.ErrUnauthorized
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	app := &models.JobApplication{UserID: accountID, JobID: jobID}
	if err := s.apps.CreateIfAbsent(ctx, app); err != nil {
		return nil, err
	}

	// Read back the canonical row: on conflict the insert wrote nothing and
	// the previously stored application is the result.
	return s.apps.Find(ctx, accountID, jobID)
}

// HasApplied reports whether the user already applied. Absence is an
// ordinary false, never an error; anonymous callers always get false.
func (s *ApplicationService) HasApplied(ctx context.Context, accountID, jobID uint) (bool, error) {
	if accountID == 0 {
		return false, nil
	}
	return s.apps.Exists(ctx, accountID, jobID)
}
