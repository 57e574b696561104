package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gojobs/board/internal/apperrors"
	"github.com/gojobs/board/internal/logging"
	"github.com/gojobs/board/internal/models"
)

func newApplicationService(apps *fakeApplicationRepo, jobs *fakeJobRepo) *ApplicationService {
	return NewApplicationService(apps, jobs, logging.NewDefault())
}

func seedJob(t *testing.T, repo *fakeJobRepo) uint {
	t.Helper()
	job := &models.Job{
		Title: "Backend Engineer", Company: "Acme", Description: "Go services",
		ApplyEmail: "jobs@acme.test", Public: true, CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), job))
	return job.ID
}

func TestApply_RequiresAuthentication(t *testing.T) {
	s := newApplicationService(newFakeApplicationRepo(), &fakeJobRepo{})

	_, err := s.Apply(context.Background(), 0, 1)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestApply_UnknownJob(t *testing.T) {
	s := newApplicationService(newFakeApplicationRepo(), &fakeJobRepo{})

	_, err := s.Apply(context.Background(), 7, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApply_Idempotent(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := &fakeJobRepo{}
	jobID := seedJob(t, jobs)
	s := newApplicationService(apps, jobs)

	first, err := s.Apply(context.Background(), 7, jobID)
	require.NoError(t, err)
	second, err := s.Apply(context.Background(), 7, jobID)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeat apply must return the same application")
	assert.Len(t, apps.apps, 1, "repeat apply must not create a second row")
}

func TestHasApplied(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := &fakeJobRepo{}
	jobID := seedJob(t, jobs)
	s := newApplicationService(apps, jobs)

	// Absence is a plain false, not an error.
	applied, err := s.HasApplied(context.Background(), 7, jobID)
	require.NoError(t, err)
	assert.False(t, applied)

	// Anonymous callers always get false.
	applied, err = s.HasApplied(context.Background(), 0, jobID)
	require.NoError(t, err)
	assert.False(t, applied)

	_, err = s.Apply(context.Background(), 7, jobID)
	require.NoError(t, err)

	applied, err = s.HasApplied(context.Background(), 7, jobID)
	require.NoError(t, err)
	assert.True(t, applied)
}

// End-to-end over the workflow: create a public job, list it, apply, check
// the flag, re-apply and still hold exactly one application.
func TestApplicationFlow_EndToEnd(t *testing.T) {
	jobs := &fakeJobRepo{}
	apps := newFakeApplicationRepo()
	jobService := newJobService(jobs, &fakeVerifier{accept: true})
	appService := newApplicationService(apps, jobs)

	job := &models.Job{
		Title: "Backend Engineer", Company: "Acme", Description: "Go services",
		ApplyEmail: "jobs@acme.test", Public: true, CreatedAt: time.Now(),
	}
	require.NoError(t, jobs.Create(context.Background(), job))

	listing, err := jobService.ListPublic(context.Background(), "", 1)
	require.NoError(t, err)
	require.Len(t, listing.Jobs, 1)
	assert.Equal(t, "Backend Engineer", listing.Jobs[0].Title)

	_, err = appService.Apply(context.Background(), 1, job.ID)
	require.NoError(t, err)

	applied, err := appService.HasApplied(context.Background(), 1, job.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	_, err = appService.Apply(context.Background(), 1, job.ID)
	require.NoError(t, err)
	assert.Len(t, apps.apps, 1)
}
