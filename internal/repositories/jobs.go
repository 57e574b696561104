// Package repositories defines one repository interface per entity plus its
// gorm-backed implementation, keeping the business rules in the services
// independent of the storage technology.
package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gojobs/board/internal/apperrors"
	"github.com/gojobs/board/internal/models"
)

// publicJobs is the query-time visibility predicate for anonymous listings.
func publicJobs(db *gorm.DB) *gorm.DB {
	return db.Where("public = ?", true)
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)

	// CountPublic and ListPublic share the same filter: an empty search
	// means no filter, otherwise a case-insensitive substring match on
	// title or description.
	CountPublic(ctx context.Context, search string) (int64, error)
	ListPublic(ctx context.Context, search string, offset, limit int) ([]models.Job, error)

	ListPremium(ctx context.Context) ([]models.Job, error)
	CountByDaySince(ctx context.Context, since time.Time) ([]models.DailyJobCount, error)
}

type gormJobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &gormJobRepository{db: db}
}

func (r *gormJobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *gormJobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func searchFilter(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	pattern := "%" + search + "%"
	return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}

func (r *gormJobRepository) CountPublic(ctx context.Context, search string) (int64, error) {
	var total int64
	q := searchFilter(publicJobs(r.db.WithContext(ctx).Model(&models.Job{})), search)
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *gormJobRepository) ListPublic(ctx context.Context, search string, offset, limit int) ([]models.Job, error) {
	var jobs []models.Job
	q := searchFilter(publicJobs(r.db.WithContext(ctx)), search)
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (r *gormJobRepository) ListPremium(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("premium = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *gormJobRepository) CountByDaySince(ctx context.Context, since time.Time) ([]models.DailyJobCount, error) {
	var out []models.DailyJobCount
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("DATE(created_at) AS day, COUNT(*) AS total").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day DESC").
		Scan(&out).Error
	return out, err
}
