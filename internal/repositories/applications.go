package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gojobs/board/internal/apperrors"
	"github.com/gojobs/board/internal/models"
)

type ApplicationRepository interface {
	// CreateIfAbsent inserts the application unless one already exists for
	// the same (user, job) pair. Conflicts are silent: concurrent inserts
	// converge on one row via the unique index, without locking.
	CreateIfAbsent(ctx context.Context, app *models.JobApplication) error

	Find(ctx context.Context, userID, jobID uint) (*models.JobApplication, error)
	Exists(ctx context.Context, userID, jobID uint) (bool, error)
}

type gormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) CreateIfAbsent(ctx context.Context, app *models.JobApplication) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(app).Error
}

func (r *gormApplicationRepository) Find(ctx context.Context, userID, jobID uint) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *gormApplicationRepository) Exists(ctx context.Context, userID, jobID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
