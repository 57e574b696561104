package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/gojobs/board/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
}

type gormContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

func (r *gormContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
