package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the account record owned by the identity layer. The rest of the
// service only ever sees its ID.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// Profile holds supplementary account metadata, one row per user.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `json:"-"`

	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Cellphone string `json:"cellphone"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Workplace   string `json:"workplace"`
	Description string `gorm:"type:text" json:"description"`
	SalaryRange string `json:"salary_range"`
	ApplyEmail  string `gorm:"not null" json:"apply_email"`

	// Visibility is evaluated at query time; a freshly submitted job stays
	// unlisted until it is flagged public.
	Public  bool `gorm:"index;default:false" json:"public"`
	Premium bool `gorm:"index;default:false" json:"premium"`
}

// JobApplication records a user's interest in a job. The composite unique
// index is what makes Apply idempotent under concurrent requests.
type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	JobID  uint `gorm:"not null;uniqueIndex:idx_applications_user_job" json:"job_id"`

	User User `json:"-"`
	Job  Job  `json:"-"`
}

// Contact is an inbound contact-form message. Immutable once created; the
// table is managed by the SQL migration, where every string column defaults
// to the empty string.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Reference string `gorm:"size:36;not null;default:''" json:"reference"`
	Name      string `gorm:"size:100;not null;default:''" json:"name"`
	Subject   string `gorm:"size:100;not null;default:''" json:"subject"`
	Email     string `gorm:"size:254;not null;default:''" json:"email"`
	Message   string `gorm:"type:text;not null;default:''" json:"message"`
}

// DailyJobCount is one row of the weekly posting summary.
type DailyJobCount struct {
	Day   time.Time `json:"day"`
	Total int64     `json:"total"`
}
