package repository

import (
	"context"

	"gorm.io/gorm"

	"cyberguard/internal/model"
)

// PasswordCheckRepository defines password check audit persistence.
type PasswordCheckRepository interface {
	Create(ctx context.Context, check *model.PasswordCheck) error
}

type passwordCheckRepository struct {
	db *gorm.DB
}

// NewPasswordCheckRepository creates a new password check repository.
func NewPasswordCheckRepository(db *gorm.DB) PasswordCheckRepository {
	return &passwordCheckRepository{db: db}
}

// Create stores a password check audit entry.
func (r *passwordCheckRepository) Create(ctx context.Context, check *model.PasswordCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

// PhishingLogRepository defines legacy phishing log persistence.
type PhishingLogRepository interface {
	Create(ctx context.Context, log *model.PhishingLog) error
}

type phishingLogRepository struct {
	db *gorm.DB
}

// NewPhishingLogRepository creates a new phishing log repository.
func NewPhishingLogRepository(db *gorm.DB) PhishingLogRepository {
	return &phishingLogRepository{db: db}
}

// Create stores a phishing log entry.
func (r *phishingLogRepository) Create(ctx context.Context, log *model.PhishingLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
