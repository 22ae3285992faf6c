package repository

import (
	"context"

	"gorm.io/gorm"

	"cyberguard/internal/model"
)

// Record is a persisted submission variant.
type Record interface {
	model.PhishingSubmission | model.MalwareSubmission
}

// VerdictUpdate holds the fields written when a reviewer closes a submission.
type VerdictUpdate struct {
	Verdict    model.Verdict
	AdminNote  string
	ReviewedBy string
}

// SubmissionRepository defines submission persistence operations.
type SubmissionRepository[T Record] interface {
	Create(ctx context.Context, submission *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	ListByUser(ctx context.Context, userID string) ([]T, error)
	ListAll(ctx context.Context) ([]T, error)
	UpdateVerdict(ctx context.Context, id string, update VerdictUpdate) error
}

// PhishingSubmissionRepository persists phishing submissions.
type PhishingSubmissionRepository = SubmissionRepository[model.PhishingSubmission]

// MalwareSubmissionRepository persists malware submissions.
type MalwareSubmissionRepository = SubmissionRepository[model.MalwareSubmission]

type submissionRepository[T Record] struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a GORM-backed submission repository.
func NewSubmissionRepository[T Record](db *gorm.DB) SubmissionRepository[T] {
	return &submissionRepository[T]{db: db}
}

// NewPhishingSubmissionRepository creates the phishing submission repository.
func NewPhishingSubmissionRepository(db *gorm.DB) PhishingSubmissionRepository {
	return NewSubmissionRepository[model.PhishingSubmission](db)
}

// NewMalwareSubmissionRepository creates the malware submission repository.
func NewMalwareSubmissionRepository(db *gorm.DB) MalwareSubmissionRepository {
	return NewSubmissionRepository[model.MalwareSubmission](db)
}

// Create inserts a submission; submitted_at is filled by the database.
func (r *submissionRepository[T]) Create(ctx context.Context, submission *T) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// FindByID finds a submission by ID.
func (r *submissionRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var submission T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListByUser lists a user's submissions, most recent first.
func (r *submissionRepository[T]) ListByUser(ctx context.Context, userID string) ([]T, error) {
	submissions := []T{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// ListAll lists every submission, most recent first.
func (r *submissionRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	submissions := []T{}
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// UpdateVerdict closes a submission in a single statement regardless of its
// current status. reviewed_at is assigned by the database clock.
func (r *submissionRepository[T]) UpdateVerdict(ctx context.Context, id string, update VerdictUpdate) error {
	result := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      model.SubmissionStatusChecked,
			"verdict":     update.Verdict,
			"admin_note":  update.AdminNote,
			"reviewed_at": gorm.Expr("CURRENT_TIMESTAMP(3)"),
			"reviewed_by": update.ReviewedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero affected rows when nothing changed; tell that apart from a missing row.
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
