package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cyberguard/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, profile *model.UserProfile) error
	FindByUID(ctx context.Context, uid string) (*model.UserProfile, error)
	UpsertRole(ctx context.Context, profile *model.UserProfile) error
	List(ctx context.Context) ([]model.UserProfile, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, profile *model.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertRole creates the profile or merges email and role into the existing row.
func (r *userRepository) UpsertRole(ctx context.Context, profile *model.UserProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "role", "updated_at"}),
	}).Create(profile).Error
}

func (r *userRepository) List(ctx context.Context) ([]model.UserProfile, error) {
	var profiles []model.UserProfile
	if err := r.db.WithContext(ctx).Order("created_at").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
