package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"cyberguard/internal/auth"
	"cyberguard/internal/model"
	"cyberguard/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, profile *model.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockUserRepository) UpsertRole(ctx context.Context, profile *model.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserProfile), args.Error(1)
}

// MockSubmissionRepository is a mock implementation of SubmissionRepository.
type MockSubmissionRepository[T repository.Record] struct {
	mock.Mock
}

func (m *MockSubmissionRepository[T]) Create(ctx context.Context, submission *T) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockSubmissionRepository[T]) ListByUser(ctx context.Context, userID string) ([]T, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockSubmissionRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockSubmissionRepository[T]) UpdateVerdict(ctx context.Context, id string, update repository.VerdictUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

// MockPasswordCheckRepository is a mock implementation of PasswordCheckRepository.
type MockPasswordCheckRepository struct {
	mock.Mock
}

func (m *MockPasswordCheckRepository) Create(ctx context.Context, check *model.PasswordCheck) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

// MockPhishingLogRepository is a mock implementation of PhishingLogRepository.
type MockPhishingLogRepository struct {
	mock.Mock
}

func (m *MockPhishingLogRepository) Create(ctx context.Context, log *model.PhishingLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// MockRevocationStore is a mock implementation of RevocationStoreInterface.
type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) RevokeUserTokens(ctx context.Context, uid string, at time.Time) error {
	args := m.Called(ctx, uid, at)
	return args.Error(0)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, claims *auth.Claims) (bool, error) {
	args := m.Called(ctx, claims)
	return args.Bool(0), args.Error(1)
}
