package service

import (
	"context"
	"fmt"

	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/metrics"
	"cyberguard/internal/model"
	"cyberguard/internal/repository"
	"cyberguard/internal/scoring"
)

// PasswordService scores passwords and records that a check happened.
type PasswordService interface {
	CheckStrength(ctx context.Context, userID, password string) (scoring.StrengthResult, error)
}

type passwordService struct {
	checks  repository.PasswordCheckRepository
	metrics *metrics.Recorder
}

// NewPasswordService creates a new password service.
func NewPasswordService(checks repository.PasswordCheckRepository, recorder *metrics.Recorder) PasswordService {
	return &passwordService{checks: checks, metrics: recorder}
}

// CheckStrength scores password and writes an audit row with the outcome only.
func (s *passwordService) CheckStrength(ctx context.Context, userID, password string) (scoring.StrengthResult, error) {
	if password == "" {
		return scoring.StrengthResult{}, apperrors.ErrPasswordRequired
	}

	result := scoring.CalculatePasswordStrength(password)

	check := &model.PasswordCheck{
		UserID:   userID,
		Strength: string(result.Strength),
		Score:    result.Score,
	}
	if err := s.checks.Create(ctx, check); err != nil {
		return scoring.StrengthResult{}, fmt.Errorf("record password check: %w", err)
	}

	s.metrics.PasswordChecked(string(result.Strength))
	return result, nil
}
