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

const (
	rulesetCanonical = "canonical"
	rulesetDetailed  = "detailed"
)

// URLService scores URLs directly without queueing them for review.
type URLService interface {
	CheckURL(ctx context.Context, userID, url string) (scoring.URLRiskAssessment, error)
	AnalyzeURL(ctx context.Context, url string) (scoring.DetailedAnalysis, error)
}

type urlService struct {
	logs    repository.PhishingLogRepository
	metrics *metrics.Recorder
}

// NewURLService creates a new URL scoring service.
func NewURLService(logs repository.PhishingLogRepository, recorder *metrics.Recorder) URLService {
	return &urlService{logs: logs, metrics: recorder}
}

// CheckURL scores url with the canonical rule set and logs the result.
// Malformed URLs are reported as phishing and not logged.
func (s *urlService) CheckURL(ctx context.Context, userID, url string) (scoring.URLRiskAssessment, error) {
	if url == "" {
		return scoring.URLRiskAssessment{}, apperrors.ErrURLRequired
	}

	assessment := scoring.CalculateURLRisk(url)
	s.metrics.URLChecked(rulesetCanonical, string(assessment.Status))
	if !scoring.ValidURLShape(url) {
		return assessment, nil
	}

	entry := &model.PhishingLog{
		UserID:    userID,
		URL:       url,
		RiskScore: assessment.RiskScore,
		Result:    string(assessment.Status),
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return scoring.URLRiskAssessment{}, fmt.Errorf("record phishing log: %w", err)
	}
	return assessment, nil
}

// AnalyzeURL runs the detailed rule set. Nothing is stored.
func (s *urlService) AnalyzeURL(ctx context.Context, url string) (scoring.DetailedAnalysis, error) {
	if url == "" {
		return scoring.DetailedAnalysis{}, apperrors.ErrURLRequired
	}
	analysis := scoring.AnalyzeURLDetailed(url)
	s.metrics.URLChecked(rulesetDetailed, string(analysis.Status))
	return analysis, nil
}
