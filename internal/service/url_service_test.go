package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/metrics"
	"cyberguard/internal/model"
	"cyberguard/internal/scoring"
)

func TestURLService_CheckURL(t *testing.T) {
	t.Run("logs scored url", func(t *testing.T) {
		logs := new(MockPhishingLogRepository)
		logs.On("Create", mock.Anything, &model.PhishingLog{
			UserID:    "uid-1",
			URL:       "http://bank-login.com",
			RiskScore: 50,
			Result:    "PHISHING",
		}).Return(nil)

		svc := NewURLService(logs, nil)
		got, err := svc.CheckURL(context.Background(), "uid-1", "http://bank-login.com")

		require.NoError(t, err)
		assert.Equal(t, scoring.URLRiskAssessment{RiskScore: 50, Status: scoring.StatusPhishing}, got)
		logs.AssertExpectations(t)
	})

	t.Run("malformed url is phishing and not logged", func(t *testing.T) {
		logs := new(MockPhishingLogRepository)

		svc := NewURLService(logs, nil)
		got, err := svc.CheckURL(context.Background(), "uid-1", "not a url")

		require.NoError(t, err)
		assert.Equal(t, scoring.URLRiskAssessment{RiskScore: 100, Status: scoring.StatusPhishing}, got)
		logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty url", func(t *testing.T) {
		svc := NewURLService(new(MockPhishingLogRepository), nil)
		_, err := svc.CheckURL(context.Background(), "uid-1", "")
		assert.Equal(t, apperrors.ErrURLRequired, err)
	})
}

func TestURLService_AnalyzeURL(t *testing.T) {
	logs := new(MockPhishingLogRepository)
	recorder := metrics.New()

	svc := NewURLService(logs, recorder)
	got, err := svc.AnalyzeURL(context.Background(), "https://bit.ly/abc")

	require.NoError(t, err)
	assert.Equal(t, 35, got.RiskScore)
	assert.Contains(t, scrape(t, recorder), `cyberguard_url_checks_total{ruleset="detailed",status="SAFE"} 1`)
	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	_, err = svc.AnalyzeURL(context.Background(), "")
	assert.Equal(t, apperrors.ErrURLRequired, err)
}
