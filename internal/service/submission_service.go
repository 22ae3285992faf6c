package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/metrics"
	"cyberguard/internal/model"
	"cyberguard/internal/repository"
)

// SubmissionService manages the phishing and malware review queues.
type SubmissionService interface {
	SubmitPhishing(ctx context.Context, userID, url string) (string, error)
	SubmitMalware(ctx context.Context, userID string, file model.FileRef) (string, error)
	ListUserPhishing(ctx context.Context, userID string) ([]model.PhishingSubmission, error)
	ListUserMalware(ctx context.Context, userID string) ([]model.MalwareSubmission, error)
	ListAllPhishing(ctx context.Context) ([]model.PhishingSubmission, error)
	ListAllMalware(ctx context.Context) ([]model.MalwareSubmission, error)
	UpdatePhishingVerdict(ctx context.Context, id string, verdict model.Verdict, note, adminID string) error
	UpdateMalwareVerdict(ctx context.Context, id string, verdict model.Verdict, note, adminID string) error
}

type submissionService struct {
	phishing repository.PhishingSubmissionRepository
	malware  repository.MalwareSubmissionRepository
	metrics  *metrics.Recorder
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(
	phishing repository.PhishingSubmissionRepository,
	malware repository.MalwareSubmissionRepository,
	recorder *metrics.Recorder,
) SubmissionService {
	return &submissionService{phishing: phishing, malware: malware, metrics: recorder}
}

// SubmitPhishing queues url for review. Duplicate URLs are accepted.
func (s *submissionService) SubmitPhishing(ctx context.Context, userID, url string) (string, error) {
	if url == "" {
		return "", apperrors.ErrURLRequired
	}

	submission := &model.PhishingSubmission{
		Submission: model.Submission{UserID: userID},
		URL:        url,
	}
	if err := s.phishing.Create(ctx, submission); err != nil {
		return "", fmt.Errorf("create phishing submission: %w", err)
	}

	s.metrics.SubmissionCreated(string(model.KindPhishing))
	slog.InfoContext(ctx, "phishing submission queued", "submission_id", submission.ID, "user_id", userID)
	return submission.ID, nil
}

// SubmitMalware queues a file reference for review. One of name or hash is
// required; an empty one is stored as "unknown". Values are kept verbatim.
func (s *submissionService) SubmitMalware(ctx context.Context, userID string, file model.FileRef) (string, error) {
	name := file.FileName
	hash := file.FileHash
	if name == "" && hash == "" {
		return "", apperrors.ErrFileRequired
	}
	if name == "" {
		name = model.UnknownFileField
	}
	if hash == "" {
		hash = model.UnknownFileField
	}

	submission := &model.MalwareSubmission{
		Submission: model.Submission{UserID: userID},
		FileName:   name,
		FileHash:   hash,
	}
	if err := s.malware.Create(ctx, submission); err != nil {
		return "", fmt.Errorf("create malware submission: %w", err)
	}

	s.metrics.SubmissionCreated(string(model.KindMalware))
	slog.InfoContext(ctx, "malware submission queued", "submission_id", submission.ID, "user_id", userID)
	return submission.ID, nil
}

func (s *submissionService) ListUserPhishing(ctx context.Context, userID string) ([]model.PhishingSubmission, error) {
	return s.phishing.ListByUser(ctx, userID)
}

func (s *submissionService) ListUserMalware(ctx context.Context, userID string) ([]model.MalwareSubmission, error) {
	return s.malware.ListByUser(ctx, userID)
}

func (s *submissionService) ListAllPhishing(ctx context.Context) ([]model.PhishingSubmission, error) {
	return s.phishing.ListAll(ctx)
}

func (s *submissionService) ListAllMalware(ctx context.Context) ([]model.MalwareSubmission, error) {
	return s.malware.ListAll(ctx)
}

// UpdatePhishingVerdict closes a phishing submission as safe or phishing.
func (s *submissionService) UpdatePhishingVerdict(ctx context.Context, id string, verdict model.Verdict, note, adminID string) error {
	return updateVerdict(ctx, s, s.phishing, model.KindPhishing, apperrors.ErrInvalidPhishingVerdict, id, verdict, note, adminID)
}

// UpdateMalwareVerdict closes a malware submission as clean or malware.
func (s *submissionService) UpdateMalwareVerdict(ctx context.Context, id string, verdict model.Verdict, note, adminID string) error {
	return updateVerdict(ctx, s, s.malware, model.KindMalware, apperrors.ErrInvalidMalwareVerdict, id, verdict, note, adminID)
}

// updateVerdict applies a verdict without looking at the current status;
// concurrent reviews of the same submission resolve as last write wins.
func updateVerdict[T repository.Record](
	ctx context.Context,
	s *submissionService,
	repo repository.SubmissionRepository[T],
	kind model.SubmissionKind,
	invalid error,
	id string,
	verdict model.Verdict,
	note, adminID string,
) error {
	if id == "" || verdict == "" {
		return apperrors.ErrVerdictRequired
	}
	if !kind.AllowsVerdict(verdict) {
		return invalid
	}

	err := repo.UpdateVerdict(ctx, id, repository.VerdictUpdate{
		Verdict:    verdict,
		AdminNote:  note,
		ReviewedBy: adminID,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrSubmissionNotFound
	}
	if err != nil {
		return fmt.Errorf("update %s verdict: %w", kind, err)
	}

	s.metrics.VerdictRecorded(string(kind), string(verdict))
	slog.InfoContext(ctx, "verdict recorded", "kind", kind, "submission_id", id, "verdict", verdict, "admin_id", adminID)
	return nil
}
