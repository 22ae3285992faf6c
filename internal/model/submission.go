package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionStatus is the review state of a submission.
type SubmissionStatus string

const (
	SubmissionStatusPending SubmissionStatus = "pending"
	SubmissionStatusChecked SubmissionStatus = "checked"
)

// Verdict is the reviewer's classification of a submission.
type Verdict string

const (
	VerdictNotChecked Verdict = "not_checked"
	VerdictSafe       Verdict = "safe"
	VerdictPhishing   Verdict = "phishing"
	VerdictClean      Verdict = "clean"
	VerdictMalware    Verdict = "malware"
)

// SubmissionKind distinguishes the two review queues.
type SubmissionKind string

const (
	KindPhishing SubmissionKind = "phishing"
	KindMalware  SubmissionKind = "malware"
)

// AllowsVerdict reports whether v is a final verdict for submissions of kind k.
func (k SubmissionKind) AllowsVerdict(v Verdict) bool {
	switch k {
	case KindPhishing:
		return v == VerdictSafe || v == VerdictPhishing
	case KindMalware:
		return v == VerdictClean || v == VerdictMalware
	default:
		return false
	}
}

// Submission holds the review lifecycle shared by every submission kind.
// ReviewedAt and ReviewedBy are set together with Status=checked.
type Submission struct {
	ID          string           `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      string           `json:"userId" gorm:"size:128;not null;index"`
	Status      SubmissionStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending';index"`
	Verdict     Verdict          `json:"verdict" gorm:"type:varchar(16);not null;default:'not_checked'"`
	AdminNote   string           `json:"adminNote" gorm:"type:text"`
	SubmittedAt time.Time        `json:"submittedAt" gorm:"type:datetime(3);not null;default:CURRENT_TIMESTAMP(3);index"`
	ReviewedAt  *time.Time       `json:"reviewedAt" gorm:"type:datetime(3)"`
	ReviewedBy  *string          `json:"reviewedBy" gorm:"size:128"`
}

// BeforeCreate assigns the identifier and the initial review state.
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = SubmissionStatusPending
	}
	if s.Verdict == "" {
		s.Verdict = VerdictNotChecked
	}
	return nil
}

// PhishingSubmission is a URL queued for manual phishing review.
type PhishingSubmission struct {
	Submission
	URL string `json:"url" gorm:"type:text;not null"`
}

// MalwareSubmission is a file identifier queued for manual malware review.
// Only the name and hash are recorded; no file content is stored.
type MalwareSubmission struct {
	Submission
	FileName string `json:"fileName" gorm:"size:255;not null"`
	FileHash string `json:"fileHash" gorm:"size:255;not null"`
}

// UnknownFileField fills a missing file name or hash.
const UnknownFileField = "unknown"

// FileRef identifies a file submitted for malware review.
type FileRef struct {
	FileName string
	FileHash string
}
