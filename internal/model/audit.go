package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordCheck records that a user ran a password strength check.
// The password itself is never stored.
type PasswordCheck struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"userId" gorm:"size:128;not null;index"`
	Strength  string    `json:"strength" gorm:"type:varchar(16);not null"`
	Score     int       `json:"score" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"type:datetime(3);not null;default:CURRENT_TIMESTAMP(3);index"`
}

// BeforeCreate sets the identifier before creating the record.
func (pc *PasswordCheck) BeforeCreate(tx *gorm.DB) error {
	if pc.ID == "" {
		pc.ID = uuid.NewString()
	}
	return nil
}

// PhishingLog records a result of the legacy direct URL check.
type PhishingLog struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"userId" gorm:"size:128;not null;index"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	RiskScore int       `json:"riskScore" gorm:"not null"`
	Result    string    `json:"result" gorm:"type:varchar(16);not null;index"`
	Timestamp time.Time `json:"timestamp" gorm:"type:datetime(3);not null;default:CURRENT_TIMESTAMP(3);index"`
}

// BeforeCreate sets the identifier before creating the record.
func (pl *PhishingLog) BeforeCreate(tx *gorm.DB) error {
	if pl.ID == "" {
		pl.ID = uuid.NewString()
	}
	return nil
}
