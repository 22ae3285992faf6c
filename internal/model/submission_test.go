package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionKind_AllowsVerdict(t *testing.T) {
	tests := []struct {
		kind    SubmissionKind
		verdict Verdict
		allowed bool
	}{
		{KindPhishing, VerdictSafe, true},
		{KindPhishing, VerdictPhishing, true},
		{KindPhishing, VerdictClean, false},
		{KindPhishing, VerdictNotChecked, false},
		{KindMalware, VerdictClean, true},
		{KindMalware, VerdictMalware, true},
		{KindMalware, VerdictSafe, false},
		{KindMalware, VerdictNotChecked, false},
		{SubmissionKind("other"), VerdictSafe, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+string(tt.verdict), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.kind.AllowsVerdict(tt.verdict))
		})
	}
}

func TestSubmission_BeforeCreate(t *testing.T) {
	s := &PhishingSubmission{URL: "https://example.com"}

	require.NoError(t, s.BeforeCreate(nil))

	assert.Len(t, s.ID, 36)
	assert.Equal(t, SubmissionStatusPending, s.Status)
	assert.Equal(t, VerdictNotChecked, s.Verdict)
	assert.Nil(t, s.ReviewedAt)
	assert.Nil(t, s.ReviewedBy)

	id := s.ID
	require.NoError(t, s.BeforeCreate(nil))
	assert.Equal(t, id, s.ID)
}

func TestPhishingSubmission_JSONIsFlat(t *testing.T) {
	s := PhishingSubmission{
		Submission: Submission{ID: "abc", UserID: "u1", Status: SubmissionStatusPending, Verdict: VerdictNotChecked},
		URL:        "https://example.com",
	}

	payload, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "abc", decoded["id"])
	assert.Equal(t, "u1", decoded["userId"])
	assert.Equal(t, "https://example.com", decoded["url"])
	assert.Equal(t, "pending", decoded["status"])
	assert.Nil(t, decoded["reviewedAt"])
	assert.Nil(t, decoded["reviewedBy"])
}

func TestUserProfile_IsAdmin(t *testing.T) {
	var missing *UserProfile
	assert.False(t, missing.IsAdmin())
	assert.False(t, (&UserProfile{Role: RoleUser}).IsAdmin())
	assert.True(t, (&UserProfile{Role: RoleAdmin}).IsAdmin())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
}
