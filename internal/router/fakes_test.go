package router

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cyberguard/internal/auth"
	"cyberguard/internal/model"
	"cyberguard/internal/repository"
)

// memUsers is an in-memory UserRepository.
type memUsers struct {
	mu   sync.Mutex
	rows map[string]model.UserProfile
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[string]model.UserProfile{}}
}

func (m *memUsers) Create(ctx context.Context, profile *model.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[profile.UID]; ok {
		return gorm.ErrDuplicatedKey
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	m.rows[profile.UID] = *profile
	return nil
}

func (m *memUsers) FindByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.rows[uid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (m *memUsers) UpsertRole(ctx context.Context, profile *model.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.rows[profile.UID]
	if !ok {
		existing = model.UserProfile{UID: profile.UID, CreatedAt: time.Now()}
	}
	existing.Email = profile.Email
	existing.Role = profile.Role
	existing.UpdatedAt = time.Now()
	m.rows[profile.UID] = existing
	return nil
}

func (m *memUsers) List(ctx context.Context) ([]model.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profiles := make([]model.UserProfile, 0, len(m.rows))
	for _, p := range m.rows {
		profiles = append(profiles, p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].UID < profiles[j].UID })
	return profiles, nil
}

func baseOf(v any) *model.Submission {
	switch s := v.(type) {
	case *model.PhishingSubmission:
		return &s.Submission
	case *model.MalwareSubmission:
		return &s.Submission
	}
	return nil
}

// memSubmissions is an in-memory SubmissionRepository that assigns
// timestamps the way the database does.
type memSubmissions[T repository.Record] struct {
	mu    sync.Mutex
	rows  []*T
	clock time.Time
}

func newMemSubmissions[T repository.Record]() *memSubmissions[T] {
	return &memSubmissions[T]{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memSubmissions[T]) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

func (m *memSubmissions[T]) Create(ctx context.Context, submission *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	base := baseOf(submission)
	base.ID = uuid.NewString()
	base.Status = model.SubmissionStatusPending
	base.Verdict = model.VerdictNotChecked
	base.SubmittedAt = m.tick()

	row := *submission
	m.rows = append(m.rows, &row)
	return nil
}

func (m *memSubmissions[T]) FindByID(ctx context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if baseOf(row).ID == id {
			found := *row
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memSubmissions[T]) ListByUser(ctx context.Context, userID string) ([]T, error) {
	return m.list(func(s *model.Submission) bool { return s.UserID == userID }), nil
}

func (m *memSubmissions[T]) ListAll(ctx context.Context) ([]T, error) {
	return m.list(func(*model.Submission) bool { return true }), nil
}

func (m *memSubmissions[T]) list(keep func(*model.Submission) bool) []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []T{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if keep(baseOf(m.rows[i])) {
			out = append(out, *m.rows[i])
		}
	}
	return out
}

func (m *memSubmissions[T]) UpdateVerdict(ctx context.Context, id string, update repository.VerdictUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		base := baseOf(row)
		if base.ID != id {
			continue
		}
		reviewedAt := m.tick()
		reviewedBy := update.ReviewedBy
		base.Status = model.SubmissionStatusChecked
		base.Verdict = update.Verdict
		base.AdminNote = update.AdminNote
		base.ReviewedAt = &reviewedAt
		base.ReviewedBy = &reviewedBy
		return nil
	}
	return gorm.ErrRecordNotFound
}

type memPasswordChecks struct {
	mu   sync.Mutex
	rows []model.PasswordCheck
}

func (m *memPasswordChecks) Create(ctx context.Context, check *model.PasswordCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *check)
	return nil
}

type memPhishingLogs struct {
	mu   sync.Mutex
	rows []model.PhishingLog
}

func (m *memPhishingLogs) Create(ctx context.Context, log *model.PhishingLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *log)
	return nil
}

// memRevocations mirrors RevocationStore without Redis.
type memRevocations struct {
	mu     sync.Mutex
	before map[string]int64
}

func (m *memRevocations) RevokeUserTokens(ctx context.Context, uid string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.before[uid] = at.Unix()
	return nil
}

func (m *memRevocations) IsRevoked(ctx context.Context, claims *auth.Claims) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	at, ok := m.before[claims.UID()]
	if !ok {
		return false, nil
	}
	return claims.IssuedAt == nil || claims.IssuedAt.Unix() <= at, nil
}
