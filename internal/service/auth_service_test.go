package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cyberguard/internal/auth"
	apperrors "cyberguard/internal/errors"
)

func TestAuthService_Authenticate(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", "")
	valid, err := tokens.IssueIDToken("uid-1", "user@example.com", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		setupMock     func(*MockRevocationStore)
		expectedError error
		expectedKind  apperrors.Kind
	}{
		{
			name:  "valid token",
			token: valid,
			setupMock: func(m *MockRevocationStore) {
				m.On("IsRevoked", mock.Anything, mock.AnythingOfType("*auth.Claims")).Return(false, nil)
			},
		},
		{
			name:          "malformed token",
			token:         "garbage",
			setupMock:     func(m *MockRevocationStore) {},
			expectedError: apperrors.ErrUnauthenticated,
		},
		{
			name:  "revoked token",
			token: valid,
			setupMock: func(m *MockRevocationStore) {
				m.On("IsRevoked", mock.Anything, mock.AnythingOfType("*auth.Claims")).Return(true, nil)
			},
			expectedError: apperrors.ErrUnauthenticated,
		},
		{
			name:  "revocation lookup fails",
			token: valid,
			setupMock: func(m *MockRevocationStore) {
				m.On("IsRevoked", mock.Anything, mock.AnythingOfType("*auth.Claims")).Return(false, errors.New("boom"))
			},
			expectedKind: apperrors.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockRevocationStore)
			tt.setupMock(store)

			svc := NewAuthService(tokens, store)
			claims, err := svc.Authenticate(context.Background(), tt.token)

			switch {
			case tt.expectedError != nil:
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, claims)
			case tt.expectedKind != "":
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, "uid-1", claims.UID())
			}

			store.AssertExpectations(t)
		})
	}
}

func TestAuthService_SignOut(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", "")
	store := new(MockRevocationStore)
	store.On("RevokeUserTokens", mock.Anything, "uid-1", mock.AnythingOfType("time.Time")).Return(nil)

	svc := NewAuthService(tokens, store)
	claims := &auth.Claims{}
	claims.Subject = "uid-1"

	assert.NoError(t, svc.SignOut(context.Background(), claims))
	assert.Equal(t, apperrors.ErrUnauthenticated, svc.SignOut(context.Background(), nil))
	store.AssertExpectations(t)
}
