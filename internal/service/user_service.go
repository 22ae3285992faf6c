package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"cyberguard/internal/auth"
	"cyberguard/internal/cache"
	apperrors "cyberguard/internal/errors"
	"cyberguard/internal/model"
	"cyberguard/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes profile and role operations.
type UserService interface {
	GetProfile(ctx context.Context, caller auth.Caller) (*model.UserProfile, error)
	SetRole(ctx context.Context, caller auth.Caller, role model.Role) (model.Role, error)
	IsAdmin(ctx context.Context, uid string) (bool, error)
	GrantAdmin(ctx context.Context, uid, email string) error
	ListUsers(ctx context.Context) ([]model.UserProfile, error)
}

type userService struct {
	repo                repository.UserRepository
	cache               *cache.Client
	allowSelfRoleAssign bool
}

// NewUserService builds a UserService with repository and cache.
// When allowSelfRoleAssign is false only admins may grant themselves the admin role.
func NewUserService(repo repository.UserRepository, cache *cache.Client, allowSelfRoleAssign bool) UserService {
	return &userService{repo: repo, cache: cache, allowSelfRoleAssign: allowSelfRoleAssign}
}

func (s *userService) cacheKey(uid string) string {
	return "user:" + uid
}

// GetProfile returns the caller's profile, creating a user-role profile on first access.
func (s *userService) GetProfile(ctx context.Context, caller auth.Caller) (*model.UserProfile, error) {
	var cached model.UserProfile
	if s.cache.GetJSON(ctx, s.cacheKey(caller.UID), &cached) {
		return &cached, nil
	}

	profile, err := s.repo.FindByUID(ctx, caller.UID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile, err = s.createProfile(ctx, caller)
	}
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(caller.UID), profile, userCacheTTL)
	return profile, nil
}

func (s *userService) createProfile(ctx context.Context, caller auth.Caller) (*model.UserProfile, error) {
	profile := &model.UserProfile{UID: caller.UID, Email: caller.Email, Role: model.RoleUser}
	if err := s.repo.Create(ctx, profile); err != nil {
		// A concurrent first access may have created the row already.
		existing, findErr := s.repo.FindByUID(ctx, caller.UID)
		if findErr != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		return existing, nil
	}
	slog.InfoContext(ctx, "profile created", "uid", caller.UID)
	return profile, nil
}

// SetRole upserts the caller's role. An empty role means user.
func (s *userService) SetRole(ctx context.Context, caller auth.Caller, role model.Role) (model.Role, error) {
	if role == "" {
		role = model.RoleUser
	}
	if !role.Valid() {
		return "", apperrors.ErrInvalidRole
	}

	if role == model.RoleAdmin && !s.allowSelfRoleAssign {
		isAdmin, err := s.IsAdmin(ctx, caller.UID)
		if err != nil {
			return "", err
		}
		if !isAdmin {
			return "", apperrors.ErrRoleChangeForbidden
		}
	}

	profile := &model.UserProfile{UID: caller.UID, Email: caller.Email, Role: role}
	if err := s.repo.UpsertRole(ctx, profile); err != nil {
		return "", fmt.Errorf("upsert role: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(caller.UID))

	slog.InfoContext(ctx, "role set", "uid", caller.UID, "role", role)
	return role, nil
}

// IsAdmin reads the stored profile, bypassing the cache. A missing profile is not an admin.
func (s *userService) IsAdmin(ctx context.Context, uid string) (bool, error) {
	profile, err := s.repo.FindByUID(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find profile: %w", err)
	}
	return profile.IsAdmin(), nil
}

// GrantAdmin creates or promotes a profile to admin. Used by operator tooling.
func (s *userService) GrantAdmin(ctx context.Context, uid, email string) error {
	profile := &model.UserProfile{UID: uid, Email: email, Role: model.RoleAdmin}
	if err := s.repo.UpsertRole(ctx, profile); err != nil {
		return fmt.Errorf("grant admin: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(uid))
	return nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.UserProfile, error) {
	return s.repo.List(ctx)
}
