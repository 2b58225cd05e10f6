package services

import (
	"context"
	"errors"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// Create is the admin path for adding accounts, any role included.
func (s *UserService) Create(ctx context.Context, email, password string, role models.UserRole) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalidf("email and password are required")
	}
	if !role.Valid() {
		return nil, invalidf("invalid role %q", role)
	}
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrConflict
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Email: email, PasswordHash: hash, Role: role}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id uint, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, invalidf("invalid role %q", role)
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return user, nil
	}
	user.Role = role
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

// EnsureAdmin creates the ADMIN account when no user holds email yet.
// It reports whether an account was created. Empty credentials disable it.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	if _, err := s.Create(ctx, email, password, models.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}
