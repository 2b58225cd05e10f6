package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"teranga_match/internal/models"
	"teranga_match/internal/repository"
)

type AuthService struct {
	users repository.UserRepository
	token TokenFunc
}

func NewAuthService(users repository.UserRepository, token TokenFunc) *AuthService {
	return &AuthService{users: users, token: token}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and returns a token for it. An empty role
// means VISITOR; ADMIN accounts can only be created by an admin.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", invalidf("email and password are required")
	}
	r := models.RoleVisitor
	if strings.TrimSpace(role) != "" {
		parsed, err := models.ParseUserRole(role)
		if err != nil {
			return "", invalidf("%v", err)
		}
		r = parsed
	}
	if r == models.RoleAdmin {
		return "", forbiddenf("cannot self-register as %s", r)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", repository.ErrConflict
	}
	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}
	user := models.User{Email: email, PasswordHash: hash, Role: r}
	if err := s.users.Create(ctx, &user); err != nil {
		return "", err
	}
	return s.token(user)
}

// Login checks the credentials, stamps lastLogin and returns a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !checkPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	now := time.Now()
	user.LastLogin = &now
	if err := s.users.Save(ctx, user); err != nil {
		return "", err
	}
	return s.token(*user)
}

func (s *AuthService) LoadUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, normalizeEmail(email))
}
