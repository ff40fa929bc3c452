package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	minNameLength     = 3
	maxNameLength     = 256
	minEmailLength    = 6
	maxEmailLength    = 256
	minPasswordLength = 6
	maxPasswordLength = 1024
)

type userService struct {
	repo   Repository
	tokens TokenIssuer
}

// NewUserService creates a new user service
func NewUserService(repo Repository, tokens TokenIssuer) Service {
	return &userService{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// Repository surfaces duplicate username/email as domain errors.
	return s.repo.Create(ctx, user)
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return "", NewValidationError("credentials", "email and password are required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

func validateRegisterRequest(req RegisterRequest) error {
	if len(req.Username) < minNameLength || len(req.Username) > maxNameLength {
		return NewValidationError("username",
			fmt.Sprintf("username must be between %d and %d characters", minNameLength, maxNameLength))
	}
	if len(req.Name) < minNameLength || len(req.Name) > maxNameLength {
		return NewValidationError("name",
			fmt.Sprintf("name must be between %d and %d characters", minNameLength, maxNameLength))
	}
	if len(req.Email) < minEmailLength || len(req.Email) > maxEmailLength || !emailRegex.MatchString(req.Email) {
		return NewValidationError("email", "a valid email address is required")
	}
	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		return NewValidationError("password",
			fmt.Sprintf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength))
	}
	return nil
}
