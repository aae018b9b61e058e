package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Prathamahuja/employee-leave-management/internal/models"
	"github.com/Prathamahuja/employee-leave-management/internal/repositories"
)

// AuthService signs up and authenticates users against the user store.
type AuthService struct {
	userRepo repositories.UserRepositoryInterface
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepositoryInterface) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup registers a new account and returns its id. The stored role is
// always "employee" no matter what the caller sent; admins exist only via
// first-run seeding.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (uint, error) {
	if name == "" || email == "" || password == "" {
		return 0, ErrMissingFields
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleEmployee,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost the race against a concurrent signup with the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return user.ID, nil
}

// Login verifies credentials and returns the matching user. Unknown email
// and wrong password both come back as ErrInvalidCredentials so callers
// cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
