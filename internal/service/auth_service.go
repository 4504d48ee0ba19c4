package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"workshop-service/internal/model"
	"workshop-service/internal/repository"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Login verifies the submitted credentials against the stored bcrypt
// hash. Unknown usernames and wrong passwords are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdminUser creates the default administrative account at process
// start if it does not exist yet. Returns true when the account was
// created.
func (s *AuthService) EnsureAdminUser(ctx context.Context, username, password string) (bool, error) {
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	admin := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "System Administrator",
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
