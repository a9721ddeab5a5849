package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserRequest struct {
	Name  string      `json:"name" validate:"max=120"`
	Email string      `json:"email" validate:"required,email"`
	Photo string      `json:"photo" validate:"max=2048"`
	Role  domain.Role `json:"role" validate:"omitempty,oneof=user Member"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Create stores a user on first sign-in. Signing in again with a known email
// is not an error: it returns an ExistingUserResult with a nil insertedId.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (any, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return existingUser(), nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  role,
	}

	res, err := s.userRepo.Create(ctx, user)
	if errors.Is(err, domain.ErrUserExists) {
		return existingUser(), nil
	}
	if err != nil {
		return nil, err
	}

	slog.Info("user created", "email", user.Email, "role", user.Role)
	return res, nil
}

func existingUser() *domain.ExistingUserResult {
	return &domain.ExistingUserResult{
		Message:    domain.ErrUserExists.Error(),
		InsertedID: nil,
	}
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// Upsert sets the supplied fields on the user with email, creating the user
// when none exists. Applying the same update twice leaves the same record.
func (s *UserService) Upsert(ctx context.Context, email string, update domain.UserUpdate) (*domain.UpdateResult, error) {
	if update.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}
	return s.userRepo.UpsertByEmail(ctx, email, update)
}

// List returns every user, most recently inserted first.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
