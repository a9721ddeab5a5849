package service

import (
	"context"
	"errors"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type RoleService struct {
	userRepo repository.UserRepository
}

func NewRoleService(userRepo repository.UserRepository) *RoleService {
	return &RoleService{
		userRepo: userRepo,
	}
}

// HasRole reports whether the user with email currently holds one of roles.
// The user is read on every call so role changes apply to the next request.
// An unknown email has no roles.
func (s *RoleService) HasRole(ctx context.Context, email string, roles ...domain.Role) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.Role.In(roles...), nil
}

// IsAdmin reports whether the user with email currently holds the Admin role.
func (s *RoleService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.HasRole(ctx, email, domain.RoleAdmin)
}
