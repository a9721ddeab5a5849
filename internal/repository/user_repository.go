package repository

import (
	"context"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error)
	// GetByEmail returns domain.ErrNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpsertByEmail(ctx context.Context, email string, update domain.UserUpdate) (*domain.UpdateResult, error)
	// List returns all users, most recently inserted first.
	List(ctx context.Context) ([]*domain.User, error)
}
