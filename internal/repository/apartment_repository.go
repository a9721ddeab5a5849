package repository

import (
	"context"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

type ApartmentRepository interface {
	List(ctx context.Context, page domain.Page) ([]*domain.Apartment, error)
	Count(ctx context.Context) (int64, error)
}
