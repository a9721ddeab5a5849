package repository

import (
	"context"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.InsertResult, error)
	// ListByEmail returns the payments of email, newest first. A non-empty
	// month ("01".."12") keeps only payments whose date contains "-MM-".
	ListByEmail(ctx context.Context, email, month string) ([]*domain.Payment, error)
}
