package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

type AgreementRepository interface {
	// Create returns domain.ErrDuplicateBooking if the store rejects the
	// (clientEmail, apartmentId) pair as a duplicate.
	Create(ctx context.Context, agreement *domain.Agreement) (*domain.InsertResult, error)
	// FindByPair returns domain.ErrNotFound when no agreement matches.
	FindByPair(ctx context.Context, clientEmail, apartmentID string) (*domain.Agreement, error)
	ListByClient(ctx context.Context, clientEmail string) ([]*domain.Agreement, error)
	List(ctx context.Context) ([]*domain.Agreement, error)
	UpsertByID(ctx context.Context, id bson.ObjectID, update domain.AgreementUpdate) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error)
}
