package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type apartmentRepository struct {
	coll *mongo.Collection
}

func NewApartmentRepository(db *mongo.Database) repository.ApartmentRepository {
	return &apartmentRepository{coll: db.Collection(CollectionApartments)}
}

// List pages through apartments in insertion order.
func (r *apartmentRepository) List(ctx context.Context, page domain.Page) ([]*domain.Apartment, error) {
	if page.Empty() {
		return []*domain.Apartment{}, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(page.Skip).
		SetLimit(page.Limit)

	return findAll[domain.Apartment](ctx, r.coll, bson.M{}, opts)
}

func (r *apartmentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeErr("countDocuments", CollectionApartments, err)
	}
	return count, nil
}
