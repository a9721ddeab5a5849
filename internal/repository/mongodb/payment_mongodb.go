package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type paymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepository{coll: db.Collection(CollectionPayments)}
}

// paymentFilter matches payments of email, and when month is set, those whose
// date string contains "-<month>-".
func paymentFilter(email, month string) bson.M {
	filter := bson.M{"email": email}
	if month != "" {
		filter["date"] = bson.M{
			"$regex":   "-" + regexp.QuoteMeta(month) + "-",
			"$options": "i",
		}
	}
	return filter
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, storeErr("insertOne", CollectionPayments, err)
	}
	return toInsertResult(res), nil
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email, month string) ([]*domain.Payment, error) {
	return findAll[domain.Payment](ctx, r.coll, paymentFilter(email, month), newestFirst())
}
