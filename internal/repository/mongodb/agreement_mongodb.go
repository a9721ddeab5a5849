package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type agreementRepository struct {
	coll *mongo.Collection
}

func NewAgreementRepository(db *mongo.Database) repository.AgreementRepository {
	return &agreementRepository{coll: db.Collection(CollectionAgreements)}
}

func pairFilter(clientEmail, apartmentID string) bson.M {
	return bson.M{
		"clientEmail": clientEmail,
		"apartmentId": apartmentID,
	}
}

func (r *agreementRepository) Create(ctx context.Context, agreement *domain.Agreement) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, agreement)
	if err != nil {
		// uniq_client_apartment catches bookings that raced past the lookup
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateBooking
		}
		return nil, storeErr("insertOne", CollectionAgreements, err)
	}
	return toInsertResult(res), nil
}

func (r *agreementRepository) FindByPair(ctx context.Context, clientEmail, apartmentID string) (*domain.Agreement, error) {
	var agreement domain.Agreement
	err := r.coll.FindOne(ctx, pairFilter(clientEmail, apartmentID)).Decode(&agreement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("findOne", CollectionAgreements, err)
	}
	return &agreement, nil
}

func (r *agreementRepository) ListByClient(ctx context.Context, clientEmail string) ([]*domain.Agreement, error) {
	return findAll[domain.Agreement](ctx, r.coll, bson.M{"clientEmail": clientEmail})
}

func (r *agreementRepository) List(ctx context.Context) ([]*domain.Agreement, error) {
	return findAll[domain.Agreement](ctx, r.coll, bson.M{})
}

func (r *agreementRepository) UpsertByID(ctx context.Context, id bson.ObjectID, update domain.AgreementUpdate) (*domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, storeErr("updateOne", CollectionAgreements, err)
	}
	return toUpdateResult(res), nil
}

func (r *agreementRepository) Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, storeErr("deleteOne", CollectionAgreements, err)
	}
	return toDeleteResult(res), nil
}
