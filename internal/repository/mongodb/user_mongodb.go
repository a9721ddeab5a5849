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

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(CollectionUsers)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, storeErr("insertOne", CollectionUsers, err)
	}
	return toInsertResult(res), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("findOne", CollectionUsers, err)
	}
	return &user, nil
}

func (r *userRepository) UpsertByEmail(ctx context.Context, email string, update domain.UserUpdate) (*domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": update},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, storeErr("updateOne", CollectionUsers, err)
	}
	return toUpdateResult(res), nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	return findAll[domain.User](ctx, r.coll, bson.M{}, newestFirst())
}
