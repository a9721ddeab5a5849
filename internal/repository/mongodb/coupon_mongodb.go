package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type couponRepository struct {
	coll *mongo.Collection
}

func NewCouponRepository(db *mongo.Database) repository.CouponRepository {
	return &couponRepository{coll: db.Collection(CollectionCoupons)}
}

func (r *couponRepository) Create(ctx context.Context, coupon *domain.Coupon) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, coupon)
	if err != nil {
		return nil, storeErr("insertOne", CollectionCoupons, err)
	}
	return toInsertResult(res), nil
}

func (r *couponRepository) List(ctx context.Context) ([]*domain.Coupon, error) {
	return findAll[domain.Coupon](ctx, r.coll, bson.M{}, newestFirst())
}

func (r *couponRepository) Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, storeErr("deleteOne", CollectionCoupons, err)
	}
	return toDeleteResult(res), nil
}
