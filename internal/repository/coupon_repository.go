package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.InsertResult, error)
	// List returns all coupons, newest first.
	List(ctx context.Context) ([]*domain.Coupon, error)
	Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error)
}
