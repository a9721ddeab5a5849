package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type CouponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

func (s *CouponService) Create(ctx context.Context, coupon *domain.Coupon) (*domain.InsertResult, error) {
	return s.couponRepo.Create(ctx, coupon)
}

func (s *CouponService) List(ctx context.Context) ([]*domain.Coupon, error) {
	return s.couponRepo.List(ctx)
}

func (s *CouponService) Delete(ctx context.Context, id bson.ObjectID) (*domain.DeleteResult, error) {
	return s.couponRepo.Delete(ctx, id)
}
