package service

import (
	"context"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type ApartmentService struct {
	apartmentRepo repository.ApartmentRepository
}

func NewApartmentService(apartmentRepo repository.ApartmentRepository) *ApartmentService {
	return &ApartmentService{
		apartmentRepo: apartmentRepo,
	}
}

// PageOf turns a 1-based page of size items into a skip/limit window.
// A non-positive size or page gives an empty window.
func PageOf(size, page int64) domain.Page {
	if size <= 0 || page <= 0 {
		return domain.Page{}
	}
	return domain.Page{
		Skip:  size * (page - 1),
		Limit: size,
	}
}

func (s *ApartmentService) List(ctx context.Context, size, page int64) ([]*domain.Apartment, error) {
	return s.apartmentRepo.List(ctx, PageOf(size, page))
}

func (s *ApartmentService) Count(ctx context.Context) (int64, error) {
	return s.apartmentRepo.Count(ctx)
}
