package service

import (
	"context"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type AnnouncementService struct {
	announcementRepo repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

func (s *AnnouncementService) Create(ctx context.Context, announcement *domain.Announcement) (*domain.InsertResult, error) {
	return s.announcementRepo.Create(ctx, announcement)
}

func (s *AnnouncementService) List(ctx context.Context) ([]*domain.Announcement, error) {
	return s.announcementRepo.List(ctx)
}
