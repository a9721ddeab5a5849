package repository

import (
	"context"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) (*domain.InsertResult, error)
	// List returns all announcements, newest first.
	List(ctx context.Context) ([]*domain.Announcement, error)
}
