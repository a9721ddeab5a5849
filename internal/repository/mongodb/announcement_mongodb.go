package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
	"github.com/Rasel9360/building-management-system-server-site/internal/repository"
)

type announcementRepository struct {
	coll *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) repository.AnnouncementRepository {
	return &announcementRepository{coll: db.Collection(CollectionAnnouncements)}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *domain.Announcement) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, announcement)
	if err != nil {
		return nil, storeErr("insertOne", CollectionAnnouncements, err)
	}
	return toInsertResult(res), nil
}

func (r *announcementRepository) List(ctx context.Context) ([]*domain.Announcement, error) {
	return findAll[domain.Announcement](ctx, r.coll, bson.M{}, newestFirst())
}
