// Package mongodb implements the repository interfaces on MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/Rasel9360/building-management-system-server-site/internal/domain"
)

const (
	CollectionUsers         = "users"
	CollectionApartments    = "apartment"
	CollectionAgreements    = "agreement"
	CollectionCoupons       = "coupons"
	CollectionAnnouncements = "announcement"
	CollectionPayments      = "payments"
)

// NewClient builds a client on the stable server API and checks that the
// deployment answers a ping.
func NewClient(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

// indexModels lists the indexes the services rely on. The booking index only
// covers documents that carry both pair fields, so agreements created by
// upsert-by-id without them never collide with each other.
func indexModels() []collectionIndex {
	return []collectionIndex{
		{
			collection: CollectionAgreements,
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "clientEmail", Value: 1},
					{Key: "apartmentId", Value: 1},
				},
				Options: options.Index().
					SetUnique(true).
					SetName("uniq_client_apartment").
					SetPartialFilterExpression(bson.M{
						"clientEmail": bson.M{"$type": "string"},
						"apartmentId": bson.M{"$type": "string"},
					}),
			},
		},
		{
			collection: CollectionUsers,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		{
			collection: CollectionPayments,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("email_newest"),
			},
		},
	}
}

// EnsureIndexes creates the indexes from indexModels. It is safe to run
// repeatedly.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range indexModels() {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return storeErr("createIndex", idx.collection, err)
		}
	}
	return nil
}

func storeErr(op, collection string, err error) error {
	return &domain.StoreError{Op: op, Collection: collection, Err: err}
}

// newestFirst sorts by _id descending, which follows insertion order for
// driver-generated ObjectIDs.
func newestFirst() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
}

func toInsertResult(r *mongo.InsertOneResult) *domain.InsertResult {
	return &domain.InsertResult{
		Acknowledged: r.Acknowledged,
		InsertedID:   r.InsertedID,
	}
}

func toUpdateResult(r *mongo.UpdateResult) *domain.UpdateResult {
	return &domain.UpdateResult{
		Acknowledged:  r.Acknowledged,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

func toDeleteResult(r *mongo.DeleteResult) *domain.DeleteResult {
	return &domain.DeleteResult{
		Acknowledged: r.Acknowledged,
		DeletedCount: r.DeletedCount,
	}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...options.Lister[options.FindOptions]) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, storeErr("find", coll.Name(), err)
	}

	out := make([]*T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, storeErr("find", coll.Name(), err)
	}
	return out, nil
}
