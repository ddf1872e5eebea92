package listingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"velora/database"
	"velora/models"
)

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo constructs a new instance of MongoListingRepo.
func NewMongoListingRepo() ListingRepository {
	return &MongoListingRepo{
		coll: database.DB().Collection("listings"),
	}
}

// ownerKeys lists every field name listing documents have historically used
// for their owner, newest first. The fan-out is resolved here once; nothing
// downstream sees anything but ListingRef.
var ownerKeys = []string{"master_uid", "masterUid", "userUid", "ownerUid", "profileId"}

func (repo *MongoListingRepo) GetRef(ctx context.Context, listingID string) (*models.ListingRef, error) {
	var doc bson.M
	if err := repo.coll.FindOne(ctx, bson.M{"id": listingID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching listing %s: %w", listingID, err)
	}

	ref := &models.ListingRef{ID: listingID}
	for _, key := range ownerKeys {
		if s, ok := doc[key].(string); ok && s != "" {
			ref.MasterUID = s
			break
		}
	}
	if ref.MasterUID == "" {
		return nil, fmt.Errorf("listing %s has no owner reference", listingID)
	}

	for _, key := range []string{"service_name", "serviceName", "title"} {
		if s, ok := doc[key].(string); ok && s != "" {
			ref.ServiceName = s
			break
		}
	}

	return ref, nil
}
