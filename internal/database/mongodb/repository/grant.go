package repository

import (
	"context"
	"time"

	"mediadex/internal/core"
	client "mediadex/internal/database/client"
	"mediadex/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GrantRepository struct {
	collection *mongo.Collection
}

func NewGrantRepository(mongoClient *client.MongoClient) *GrantRepository {
	repository := &GrantRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBCentral)).Collection(string(core.MongoCollectionAccessGrants)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *GrantRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.AccessGrantIndexes)
	return nil
}

// Create appends a grant. Redeeming the same token twice collapses on the
// unique pair index and is not an error.
func (repository *GrantRepository) Create(contextValue context.Context, userID, tenantID int64) (returnedError error) {
	nowUTC := time.Now().UTC()
	grant := &model.AccessGrant{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		TenantID:  tenantID,
		CreatedAt: nowUTC,
		UpdatedAt: nowUTC,
	}
	_, insertError := repository.collection.InsertOne(contextValue, grant)
	if insertError != nil && !mongo.IsDuplicateKeyError(insertError) {
		return insertError
	}
	return nil
}

// ListTenantIDs returns the tenant ids a user holds grants for, oldest grant
// first. This order is part of the search contract.
func (repository *GrantRepository) ListTenantIDs(contextValue context.Context, userID int64) (_ []int64, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue,
		bson.M{"userID": userID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var tenantIDs []int64
	for cursor.Next(contextValue) {
		var grant model.AccessGrant
		if decodeError := cursor.Decode(&grant); decodeError != nil {
			return nil, decodeError
		}
		tenantIDs = append(tenantIDs, grant.TenantID)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return tenantIDs, nil
}

func (repository *GrantRepository) CountByUser(contextValue context.Context, userID int64) (_ int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, bson.M{"userID": userID})
}
